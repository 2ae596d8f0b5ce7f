package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ilcovid/oecdrt/internal/countries"
)

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if c.Window != 7 {
		t.Fatal("unexpected window", c.Window)
	}
	if diff := cmp.Diff(Moments{Mean: 4.5, SD: 3.5}, c.SerialInterval); diff != "" {
		t.Fatal(diff)
	}
	if len(c.Comparisons) != 34 {
		t.Fatal("unexpected number of comparison countries", len(c.Comparisons))
	}
	if !c.Anchor().Equal(time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("unexpected anchor", c.Anchor())
	}
	if c.TimeoutDuration() != time.Minute {
		t.Fatal("unexpected timeout", c.TimeoutDuration())
	}
}

func TestDefaultDoesNotAliasTheMembersList(t *testing.T) {
	c := Default()
	c.Comparisons[0] = "Narnia"
	if countries.OECDMembers[0] == "Narnia" {
		t.Fatal("Default aliases countries.OECDMembers")
	}
}

func TestParse(t *testing.T) {
	t.Run("with comments and trailing commas", func(t *testing.T) {
		data := []byte(`{
			// only three comparison countries
			"comparisons": ["Italy", "Spain", "France",],
			"window": 5,
			"outputs": {"dir": "out"},
		}`)
		c, err := Parse(data)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]string{"Italy", "Spain", "France"}, c.Comparisons); diff != "" {
			t.Fatal(diff)
		}
		if c.Window != 5 {
			t.Fatal("unexpected window", c.Window)
		}
		if c.Reference != "Israel" {
			t.Fatal("expected default reference", c.Reference)
		}
		if got := c.Outputs.Path(c.Outputs.Rt); got != filepath.Join("out", "oecd-rep-num.csv") {
			t.Fatal("unexpected output path", got)
		}
	})

	t.Run("with invalid hujson", func(t *testing.T) {
		_, err := Parse([]byte(`{`))
		if err == nil || !strings.HasPrefix(err.Error(), "parsing hujson") {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("with wrong types", func(t *testing.T) {
		_, err := Parse([]byte(`{"window": "seven"}`))
		if err == nil || !strings.HasPrefix(err.Error(), "parsing json") {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("with invalid values", func(t *testing.T) {
		_, err := Parse([]byte(`{"serial_interval": {"mean": 0.5, "sd": 1}}`))
		if err == nil || !strings.HasPrefix(err.Error(), "validating") {
			t.Fatal("unexpected error", err)
		}
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
	}{{
		name:   "no source",
		mutate: func(c *Config) { c.SourceURL = "" },
	}, {
		name:   "reference among comparisons",
		mutate: func(c *Config) { c.Comparisons = append(c.Comparisons, "israel") },
	}, {
		name:   "reference code among comparisons",
		mutate: func(c *Config) { c.Comparisons = []string{"ISR", "Austria", "Belgium"} },
	}, {
		name:   "reference alias among comparisons",
		mutate: func(c *Config) {
			c.Reference = "ISR"
			c.Comparisons = []string{"Austria", "Israel"}
		},
	}, {
		name:   "bad anchor date",
		mutate: func(c *Config) { c.AnchorDate = "01/06/2020" },
	}, {
		name:   "window too short",
		mutate: func(c *Config) { c.Window = 1 },
	}, {
		name:   "non positive sd",
		mutate: func(c *Config) { c.SerialInterval.SD = 0 },
	}, {
		name:   "bad prior",
		mutate: func(c *Config) { c.Prior.Mean = -1 },
	}, {
		name:   "negative lag",
		mutate: func(c *Config) { c.ReportingLagDays = -1 },
	}, {
		name:   "bad policy event",
		mutate: func(c *Config) { c.PolicyEvents = []PolicyEvent{{Date: "yesterday", Label: "x"}} },
	}, {
		name:   "tiny chart",
		mutate: func(c *Config) { c.ChartWidth = 10 },
	}}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestRead(t *testing.T) {
	t.Run("with existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "oecdrt.hujson")
		if err := os.WriteFile(path, []byte(`{"anchor_date": "2020-09-01"}`), 0600); err != nil {
			t.Fatal(err)
		}
		c, err := Read(path)
		if err != nil {
			t.Fatal(err)
		}
		if c.AnchorDate != "2020-09-01" {
			t.Fatal("unexpected anchor", c.AnchorDate)
		}
	})

	t.Run("with missing file", func(t *testing.T) {
		_, err := Read(filepath.Join(t.TempDir(), "nonexistent.hujson"))
		if !os.IsNotExist(err) {
			t.Fatal("unexpected error", err)
		}
	})
}

func TestDigest(t *testing.T) {
	a, b := Default(), Default()
	if a.Digest() != b.Digest() || len(a.Digest()) != 64 {
		t.Fatal("unexpected digest", a.Digest())
	}
	b.Window = 14
	if a.Digest() == b.Digest() {
		t.Fatal("expected different digests")
	}
}
