package loader

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ilcovid/oecdrt/internal/config"
	"github.com/ilcovid/oecdrt/internal/httpclientx"
	"github.com/ilcovid/oecdrt/internal/model"
)

func TestParseWide(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "small.csv"))
	if err != nil {
		t.Fatal(err)
	}

	table, err := ParseWideBytes(data)
	if err != nil {
		t.Fatal(err)
	}

	expectCountries := []string{"World", "Israel", "Italy", "South Korea", "Narnia"}
	if diff := cmp.Diff(expectCountries, table.Countries); diff != "" {
		t.Fatal(diff)
	}
	if len(table.Dates) != 3 {
		t.Fatal("expected three dates, got", len(table.Dates))
	}
	if !table.Dates[0].Equal(time.Date(2020, time.May, 30, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("unexpected first date", table.Dates[0])
	}
	if table.Len() != 15 {
		t.Fatal("expected 15 observations, got", table.Len())
	}

	israel, found := table.Series("Israel")
	if !found {
		t.Fatal("expected to find Israel")
	}
	if diff := cmp.Diff([]float64{2, 2.5, 3}, israel.Values); diff != "" {
		t.Fatal(diff)
	}

	korea, _ := table.Series("South Korea")
	if !math.IsNaN(korea.Values[0]) || korea.Values[2] != 0.2 {
		t.Fatal("unexpected values", korea.Values)
	}
}

func TestParseWideSchemaErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty file", ""},
		{"no date column", "day,Israel\n2020-06-01,1\n"},
		{"no countries", "date\n2020-06-01\n"},
		{"invalid date", "date,Israel\n06/01/2020,1\n"},
		{"invalid number", "date,Israel\n2020-06-01,abc\n"},
		{"ragged row", "date,Israel,Italy\n2020-06-01,1\n"},
		{"decreasing dates", "date,Israel\n2020-06-02,1\n2020-06-01,1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseWide(strings.NewReader(tc.input))
			if !errors.Is(err, ErrSchema) {
				t.Fatal("unexpected error", err)
			}
		})
	}
}

func TestFetch(t *testing.T) {
	body := "date,Israel\n2020-06-01,1\n"

	t.Run("from a local file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cases.csv")
		if err := os.WriteFile(path, []byte(body), 0600); err != nil {
			t.Fatal(err)
		}
		cfg := config.Default()
		cfg.SourceFile = path
		data, err := Fetch(context.Background(), cfg, nil, model.DiscardLogger)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(body, string(data)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("from the network", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("User-Agent") != model.HTTPHeaderUserAgent {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Write([]byte(body))
		}))
		defer srv.Close()

		cfg := config.Default()
		cfg.SourceURL = srv.URL
		table, err := Load(context.Background(), cfg, http.DefaultClient, model.DiscardLogger)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]string{"Israel"}, table.Countries); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("when the server fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		cfg := config.Default()
		cfg.SourceURL = srv.URL
		_, err := Fetch(context.Background(), cfg, http.DefaultClient, model.DiscardLogger)
		var failed *httpclientx.ErrRequestFailed
		if !errors.As(err, &failed) || failed.StatusCode != http.StatusServiceUnavailable {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("when the file is missing", func(t *testing.T) {
		cfg := config.Default()
		cfg.SourceFile = filepath.Join(t.TempDir(), "missing.csv")
		_, err := Fetch(context.Background(), cfg, nil, model.DiscardLogger)
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatal("unexpected error", err)
		}
	})
}
