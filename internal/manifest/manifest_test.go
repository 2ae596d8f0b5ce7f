package manifest

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ilcovid/oecdrt/internal/model"
	"github.com/ilcovid/oecdrt/internal/rt"
)

func newManifest(runID string, start time.Time) *Manifest {
	estimate := &rt.Estimate{
		Country: "Israel",
		Code:    "ISR",
		Summaries: []rt.Summary{
			{Mean: 1.2},
			{Mean: 0.9},
		},
	}
	m := &Manifest{
		RunID:        runID,
		StartTime:    start,
		EndTime:      start.Add(3 * time.Second),
		Source:       "testdata.csv",
		ConfigDigest: "abcdef",
		Reference:    Succeeded(estimate),
	}
	m.Add(Succeeded(&rt.Estimate{Country: "Italy", Code: "ITA", Summaries: []rt.Summary{{Mean: 1.1}}}))
	m.Add(Failed("JPN", "Japan", fmt.Errorf("%w: Japan", rt.ErrZeroIncidence)))
	return m
}

func TestReasonFor(t *testing.T) {
	cases := map[error]Reason{
		nil:                                         ReasonNone,
		rt.ErrTooShort:                              ReasonTooShort,
		rt.ErrWindowOutOfRange:                      ReasonTooShort,
		fmt.Errorf("x: %w", rt.ErrMissingIncidence): ReasonMissing,
		rt.ErrNegativeIncidence:                     ReasonNegative,
		rt.ErrZeroIncidence:                         ReasonZero,
		ErrMisaligned:                               ReasonMisaligned,
		ErrNotFound:                                 ReasonNotFound,
		errors.New("mocked error"):                  ReasonOther,
	}
	for err, expect := range cases {
		if got := ReasonFor(err); got != expect {
			t.Errorf("ReasonFor(%v): expected %q, got %q", err, expect, got)
		}
	}
}

func TestManifest(t *testing.T) {
	m := newManifest("run-1", time.Date(2021, 2, 1, 10, 0, 0, 0, time.UTC))
	if m.Reference.LastMean != 0.9 || m.Reference.Windows != 2 {
		t.Fatal("unexpected reference", m.Reference)
	}
	if m.Estimated() != 1 || m.Failed() != 1 {
		t.Fatal("unexpected counts", m.Estimated(), m.Failed())
	}
	if m.Countries[1].Reason != ReasonZero || m.Countries[1].Failure != "rt: zero incidence: Japan" {
		t.Fatal("unexpected failure", m.Countries[1])
	}

	t.Run("JSON round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "manifest.json")
		if err := m.WriteJSON(path); err != nil {
			t.Fatal(err)
		}
		got, err := ReadJSON(path)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(m, got); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.sqlite3")
	store, err := OpenStore(path, model.DiscardLogger)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	t0 := time.Date(2021, 2, 1, 10, 0, 0, 0, time.UTC)
	for idx, runID := range []string{"run-1", "run-2", "run-3"} {
		if err := store.Save(newManifest(runID, t0.Add(time.Duration(idx)*time.Hour))); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("ListRuns", func(t *testing.T) {
		runs, err := store.ListRuns(2)
		if err != nil {
			t.Fatal(err)
		}
		if len(runs) != 2 {
			t.Fatal("expected two runs, got", len(runs))
		}
		if runs[0].RunID != "run-3" || runs[1].RunID != "run-2" {
			t.Fatal("unexpected order", runs[0].RunID, runs[1].RunID)
		}
		if runs[0].Estimated != 1 || runs[0].Failed != 1 || runs[0].Windows != 2 {
			t.Fatal("unexpected counts", runs[0])
		}
		if !runs[0].StartTime.Equal(t0.Add(2 * time.Hour)) {
			t.Fatal("unexpected start time", runs[0].StartTime)
		}
	})

	t.Run("CountryResults", func(t *testing.T) {
		got, err := store.CountryResults("run-2")
		if err != nil {
			t.Fatal(err)
		}
		m := newManifest("run-2", t0)
		expect := []CountryResult{m.Reference, m.Countries[0], m.Countries[1]}
		if diff := cmp.Diff(expect, got); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("reopening keeps the history", func(t *testing.T) {
		other, err := OpenStore(path, model.DiscardLogger)
		if err != nil {
			t.Fatal(err)
		}
		defer other.Close()
		runs, err := other.ListRuns(0)
		if err != nil {
			t.Fatal(err)
		}
		if len(runs) != 3 {
			t.Fatal("expected three runs, got", len(runs))
		}
	})

	t.Run("duplicate run id", func(t *testing.T) {
		if err := store.Save(newManifest("run-1", t0)); err == nil {
			t.Fatal("expected an error")
		}
	})
}
