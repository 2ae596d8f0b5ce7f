// Package pipeline runs the analysis stages in order and writes the outputs.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/ilcovid/oecdrt/internal/aggregate"
	"github.com/ilcovid/oecdrt/internal/config"
	"github.com/ilcovid/oecdrt/internal/countries"
	"github.com/ilcovid/oecdrt/internal/loader"
	"github.com/ilcovid/oecdrt/internal/manifest"
	"github.com/ilcovid/oecdrt/internal/model"
	"github.com/ilcovid/oecdrt/internal/render"
	"github.com/ilcovid/oecdrt/internal/rt"
	"github.com/schollz/progressbar/v3"
)

// ErrReference indicates that we cannot estimate the reference country.
var ErrReference = errors.New("pipeline: reference country")

// Runner runs the analysis. The zero value is invalid; please, make
// sure you initialize all the fields marked as MANDATORY.
type Runner struct {
	// Config is the MANDATORY validated configuration.
	Config config.Config

	// Logger is the MANDATORY logger.
	Logger model.Logger

	// ProgressWriter is the OPTIONAL writer for the progress bar. When
	// nil, we do not show any progress.
	ProgressWriter io.Writer

	// HTTPClient is the OPTIONAL client used to download the data.
	HTTPClient model.HTTPClient

	// TimeNow is the OPTIONAL function returning the current time.
	TimeNow func() time.Time
}

// Result is the result of a run.
type Result struct {
	// Manifest describes the run.
	Manifest *manifest.Manifest

	// Reference is the estimate of the reference country.
	Reference *rt.Estimate

	// Comparisons contains the successful comparison estimates.
	Comparisons []*rt.Estimate

	// Rt contains one row per window.
	Rt []aggregate.Row

	// Cases contains one row per date.
	Cases []aggregate.Row

	// Image contains the charts.
	Image image.Image
}

func (r *Runner) now() time.Time {
	if r.TimeNow != nil {
		return r.TimeNow()
	}
	return time.Now()
}

// Main runs the analysis and writes the outputs. On failure, it returns
// an error and does not write any output.
func (r *Runner) Main(ctx context.Context) (*Result, error) {
	cfg := r.Config
	m := &manifest.Manifest{
		RunID:        uuid.Must(uuid.NewRandom()).String(),
		StartTime:    r.now(),
		Source:       cfg.SourceURL,
		ConfigDigest: cfg.Digest(),
	}
	if cfg.SourceFile != "" {
		m.Source = cfg.SourceFile
	}
	r.Logger.Infof("pipeline: run %s", m.RunID)

	table, err := loader.Load(ctx, cfg, r.HTTPClient, r.Logger)
	if err != nil {
		return nil, err
	}
	targets := append([]string{cfg.Reference}, cfg.Comparisons...)
	filtered := countries.Filter(r.Logger, table, targets)
	r.Logger.Infof("pipeline: %d of %d countries in scope", len(filtered.Countries), len(table.Countries))

	reference, err := r.reference(filtered)
	if err != nil {
		return nil, err
	}
	windows, err := rt.Windows(reference.Len(), cfg.Window)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReference, err)
	}
	params, err := rt.NewParams(cfg.SerialInterval.Mean, cfg.SerialInterval.SD,
		cfg.Prior.Mean, cfg.Prior.SD, reference.Len())
	if err != nil {
		return nil, err
	}
	refEstimate, err := rt.Run(reference, windows, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReference, err)
	}
	m.Reference = manifest.Succeeded(refEstimate)

	result := &Result{Manifest: m, Reference: refEstimate}
	columns := make(aggregate.Columns)
	var names []string
	for _, estimate := range r.comparisons(ctx, filtered, reference, windows, params, m) {
		result.Comparisons = append(result.Comparisons, estimate)
		columns[estimate.Code] = estimate.Means()
		names = append(names, estimate.Country)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n := len(result.Comparisons); n < cfg.MinComparisons {
		r.Logger.Warnf("pipeline: only %d comparison countries survived (minimum is %d)", n, cfg.MinComparisons)
	}

	result.Rt, err = aggregate.RtTable(cfg.Anchor(), refEstimate.Means(), columns)
	if err != nil {
		return nil, err
	}
	result.Cases, err = aggregate.CaseTable(filtered, reference.Country, names, cfg.Window)
	if err != nil {
		return nil, err
	}
	// the charts are presentation only and never abort the run
	result.Image, err = render.Charts(cfg, result.Rt, result.Cases)
	if err != nil {
		r.Logger.Warnf("pipeline: not drawing the charts: %s", err.Error())
	}
	if err := r.write(result); err != nil {
		return nil, err
	}
	return result, nil
}

// reference returns the reference series from the anchor date onward
// without the trailing days the source has not filled yet.
func (r *Runner) reference(table *model.Table) (*model.IncidenceSeries, error) {
	cfg := r.Config
	code, found := countries.Lookup(cfg.Reference)
	if !found {
		return nil, fmt.Errorf("%w: unknown country %q", ErrReference, cfg.Reference)
	}
	series, found := countries.Series(table, code, cfg.Anchor())
	if !found {
		return nil, fmt.Errorf("%w: %w: %s", ErrReference, manifest.ErrNotFound, cfg.Reference)
	}
	trimmed := trimTrailingNaN(series)
	if n := series.Len() - trimmed.Len(); n > 0 {
		r.Logger.Warnf("pipeline: ignoring the last %d days without %s data", n, series.Country)
	}
	return trimmed, nil
}

// comparisons estimates each comparison country, records the outcome
// in the manifest and returns the successful estimates.
func (r *Runner) comparisons(ctx context.Context, table *model.Table, reference *model.IncidenceSeries,
	windows []rt.Window, params *rt.Params, m *manifest.Manifest) (out []*rt.Estimate) {
	codes := countries.Codes(r.Logger, r.Config.Comparisons)
	if code, found := countries.Lookup(r.Config.Reference); found {
		if name, dup := codes[code]; dup {
			r.Logger.Warnf("pipeline: %s is the reference country, not a comparison", name)
			delete(codes, code)
		}
	}
	sorted := make([]string, 0, len(codes))
	for code := range codes {
		sorted = append(sorted, code)
	}
	sort.Strings(sorted)

	bar := r.newProgressBar(len(sorted))
	for idx := 0; idx < len(sorted) && ctx.Err() == nil; idx++ {
		code := sorted[idx]
		bar.Add(1)
		estimate, err := r.estimate(table, reference, code, windows, params)
		if err != nil {
			r.Logger.Warnf("pipeline: skipping %s: %s", code, err.Error())
			m.Add(manifest.Failed(code, codes[code], err))
			continue
		}
		m.Add(manifest.Succeeded(estimate))
		out = append(out, estimate)
	}
	r.Logger.Infof("pipeline: estimated %d countries, %d failed", m.Estimated(), m.Failed())
	return
}

func (r *Runner) estimate(table *model.Table, reference *model.IncidenceSeries, code string,
	windows []rt.Window, params *rt.Params) (*rt.Estimate, error) {
	series, found := countries.Series(table, code, r.Config.Anchor())
	if !found {
		return nil, fmt.Errorf("%w: %s", manifest.ErrNotFound, code)
	}
	aligned, err := align(reference, series)
	if err != nil {
		return nil, err
	}
	return rt.Run(aligned, windows, params)
}

func (r *Runner) newProgressBar(n int) *progressbar.ProgressBar {
	w := r.ProgressWriter
	if w == nil {
		w = io.Discard
	}
	return progressbar.NewOptions(
		n,
		progressbar.OptionSetDescription("estimating Rt"),
		progressbar.OptionShowDescriptionAtLineEnd(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetWriter(w),
	)
}

// ensureDir creates the output directory.
func ensureDir(dir string) error {
	if dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}
