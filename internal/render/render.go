// Package render draws the Rt and cases charts side by side.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"time"

	"github.com/ilcovid/oecdrt/internal/aggregate"
	"github.com/ilcovid/oecdrt/internal/config"
	"github.com/ilcovid/oecdrt/internal/model"
	"github.com/montanaflynn/stats"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNotEnoughData indicates that the reference line of a chart has
// fewer than two points.
var ErrNotEnoughData = errors.New("render: not enough data")

var (
	referenceColor = drawing.ColorFromHex("1f4e9c")
	medianColor    = drawing.ColorFromHex("d9480f")
	bandColor      = drawing.ColorFromHex("f4a261").WithAlpha(110)
	eventColor     = drawing.ColorFromHex("6c757d")
	lagColor       = drawing.ColorFromHex("adb5bd").WithAlpha(70)
)

// Charts renders the Rt chart and the cases chart side by side with a
// footer describing the source of the data.
func Charts(cfg config.Config, rtRows, caseRows []aggregate.Row) (image.Image, error) {
	left, err := renderChart(rtChart(cfg, rtRows))
	if err != nil {
		return nil, fmt.Errorf("render: Rt chart: %w", err)
	}
	right, err := renderChart(casesChart(cfg, caseRows))
	if err != nil {
		return nil, fmt.Errorf("render: cases chart: %w", err)
	}
	return compose(left, right, footer(cfg, rtRows)), nil
}

// plot is a chart under construction.
type plot struct {
	chart chart.Chart
	err   error
}

func renderChart(p *plot) (image.Image, error) {
	if p.err != nil {
		return nil, p.err
	}
	var buf bytes.Buffer
	if err := p.chart.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

// band contains the defined points of an aggregate table. The chart
// library cannot draw NaN, so the reference line and the cross-country
// quantiles keep their own dates.
type band struct {
	refDates  []time.Time
	reference []float64
	dates     []time.Time
	q50       []float64
	qUp       []float64
	qDown     []float64
}

func newBand(rows []aggregate.Row) *band {
	b := &band{}
	for _, row := range rows {
		if !math.IsNaN(row.Reference) {
			b.refDates = append(b.refDates, row.Date)
			b.reference = append(b.reference, row.Reference)
		}
		if anyNaN(row.Q50, row.QUp, row.QDown) {
			continue
		}
		b.dates = append(b.dates, row.Date)
		b.q50 = append(b.q50, row.Q50)
		b.qUp = append(b.qUp, row.QUp)
		b.qDown = append(b.qDown, row.QDown)
	}
	return b
}

func anyNaN(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// hasIQR tells whether there are enough comparison countries to draw
// the median and the IQR band.
func (b *band) hasIQR() bool {
	return len(b.dates) >= 2
}

func (b *band) first() time.Time {
	first := b.refDates[0]
	if b.hasIQR() && b.dates[0].Before(first) {
		first = b.dates[0]
	}
	return first
}

func (b *band) last() time.Time {
	last := b.refDates[len(b.refDates)-1]
	if b.hasIQR() && b.dates[len(b.dates)-1].After(last) {
		last = b.dates[len(b.dates)-1]
	}
	return last
}

// top returns the upper bound of the Y axis.
func (b *band) top() float64 {
	var all []float64
	all = append(all, b.reference...)
	all = append(all, b.qUp...)
	highest, err := stats.Max(all)
	if err != nil || highest <= 0 {
		return 1
	}
	return highest * 1.1
}

// area returns the IQR band: the area below the upper quantile painted
// over with the background below the lower quantile. Anything meant to
// show through the band goes after it.
func (b *band) area() []chart.Series {
	if !b.hasIQR() {
		return nil
	}
	return []chart.Series{
		chart.TimeSeries{
			Name:    "OECD 75th percentile",
			XValues: b.dates,
			YValues: b.qUp,
			Style: chart.Style{
				StrokeColor: bandColor,
				StrokeWidth: 1,
				FillColor:   bandColor,
			},
		},
		chart.TimeSeries{
			Name:    "OECD 25th percentile",
			XValues: b.dates,
			YValues: b.qDown,
			Style: chart.Style{
				StrokeColor: bandColor,
				StrokeWidth: 1,
				FillColor:   drawing.ColorWhite,
			},
		},
	}
}

// lines returns the median line, when defined, and the reference line.
func (b *band) lines(reference string) []chart.Series {
	var out []chart.Series
	if b.hasIQR() {
		out = append(out, chart.TimeSeries{
			Name:    "OECD median",
			XValues: b.dates,
			YValues: b.q50,
			Style: chart.Style{
				StrokeColor: medianColor,
				StrokeWidth: 2,
			},
		})
	}
	return append(out, chart.TimeSeries{
		Name:    reference,
		XValues: b.refDates,
		YValues: b.reference,
		Style: chart.Style{
			StrokeColor: referenceColor,
			StrokeWidth: 2.5,
		},
	})
}

// latest annotates the last value of the reference and of the median.
func (b *band) latest(format string) chart.Series {
	idx := len(b.refDates) - 1
	out := chart.AnnotationSeries{
		Name: "latest",
		Annotations: []chart.Value2{{
			XValue: chart.TimeToFloat64(b.refDates[idx]),
			YValue: b.reference[idx],
			Label:  fmt.Sprintf(format, b.reference[idx]),
			Style:  chart.Style{StrokeColor: referenceColor, FontColor: referenceColor},
		}},
	}
	if b.hasIQR() {
		idx := len(b.dates) - 1
		out.Annotations = append(out.Annotations, chart.Value2{
			XValue: chart.TimeToFloat64(b.dates[idx]),
			YValue: b.q50[idx],
			Label:  fmt.Sprintf(format, b.q50[idx]),
			Style:  chart.Style{StrokeColor: medianColor, FontColor: medianColor},
		})
	}
	return out
}

func newChart(cfg config.Config, title string, top float64) *plot {
	return &plot{chart: chart.Chart{
		Title:  title,
		Width:  cfg.ChartWidth,
		Height: cfg.ChartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 24, Bottom: 16},
		},
		XAxis: chart.XAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return time.Unix(0, int64(f)).UTC().Format("2006-01")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: top},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.1f", f)
				}
				return ""
			},
		},
	}}
}

// withLegend adds the legend once all the series are in place.
func (p *plot) withLegend() *plot {
	p.chart.Elements = []chart.Renderable{chart.Legend(&p.chart)}
	return p
}

func rtChart(cfg config.Config, rows []aggregate.Row) *plot {
	b := newBand(rows)
	if len(b.refDates) < 2 {
		return &plot{err: ErrNotEnoughData}
	}
	top := math.Max(b.top(), 1.5)
	p := newChart(cfg, "Effective reproduction number", top)
	ch := &p.chart
	ch.Series = append(ch.Series, b.area()...)
	if lag := lagDates(b.refDates, cfg.ReportingLagDays); len(lag) >= 2 {
		ch.Series = append(ch.Series, chart.TimeSeries{
			Name:    "Reporting lag",
			XValues: lag,
			YValues: repeat(top, len(lag)),
			Style:   chart.Style{StrokeWidth: 0, StrokeColor: lagColor, FillColor: lagColor},
		})
	}
	ch.Series = append(ch.Series, chart.TimeSeries{
		Name:    "Rt = 1",
		XValues: []time.Time{b.first(), b.last()},
		YValues: []float64{1, 1},
		Style: chart.Style{
			StrokeColor:     drawing.ColorBlack,
			StrokeWidth:     1,
			StrokeDashArray: []float64{5, 5},
		},
	})
	ch.Series = append(ch.Series, b.lines(cfg.Reference)...)
	ch.Series = append(ch.Series, events(cfg.PolicyEvents, b, top)...)
	ch.Series = append(ch.Series, b.latest("%.2f"))
	return p.withLegend()
}

func casesChart(cfg config.Config, rows []aggregate.Row) *plot {
	b := newBand(rows)
	if len(b.refDates) < 2 {
		return &plot{err: ErrNotEnoughData}
	}
	title := fmt.Sprintf("Daily new cases per million (%d-day mean)", cfg.Window)
	p := newChart(cfg, title, b.top())
	p.chart.Series = append(p.chart.Series, b.area()...)
	p.chart.Series = append(p.chart.Series, b.lines(cfg.Reference)...)
	p.chart.Series = append(p.chart.Series, b.latest("%.0f"))
	return p.withLegend()
}

// events returns a vertical marker and a label for each policy event
// falling within the chart dates.
func events(list []config.PolicyEvent, b *band, top float64) []chart.Series {
	var out []chart.Series
	labels := chart.AnnotationSeries{Name: "events"}
	for _, ev := range list {
		date, err := time.Parse(model.DateLayout, ev.Date)
		if err != nil || date.Before(b.first()) || date.After(b.last()) {
			continue
		}
		out = append(out, chart.TimeSeries{
			Name:    ev.Label,
			XValues: []time.Time{date, date},
			YValues: []float64{0, top},
			Style: chart.Style{
				StrokeColor:     eventColor,
				StrokeWidth:     1,
				StrokeDashArray: []float64{2, 3},
			},
		})
		labels.Annotations = append(labels.Annotations, chart.Value2{
			XValue: chart.TimeToFloat64(date),
			YValue: top * 0.97,
			Label:  ev.Label,
			Style:  chart.Style{StrokeColor: eventColor, FontColor: eventColor},
		})
	}
	if len(labels.Annotations) > 0 {
		out = append(out, labels)
	}
	return out
}

// lagDates returns the trailing days of dates.
func lagDates(dates []time.Time, days int) []time.Time {
	if days <= 0 {
		return nil
	}
	if days > len(dates) {
		days = len(dates)
	}
	return dates[len(dates)-days:]
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for idx := range out {
		out[idx] = v
	}
	return out
}
