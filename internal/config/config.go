// Package config contains the configuration of the analysis.
//
// A [Config] is built once, either from [Default] or by reading a HuJSON
// file with [Read], and then passed by value to every stage. Stages must
// not modify it.
package config

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilcovid/oecdrt/internal/countries"
	"github.com/ilcovid/oecdrt/internal/model"
	"github.com/pkg/errors"
	"github.com/tailscale/hujson"
)

// DefaultSourceURL is the default URL of the wide per-million new cases CSV.
const DefaultSourceURL = "https://raw.githubusercontent.com/owid/covid-19-data/master/public/data/jhu/new_cases_per_million.csv"

// Moments contains the mean and the standard deviation of a distribution.
type Moments struct {
	Mean float64 `json:"mean"`
	SD   float64 `json:"sd"`
}

// PolicyEvent is a dated event drawn as a vertical marker on the Rt chart.
type PolicyEvent struct {
	Date  string `json:"date"`
	Label string `json:"label"`
}

// Outputs contains the names of the output files, relative to Dir.
type Outputs struct {
	Dir       string `json:"dir"`
	Rt        string `json:"rt"`
	Cases     string `json:"cases"`
	Image     string `json:"image"`
	Countries string `json:"countries"`
	Manifest  string `json:"manifest"`
}

// Path returns the path of the given output file name.
func (o Outputs) Path(name string) string {
	return filepath.Join(o.Dir, name)
}

// Config is the configuration of the analysis.
type Config struct {
	// SourceURL is the URL of the wide CSV to download.
	SourceURL string `json:"source_url"`

	// SourceFile is the OPTIONAL local copy of the wide CSV. When set
	// we read it rather than downloading SourceURL.
	SourceFile string `json:"source_file"`

	// Timeout is the download timeout in seconds.
	Timeout int64 `json:"timeout"`

	// Reference is the name of the reference country.
	Reference string `json:"reference"`

	// ReferenceColumn is the header of the reference column in the cases CSV.
	ReferenceColumn string `json:"reference_column"`

	// Comparisons contains the names of the comparison countries.
	Comparisons []string `json:"comparisons"`

	// AnchorDate is the first date used for estimation (YYYY-MM-DD).
	AnchorDate string `json:"anchor_date"`

	// Window is the length in days of the estimation and smoothing window.
	Window int `json:"window"`

	// SerialInterval contains the serial interval moments in days.
	SerialInterval Moments `json:"serial_interval"`

	// Prior contains the moments of the Gamma prior on Rt.
	Prior Moments `json:"prior"`

	// MinComparisons is the number of surviving comparison countries
	// below which we warn that the quantiles are degenerate.
	MinComparisons int `json:"min_comparisons"`

	// ReportingLagDays is the number of trailing days shaded on the Rt chart.
	ReportingLagDays int `json:"reporting_lag_days"`

	// PolicyEvents contains the events to mark on the Rt chart.
	PolicyEvents []PolicyEvent `json:"policy_events"`

	// ChartWidth and ChartHeight are the size in pixels of each chart.
	ChartWidth  int `json:"chart_width"`
	ChartHeight int `json:"chart_height"`

	// Outputs contains the output file names.
	Outputs Outputs `json:"outputs"`

	// Database is the OPTIONAL SQLite database keeping the run history.
	Database string `json:"database"`
}

// Default returns the configuration of the original analysis.
func Default() Config {
	var c Config
	c.fillDefaults()
	return c
}

// fillDefaults assigns the default value to every unset field.
func (c *Config) fillDefaults() {
	if c.SourceURL == "" {
		c.SourceURL = DefaultSourceURL
	}
	if c.Timeout <= 0 {
		c.Timeout = 60
	}
	if c.Reference == "" {
		c.Reference = "Israel"
	}
	if c.ReferenceColumn == "" {
		c.ReferenceColumn = "ISR"
	}
	if len(c.Comparisons) == 0 {
		c.Comparisons = append([]string{}, countries.OECDMembers...)
	}
	if c.AnchorDate == "" {
		c.AnchorDate = "2020-06-01"
	}
	if c.Window == 0 {
		c.Window = 7
	}
	if c.SerialInterval == (Moments{}) {
		c.SerialInterval = Moments{Mean: 4.5, SD: 3.5}
	}
	if c.Prior == (Moments{}) {
		c.Prior = Moments{Mean: 5, SD: 5}
	}
	if c.MinComparisons == 0 {
		c.MinComparisons = 3
	}
	if c.ReportingLagDays == 0 {
		c.ReportingLagDays = 7
	}
	if c.PolicyEvents == nil {
		c.PolicyEvents = []PolicyEvent{
			{Date: "2020-09-18", Label: "Second lockdown"},
			{Date: "2020-12-20", Label: "Vaccination campaign"},
			{Date: "2020-12-27", Label: "Third lockdown"},
			{Date: "2021-02-07", Label: "Reopening"},
		}
	}
	if c.ChartWidth == 0 {
		c.ChartWidth = 900
	}
	if c.ChartHeight == 0 {
		c.ChartHeight = 540
	}
	if c.Outputs.Rt == "" {
		c.Outputs.Rt = "oecd-rep-num.csv"
	}
	if c.Outputs.Cases == "" {
		c.Outputs.Cases = "oecd-cases.csv"
	}
	if c.Outputs.Image == "" {
		c.Outputs.Image = "oecd-rt-cases.png"
	}
	if c.Outputs.Countries == "" {
		c.Outputs.Countries = "oecd-rep-num-countries.csv"
	}
	if c.Outputs.Manifest == "" {
		c.Outputs.Manifest = "oecd-manifest.json"
	}
}

// Validate returns an error if the configuration cannot be used.
func (c Config) Validate() error {
	if c.SourceURL == "" && c.SourceFile == "" {
		return errors.New("either source_url or source_file is required")
	}
	if c.Timeout <= 0 {
		return errors.Errorf("invalid timeout: %d", c.Timeout)
	}
	if c.Reference == "" {
		return errors.New("reference country is empty")
	}
	if len(c.Comparisons) == 0 {
		return errors.New("no comparison countries")
	}
	// names may be aliases or codes, so we compare the ISO3 codes
	refCode, refKnown := countries.Lookup(c.Reference)
	for _, name := range c.Comparisons {
		code, known := countries.Lookup(name)
		if strings.EqualFold(name, c.Reference) || (refKnown && known && code == refCode) {
			return errors.Errorf("reference country %q is also a comparison country (%q)", c.Reference, name)
		}
	}
	if _, err := parseDate(c.AnchorDate); err != nil {
		return errors.Wrap(err, "anchor_date")
	}
	if c.Window < 2 {
		return errors.Errorf("window must be at least 2 days, got %d", c.Window)
	}
	// the serial interval is a Gamma offset by one day
	if c.SerialInterval.Mean <= 1 {
		return errors.Errorf("serial interval mean must be greater than 1, got %g", c.SerialInterval.Mean)
	}
	if c.SerialInterval.SD <= 0 {
		return errors.Errorf("serial interval sd must be positive, got %g", c.SerialInterval.SD)
	}
	if c.Prior.Mean <= 0 || c.Prior.SD <= 0 {
		return errors.Errorf("prior moments must be positive, got %+v", c.Prior)
	}
	if c.MinComparisons < 1 {
		return errors.Errorf("min_comparisons must be positive, got %d", c.MinComparisons)
	}
	if c.ReportingLagDays < 0 {
		return errors.Errorf("reporting_lag_days must not be negative, got %d", c.ReportingLagDays)
	}
	for _, ev := range c.PolicyEvents {
		if _, err := parseDate(ev.Date); err != nil {
			return errors.Wrapf(err, "policy event %q", ev.Label)
		}
	}
	if c.ChartWidth < 100 || c.ChartHeight < 100 {
		return errors.Errorf("chart size too small: %dx%d", c.ChartWidth, c.ChartHeight)
	}
	return nil
}

// Anchor returns the parsed AnchorDate. It panics if the configuration
// has not been validated.
func (c Config) Anchor() time.Time {
	t, err := parseDate(c.AnchorDate)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeoutDuration returns the download timeout.
func (c Config) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// Digest returns the SHA256 of the JSON serialization of the config,
// which identifies the parameters of a run in the history.
func (c Config) Digest() string {
	data, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// parseDate parses a date using [model.DateLayout].
func parseDate(s string) (time.Time, error) {
	return time.Parse(model.DateLayout, s)
}

// Parse returns the configuration from HuJSON bytes. Unset fields
// get their default value.
func Parse(data []byte) (Config, error) {
	var c Config
	std, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, errors.Wrap(err, "parsing hujson")
	}
	if err := json.Unmarshal(std, &c); err != nil {
		return Config{}, errors.Wrap(err, "parsing json")
	}
	c.fillDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "validating")
	}
	return c, nil
}

// Read reads the configuration from the given path.
func Read(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading %s", path)
	}
	return c, nil
}
