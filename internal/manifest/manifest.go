// Package manifest records the outcome of a run: which countries were
// estimated, which failed and why.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilcovid/oecdrt/internal/rt"
)

// Status is the outcome of the estimation for a country.
type Status string

const (
	// StatusOK indicates that we estimated Rt for the country.
	StatusOK = Status("ok")

	// StatusFailed indicates that we excluded the country.
	StatusFailed = Status("failed")
)

// Reason explains why a country failed.
type Reason string

// These are the reasons why a country may fail.
const (
	ReasonNone       = Reason("")
	ReasonTooShort   = Reason("too_short")
	ReasonMissing    = Reason("missing_values")
	ReasonNegative   = Reason("negative_values")
	ReasonZero       = Reason("all_zeros")
	ReasonMisaligned = Reason("misaligned")
	ReasonNotFound   = Reason("not_found")
	ReasonOther      = Reason("error")
)

// ErrMisaligned indicates that the dates of a country differ from the
// dates of the reference country.
var ErrMisaligned = errors.New("manifest: misaligned dates")

// ErrNotFound indicates that a country is not in the data.
var ErrNotFound = errors.New("manifest: country not found")

// ReasonFor maps an estimation error to a [Reason].
func ReasonFor(err error) Reason {
	switch {
	case err == nil:
		return ReasonNone
	case errors.Is(err, rt.ErrTooShort), errors.Is(err, rt.ErrWindowOutOfRange):
		return ReasonTooShort
	case errors.Is(err, rt.ErrMissingIncidence):
		return ReasonMissing
	case errors.Is(err, rt.ErrNegativeIncidence):
		return ReasonNegative
	case errors.Is(err, rt.ErrZeroIncidence):
		return ReasonZero
	case errors.Is(err, ErrMisaligned):
		return ReasonMisaligned
	case errors.Is(err, ErrNotFound):
		return ReasonNotFound
	default:
		return ReasonOther
	}
}

// CountryResult is the outcome of the estimation for one country.
type CountryResult struct {
	// Code is the ISO3 code.
	Code string `json:"code"`

	// Country is the name used in the source data.
	Country string `json:"country"`

	// Status is either ok or failed.
	Status Status `json:"status"`

	// Reason is empty on success.
	Reason Reason `json:"reason,omitempty"`

	// Failure is the error string, empty on success.
	Failure string `json:"failure,omitempty"`

	// Windows is the number of estimated windows.
	Windows int `json:"windows"`

	// LastMean is the most recent point estimate.
	LastMean float64 `json:"last_mean"`
}

// Succeeded returns the result of a successful estimate.
func Succeeded(estimate *rt.Estimate) CountryResult {
	out := CountryResult{
		Code:    estimate.Code,
		Country: estimate.Country,
		Status:  StatusOK,
		Windows: len(estimate.Summaries),
	}
	if n := len(estimate.Summaries); n > 0 {
		out.LastMean = estimate.Summaries[n-1].Mean
	}
	return out
}

// Failed returns the result of a failed estimate.
func Failed(code, country string, err error) CountryResult {
	return CountryResult{
		Code:    code,
		Country: country,
		Status:  StatusFailed,
		Reason:  ReasonFor(err),
		Failure: err.Error(),
	}
}

// Manifest describes a run.
type Manifest struct {
	// RunID uniquely identifies the run.
	RunID string `json:"run_id"`

	// StartTime and EndTime delimit the run.
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	// Source is the URL or the file we read the data from.
	Source string `json:"source"`

	// ConfigDigest identifies the configuration.
	ConfigDigest string `json:"config_digest"`

	// Reference is the result of the reference country.
	Reference CountryResult `json:"reference"`

	// Countries contains the results of the comparison countries.
	Countries []CountryResult `json:"countries"`

	// Outputs contains the paths of the written files.
	Outputs []string `json:"outputs"`
}

// Add appends the result of a comparison country.
func (m *Manifest) Add(result CountryResult) {
	m.Countries = append(m.Countries, result)
}

// Estimated returns the number of comparison countries we estimated.
func (m *Manifest) Estimated() int {
	return m.count(StatusOK)
}

// Failed returns the number of comparison countries we excluded.
func (m *Manifest) Failed() int {
	return m.count(StatusFailed)
}

func (m *Manifest) count(status Status) (n int) {
	for _, r := range m.Countries {
		if r.Status == status {
			n++
		}
	}
	return
}

// WriteJSON writes the manifest as indented JSON.
func (m *Manifest) WriteJSON(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	return nil
}

// ReadJSON reads a manifest written by [Manifest.WriteJSON].
func ReadJSON(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest: %s: %w", path, err)
	}
	return &m, nil
}
