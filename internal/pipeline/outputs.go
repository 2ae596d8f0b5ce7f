package pipeline

import (
	"fmt"

	"github.com/ilcovid/oecdrt/internal/manifest"
	"github.com/ilcovid/oecdrt/internal/render"
	"github.com/ilcovid/oecdrt/internal/report"
	"github.com/ilcovid/oecdrt/internal/rt"
)

// write writes every output file, overwriting previous runs, and then
// saves the manifest into the history database, if configured.
func (r *Runner) write(result *Result) error {
	cfg := r.Config
	out := cfg.Outputs
	if err := ensureDir(out.Dir); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	m := result.Manifest

	rtPath := out.Path(out.Rt)
	r.Logger.Infof("pipeline: writing %s", rtPath)
	if err := report.WriteRt(rtPath, cfg.ReferenceColumn, result.Rt); err != nil {
		return err
	}

	casesPath := out.Path(out.Cases)
	r.Logger.Infof("pipeline: writing %s", casesPath)
	if err := report.WriteCases(casesPath, cfg.ReferenceColumn, result.Cases); err != nil {
		return err
	}

	countriesPath := out.Path(out.Countries)
	r.Logger.Infof("pipeline: writing %s", countriesPath)
	estimates := append([]*rt.Estimate{result.Reference}, result.Comparisons...)
	if err := report.WriteCountryEstimates(countriesPath, estimates); err != nil {
		return err
	}

	m.Outputs = []string{rtPath, casesPath, countriesPath}
	if result.Image != nil {
		imagePath := out.Path(out.Image)
		r.Logger.Infof("pipeline: writing %s", imagePath)
		if err := render.WritePNG(imagePath, result.Image); err != nil {
			return err
		}
		m.Outputs = append(m.Outputs, imagePath)
	}

	manifestPath := out.Path(out.Manifest)
	r.Logger.Infof("pipeline: writing %s", manifestPath)
	m.Outputs = append(m.Outputs, manifestPath)
	m.EndTime = r.now()
	if err := m.WriteJSON(manifestPath); err != nil {
		return err
	}

	if cfg.Database == "" {
		return nil
	}
	store, err := manifest.OpenStore(cfg.Database, r.Logger)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Save(m)
}
