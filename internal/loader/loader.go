// Package loader downloads the wide CSV of daily new cases per million
// and converts it to a long-form [model.Table].
package loader

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ilcovid/oecdrt/internal/config"
	"github.com/ilcovid/oecdrt/internal/fsx"
	"github.com/ilcovid/oecdrt/internal/httpclientx"
	"github.com/ilcovid/oecdrt/internal/humanize"
	"github.com/ilcovid/oecdrt/internal/model"
)

// Fetch returns the raw bytes of the wide CSV. When the config names a
// SourceFile we read it from disk, otherwise we GET the SourceURL using
// the given client within the configured timeout.
func Fetch(ctx context.Context, cfg config.Config, client model.HTTPClient, logger model.Logger) ([]byte, error) {
	if cfg.SourceFile != "" {
		logger.Infof("loader: reading %s", cfg.SourceFile)
		data, err := fsx.ReadFile(cfg.SourceFile)
		if err != nil {
			return nil, fmt.Errorf("loader: %w", err)
		}
		return data, nil
	}

	if client == nil {
		client = http.DefaultClient
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.TimeoutDuration())
	defer cancel()

	logger.Infof("loader: GET %s", cfg.SourceURL)
	t0 := time.Now()
	data, err := httpclientx.GetRaw(ctx, httpclientx.NewEndpoint(cfg.SourceURL).WithAccept("text/csv"), &httpclientx.Config{
		Client:    client,
		Logger:    logger,
		UserAgent: model.HTTPHeaderUserAgent,
	})
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	logger.Infof("loader: got %s in %s", humanize.SI(float64(len(data)), "B"), time.Since(t0))
	return data, nil
}

// Load is like [Fetch] but also parses the CSV using [ParseWide].
func Load(ctx context.Context, cfg config.Config, client model.HTTPClient, logger model.Logger) (*model.Table, error) {
	data, err := Fetch(ctx, cfg, client, logger)
	if err != nil {
		return nil, err
	}
	table, err := ParseWideBytes(data)
	if err != nil {
		return nil, err
	}
	logger.Infof("loader: %d dates, %d countries, %d observations",
		len(table.Dates), len(table.Countries), table.Len())
	return table, nil
}
