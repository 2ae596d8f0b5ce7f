package manifest

//
// SQLite run history
//

import (
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/ilcovid/oecdrt/internal/model"
	_ "github.com/mattn/go-sqlite3"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Run is a row of the runs table.
type Run struct {
	ID           int64     `db:"id,omitempty"`
	RunID        string    `db:"run_id"`
	StartTime    time.Time `db:"start_time"`
	EndTime      time.Time `db:"end_time"`
	Source       string    `db:"source"`
	ConfigDigest string    `db:"config_digest"`
	Reference    string    `db:"reference"`
	Windows      int       `db:"windows"`
	Estimated    int       `db:"estimated"`
	Failed       int       `db:"failed"`
}

// countryRecord is a row of the country_results table.
type countryRecord struct {
	ID       int64   `db:"id,omitempty"`
	RunID    string  `db:"run_id"`
	Code     string  `db:"code"`
	Country  string  `db:"country"`
	Status   string  `db:"status"`
	Reason   string  `db:"reason"`
	Failure  string  `db:"failure"`
	Windows  int     `db:"windows"`
	LastMean float64 `db:"last_mean"`
}

// Store keeps the history of the runs in a SQLite database.
//
// Construct using [OpenStore].
type Store struct {
	logger model.Logger
	sess   db.Session
}

// OpenStore opens or creates the database at path and migrates it
// to the most recent schema.
func OpenStore(path string, logger model.Logger) (*Store, error) {
	logger.Debugf("manifest: connecting to sqlite3://%s", path)
	sess, err := sqlite.Open(sqlite.ConnectionURL{Database: path})
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	if err := runMigrations(sess, logger); err != nil {
		sess.Close()
		return nil, err
	}
	return &Store{logger: logger, sess: sess}, nil
}

func runMigrations(sess db.Session, logger model.Logger) error {
	source := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrations,
		Root:       "migrations",
	}
	n, err := migrate.Exec(sess.Driver().(*sql.DB), "sqlite3", source, migrate.Up)
	if err != nil {
		return fmt.Errorf("manifest: migrations: %w", err)
	}
	logger.Debugf("manifest: performed %d migrations", n)
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.sess.Close()
}

// Save stores the manifest and all its country results.
func (s *Store) Save(m *Manifest) error {
	err := s.sess.Tx(func(tx db.Session) error {
		run := &Run{
			RunID:        m.RunID,
			StartTime:    m.StartTime.UTC(),
			EndTime:      m.EndTime.UTC(),
			Source:       m.Source,
			ConfigDigest: m.ConfigDigest,
			Reference:    m.Reference.Code,
			Windows:      m.Reference.Windows,
			Estimated:    m.Estimated(),
			Failed:       m.Failed(),
		}
		if _, err := tx.Collection("runs").Insert(run); err != nil {
			return err
		}
		results := append([]CountryResult{m.Reference}, m.Countries...)
		for _, r := range results {
			record := &countryRecord{
				RunID:    m.RunID,
				Code:     r.Code,
				Country:  r.Country,
				Status:   string(r.Status),
				Reason:   string(r.Reason),
				Failure:  r.Failure,
				Windows:  r.Windows,
				LastMean: r.LastMean,
			}
			if _, err := tx.Collection("country_results").Insert(record); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("manifest: saving run %s: %w", m.RunID, err)
	}
	s.logger.Debugf("manifest: saved run %s", m.RunID)
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	runs := []Run{}
	res := s.sess.Collection("runs").Find().OrderBy("-start_time", "-id")
	if limit > 0 {
		res = res.Limit(limit)
	}
	if err := res.All(&runs); err != nil {
		return nil, fmt.Errorf("manifest: listing runs: %w", err)
	}
	return runs, nil
}

// CountryResults returns the results of the given run, the reference
// country included, ordered by country code.
func (s *Store) CountryResults(runID string) ([]CountryResult, error) {
	records := []countryRecord{}
	res := s.sess.Collection("country_results").Find(db.Cond{"run_id": runID}).OrderBy("code")
	if err := res.All(&records); err != nil {
		return nil, fmt.Errorf("manifest: run %s: %w", runID, err)
	}
	out := make([]CountryResult, 0, len(records))
	for _, r := range records {
		out = append(out, CountryResult{
			Code:     r.Code,
			Country:  r.Country,
			Status:   Status(r.Status),
			Reason:   Reason(r.Reason),
			Failure:  r.Failure,
			Windows:  r.Windows,
			LastMean: r.LastMean,
		})
	}
	return out, nil
}
