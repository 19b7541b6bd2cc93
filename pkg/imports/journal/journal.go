package journal

import (
	"context"
	"database/sql"
	"embed"
	"os"
	"path/filepath"
	"sync"
	"time"

	uuid "github.com/hashicorp/go-uuid"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/mosaiq/go-import-framework/internal/utils"
	"github.com/mosaiq/go-import-framework/pkg/configuration"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const defaultRunLimit = 20

// RunRecord describes one finished import run.
type RunRecord struct {
	RunID      string
	ProjectID  int
	DatasetID  int
	Source     string
	Succeeded  int
	Failed     int
	StartedAt  time.Time
	FinishedAt time.Time
}

// Journal stores finished import runs in a local sqlite database.
type Journal struct {
	db     *sql.DB
	mutex  sync.Mutex
	logger *zerolog.Logger
}

// Open opens the journal database and applies pending migrations. The
// location comes from the configuration, falling back to the user's cache
// directory.
func Open(config configuration.Configuration, logger *zerolog.Logger) (*Journal, error) {
	if logger == nil {
		logger = utils.Ptr(zerolog.Nop())
	}

	dbFile := config.GetString(configuration.JOURNAL_FILE)
	if dbFile == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return nil, errors.Wrap(err, "failed to determine journal location")
		}
		dbFile = filepath.Join(cacheDir, "mosaiq", "import_journal.db")
	}

	if err := os.MkdirAll(filepath.Dir(dbFile), 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create journal directory")
	}

	db, err := sql.Open("sqlite", dbFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open journal database")
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Debug().Str("path", dbFile).Msg("opened run journal")
	return &Journal{db: db, logger: logger}, nil
}

func migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return errors.Wrap(err, "unknown dialect for migrations")
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return errors.Wrap(err, "failed to migrate journal database")
	}

	return nil
}

// Record inserts a finished run, assigning a run id if the record has none.
func (j *Journal) Record(ctx context.Context, record RunRecord) error {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	runID := record.RunID
	if runID == "" {
		generated, err := uuid.GenerateUUID()
		if err != nil {
			return errors.Wrap(err, "failed to generate run id")
		}
		runID = generated
	}

	query := "INSERT INTO runs (id, project_id, dataset_id, source, succeeded, failed, started_at, finished_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
	_, err := j.db.ExecContext(ctx, query,
		runID,
		record.ProjectID,
		record.DatasetID,
		record.Source,
		record.Succeeded,
		record.Failed,
		record.StartedAt.Unix(),
		record.FinishedAt.Unix(),
	)
	if err != nil {
		return errors.Wrap(err, "failed to insert run record")
	}

	j.logger.Debug().Str("runId", runID).Msg("recorded import run")
	return nil
}

// Runs returns the most recent runs, newest first.
func (j *Journal) Runs(ctx context.Context, limit int) ([]RunRecord, error) {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	if limit <= 0 {
		limit = defaultRunLimit
	}

	query := "SELECT id, project_id, dataset_id, source, succeeded, failed, started_at, finished_at FROM runs ORDER BY finished_at DESC, id LIMIT ?"
	rows, err := j.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query runs")
	}
	defer func() { _ = rows.Close() }()

	var records []RunRecord
	for rows.Next() {
		var record RunRecord
		var startedAt, finishedAt int64

		err = rows.Scan(
			&record.RunID,
			&record.ProjectID,
			&record.DatasetID,
			&record.Source,
			&record.Succeeded,
			&record.Failed,
			&startedAt,
			&finishedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan run record")
		}

		record.StartedAt = time.Unix(startedAt, 0)
		record.FinishedAt = time.Unix(finishedAt, 0)
		records = append(records, record)
	}
	if rows.Err() != nil {
		return nil, errors.Wrap(rows.Err(), "failed to iterate runs")
	}

	return records, nil
}

// Close closes the journal database.
func (j *Journal) Close() error {
	return j.db.Close()
}
