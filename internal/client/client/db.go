package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/storeadmin/internal/client/migrations"
	"github.com/dmitrijs2005/storeadmin/internal/client/repositories/journal"
	"github.com/dmitrijs2005/storeadmin/internal/filex"
	"github.com/dmitrijs2005/storeadmin/internal/logging"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Repositories groups the local stores of the client.
type Repositories struct {
	Journal journal.Repository
	DB      *sql.DB
}

// Close releases the database handle, if any.
func (r *Repositories) Close() error {
	if r.DB == nil {
		return nil
	}
	return r.DB.Close()
}

type gooseLogger struct {
	log logging.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Debug(context.Background(), fmt.Sprintf(format, v...))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	g.log.Error(context.Background(), msg)
	panic(msg)
}

func RunMigrations(ctx context.Context, db *sql.DB, log logging.Logger) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(gooseLogger{log: log})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the journal database at dsn and applies migrations.
// An empty dsn disables the journal.
func InitDatabase(ctx context.Context, dsn string, keep int, log logging.Logger) (*Repositories, error) {
	if dsn == "" {
		return &Repositories{Journal: journal.Nop{}}, nil
	}

	if err := filex.EnsureParentDir(dsn); err != nil {
		return nil, fmt.Errorf("prepare journal dir: %w", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	if err := RunMigrations(ctx, db, log); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}

	return &Repositories{
		Journal: journal.NewSQLiteRepository(db, keep),
		DB:      db,
	}, nil
}
