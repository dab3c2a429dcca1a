package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
	"github.com/dmitrijs2005/storeadmin/internal/dbx"
	"github.com/google/uuid"
)

type SQLiteRepository struct {
	db   *sql.DB
	keep int
}

// NewSQLiteRepository returns a repository that retains the newest keep
// entries. keep <= 0 disables trimming.
func NewSQLiteRepository(db *sql.DB, keep int) *SQLiteRepository {
	return &SQLiteRepository{db: db, keep: keep}
}

// Append fills in ID and CreatedAt when they are zero.
func (r *SQLiteRepository) Append(ctx context.Context, e *models.JournalEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO journal (id, resource, action, record_id, success, message, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Resource, e.Action, e.RecordID, e.Success, e.Message, e.CreatedAt.UnixNano())
		if err != nil {
			return fmt.Errorf("failed to insert journal entry: %w", err)
		}

		if r.keep <= 0 {
			return nil
		}
		_, err = tx.ExecContext(ctx,
			`DELETE FROM journal WHERE seq <= (SELECT MAX(seq) FROM journal) - ?`, r.keep)
		if err != nil {
			return fmt.Errorf("failed to trim journal: %w", err)
		}
		return nil
	})
}

func (r *SQLiteRepository) Recent(ctx context.Context, limit int) ([]models.JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, resource, action, record_id, success, message, created_at
		 FROM journal ORDER BY seq DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select journal: %w", err)
	}
	defer rows.Close()

	result := []models.JournalEntry{}
	for rows.Next() {
		var (
			e       models.JournalEntry
			created int64
		)
		if err := rows.Scan(&e.ID, &e.Resource, &e.Action, &e.RecordID, &e.Success, &e.Message, &created); err != nil {
			return nil, err
		}
		e.CreatedAt = time.Unix(0, created).UTC()
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
