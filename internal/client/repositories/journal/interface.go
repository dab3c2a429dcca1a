package journal

import (
	"context"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

type Repository interface {
	Append(ctx context.Context, e *models.JournalEntry) error
	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]models.JournalEntry, error)
}

// Nop is a Repository that stores nothing.
type Nop struct{}

func (Nop) Append(context.Context, *models.JournalEntry) error { return nil }

func (Nop) Recent(context.Context, int) ([]models.JournalEntry, error) { return nil, nil }
