package client

import (
	"context"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
	"github.com/dmitrijs2005/storeadmin/internal/client/query"
)

// Client talks to the REST backend for one or more resource collections.
type Client interface {
	List(ctx context.Context, req query.Request) ([]models.Record, error)
	Create(ctx context.Context, resource string, body map[string]any) error
	Update(ctx context.Context, resource, id string, body map[string]any) error
	Delete(ctx context.Context, resource, id string) error
}
