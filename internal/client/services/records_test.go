package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
	"github.com/dmitrijs2005/storeadmin/internal/client/query"
	"github.com/dmitrijs2005/storeadmin/internal/client/repositories/journal"
	"github.com/dmitrijs2005/storeadmin/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupJournal(t *testing.T) journal.Repository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE journal (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT NOT NULL UNIQUE,
  resource TEXT NOT NULL,
  action TEXT NOT NULL,
  record_id TEXT NOT NULL DEFAULT '',
  success INTEGER NOT NULL DEFAULT 0,
  message TEXT NOT NULL DEFAULT '',
  created_at INTEGER NOT NULL
);
`)
	require.NoError(t, err)
	return journal.NewSQLiteRepository(db, 0)
}

type fakeClient struct {
	records []models.Record
	err     error
	lastReq query.Request
	writes  []string
}

func (f *fakeClient) List(_ context.Context, req query.Request) ([]models.Record, error) {
	f.lastReq = req
	return f.records, f.err
}

func (f *fakeClient) Create(_ context.Context, resource string, _ map[string]any) error {
	f.writes = append(f.writes, "create "+resource)
	return f.err
}

func (f *fakeClient) Update(_ context.Context, resource, id string, _ map[string]any) error {
	f.writes = append(f.writes, "update "+resource+"/"+id)
	return f.err
}

func (f *fakeClient) Delete(_ context.Context, resource, id string) error {
	f.writes = append(f.writes, "delete "+resource+"/"+id)
	return f.err
}

type failingJournal struct{ journal.Nop }

func (failingJournal) Append(context.Context, *models.JournalEntry) error {
	return errors.New("disk full")
}

func TestList_PassesThrough(t *testing.T) {
	c := &fakeClient{records: []models.Record{{"id": "1"}}}
	s := NewRecordService(c, nil, logging.Discard())

	req := query.Request{Method: "GET", Path: "/members"}
	got, err := s.List(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, req, c.lastReq)
}

func TestList_WrapsError(t *testing.T) {
	cause := errors.New("boom")
	s := NewRecordService(&fakeClient{err: cause}, nil, logging.Discard())

	_, err := s.List(context.Background(), query.Request{Method: "GET", Path: "/orders"})
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "list /orders")
}

func TestWrites_AreJournaled(t *testing.T) {
	j := setupJournal(t)
	c := &fakeClient{}
	s := NewRecordService(c, j, logging.Discard())
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "members", map[string]any{"email": "a@b.c"}))
	require.NoError(t, s.Update(ctx, "orders", "3", map[string]any{}))

	c.err = errors.New("server returned 409: email already exists")
	require.Error(t, s.Delete(ctx, "products", "9"))

	assert.Equal(t, []string{"create members", "update orders/3", "delete products/9"}, c.writes)

	h, err := s.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, h, 3)

	assert.Equal(t, models.ActionDelete, h[0].Action)
	assert.Equal(t, "9", h[0].RecordID)
	assert.False(t, h[0].Success)
	assert.Equal(t, "server returned 409: email already exists", h[0].Message)

	assert.Equal(t, models.ActionUpdate, h[1].Action)
	assert.True(t, h[1].Success)
	assert.Equal(t, models.ActionCreate, h[2].Action)
	assert.Equal(t, "members", h[2].Resource)
}

func TestWrites_JournalFailureDoesNotFailWrite(t *testing.T) {
	s := NewRecordService(&fakeClient{}, failingJournal{}, logging.Discard())
	assert.NoError(t, s.Create(context.Background(), "members", nil))
}
