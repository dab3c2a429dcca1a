// Package services sits between the screens and the transport: it forwards
// reads and writes to the backend client and records every write attempt in
// the local journal.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storeadmin/internal/client/client"
	"github.com/dmitrijs2005/storeadmin/internal/client/models"
	"github.com/dmitrijs2005/storeadmin/internal/client/query"
	"github.com/dmitrijs2005/storeadmin/internal/client/repositories/journal"
	"github.com/dmitrijs2005/storeadmin/internal/logging"
)

type RecordService interface {
	List(ctx context.Context, req query.Request) ([]models.Record, error)
	Create(ctx context.Context, resource string, body map[string]any) error
	Update(ctx context.Context, resource, id string, body map[string]any) error
	Delete(ctx context.Context, resource, id string) error
	History(ctx context.Context, limit int) ([]models.JournalEntry, error)
}

type recordService struct {
	client  client.Client
	journal journal.Repository
	log     logging.Logger
}

func NewRecordService(c client.Client, j journal.Repository, log logging.Logger) RecordService {
	if j == nil {
		j = journal.Nop{}
	}
	return &recordService{client: c, journal: j, log: log}
}

func (s *recordService) List(ctx context.Context, req query.Request) ([]models.Record, error) {
	records, err := s.client.List(ctx, req)
	if err != nil {
		s.log.Error(ctx, "fetch failed", "request", req.String(), "err", err)
		return nil, fmt.Errorf("list %s: %w", req.Path, err)
	}
	s.log.Debug(ctx, "fetched", "request", req.String(), "count", len(records))
	return records, nil
}

func (s *recordService) Create(ctx context.Context, resource string, body map[string]any) error {
	err := s.client.Create(ctx, resource, body)
	s.note(ctx, resource, models.ActionCreate, "", err)
	return err
}

func (s *recordService) Update(ctx context.Context, resource, id string, body map[string]any) error {
	err := s.client.Update(ctx, resource, id, body)
	s.note(ctx, resource, models.ActionUpdate, id, err)
	return err
}

func (s *recordService) Delete(ctx context.Context, resource, id string) error {
	err := s.client.Delete(ctx, resource, id)
	s.note(ctx, resource, models.ActionDelete, id, err)
	return err
}

func (s *recordService) History(ctx context.Context, limit int) ([]models.JournalEntry, error) {
	entries, err := s.journal.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	return entries, nil
}

// note journals a write attempt. A journal failure is logged and otherwise
// ignored; it never changes the outcome of the write.
func (s *recordService) note(ctx context.Context, resource, action, id string, writeErr error) {
	e := &models.JournalEntry{Resource: resource, Action: action, RecordID: id, Success: writeErr == nil}
	log := s.log.With("resource", resource, "action", action, "id", id)
	if writeErr != nil {
		e.Message = writeErr.Error()
		log.Warn(ctx, "write failed", "err", writeErr)
	} else {
		log.Info(ctx, "write succeeded")
	}
	if err := s.journal.Append(ctx, e); err != nil {
		log.Error(ctx, "journal append failed", "err", err)
	}
}
