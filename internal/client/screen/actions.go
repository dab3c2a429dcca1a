package screen

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storeadmin/internal/client/form"
	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

// Form exposes the screen's form for prompting its fields.
func (s *Screen) Form() *form.Form { return s.form }

func (s *Screen) OpenCreate() error {
	return s.form.Open(form.ModeCreate, nil)
}

// OpenEdit seeds the form from the record with id in the current results.
func (s *Screen) OpenEdit(id string) error {
	rec, ok := s.find(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	return s.form.Open(form.ModeEdit, rec)
}

func (s *Screen) find(id string) (models.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.results {
		if r.ID() == id {
			return r, true
		}
	}
	return nil, false
}

func (s *Screen) Change(field, value string) error {
	return s.form.Change(field, value)
}

// Submit sends the form. After a successful write the current query state is
// fetched again; a failure of that fetch only sets Err.
func (s *Screen) Submit(ctx context.Context) error {
	if err := s.form.Submit(ctx, s.backend); err != nil {
		return err
	}
	_ = s.fetch(ctx)
	return nil
}

func (s *Screen) Cancel() {
	s.form.Cancel()
}

// Delete asks c for confirmation and deletes the record. A declined
// confirmation sends nothing and reports false. A rejected delete returns a
// *form.SubmitError and leaves the results as they were.
func (s *Screen) Delete(ctx context.Context, id string, c Confirmer) (bool, error) {
	ok, err := c.Confirm(ctx, s.cat.ConfirmDelete)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	if err := s.backend.Delete(ctx, s.desc.Resource, id); err != nil {
		return false, form.NewSubmitError(err, s.cat.WriteFailed)
	}
	_ = s.fetch(ctx)
	return true, nil
}
