// Package screen is the generic admin screen: one instance per resource,
// parametrized by its descriptor. It owns the query state, the last result
// set, the local search term and category, and the create/edit form.
package screen

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/storeadmin/internal/client/filter"
	"github.com/dmitrijs2005/storeadmin/internal/client/form"
	"github.com/dmitrijs2005/storeadmin/internal/client/i18n"
	"github.com/dmitrijs2005/storeadmin/internal/client/models"
	"github.com/dmitrijs2005/storeadmin/internal/client/query"
	"github.com/dmitrijs2005/storeadmin/internal/logging"
)

var (
	ErrRecordNotFound = errors.New("record not in current results")
	ErrUnknownParam   = errors.New("unknown parameter")
	ErrNoCategory     = errors.New("resource has no category filter")
)

type Backend interface {
	form.Writer
	List(ctx context.Context, req query.Request) ([]models.Record, error)
	Delete(ctx context.Context, resource, id string) error
}

// Confirmer asks the user a yes/no question and waits for the answer.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

type Screen struct {
	desc    models.Descriptor
	backend Backend
	cat     i18n.Catalog
	log     logging.Logger
	form    *form.Form

	mu       sync.Mutex
	state    models.QueryState
	results  []models.Record
	term     string
	category string
	loading  bool
	errMsg   string
	seq      uint64
}

func New(d models.Descriptor, b Backend, cat i18n.Catalog, log logging.Logger) *Screen {
	return &Screen{
		desc:     d,
		backend:  b,
		cat:      cat,
		log:      log.With("resource", d.Resource),
		form:     form.New(d, cat.WriteFailed),
		state:    models.NewQueryState(d.InitialMode()),
		results:  []models.Record{},
		category: filter.AllCategories,
	}
}

func (s *Screen) Descriptor() models.Descriptor { return s.desc }

func (s *Screen) Catalog() i18n.Catalog { return s.cat }

// Load fetches the current query state. It is also the refresh action.
func (s *Screen) Load(ctx context.Context) error {
	return s.fetch(ctx)
}

// SelectMode switches mode and fetches immediately. Parameters entered for
// other modes are kept.
func (s *Screen) SelectMode(ctx context.Context, mode string) error {
	if _, ok := s.desc.Mode(mode); !ok {
		return fmt.Errorf("%w: %s", query.ErrUnknownMode, mode)
	}
	s.mu.Lock()
	s.state.Mode = mode
	s.mu.Unlock()
	return s.fetch(ctx)
}

// SetSort records the sort field and direction and fetches immediately. Unless
// the current mode already sorts (sort or search), the screen switches to its
// sort mode.
func (s *Screen) SetSort(ctx context.Context, by, dir string) error {
	s.mu.Lock()
	s.state.Set(models.ParamSortBy, by)
	if dir != "" {
		s.state.Set(models.ParamSortDir, dir)
	} else {
		s.state.Clear(models.ParamSortDir)
	}
	if cur, ok := s.desc.Mode(s.state.Mode); !ok || (cur.Kind != models.ModeSort && cur.Kind != models.ModeSearch) {
		for _, m := range s.desc.Modes {
			if m.Kind == models.ModeSort {
				s.state.Mode = m.Name
				break
			}
		}
	}
	s.mu.Unlock()
	return s.fetch(ctx)
}

// SetParam stores a filter value. Nothing is fetched until Search.
func (s *Screen) SetParam(key, value string) error {
	if !s.knownParam(key) {
		return fmt.Errorf("%w: %s", ErrUnknownParam, key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Set(key, value)
	return nil
}

func (s *Screen) ClearParam(key string) error {
	if !s.knownParam(key) {
		return fmt.Errorf("%w: %s", ErrUnknownParam, key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Clear(key)
	return nil
}

func (s *Screen) knownParam(key string) bool {
	for _, m := range s.desc.Modes {
		for _, p := range m.Params {
			if p.Key == key {
				return true
			}
		}
	}
	return false
}

// Params lists the parameter keys the current mode uses.
func (s *Screen) Params() []models.ParamSpec {
	s.mu.Lock()
	mode := s.state.Mode
	s.mu.Unlock()
	m, _ := s.desc.Mode(mode)
	return m.Params
}

// Search runs the current mode with the parameters entered so far.
func (s *Screen) Search(ctx context.Context) error {
	return s.fetch(ctx)
}

// SetSearchTerm changes the local filter. It never fetches.
func (s *Screen) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.term = term
}

// SetCategory changes the local category filter; "" or "all" disables it.
func (s *Screen) SetCategory(category string) error {
	if s.desc.CategoryField == "" {
		return ErrNoCategory
	}
	if category == "" {
		category = filter.AllCategories
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = category
	return nil
}

// Visible is the result set narrowed by the search term and category.
func (s *Screen) Visible() []models.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filter.Apply(s.results, filter.ForDescriptor(s.desc, s.term, s.category))
}

// Results is the last fetched result set, unfiltered.
func (s *Screen) Results() []models.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Record(nil), s.results...)
}

func (s *Screen) State() models.QueryState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *Screen) Term() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.term
}

func (s *Screen) Category() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.category
}

// Err is the user-facing marker of the last failed fetch, "" after a good one.
func (s *Screen) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *Screen) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// fetch replaces the result set. Each call takes a sequence number; a
// response that arrives after a newer fetch was issued is dropped.
func (s *Screen) fetch(ctx context.Context) error {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	st := s.state.Clone()
	s.loading = true
	s.mu.Unlock()

	records, err := s.list(ctx, st)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		s.log.Debug(ctx, "stale response dropped", "mode", st.Mode, "seq", seq, "latest", s.seq)
		return nil
	}
	s.loading = false
	if err != nil {
		s.log.Error(ctx, "fetch failed", "mode", st.Mode, "err", err)
		s.errMsg = s.cat.DataUnavailable
		s.results = []models.Record{}
		return err
	}
	if records == nil {
		records = []models.Record{}
	}
	s.errMsg = ""
	s.results = records
	return nil
}

func (s *Screen) list(ctx context.Context, st models.QueryState) ([]models.Record, error) {
	req, err := query.Build(s.desc, st)
	if err != nil {
		return nil, err
	}
	return s.backend.List(ctx, req)
}
