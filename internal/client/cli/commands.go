package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/storeadmin/internal/client/form"
	"github.com/dmitrijs2005/storeadmin/internal/client/prompt"
	"github.com/dmitrijs2005/storeadmin/internal/client/query"
	"github.com/dmitrijs2005/storeadmin/internal/client/screen"
	"github.com/dmitrijs2005/storeadmin/internal/client/view"
)

var errNoScreen = errors.New("no resource selected")

func (a *App) Resources() []string {
	return a.registry.Names()
}

func (a *App) active() (*screen.Screen, error) {
	if a.current == nil {
		printlnFn("Select a resource first: use <resource>")
		return nil, errNoScreen
	}
	return a.current, nil
}

// report prints err for the user and returns it unchanged.
func report(err error) error {
	if err != nil {
		printlnFn("Error:", err.Error())
	}
	return err
}

// render prints the visible rows of s, preceded by the fetch error marker if
// the last fetch failed.
func (a *App) render(s *screen.Screen) {
	if msg := s.Err(); msg != "" {
		printlnFn(msg)
	}
	view.Table(a.out, s.Descriptor(), s.Visible(), a.cat)
}

// fetched renders after a fetching action. The table is shown even on
// failure so the emptied result set and marker are visible.
func (a *App) fetched(s *screen.Screen, err error) error {
	a.render(s)
	return err
}

func (a *App) Use(ctx context.Context, name string) error {
	s, err := a.screenFor(name)
	if err != nil {
		return report(err)
	}
	a.current = s
	printlnFn(s.Descriptor().Title)
	return a.fetched(s, s.Load(ctx))
}

func (a *App) Modes(ctx context.Context) error {
	s, err := a.active()
	if err != nil {
		return err
	}
	current := s.State().Mode
	for _, m := range s.Descriptor().Modes {
		keys := make([]string, 0, len(m.Params))
		for _, p := range m.Params {
			keys = append(keys, p.Key)
		}
		marker := "  "
		if m.Name == current {
			marker = "* "
		}
		line := marker + m.Name
		if len(keys) > 0 {
			line += " (" + strings.Join(keys, ", ") + ")"
		}
		printlnFn(line)
	}
	return nil
}

func (a *App) Mode(ctx context.Context, name string) error {
	s, err := a.active()
	if err != nil {
		return err
	}
	err = s.SelectMode(ctx, name)
	if errors.Is(err, query.ErrUnknownMode) {
		return report(err)
	}
	return a.fetched(s, err)
}

func (a *App) Set(ctx context.Context, key, value string) error {
	s, err := a.active()
	if err != nil {
		return err
	}
	if err := s.SetParam(key, value); err != nil {
		return report(err)
	}
	printlnFn(fmt.Sprintf("%s = %q (run 'search' to apply)", key, value))
	return nil
}

func (a *App) Unset(ctx context.Context, key string) error {
	s, err := a.active()
	if err != nil {
		return err
	}
	return report(s.ClearParam(key))
}

func (a *App) Search(ctx context.Context) error {
	s, err := a.active()
	if err != nil {
		return err
	}
	return a.fetched(s, s.Search(ctx))
}

func (a *App) Sort(ctx context.Context, by, dir string) error {
	s, err := a.active()
	if err != nil {
		return err
	}
	return a.fetched(s, s.SetSort(ctx, by, dir))
}

func (a *App) Find(ctx context.Context, term string) error {
	s, err := a.active()
	if err != nil {
		return err
	}
	s.SetSearchTerm(term)
	a.render(s)
	return nil
}

func (a *App) Filter(ctx context.Context, category string) error {
	s, err := a.active()
	if err != nil {
		return err
	}
	if err := s.SetCategory(category); err != nil {
		return report(err)
	}
	a.render(s)
	return nil
}

func (a *App) List(ctx context.Context) error {
	s, err := a.active()
	if err != nil {
		return err
	}
	a.render(s)
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	s, err := a.active()
	if err != nil {
		return err
	}
	return a.fetched(s, s.Load(ctx))
}

func (a *App) Add(ctx context.Context) error {
	s, err := a.active()
	if err != nil {
		return err
	}
	if err := s.OpenCreate(); err != nil {
		return report(err)
	}
	return a.fillForm(ctx, s, a.cat.Created)
}

func (a *App) Edit(ctx context.Context, id string) error {
	s, err := a.active()
	if err != nil {
		return err
	}
	if err := s.OpenEdit(id); err != nil {
		return report(err)
	}
	return a.fillForm(ctx, s, a.cat.Updated)
}

func (a *App) Delete(ctx context.Context, id string) error {
	s, err := a.active()
	if err != nil {
		return err
	}
	deleted, err := s.Delete(ctx, id, prompt.Confirmer{Driver: a.driver})
	if err != nil {
		var se *form.SubmitError
		if errors.As(err, &se) {
			printlnFn(se.Message)
			return err
		}
		return report(err)
	}
	if !deleted {
		printlnFn(a.cat.Cancelled)
		return nil
	}
	printlnFn(a.cat.Deleted)
	a.render(s)
	return nil
}

func (a *App) History(ctx context.Context) error {
	entries, err := a.service.History(ctx, historyLimit)
	if err != nil {
		return report(err)
	}
	view.History(a.out, entries, a.cat)
	return nil
}
