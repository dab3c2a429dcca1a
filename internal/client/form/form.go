package form

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
	"github.com/go-playground/validator/v10"
)

type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Writer performs the one-shot request a submit produces.
type Writer interface {
	Create(ctx context.Context, resource string, body map[string]any) error
	Update(ctx context.Context, resource, id string, body map[string]any) error
}

type Form struct {
	desc     models.Descriptor
	generic  string
	validate *validator.Validate

	mu    sync.Mutex
	open  bool
	mode  Mode
	id    string
	draft models.Draft
	busy  bool
}

// New returns a closed form for d. generic is the message shown when a write
// fails without an upstream message.
func New(d models.Descriptor, generic string) *Form {
	return &Form{desc: d, generic: generic, validate: validator.New()}
}

// Open starts a create or edit session, replacing any previous draft. Edit
// requires a record with an identifier.
func (f *Form) Open(mode Mode, rec models.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.busy {
		return ErrBusy
	}

	draft := make(models.Draft, len(f.desc.Fields))
	id := ""
	switch mode {
	case ModeCreate:
		for _, fd := range f.desc.Fields {
			draft[fd.Name] = fd.Default
		}
	case ModeEdit:
		id = rec.ID()
		if id == "" {
			return fmt.Errorf("edit needs a record with %q", models.IDField)
		}
		for _, fd := range f.desc.Fields {
			draft[fd.Name] = rec.String(fd.Name)
		}
	default:
		return fmt.Errorf("unknown form mode %d", mode)
	}

	f.open, f.mode, f.id, f.draft = true, mode, id, draft
	return nil
}

func (f *Form) IsOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

func (f *Form) Mode() Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// RecordID is the identifier being edited, "" in create mode.
func (f *Form) RecordID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.id
}

func (f *Form) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy
}

// Draft returns a copy of the current draft, nil when closed.
func (f *Form) Draft() models.Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.open {
		return nil
	}
	return f.draft.Clone()
}

// Fields lists the fields to prompt in the current mode. EditOnly fields are
// left out on create.
func (f *Form) Fields() []models.Field {
	f.mu.Lock()
	mode := f.mode
	f.mu.Unlock()

	out := make([]models.Field, 0, len(f.desc.Fields))
	for _, fd := range f.desc.Fields {
		if fd.EditOnly && mode == ModeCreate {
			continue
		}
		out = append(out, fd)
	}
	return out
}

// Change sets one field of the draft.
func (f *Form) Change(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.open {
		return ErrNotOpen
	}
	if _, ok := f.desc.Field(field); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	f.draft[field] = value
	return nil
}

// Validate checks the draft without submitting it.
func (f *Form) Validate() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.open {
		return ErrNotOpen
	}
	return checkDraft(f.validate, f.desc.Fields, f.draft)
}

// Body is the request payload for the current draft. Numeric fields are
// parsed; empty optional numeric fields are omitted.
func (f *Form) Body() (map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.open {
		return nil, ErrNotOpen
	}
	if err := checkDraft(f.validate, f.desc.Fields, f.draft); err != nil {
		return nil, err
	}
	return f.body()
}

func (f *Form) body() (map[string]any, error) {
	out := make(map[string]any, len(f.desc.Fields))
	for _, fd := range f.desc.Fields {
		v := f.draft[fd.Name]
		if !fd.Numeric() {
			out[fd.Name] = v
			continue
		}
		n, ok, err := parse(fd, v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fd.Name, err)
		}
		if ok {
			out[fd.Name] = n
		}
	}
	return out, nil
}

// Submit validates the draft and sends it: Update in edit mode, Create
// otherwise. On success the form closes. On failure it stays open with the
// draft unchanged and the error is a *ValidationError or *SubmitError.
func (f *Form) Submit(ctx context.Context, w Writer) error {
	f.mu.Lock()
	if !f.open {
		f.mu.Unlock()
		return ErrNotOpen
	}
	if f.busy {
		f.mu.Unlock()
		return ErrBusy
	}
	if err := checkDraft(f.validate, f.desc.Fields, f.draft); err != nil {
		f.mu.Unlock()
		return err
	}
	body, err := f.body()
	if err != nil {
		f.mu.Unlock()
		return err
	}
	f.busy = true
	mode, id := f.mode, f.id
	f.mu.Unlock()

	if mode == ModeEdit {
		err = w.Update(ctx, f.desc.Resource, id, body)
	} else {
		err = w.Create(ctx, f.desc.Resource, body)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.busy = false
	if err != nil {
		return NewSubmitError(err, f.generic)
	}
	f.closeLocked()
	return nil
}

// Cancel discards the draft and closes the form. It never sends anything.
func (f *Form) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closeLocked()
}

func (f *Form) closeLocked() {
	f.open, f.mode, f.id, f.draft = false, ModeCreate, "", nil
}
