package resources

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownResource   = errors.New("unknown resource")
	ErrInvalidDescriptor = errors.New("invalid descriptor")
)

// Registry keeps descriptors in registration order.
type Registry struct {
	order  []string
	byName map[string]models.Descriptor
}

func NewRegistry() *Registry {
	return &Registry{byName: map[string]models.Descriptor{}}
}

// Builtin returns a registry with members, orders and products.
func Builtin() *Registry {
	r := NewRegistry()
	for _, d := range []models.Descriptor{Members(), Orders(), Products()} {
		if err := r.Put(d); err != nil {
			panic(err)
		}
	}
	return r
}

// Put validates d and adds it, replacing a descriptor with the same resource
// name in place.
func (r *Registry) Put(d models.Descriptor) error {
	if err := Validate(d); err != nil {
		return err
	}
	if _, exists := r.byName[d.Resource]; !exists {
		r.order = append(r.order, d.Resource)
	}
	r.byName[d.Resource] = d
	return nil
}

func (r *Registry) Get(name string) (models.Descriptor, error) {
	d, ok := r.byName[name]
	if !ok {
		return models.Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownResource, name)
	}
	return d, nil
}

func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

type descriptorFile struct {
	Resources []models.Descriptor `yaml:"resources"`
}

// Load decodes a YAML document with a top-level "resources" list and puts
// every descriptor into r.
func (r *Registry) Load(in io.Reader) error {
	var f descriptorFile
	dec := yaml.NewDecoder(in)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode descriptors: %w", err)
	}
	for _, d := range f.Resources {
		if err := r.Put(d); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile is Load over the named file.
func (r *Registry) LoadFile(path string) error {
	fd, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open descriptors: %w", err)
	}
	defer fd.Close()
	return r.Load(fd)
}

var paramCount = map[models.ModeKind]int{
	models.ModeAll:        0,
	models.ModeProjection: 0,
	models.ModeSingle:     1,
	models.ModeRange:      2,
	models.ModeSort:       2,
}

var fieldKinds = map[models.FieldKind]struct{}{
	models.FieldText: {}, models.FieldTextArea: {}, models.FieldEmail: {},
	models.FieldNumber: {}, models.FieldInteger: {}, models.FieldEnum: {},
}

// Validate checks the structural rules the dispatcher and form rely on.
func Validate(d models.Descriptor) error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s: %s", ErrInvalidDescriptor, d.Resource, fmt.Sprintf(format, args...))
	}

	if d.Resource == "" {
		return fmt.Errorf("%w: resource name is required", ErrInvalidDescriptor)
	}
	if len(d.Modes) == 0 {
		return invalid("at least one mode is required")
	}

	seen := map[string]struct{}{}
	for _, m := range d.Modes {
		if _, dup := seen[m.Name]; dup {
			return invalid("duplicate mode %q", m.Name)
		}
		seen[m.Name] = struct{}{}

		if m.Kind == models.ModeSearch {
			continue
		}
		want, ok := paramCount[m.Kind]
		if !ok {
			return invalid("mode %q has unknown kind %q", m.Name, m.Kind)
		}
		if len(m.Params) != want {
			return invalid("mode %q (%s) takes %d params, got %d", m.Name, m.Kind, want, len(m.Params))
		}
	}
	if _, ok := d.Mode(d.InitialMode()); !ok {
		return invalid("default mode %q is not in the mode table", d.InitialMode())
	}

	for _, f := range d.Fields {
		if f.Name == "" {
			return invalid("field without a name")
		}
		if _, ok := fieldKinds[f.Kind]; !ok {
			return invalid("field %q has unknown kind %q", f.Name, f.Kind)
		}
		if f.Kind == models.FieldEnum && len(f.Options) == 0 {
			return invalid("enum field %q needs options", f.Name)
		}
	}
	return nil
}
