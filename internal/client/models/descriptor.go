package models

// FieldKind drives both validation and value parsing of a form field.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldTextArea FieldKind = "textarea"
	FieldEmail    FieldKind = "email"
	FieldNumber   FieldKind = "number"
	FieldInteger  FieldKind = "integer"
	FieldEnum     FieldKind = "enum"
)

// Field describes one editable property of a resource.
type Field struct {
	Name     string    `yaml:"name"`
	Label    string    `yaml:"label"`
	Kind     FieldKind `yaml:"kind"`
	Required bool      `yaml:"required"`
	// Min is an inclusive lower bound for numeric kinds.
	Min     *float64 `yaml:"min,omitempty"`
	Options []string `yaml:"options,omitempty"`
	Default string   `yaml:"default,omitempty"`
	// EditOnly fields are not prompted on create; their Default is sent.
	EditOnly bool `yaml:"edit_only,omitempty"`
}

// Numeric reports whether the field is parsed into a number on submit.
func (f Field) Numeric() bool {
	return f.Kind == FieldNumber || f.Kind == FieldInteger
}

// DisplayLabel falls back to the field name when no label is set.
func (f Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// Column is one table column. When Fields is set the column joins those
// record fields with a space instead of reading Name.
type Column struct {
	Name   string   `yaml:"name"`
	Label  string   `yaml:"label"`
	Fields []string `yaml:"fields,omitempty"`
}

// ModeKind selects the request shape a mode produces.
type ModeKind string

const (
	ModeAll        ModeKind = "all"
	ModeProjection ModeKind = "projection"
	ModeSingle     ModeKind = "single"
	ModeRange      ModeKind = "range"
	ModeSort       ModeKind = "sort"
	ModeSearch     ModeKind = "search"
)

// ParamSpec maps a logical QueryState key to the query-string name a mode
// sends. Default is only honoured by sort modes.
type ParamSpec struct {
	Key     string `yaml:"key"`
	Wire    string `yaml:"wire,omitempty"`
	Default string `yaml:"default,omitempty"`
}

// WireName is the query-string name, Key when Wire is empty.
func (p ParamSpec) WireName() string {
	if p.Wire != "" {
		return p.Wire
	}
	return p.Key
}

// ModeSpec is one row of a resource's mode table.
type ModeSpec struct {
	Name   string      `yaml:"name"`
	Kind   ModeKind    `yaml:"kind"`
	Params []ParamSpec `yaml:"params,omitempty"`
}

// Descriptor parametrizes the generic screen for one resource collection.
type Descriptor struct {
	Resource        string     `yaml:"resource"`
	Title           string     `yaml:"title"`
	Fields          []Field    `yaml:"fields"`
	Columns         []Column   `yaml:"columns"`
	Modes           []ModeSpec `yaml:"modes"`
	DefaultMode     string     `yaml:"default_mode,omitempty"`
	SearchFields    []string   `yaml:"search_fields,omitempty"`
	CategoryField   string     `yaml:"category_field,omitempty"`
	CategoryOptions []string   `yaml:"category_options,omitempty"`
}

// Mode looks up a mode by name.
func (d Descriptor) Mode(name string) (ModeSpec, bool) {
	for _, m := range d.Modes {
		if m.Name == name {
			return m, true
		}
	}
	return ModeSpec{}, false
}

// Field looks up a field by name.
func (d Descriptor) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// ModeNames lists mode names in table order.
func (d Descriptor) ModeNames() []string {
	names := make([]string, 0, len(d.Modes))
	for _, m := range d.Modes {
		names = append(names, m.Name)
	}
	return names
}

// InitialMode is DefaultMode, or "all" when unset.
func (d Descriptor) InitialMode() string {
	if d.DefaultMode != "" {
		return d.DefaultMode
	}
	return string(ModeAll)
}
