// Package models defines the client-side data model: records returned by the
// backend, drafts edited in forms, query state and resource descriptors.
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// IDField is the name of the server-assigned identifier on every record.
const IDField = "id"

// Record is a resource instance as decoded from the backend. Numbers arrive
// as json.Number so identifiers and amounts round-trip without loss.
type Record map[string]any

// ID returns the identifier rendered as a string, whether the backend sends
// it as a number or a string.
func (r Record) ID() string {
	return r.String(IDField)
}

// Has reports whether field is present and not null.
func (r Record) Has(field string) bool {
	v, ok := r[field]
	return ok && v != nil
}

// String renders a field as text. Absent and null fields yield "".
func (r Record) String(field string) string {
	v, ok := r[field]
	if !ok || v == nil {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

// Draft is an in-progress create/edit buffer: field name to string value.
type Draft map[string]string

// Clone returns an independent copy of d.
func (d Draft) Clone() Draft {
	out := make(Draft, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
