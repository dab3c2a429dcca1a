package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_String(t *testing.T) {
	r := Record{
		"id":     json.Number("42"),
		"name":   "Mug",
		"price":  json.Number("12.50"),
		"ratio":  0.25,
		"active": true,
		"note":   nil,
	}

	assert.Equal(t, "42", r.ID())
	assert.Equal(t, "Mug", r.String("name"))
	assert.Equal(t, "12.50", r.String("price"))
	assert.Equal(t, "0.25", r.String("ratio"))
	assert.Equal(t, "true", r.String("active"))
	assert.Equal(t, "", r.String("note"))
	assert.Equal(t, "", r.String("missing"))
	assert.True(t, r.Has("name"))
	assert.False(t, r.Has("note"))
	assert.False(t, r.Has("missing"))
}

func TestDraft_CloneIsIndependent(t *testing.T) {
	d := Draft{"a": "1"}
	c := d.Clone()
	c["a"] = "2"
	assert.Equal(t, "1", d["a"])
}

func TestQueryState_CloneIsIndependent(t *testing.T) {
	q := NewQueryState("search")
	q.Set(ParamKeyword, "x")
	c := q.Clone()
	c.Set(ParamKeyword, "y")
	c.Clear(ParamKeyword)

	assert.Equal(t, "x", q.Get(ParamKeyword))
	assert.Equal(t, "", c.Get(ParamKeyword))
}

func TestQueryState_SetOnZeroValue(t *testing.T) {
	var q QueryState
	q.Set(ParamMin, "1")
	assert.Equal(t, "1", q.Get(ParamMin))
}

func TestDescriptor_Lookups(t *testing.T) {
	d := Descriptor{
		Fields: []Field{{Name: "price", Kind: FieldNumber}, {Name: "name", Label: "Name"}},
		Modes:  []ModeSpec{{Name: "all", Kind: ModeAll}, {Name: "sort", Kind: ModeSort}},
	}

	f, ok := d.Field("price")
	assert.True(t, ok)
	assert.True(t, f.Numeric())
	assert.Equal(t, "price", f.DisplayLabel())

	_, ok = d.Field("nope")
	assert.False(t, ok)

	m, ok := d.Mode("sort")
	assert.True(t, ok)
	assert.Equal(t, ModeSort, m.Kind)
	assert.Equal(t, []string{"all", "sort"}, d.ModeNames())
	assert.Equal(t, "all", d.InitialMode())

	assert.Equal(t, "by", ParamSpec{Key: ParamSortBy, Wire: "by"}.WireName())
	assert.Equal(t, ParamSortBy, ParamSpec{Key: ParamSortBy}.WireName())
}
