// Package filter narrows an already fetched result set in memory.
package filter

import (
	"strings"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

// AllCategories disables the category filter, as does an empty Category.
const AllCategories = "all"

type Criteria struct {
	// Fields are matched with OR.
	Fields        []string
	Term          string
	CategoryField string
	Category      string
}

// ForDescriptor fills Fields and CategoryField from d.
func ForDescriptor(d models.Descriptor, term, category string) Criteria {
	return Criteria{
		Fields:        d.SearchFields,
		Term:          term,
		CategoryField: d.CategoryField,
		Category:      category,
	}
}

// Match reports whether r is visible under c. Absent fields never match a
// non-empty term.
func (c Criteria) Match(r models.Record) bool {
	if c.categoryActive() && r.String(c.CategoryField) != c.Category {
		return false
	}
	if c.Term == "" {
		return true
	}
	needle := strings.ToLower(c.Term)
	for _, f := range c.Fields {
		if !r.Has(f) {
			continue
		}
		if strings.Contains(strings.ToLower(r.String(f)), needle) {
			return true
		}
	}
	return false
}

func (c Criteria) categoryActive() bool {
	return c.CategoryField != "" && c.Category != "" && c.Category != AllCategories
}

// Apply returns the matching records in their original order. The input is
// not modified.
func Apply(records []models.Record, c Criteria) []models.Record {
	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if c.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
