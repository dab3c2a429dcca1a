// Package query maps a screen's selected mode and parameters to exactly one
// backend request.
package query

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

var ErrUnknownMode = errors.New("unknown query mode")

// Pair is one query-string entry. Request keeps pairs in a slice rather than
// url.Values so that encoding follows declaration order.
type Pair struct {
	Key   string
	Value string
}

// Request is a read request against a resource collection.
type Request struct {
	Method string
	Path   string
	Query  []Pair
}

// Encode renders the query string without the leading '?'.
func (r Request) Encode() string {
	var b strings.Builder
	for i, p := range r.Query {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// URL is Path plus the encoded query, relative to the API base.
func (r Request) URL() string {
	if len(r.Query) == 0 {
		return r.Path
	}
	return r.Path + "?" + r.Encode()
}

func (r Request) String() string {
	return r.Method + " " + r.URL()
}

// Build returns the request for the state's mode. It does no I/O.
func Build(d models.Descriptor, s models.QueryState) (Request, error) {
	m, ok := d.Mode(s.Mode)
	if !ok {
		return Request{}, fmt.Errorf("%w: %s/%s", ErrUnknownMode, d.Resource, s.Mode)
	}

	base := "/" + d.Resource
	req := Request{Method: http.MethodGet}

	switch m.Kind {
	case models.ModeAll:
		req.Path = base
	case models.ModeProjection:
		req.Path = base + "/q/projection"
	case models.ModeSingle, models.ModeRange:
		req.Path = base + "/q/" + m.Name
		for _, p := range m.Params {
			req.Query = append(req.Query, Pair{Key: p.WireName(), Value: s.Get(p.Key)})
		}
	case models.ModeSort:
		req.Path = base + "/q/sort"
		for _, p := range m.Params {
			v := s.Get(p.Key)
			if v == "" {
				v = p.Default
			}
			req.Query = append(req.Query, Pair{Key: p.WireName(), Value: v})
		}
	case models.ModeSearch:
		req.Path = base + "/search"
		for _, p := range m.Params {
			if v := s.Get(p.Key); v != "" {
				req.Query = append(req.Query, Pair{Key: p.WireName(), Value: v})
			}
		}
	default:
		return Request{}, fmt.Errorf("%w: %s/%s has kind %q", ErrUnknownMode, d.Resource, m.Name, m.Kind)
	}

	return req, nil
}
