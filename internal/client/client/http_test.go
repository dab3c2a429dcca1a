package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/storeadmin/internal/client/query"
	"github.com/dmitrijs2005/storeadmin/internal/logging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	method string
	uri    string
	body   map[string]any
	header http.Header
}

func newServer(t *testing.T, status int, respBody string, got *captured) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got != nil {
			got.method = r.Method
			got.uri = r.URL.RequestURI()
			got.header = r.Header.Clone()
			b, _ := io.ReadAll(r.Body)
			if len(b) > 0 {
				_ = json.Unmarshal(b, &got.body)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, respBody)
	}))
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL+"/api/", 0, logging.Discard())
}

func TestList_Envelope(t *testing.T) {
	var got captured
	c := newServer(t, http.StatusOK, `{"data":[{"id":1,"firstName":"Ann","score":12.50}]}`, &got)

	req := query.Request{Method: http.MethodGet, Path: "/members/q/phone-filter", Query: []query.Pair{{Key: "prefix", Value: ""}}}
	records, err := c.List(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "/api/members/q/phone-filter?prefix=", got.uri)
	_, err = uuid.Parse(got.header.Get(RequestIDHeader))
	assert.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0].ID())
	assert.Equal(t, json.Number("12.50"), records[0]["score"])
}

func TestList_BareArray(t *testing.T) {
	c := newServer(t, http.StatusOK, `[{"id":"a"},{"id":"b"}]`, nil)
	records, err := c.List(context.Background(), query.Request{Method: http.MethodGet, Path: "/orders/q/projection"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, []string{records[0].ID(), records[1].ID()})
}

func TestList_EmptyData(t *testing.T) {
	c := newServer(t, http.StatusOK, `{"data":null}`, nil)
	records, err := c.List(context.Background(), query.Request{Method: http.MethodGet, Path: "/orders"})
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestList_Malformed(t *testing.T) {
	for _, body := range []string{``, `{"items":[]}`, `"nope"`, `[1,2]`, `{bad`} {
		t.Run(body, func(t *testing.T) {
			c := newServer(t, http.StatusOK, body, nil)
			_, err := c.List(context.Background(), query.Request{Method: http.MethodGet, Path: "/orders"})
			assert.True(t, errors.Is(err, ErrMalformedResponse), "got %v", err)
		})
	}
}

func TestList_ServerError(t *testing.T) {
	c := newServer(t, http.StatusInternalServerError, `oops`, nil)
	_, err := c.List(context.Background(), query.Request{Method: http.MethodGet, Path: "/orders"})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Empty(t, apiErr.Message)
	_, ok := PublicMessage(err)
	assert.False(t, ok)
}

func TestList_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := NewHTTPClient(srv.URL, 0, logging.Discard())
	_, err := c.List(context.Background(), query.Request{Method: http.MethodGet, Path: "/orders"})
	assert.True(t, errors.Is(err, ErrUnavailable), "got %v", err)
}

func TestList_ContextCanceled(t *testing.T) {
	c := newServer(t, http.StatusOK, `[]`, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.List(ctx, query.Request{Method: http.MethodGet, Path: "/orders"})
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestCreate_SendsBody(t *testing.T) {
	var got captured
	c := newServer(t, http.StatusCreated, `{"id":9}`, &got)

	err := c.Create(context.Background(), "products", map[string]any{"name": "Lamp", "price": 12.5})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/api/products", got.uri)
	assert.Equal(t, "application/json", got.header.Get("Content-Type"))
	assert.Equal(t, map[string]any{"name": "Lamp", "price": 12.5}, got.body)
}

func TestCreate_UpstreamMessage(t *testing.T) {
	c := newServer(t, http.StatusConflict, `{"message":"email already exists"}`, nil)

	err := c.Create(context.Background(), "members", map[string]any{"email": "a@b.c"})
	msg, ok := PublicMessage(err)
	require.True(t, ok)
	assert.Equal(t, "email already exists", msg)
	assert.Equal(t, "server returned 409: email already exists", err.Error())
}

func TestUpdate_EscapesID(t *testing.T) {
	var got captured
	c := newServer(t, http.StatusOK, ``, &got)

	require.NoError(t, c.Update(context.Background(), "orders", "a/b 1", map[string]any{"status": "completed"}))
	assert.Equal(t, http.MethodPut, got.method)
	assert.Equal(t, "/api/orders/a%2Fb%201", got.uri)
	assert.Equal(t, "completed", got.body["status"])
}

func TestDelete(t *testing.T) {
	var got captured
	c := newServer(t, http.StatusNoContent, ``, &got)

	require.NoError(t, c.Delete(context.Background(), "members", "42"))
	assert.Equal(t, http.MethodDelete, got.method)
	assert.Equal(t, "/api/members/42", got.uri)
	assert.Nil(t, got.body)
}

var _ Client = (*HTTPClient)(nil)
