package form

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
	"github.com/dmitrijs2005/storeadmin/internal/client/resources"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const generic = "something went wrong"

type call struct {
	method   string
	resource string
	id       string
	body     map[string]any
}

type fakeWriter struct {
	mu    sync.Mutex
	calls []call
	err   error
	block chan struct{}
}

func (w *fakeWriter) record(c call) error {
	if w.block != nil {
		<-w.block
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls = append(w.calls, c)
	return w.err
}

func (w *fakeWriter) Create(_ context.Context, resource string, body map[string]any) error {
	return w.record(call{"create", resource, "", body})
}

func (w *fakeWriter) Update(_ context.Context, resource, id string, body map[string]any) error {
	return w.record(call{"update", resource, id, body})
}

type upstreamErr struct{ msg string }

func (e upstreamErr) Error() string         { return "server returned 409: " + e.msg }
func (e upstreamErr) PublicMessage() string { return e.msg }

func openMember(t *testing.T) *Form {
	t.Helper()
	f := New(resources.Members(), generic)
	require.NoError(t, f.Open(ModeCreate, nil))
	require.NoError(t, f.Change("firstName", "Ann"))
	require.NoError(t, f.Change("lastName", "Lee"))
	require.NoError(t, f.Change("email", "ann@example.com"))
	return f
}

func TestOpenCreate_SeedsDefaults(t *testing.T) {
	f := New(resources.Orders(), generic)
	require.NoError(t, f.Open(ModeCreate, nil))

	d := f.Draft()
	assert.Equal(t, "pending", d["status"])
	assert.Equal(t, "", d["customerName"])
	assert.Equal(t, ModeCreate, f.Mode())
	assert.Empty(t, f.RecordID())

	names := []string{}
	for _, fd := range f.Fields() {
		names = append(names, fd.Name)
	}
	assert.NotContains(t, names, "status")
}

func TestOpenEdit_SeedsFromRecord(t *testing.T) {
	f := New(resources.Products(), generic)
	rec := models.Record{"id": json.Number("7"), "name": "Lamp", "price": json.Number("12.5"), "stock": nil}
	require.NoError(t, f.Open(ModeEdit, rec))

	want := models.Draft{"name": "Lamp", "description": "", "price": "12.5", "stock": "", "category": "", "imageUrl": ""}
	if diff := cmp.Diff(want, f.Draft()); diff != "" {
		t.Errorf("draft mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "7", f.RecordID())
	assert.Len(t, f.Fields(), 6)
}

func TestOpenEdit_RequiresID(t *testing.T) {
	f := New(resources.Products(), generic)
	assert.Error(t, f.Open(ModeEdit, models.Record{"name": "x"}))
	assert.False(t, f.IsOpen())
}

func TestChange(t *testing.T) {
	f := New(resources.Members(), generic)
	assert.True(t, errors.Is(f.Change("email", "x"), ErrNotOpen))

	require.NoError(t, f.Open(ModeCreate, nil))
	assert.True(t, errors.Is(f.Change("nickname", "x"), ErrUnknownField))
	require.NoError(t, f.Change("phone", "0812345678"))
	assert.Equal(t, "0812345678", f.Draft()["phone"])
}

func TestSubmitEdit_IdentityRoundTrip(t *testing.T) {
	f := New(resources.Orders(), generic)
	rec := models.Record{
		"id":           json.Number("3"),
		"orderNumber":  "ORD-003",
		"customerName": "Bob",
		"email":        "bob@corp.io",
		"phone":        "0800000000",
		"totalAmount":  json.Number("1500.5"),
		"status":       "completed",
	}
	require.NoError(t, f.Open(ModeEdit, rec))

	w := &fakeWriter{}
	require.NoError(t, f.Submit(context.Background(), w))

	require.Len(t, w.calls, 1)
	got := w.calls[0]
	assert.Equal(t, "update", got.method)
	assert.Equal(t, "orders", got.resource)
	assert.Equal(t, "3", got.id)
	want := map[string]any{
		"customerName": "Bob",
		"email":        "bob@corp.io",
		"phone":        "0800000000",
		"totalAmount":  1500.5,
		"status":       "completed",
	}
	if diff := cmp.Diff(want, got.body); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, f.IsOpen())
	assert.Nil(t, f.Draft())
}

func TestSubmitCreate_SendsEditOnlyDefault(t *testing.T) {
	f := New(resources.Orders(), generic)
	require.NoError(t, f.Open(ModeCreate, nil))
	require.NoError(t, f.Change("customerName", "Eve"))
	require.NoError(t, f.Change("email", "eve@x.io"))
	require.NoError(t, f.Change("totalAmount", "99"))

	w := &fakeWriter{}
	require.NoError(t, f.Submit(context.Background(), w))
	require.Len(t, w.calls, 1)
	assert.Equal(t, "create", w.calls[0].method)
	assert.Equal(t, "pending", w.calls[0].body["status"])
	assert.Equal(t, 99.0, w.calls[0].body["totalAmount"])
}

func TestSubmit_UpstreamMessageKeepsDraft(t *testing.T) {
	f := openMember(t)
	before := f.Draft()

	w := &fakeWriter{err: upstreamErr{"email already exists"}}
	err := f.Submit(context.Background(), w)

	var se *SubmitError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "email already exists", se.Message)
	assert.Equal(t, "email already exists", err.Error())
	assert.True(t, f.IsOpen())
	assert.Equal(t, before, f.Draft())
	assert.False(t, f.Busy())
}

func TestSubmit_GenericMessage(t *testing.T) {
	f := openMember(t)
	cause := errors.New("connection refused")
	err := f.Submit(context.Background(), &fakeWriter{err: cause})

	var se *SubmitError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, generic, se.Message)
	assert.True(t, errors.Is(err, cause))
	assert.True(t, f.IsOpen())
}

func TestSubmit_Validation(t *testing.T) {
	f := New(resources.Products(), generic)
	require.NoError(t, f.Open(ModeCreate, nil))
	require.NoError(t, f.Change("price", "-1"))
	require.NoError(t, f.Change("stock", "2.5"))

	w := &fakeWriter{}
	err := f.Submit(context.Background(), w)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, map[string]string{
		"name":  "is required",
		"price": "must be at least 0",
		"stock": "must be a whole number",
	}, verr.Fields)
	assert.Equal(t, "invalid form: name: is required; price: must be at least 0; stock: must be a whole number", err.Error())
	assert.Empty(t, w.calls)
	assert.True(t, f.IsOpen())
}

func TestValidate_Constraints(t *testing.T) {
	tests := []struct {
		name   string
		d      models.Descriptor
		field  string
		value  string
		errMsg string
	}{
		{"bad email", resources.Members(), "email", "not-an-email", "must be a valid email address"},
		{"text number", resources.Orders(), "totalAmount", "abc", "must be a number"},
		{"bad status", resources.Orders(), "status", "shipped", "must be one of pending, completed, cancelled"},
		{"empty required", resources.Orders(), "customerName", "", "is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(tt.d, generic)
			require.NoError(t, f.Open(ModeCreate, nil))
			require.NoError(t, f.Change(tt.field, tt.value))

			var verr *ValidationError
			require.True(t, errors.As(f.Validate(), &verr))
			assert.Equal(t, tt.errMsg, verr.Fields[tt.field])
		})
	}
}

func TestBody_OmitsEmptyOptionalNumbers(t *testing.T) {
	f := New(resources.Products(), generic)
	require.NoError(t, f.Open(ModeCreate, nil))
	require.NoError(t, f.Change("name", "Lamp"))
	require.NoError(t, f.Change("price", "10"))

	body, err := f.Body()
	require.NoError(t, err)
	_, has := body["stock"]
	assert.False(t, has)
	assert.Equal(t, 10.0, body["price"])
	assert.Equal(t, "", body["description"])
}

func TestSubmit_NotOpen(t *testing.T) {
	f := New(resources.Members(), generic)
	assert.True(t, errors.Is(f.Submit(context.Background(), &fakeWriter{}), ErrNotOpen))
	_, err := f.Body()
	assert.True(t, errors.Is(err, ErrNotOpen))
	assert.True(t, errors.Is(f.Validate(), ErrNotOpen))
}

func TestSubmit_BusyRejectsSecondSubmit(t *testing.T) {
	f := openMember(t)
	w := &fakeWriter{block: make(chan struct{})}

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background(), w) }()

	require.Eventually(t, f.Busy, time.Second, time.Millisecond)
	assert.True(t, errors.Is(f.Submit(context.Background(), w), ErrBusy))

	close(w.block)
	require.NoError(t, <-done)
	assert.Len(t, w.calls, 1)
}

func TestCancel(t *testing.T) {
	f := openMember(t)
	f.Cancel()
	assert.False(t, f.IsOpen())
	assert.Nil(t, f.Draft())
}
