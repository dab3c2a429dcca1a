package models

// Logical query parameter names. Mode tables map them to wire names.
const (
	ParamKeyword  = "keyword"
	ParamName     = "name"
	ParamDomain   = "domain"
	ParamPrefix   = "prefix"
	ParamStatus   = "status"
	ParamCategory = "category"
	ParamStock    = "stock"
	ParamMin      = "min"
	ParamMax      = "max"
	ParamStart    = "start"
	ParamEnd      = "end"
	ParamSortBy   = "sortBy"
	ParamSortDir  = "sortDir"
)

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// QueryState is the selected mode plus the user-entered parameters.
// It is rebuilt from user input and never persisted.
type QueryState struct {
	Mode   string
	Params map[string]string
}

func NewQueryState(mode string) QueryState {
	return QueryState{Mode: mode, Params: map[string]string{}}
}

// Get returns the value of key, "" when unset.
func (q QueryState) Get(key string) string {
	return q.Params[key]
}

func (q *QueryState) Set(key, value string) {
	if q.Params == nil {
		q.Params = map[string]string{}
	}
	q.Params[key] = value
}

func (q *QueryState) Clear(key string) {
	delete(q.Params, key)
}

// Clone returns a copy whose Params map is not shared with q.
func (q QueryState) Clone() QueryState {
	out := QueryState{Mode: q.Mode, Params: make(map[string]string, len(q.Params))}
	for k, v := range q.Params {
		out.Params[k] = v
	}
	return out
}
