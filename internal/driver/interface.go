package driver

import (
	"context"
)

// Row is one result row, keyed by requested variable name. Unbound
// variables are absent from the map.
type Row map[string]string

// Get returns the bound value for a variable, or "" when unbound.
func (r Row) Get(name string) string {
	return r[name]
}

// QueryExecutor runs SPARQL queries against an endpoint. Implementations
// make no retry attempt; a transport or query failure is returned as-is and
// is fatal to the caller's run.
type QueryExecutor interface {
	Select(ctx context.Context, query string) ([]Row, error)
	Ask(ctx context.Context, query string) (bool, error)
}
