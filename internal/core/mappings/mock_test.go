package mappings

import (
	"context"
	"strings"

	"github.com/framesight/metanet/internal/driver"
)

// MockExecutor returns canned rows keyed by a substring of the query, so a
// test can serve different fixtures per metaphor IRI.
type MockExecutor struct {
	RowsByIRI map[string][]driver.Row
	Err       error
	Queries   []string
}

func (m *MockExecutor) Select(_ context.Context, query string) ([]driver.Row, error) {
	m.Queries = append(m.Queries, query)
	if m.Err != nil {
		return nil, m.Err
	}
	for iri, rows := range m.RowsByIRI {
		if strings.Contains(query, iri) {
			return rows, nil
		}
	}
	return nil, nil
}

func (m *MockExecutor) Ask(context.Context, string) (bool, error) {
	return false, nil
}
