package core

import (
	"context"
	"strings"

	"github.com/framesight/metanet/internal/driver"
)

// MockExecutor dispatches on the query shape the pipeline issues: mapping
// extraction, equivalence expansion, or label fetch.
type MockExecutor struct {
	Mappings   map[string][]driver.Row // metaphor IRI -> rows
	Candidates map[string][]string     // seed frame -> candidate IRIs
	Labels     map[string][]driver.Row // frame IRI -> label rows

	SelectCount int
}

func (m *MockExecutor) Select(_ context.Context, query string) ([]driver.Row, error) {
	m.SelectCount++
	switch {
	case strings.Contains(query, "?srcRole"):
		for iri, rows := range m.Mappings {
			if strings.Contains(query, "<"+iri+">") {
				return rows, nil
			}
		}
	case strings.Contains(query, "?candidate"):
		for seed, candidates := range m.Candidates {
			if !strings.Contains(query, "<"+seed+">") {
				continue
			}
			var rows []driver.Row
			for _, c := range candidates {
				rows = append(rows, driver.Row{"candidate": c})
			}
			return rows, nil
		}
	case strings.Contains(query, "?feLabel"):
		for frame, rows := range m.Labels {
			if strings.Contains(query, "<"+frame+">") {
				return rows, nil
			}
		}
	}
	return nil, nil
}

func (m *MockExecutor) Ask(context.Context, string) (bool, error) {
	return false, nil
}
