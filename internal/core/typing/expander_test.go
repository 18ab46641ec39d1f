package typing

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framesight/metanet/internal/driver"
)

// MockExecutor serves expansion fixtures per seed IRI and records ASK
// queries issued against it.
type MockExecutor struct {
	CandidatesBySeed map[string][]string
	AskResults       map[string]bool
	AskQueries       []string
}

func (m *MockExecutor) Select(_ context.Context, query string) ([]driver.Row, error) {
	for seed, candidates := range m.CandidatesBySeed {
		if !strings.Contains(query, "<"+seed+">") {
			continue
		}
		var rows []driver.Row
		for _, c := range candidates {
			rows = append(rows, driver.Row{"candidate": c})
		}
		return rows, nil
	}
	return nil, nil
}

func (m *MockExecutor) Ask(_ context.Context, query string) (bool, error) {
	m.AskQueries = append(m.AskQueries, query)
	for frame, ok := range m.AskResults {
		if strings.Contains(query, "<"+frame+">") && ok {
			return true, nil
		}
	}
	return false, nil
}

func TestExpandAllSetMembership(t *testing.T) {
	mock := &MockExecutor{CandidatesBySeed: map[string][]string{
		"frame:A": {"frame:A2", "frame:A3", "frame:A2"},
		"frame:B": {},
	}}
	membership := SetMembership{
		Sources: map[string]bool{"frame:A2": true},
		Targets: map[string]bool{"frame:B": true},
	}

	e := NewExpander(mock, membership)
	rows, err := e.ExpandAll(context.Background(), []string{"frame:A", "frame:B"})

	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "frame:A", rows[0].SeedFrame)
	assert.Equal(t, []string{"frame:A2", "frame:A3"}, rows[0].Candidates)
	assert.True(t, rows[0].AsSource)
	assert.False(t, rows[0].AsTarget)

	// No equivalence edges: empty list, both flags false even though the
	// seed itself is a target frame.
	assert.Equal(t, "frame:B", rows[1].SeedFrame)
	assert.Empty(t, rows[1].Candidates)
	assert.False(t, rows[1].AsSource)
	assert.False(t, rows[1].AsTarget)
}

func TestExpandAllExcludesSeed(t *testing.T) {
	mock := &MockExecutor{CandidatesBySeed: map[string][]string{
		"frame:A": {"frame:A", "frame:A2"},
	}}

	e := NewExpander(mock, SetMembership{})
	rows, err := e.ExpandAll(context.Background(), []string{"frame:A"})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"frame:A2"}, rows[0].Candidates)
}

func TestExpandAllAskMembership(t *testing.T) {
	mock := &MockExecutor{
		CandidatesBySeed: map[string][]string{
			"frame:A": {"frame:A2"},
		},
		AskResults: map[string]bool{"frame:A2": true},
	}

	e := NewExpander(mock, AskMembership{Executor: mock})
	rows, err := e.ExpandAll(context.Background(), []string{"frame:A"})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].AsSource)
	assert.True(t, rows[0].AsTarget)
	require.Len(t, mock.AskQueries, 2)
	assert.Contains(t, mock.AskQueries[0], "metanet:hasSourceFrame")
	assert.Contains(t, mock.AskQueries[1], "metanet:hasTargetFrame")
}

func TestExpandAllOneRowPerSeed(t *testing.T) {
	mock := &MockExecutor{CandidatesBySeed: map[string][]string{}}
	seeds := []string{"frame:A", "frame:B", "frame:C"}

	e := NewExpander(mock, SetMembership{})
	rows, err := e.ExpandAll(context.Background(), seeds)

	require.NoError(t, err)
	require.Len(t, rows, len(seeds))
	for i, seed := range seeds {
		assert.Equal(t, seed, rows[i].SeedFrame)
	}
}
