package mappings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framesight/metanet/internal/core/model"
	"github.com/framesight/metanet/internal/driver"
)

const (
	metaphorWar      = "https://w3id.org/framester/metanet/metaphors/DISEASE_TREATMENT_IS_WAR"
	metaphorMachines = "https://w3id.org/framester/metanet/metaphors/MACHINES_ARE_PEOPLE"
	frameWar         = "https://w3id.org/framester/metanet/frames/War"
	frameTreatment   = "https://w3id.org/framester/metanet/frames/Disease_treatment"
)

func TestExtractAllFlattensRolePairs(t *testing.T) {
	mock := &MockExecutor{RowsByIRI: map[string][]driver.Row{
		metaphorWar: {
			{"src": frameWar, "tgt": frameTreatment, "srcRole": "enemy", "tgtRole": "disease", "ent": "Treating is attacking.", "ex": "The drug attacks the tumor."},
			{"src": frameWar, "tgt": frameTreatment, "srcRole": "weapon", "tgtRole": "drug", "ent": "Treating is attacking.", "ex": "The drug attacks the tumor."},
		},
	}}

	e := NewExtractor(mock)
	rows, err := e.ExtractAll(context.Background(), []string{metaphorWar})

	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, metaphorWar, r.Metaphor)
		assert.Equal(t, frameWar, r.SourceFrame)
		assert.Equal(t, frameTreatment, r.TargetFrame)
	}
	assert.Equal(t, "enemy", rows[0].SourceRole)
	assert.Equal(t, "weapon", rows[1].SourceRole)
}

func TestExtractAllNoRoles(t *testing.T) {
	// A metaphor without role mappings still contributes one row with
	// empty role fields.
	mock := &MockExecutor{RowsByIRI: map[string][]driver.Row{
		metaphorMachines: {
			{"src": "https://w3id.org/framester/metanet/frames/People", "tgt": "https://w3id.org/framester/metanet/frames/Machines"},
		},
	}}

	e := NewExtractor(mock)
	rows, err := e.ExtractAll(context.Background(), []string{metaphorMachines})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].SourceRole)
	assert.Empty(t, rows[0].TargetRole)
	assert.Empty(t, rows[0].Entailment)
}

func TestExtractAllMissingMetaphorDropped(t *testing.T) {
	mock := &MockExecutor{RowsByIRI: map[string][]driver.Row{}}

	e := NewExtractor(mock)
	rows, err := e.ExtractAll(context.Background(), []string{metaphorWar, metaphorMachines})

	require.NoError(t, err)
	assert.Empty(t, rows)
	// One query per metaphor regardless.
	assert.Len(t, mock.Queries, 2)
}

func TestExtractAllDeduplicates(t *testing.T) {
	mock := &MockExecutor{RowsByIRI: map[string][]driver.Row{
		metaphorWar: {
			{"src": frameWar, "tgt": frameTreatment},
			{"src": frameWar, "tgt": frameTreatment},
		},
	}}

	e := NewExtractor(mock)
	rows, err := e.ExtractAll(context.Background(), []string{metaphorWar})

	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestExtractAllQueryFailureIsFatal(t *testing.T) {
	mock := &MockExecutor{Err: errors.New("endpoint unreachable")}

	e := NewExtractor(mock)
	_, err := e.ExtractAll(context.Background(), []string{metaphorWar})

	require.Error(t, err)
	assert.Contains(t, err.Error(), metaphorWar)
}

func TestFrameSets(t *testing.T) {
	rows := []model.MappingRow{
		{Metaphor: "m1", SourceFrame: "A", TargetFrame: "B", SourceRole: "r1"},
		{Metaphor: "m1", SourceFrame: "A", TargetFrame: "B", SourceRole: "r2"},
		{Metaphor: "m2", SourceFrame: "C", TargetFrame: "B"},
	}

	assert.Equal(t, []string{"A", "B", "C"}, DistinctFrames(rows))
	assert.True(t, SourceFrameSet(rows)["A"])
	assert.False(t, SourceFrameSet(rows)["B"])
	assert.True(t, TargetFrameSet(rows)["B"])

	pairs := DistinctPairs(rows)
	require.Len(t, pairs, 2)
	assert.Equal(t, model.FramePair{Source: "A", Target: "B"}, pairs[0])
	assert.Equal(t, model.FramePair{Source: "C", Target: "B"}, pairs[1])
}
