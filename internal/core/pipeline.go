// Package core wires the three retrieval stages into one run.
package core

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"

	"github.com/framesight/metanet/internal/core/mappings"
	"github.com/framesight/metanet/internal/core/model"
	"github.com/framesight/metanet/internal/core/overlap"
	"github.com/framesight/metanet/internal/core/typing"
	"github.com/framesight/metanet/internal/driver"
	"github.com/framesight/metanet/internal/report"
)

// Pipeline runs mapping extraction, frame typing expansion, and overlap
// computation in sequence, writing each stage's CSV as soon as the stage
// completes. The first query or write failure aborts the run; files for
// stages already finished stay on disk.
type Pipeline struct {
	Executor driver.QueryExecutor
	Reports  *report.Writer

	// RemoteMembership switches the typing stage from in-memory set tests
	// to per-candidate ASK queries against the endpoint.
	RemoteMembership bool
}

func NewPipeline(exec driver.QueryExecutor, reports *report.Writer) *Pipeline {
	return &Pipeline{Executor: exec, Reports: reports}
}

// Summary describes a completed run.
type Summary struct {
	RunID       string
	Metaphors   int
	MappingRows int
	Frames      int
	Pairs       int
	TopPairs    []model.OverlapRow
}

// Run executes the full pipeline over the given metaphor IRIs.
func (p *Pipeline) Run(ctx context.Context, metaphors []string) (*Summary, error) {
	runID := uuid.New().String()
	log.Printf("Starting run %s with %d metaphors", runID, len(metaphors))

	extractor := mappings.NewExtractor(p.Executor)
	mappingRows, err := extractor.ExtractAll(ctx, metaphors)
	if err != nil {
		return nil, fmt.Errorf("mapping extraction failed: %w", err)
	}
	if err := p.Reports.WriteMappings(mappingRows); err != nil {
		return nil, err
	}

	frames := mappings.DistinctFrames(mappingRows)

	var membership typing.Membership
	if p.RemoteMembership {
		membership = typing.AskMembership{Executor: p.Executor}
	} else {
		membership = typing.SetMembership{
			Sources: mappings.SourceFrameSet(mappingRows),
			Targets: mappings.TargetFrameSet(mappingRows),
		}
	}
	expander := typing.NewExpander(p.Executor, membership)
	typingRows, err := expander.ExpandAll(ctx, frames)
	if err != nil {
		return nil, fmt.Errorf("frame typing expansion failed: %w", err)
	}
	if err := p.Reports.WriteTyping(typingRows); err != nil {
		return nil, err
	}

	pairs := mappings.DistinctPairs(mappingRows)
	computer := overlap.NewComputer(p.Executor)
	overlapRows, err := computer.ComputeAll(ctx, pairs)
	if err != nil {
		return nil, fmt.Errorf("overlap computation failed: %w", err)
	}
	if err := p.Reports.WriteOverlap(overlapRows); err != nil {
		return nil, err
	}

	summary := &Summary{
		RunID:       runID,
		Metaphors:   len(metaphors),
		MappingRows: len(mappingRows),
		Frames:      len(frames),
		Pairs:       len(pairs),
		TopPairs:    topByOverlap(overlapRows, 5),
	}
	log.Printf("Run %s complete: %d mapping rows, %d frames, %d pairs",
		runID, summary.MappingRows, summary.Frames, summary.Pairs)
	return summary, nil
}

// topByOverlap returns up to n rows ordered by frame-element overlap, then
// synset overlap, descending.
func topByOverlap(rows []model.OverlapRow, n int) []model.OverlapRow {
	sorted := make([]model.OverlapRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if len(a.CommonFrameElements) != len(b.CommonFrameElements) {
			return len(a.CommonFrameElements) > len(b.CommonFrameElements)
		}
		return len(a.CommonSynsetLabels) > len(b.CommonSynsetLabels)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
