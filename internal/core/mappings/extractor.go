package mappings

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/framesight/metanet/internal/core/model"
	"github.com/framesight/metanet/internal/driver"
)

// Extractor fetches metaphor-to-frame mappings and flattens them into one
// row per (metaphor, role pair) combination.
type Extractor struct {
	Executor driver.QueryExecutor
}

func NewExtractor(exec driver.QueryExecutor) *Extractor {
	return &Extractor{Executor: exec}
}

// ExtractAll runs the mapping query for each metaphor IRI in order. A
// metaphor with no frame mapping contributes no rows; a query failure
// aborts the whole extraction.
func (e *Extractor) ExtractAll(ctx context.Context, metaphors []string) ([]model.MappingRow, error) {
	var out []model.MappingRow
	seen := map[model.MappingRow]struct{}{}

	for i, iri := range metaphors {
		log.Printf("Fetching mappings %d/%d: %s", i+1, len(metaphors), iri)
		rows, err := e.Executor.Select(ctx, driver.MappingQuery(iri))
		if err != nil {
			return nil, fmt.Errorf("failed to fetch mappings for %s: %w", iri, err)
		}

		for _, r := range rows {
			row := model.MappingRow{
				Metaphor:    iri,
				SourceFrame: r.Get("src"),
				TargetFrame: r.Get("tgt"),
				SourceRole:  r.Get("srcRole"),
				TargetRole:  r.Get("tgtRole"),
				Entailment:  r.Get("ent"),
				Example:     r.Get("ex"),
			}
			if row.SourceFrame == "" || row.TargetFrame == "" {
				continue
			}
			if _, dup := seen[row]; dup {
				continue
			}
			seen[row] = struct{}{}
			out = append(out, row)
		}
	}

	return out, nil
}

// DistinctFrames returns every frame appearing as a source or target,
// sorted and deduplicated.
func DistinctFrames(rows []model.MappingRow) []string {
	set := map[string]struct{}{}
	for _, r := range rows {
		set[r.SourceFrame] = struct{}{}
		set[r.TargetFrame] = struct{}{}
	}
	frames := make([]string, 0, len(set))
	for f := range set {
		frames = append(frames, f)
	}
	sort.Strings(frames)
	return frames
}

// SourceFrameSet returns the set of frames used as a source frame.
func SourceFrameSet(rows []model.MappingRow) map[string]bool {
	set := map[string]bool{}
	for _, r := range rows {
		set[r.SourceFrame] = true
	}
	return set
}

// TargetFrameSet returns the set of frames used as a target frame.
func TargetFrameSet(rows []model.MappingRow) map[string]bool {
	set := map[string]bool{}
	for _, r := range rows {
		set[r.TargetFrame] = true
	}
	return set
}

// DistinctPairs returns the distinct (source, target) pairs in first-seen
// order. Repeated pairs from multiple role mappings collapse to one.
func DistinctPairs(rows []model.MappingRow) []model.FramePair {
	var pairs []model.FramePair
	seen := map[model.FramePair]struct{}{}
	for _, r := range rows {
		p := model.FramePair{Source: r.SourceFrame, Target: r.TargetFrame}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		pairs = append(pairs, p)
	}
	return pairs
}
