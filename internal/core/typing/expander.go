package typing

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/framesight/metanet/internal/core/model"
	"github.com/framesight/metanet/internal/driver"
)

// Membership decides whether a frame is used as a source or target frame
// anywhere in the mapping results.
type Membership interface {
	IsSource(ctx context.Context, frame string) (bool, error)
	IsTarget(ctx context.Context, frame string) (bool, error)
}

// SetMembership tests against the in-memory frame sets derived from the
// mapping extraction. This is the default.
type SetMembership struct {
	Sources map[string]bool
	Targets map[string]bool
}

func (m SetMembership) IsSource(_ context.Context, frame string) (bool, error) {
	return m.Sources[frame], nil
}

func (m SetMembership) IsTarget(_ context.Context, frame string) (bool, error) {
	return m.Targets[frame], nil
}

// AskMembership tests against the endpoint with per-candidate ASK queries,
// so candidates count as sources or targets even when the metaphor that
// uses them was not part of this run's input.
type AskMembership struct {
	Executor driver.QueryExecutor
}

func (m AskMembership) IsSource(ctx context.Context, frame string) (bool, error) {
	return m.Executor.Ask(ctx, driver.MembershipAskQuery(frame, "hasSourceFrame"))
}

func (m AskMembership) IsTarget(ctx context.Context, frame string) (bool, error) {
	return m.Executor.Ask(ctx, driver.MembershipAskQuery(frame, "hasTargetFrame"))
}

// Expander follows near-equivalence edges one hop out from each seed frame
// and records whether any of the collected candidates is itself used as a
// source or target frame.
type Expander struct {
	Executor   driver.QueryExecutor
	Membership Membership
}

func NewExpander(exec driver.QueryExecutor, membership Membership) *Expander {
	return &Expander{Executor: exec, Membership: membership}
}

// ExpandAll produces exactly one row per seed, in input order. The
// membership flags are aggregated per seed: true when any candidate
// matches. A seed with no equivalence edges gets an empty candidate list
// and both flags false.
func (e *Expander) ExpandAll(ctx context.Context, seeds []string) ([]model.TypingRow, error) {
	rows := make([]model.TypingRow, 0, len(seeds))

	for i, seed := range seeds {
		log.Printf("Expanding frame typing %d/%d: %s", i+1, len(seeds), seed)
		result, err := e.Executor.Select(ctx, driver.ExpansionQuery(seed))
		if err != nil {
			return nil, fmt.Errorf("failed to expand %s: %w", seed, err)
		}

		set := map[string]struct{}{}
		for _, r := range result {
			c := r.Get("candidate")
			if c == "" || c == seed {
				continue
			}
			set[c] = struct{}{}
		}
		candidates := make([]string, 0, len(set))
		for c := range set {
			candidates = append(candidates, c)
		}
		sort.Strings(candidates)

		row := model.TypingRow{SeedFrame: seed, Candidates: candidates}
		for _, c := range candidates {
			if !row.AsSource {
				ok, err := e.Membership.IsSource(ctx, c)
				if err != nil {
					return nil, fmt.Errorf("failed source check for %s: %w", c, err)
				}
				row.AsSource = ok
			}
			if !row.AsTarget {
				ok, err := e.Membership.IsTarget(ctx, c)
				if err != nil {
					return nil, fmt.Errorf("failed target check for %s: %w", c, err)
				}
				row.AsTarget = ok
			}
			if row.AsSource && row.AsTarget {
				break
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
