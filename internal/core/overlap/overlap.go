package overlap

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/framesight/metanet/internal/core/model"
	"github.com/framesight/metanet/internal/driver"
)

// Computer fetches frame-element and synset labels for frame pairs and
// computes their set overlaps.
type Computer struct {
	Executor driver.QueryExecutor
}

func NewComputer(exec driver.QueryExecutor) *Computer {
	return &Computer{Executor: exec}
}

// frameLabels runs the label-fetch query for one frame and splits the
// bindings into the two label sets.
func (c *Computer) frameLabels(ctx context.Context, frame string) (fe, syn map[string]struct{}, err error) {
	rows, err := c.Executor.Select(ctx, driver.LabelsQuery(frame))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch labels for %s: %w", frame, err)
	}

	fe = map[string]struct{}{}
	syn = map[string]struct{}{}
	for _, r := range rows {
		if v := strings.TrimSpace(r.Get("feLabel")); v != "" {
			fe[v] = struct{}{}
		}
		if v := strings.TrimSpace(r.Get("synLabel")); v != "" {
			syn[v] = struct{}{}
		}
	}
	return fe, syn, nil
}

func intersect(a, b map[string]struct{}) []string {
	common := []string{}
	for v := range a {
		if _, ok := b[v]; ok {
			common = append(common, v)
		}
	}
	sort.Strings(common)
	return common
}

// ComputeAll produces one row per pair, in input order. A frame with no
// frame elements or no linked senses yields empty intersections, not an
// error.
func (c *Computer) ComputeAll(ctx context.Context, pairs []model.FramePair) ([]model.OverlapRow, error) {
	rows := make([]model.OverlapRow, 0, len(pairs))

	for i, p := range pairs {
		log.Printf("Computing overlap %d/%d: %s vs %s", i+1, len(pairs), p.Source, p.Target)
		srcFE, srcSyn, err := c.frameLabels(ctx, p.Source)
		if err != nil {
			return nil, err
		}
		tgtFE, tgtSyn, err := c.frameLabels(ctx, p.Target)
		if err != nil {
			return nil, err
		}

		rows = append(rows, model.OverlapRow{
			SourceFrame:         p.Source,
			TargetFrame:         p.Target,
			CommonFrameElements: intersect(srcFE, tgtFE),
			CommonSynsetLabels:  intersect(srcSyn, tgtSyn),
		})
	}

	return rows, nil
}
