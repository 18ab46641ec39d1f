package model

// MappingRow is one flattened metaphor mapping: one row per
// (metaphor, role pair) combination. Role, entailment, and example fields
// may be empty; the frame pair never is.
type MappingRow struct {
	Metaphor    string `json:"metaphor"`
	SourceFrame string `json:"source_frame"`
	TargetFrame string `json:"target_frame"`
	SourceRole  string `json:"source_role,omitempty"`
	TargetRole  string `json:"target_role,omitempty"`
	Entailment  string `json:"entailment,omitempty"`
	Example     string `json:"example,omitempty"`
}

// TypingRow records the near-equivalence expansion of one seed frame.
// Candidates exclude the seed and are sorted. The membership flags are
// aggregated over the candidates: true when any candidate appears among the
// mapping output's source (resp. target) frames.
type TypingRow struct {
	SeedFrame  string   `json:"seed_frame"`
	Candidates []string `json:"equivalent_or_related_frames"`
	AsSource   bool     `json:"as_source"`
	AsTarget   bool     `json:"as_target"`
}

// OverlapRow holds the label-overlap statistics for one distinct
// (source frame, target frame) pair. The lists are sorted; the counts
// always equal the list lengths.
type OverlapRow struct {
	SourceFrame         string   `json:"source_frame"`
	TargetFrame         string   `json:"target_frame"`
	CommonFrameElements []string `json:"common_frame_elements"`
	CommonSynsetLabels  []string `json:"common_synset_labels"`
}

// FramePair identifies a distinct source/target combination.
type FramePair struct {
	Source string
	Target string
}
