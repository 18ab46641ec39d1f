// Package report writes the pipeline's tabular outputs.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/framesight/metanet/internal/core/model"
)

// Output file names. These are part of the tool's contract with downstream
// analysis notebooks; do not rename.
const (
	MappingsFile = "metaphor_mappings_roles_entailments.csv"
	TypingFile   = "frame_typing_expanded.csv"
	OverlapFile  = "similarity_overlap.csv"
)

// ListSeparator joins multi-value fields into a single CSV field.
const ListSeparator = ";"

// JoinList serializes a label or IRI list into one CSV field.
func JoinList(items []string) string {
	return strings.Join(items, ListSeparator)
}

// Writer writes CSV reports into a directory. Each file is created fresh,
// written once with a header row, and closed.
type Writer struct {
	Dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

func (w *Writer) write(name string, header []string, records [][]string) error {
	path := filepath.Join(w.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	cw := csv.NewWriter(f)
	cw.Write(header)
	for _, rec := range records {
		cw.Write(rec)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	return nil
}

func (w *Writer) WriteMappings(rows []model.MappingRow) error {
	header := []string{"metaphor", "source_frame", "target_frame", "source_role", "target_role", "entailment", "example"}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Metaphor, r.SourceFrame, r.TargetFrame,
			r.SourceRole, r.TargetRole, r.Entailment, r.Example,
		})
	}
	return w.write(MappingsFile, header, records)
}

func (w *Writer) WriteTyping(rows []model.TypingRow) error {
	header := []string{"seed_frame", "equivalent_or_related_frames", "as_source", "as_target"}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.SeedFrame, JoinList(r.Candidates),
			strconv.FormatBool(r.AsSource), strconv.FormatBool(r.AsTarget),
		})
	}
	return w.write(TypingFile, header, records)
}

func (w *Writer) WriteOverlap(rows []model.OverlapRow) error {
	header := []string{"source_frame", "target_frame", "n_common_frame_elements", "n_common_synset_labels", "common_frame_elements", "common_synset_labels"}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.SourceFrame, r.TargetFrame,
			strconv.Itoa(len(r.CommonFrameElements)), strconv.Itoa(len(r.CommonSynsetLabels)),
			JoinList(r.CommonFrameElements), JoinList(r.CommonSynsetLabels),
		})
	}
	return w.write(OverlapFile, header, records)
}
