// Package targets wraps a target-region BED file as an interval index,
// shared by the pileup and aggregate stages for overlap annotation (spec
// §4.10, §6 "--targets-bed").
package targets

import (
	"strings"

	"github.com/vertgenlab/gonomics/bed"
	"github.com/vertgenlab/gonomics/interval"
	"golang.org/x/exp/slices"
)

// Requirement controls how target overlap affects breakpoint pileup rows
// (spec §6 "--targets-bed-requirement").
type Requirement int

const (
	AnnotateOnly Requirement = iota
	OverlapAny
	OverlapBoth
)

// ParseRequirement parses the three CLI values, matching
// cmd/duplextools's plain string-switch flag-parsing style.
func ParseRequirement(s string) (Requirement, bool) {
	switch s {
	case "AnnotateOnly":
		return AnnotateOnly, true
	case "OverlapAny":
		return OverlapAny, true
	case "OverlapBoth":
		return OverlapBoth, true
	default:
		return AnnotateOnly, false
	}
}

// Index is a gonomics/interval tree over a target BED's regions, built the
// way filter/filter.go builds its exclusion tree.
type Index struct {
	tree map[string]*interval.IntervalNode
}

// NewIndex reads path (a BED file) and builds the interval index.
func NewIndex(path string) *Index {
	regions := bed.Read(path)
	ivs := make([]interval.Interval, len(regions))
	for i := range regions {
		ivs[i] = regions[i]
	}
	return &Index{tree: interval.BuildTree(ivs)}
}

// Overlaps reports whether [start,end] (1-based inclusive) overlaps any
// target region on contig, and the sorted, deduplicated names of the
// overlapping regions.
func (idx *Index) Overlaps(contig string, start, end int) (bool, []string) {
	if idx == nil {
		return false, nil
	}
	q := bed.Bed{Chrom: contig, ChromStart: start - 1, ChromEnd: end, FieldsInitialized: 3}
	hits := interval.Query(idx.tree, q, "any")
	if len(hits) == 0 {
		return false, nil
	}
	names := make(map[string]bool, len(hits))
	for _, h := range hits {
		if b, ok := h.(bed.Bed); ok {
			name := b.Name
			if name == "" {
				name = contig
			}
			names[name] = true
		}
	}
	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	slices.Sort(out)
	return true, out
}

// JoinNames comma-joins names for the *_targets table column.
func JoinNames(names []string) string { return strings.Join(names, ",") }
