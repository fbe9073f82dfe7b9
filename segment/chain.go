package segment

import (
	"sort"

	"github.com/dasnellings/svpileup/record"
)

// ReadChain builds the deduplicated ordered chain of segments for one read
// end: a primary alignment plus zero or more supplementaries (spec §4.2).
//
// A bit set of read positions covered so far starts with the primary's
// span. Supplementaries are considered in ascending (ReadStart, ReadEnd)
// order (ties broken by insertion order, via a stable sort per spec §9
// open question 2); each is kept only if it adds at least
// minUniqueBasesToAdd bases not already covered.
func ReadChain(primary AlignedSegment, supplementaries []AlignedSegment, readLength, minUniqueBasesToAdd int) []AlignedSegment {
	covered := make([]bool, readLength+1) // 1-indexed; index 0 unused
	cover := func(s AlignedSegment) {
		for p := s.ReadStart; p <= s.ReadEnd && p <= readLength; p++ {
			covered[p] = true
		}
	}
	uncoveredCount := func(s AlignedSegment) int {
		n := 0
		for p := s.ReadStart; p <= s.ReadEnd && p <= readLength; p++ {
			if !covered[p] {
				n++
			}
		}
		return n
	}

	ordered := append([]AlignedSegment(nil), supplementaries...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].ReadStart != ordered[j].ReadStart {
			return ordered[i].ReadStart < ordered[j].ReadStart
		}
		return ordered[i].ReadEnd < ordered[j].ReadEnd
	})

	cover(primary)
	kept := []AlignedSegment{primary}
	for _, supp := range ordered {
		if uncoveredCount(supp) >= minUniqueBasesToAdd {
			cover(supp)
			kept = append(kept, supp)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].ReadStart != kept[j].ReadStart {
			return kept[i].ReadStart < kept[j].ReadStart
		}
		return kept[i].ReadEnd < kept[j].ReadEnd
	})
	return kept
}

// Template holds the primary and supplementary records for one query name,
// split by read end (spec §6: "each template exposes optional R1 primary,
// optional R2 primary, and lists of R1 and R2 supplementaries").
type Template struct {
	R1Primary   *record.ID
	R1Supps     []record.ID
	R2Primary   *record.ID
	R2Supps     []record.ID
	ReadLength1 int
	ReadLength2 int
}

// BuildChain assembles the final, ordered segment chain for a template per
// spec §4.3: build each read end's chain independently, then merge them
// (after reversing R2 onto the forward/template-sequencing strand) per
// §4.4. Returns ErrEmptyTemplate if neither primary is present.
func BuildChain(arena *record.Arena, t Template, minUniqueBasesToAdd, slop int) ([]AlignedSegment, error) {
	if t.R1Primary == nil && t.R2Primary == nil {
		return nil, ErrEmptyTemplate
	}

	r1Chain, err := buildEndChain(arena, t.R1Primary, t.R1Supps, t.ReadLength1, minUniqueBasesToAdd)
	if err != nil {
		return nil, err
	}
	r2Chain, err := buildEndChain(arena, t.R2Primary, t.R2Supps, t.ReadLength2, minUniqueBasesToAdd)
	if err != nil {
		return nil, err
	}

	if len(r1Chain) == 0 {
		return r2Chain, nil
	}
	if len(r2Chain) == 0 {
		return r1Chain, nil
	}

	reversed := make([]AlignedSegment, len(r2Chain))
	for i := range r2Chain {
		reversed[len(r2Chain)-1-i] = negateStrand(r2Chain[i])
	}

	return mergeAlignedSegments(arena, r1Chain, reversed, slop), nil
}

func buildEndChain(arena *record.Arena, primary *record.ID, supps []record.ID, readLength, minUniqueBasesToAdd int) ([]AlignedSegment, error) {
	if primary == nil {
		return nil, nil
	}
	primarySeg, err := Build(arena, *primary)
	if err != nil {
		return nil, err
	}
	suppSegs := make([]AlignedSegment, 0, len(supps))
	for _, id := range supps {
		seg, err := Build(arena, id)
		if err != nil {
			return nil, err
		}
		suppSegs = append(suppSegs, seg)
	}
	return ReadChain(primarySeg, suppSegs, readLength, minUniqueBasesToAdd), nil
}

func negateStrand(s AlignedSegment) AlignedSegment {
	s.PositiveStrand = !s.PositiveStrand
	return s
}

// mergeAlignedSegments implements the tail-recursive merge of spec §4.4:
// progressively widen the candidate merge window k until either it exceeds
// a chain's length (give up, concatenate unmerged) or every pair in the
// last-k-of-r1 / first-k-of-r2 window strand-overlaps (merge them).
func mergeAlignedSegments(arena *record.Arena, r1, r2 []AlignedSegment, slop int) []AlignedSegment {
	for k := 1; k <= len(r1) && k <= len(r2); k++ {
		if allPairsStrandOverlap(r1, r2, k) {
			return mergeAtDepth(arena, r1, r2, k, slop)
		}
	}
	return append(append([]AlignedSegment(nil), r1...), r2...)
}

func allPairsStrandOverlap(r1, r2 []AlignedSegment, k int) bool {
	for i := 0; i < k; i++ {
		s1 := r1[len(r1)-k+i]
		s2 := r2[i]
		if !s1.StrandOverlaps(s2) {
			return false
		}
	}
	return true
}

func mergeAtDepth(arena *record.Arena, r1, r2 []AlignedSegment, k, slop int) []AlignedSegment {
	out := make([]AlignedSegment, 0, len(r1)+len(r2)-k)
	out = append(out, r1[:len(r1)-k]...)
	for i := 0; i < k; i++ {
		out = append(out, mergePair(arena, r1[len(r1)-k+i], r2[i], slop))
	}
	out = append(out, r2[k:]...)
	return out
}

// mergePair merges two strand-overlapping segments per spec §4.4: union
// their ranges, tag the origin Both (unless they already share an origin),
// reset read coordinates, and partition supporting records into left/right
// by slop-distance to the merged range's endpoints (spec §4.7's tandem
// canonicalization falls out of this automatically: identical ranges on
// the same strand merge into one Both segment whose endpoints become the
// eventual breakpoint's left/right positions).
func mergePair(arena *record.Arena, a, b AlignedSegment, slop int) AlignedSegment {
	merged := a.Range.Union(b.Range)

	origin := Both
	if a.Origin == b.Origin {
		origin = a.Origin
	}

	allRecs := a.Recs.Union(b.Recs)
	var left, right record.Set
	for _, id := range allRecs {
		r := arena.Get(id)
		if abs(r.Start()-merged.Start) <= slop {
			left.Add(id)
		}
		if abs(r.Start()-merged.End) <= slop {
			right.Add(id)
		}
	}

	return AlignedSegment{
		Origin:         origin,
		ReadStart:      1,
		ReadEnd:        1,
		PositiveStrand: a.PositiveStrand,
		Cigar:          nil,
		Range:          merged,
		Recs:           allRecs,
		leftRecs:       left,
		rightRecs:      right,
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
