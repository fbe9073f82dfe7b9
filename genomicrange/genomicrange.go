// Package genomicrange provides a 1-based inclusive reference interval used
// throughout svpileup to describe where an aligned segment or breakpoint
// sits on a contig.
package genomicrange

import (
	"fmt"

	"github.com/vertgenlab/gonomics/numbers"
)

// GenomicRange is a 1-based inclusive interval [Start, End] on the contig
// identified by RefIndex. Start must be <= End.
type GenomicRange struct {
	RefIndex int
	Start    int
	End      int
}

// New builds a GenomicRange, panicking if start > end since callers always
// derive ranges from already-validated alignment coordinates.
func New(refIndex, start, end int) GenomicRange {
	if start > end {
		panic(fmt.Sprintf("genomicrange: start %d > end %d", start, end))
	}
	return GenomicRange{RefIndex: refIndex, Start: start, End: end}
}

// Overlaps reports whether g and o sit on the same contig and their
// [Start,End] spans intersect.
func (g GenomicRange) Overlaps(o GenomicRange) bool {
	if g.RefIndex != o.RefIndex {
		return false
	}
	return g.Start <= o.End && o.Start <= g.End
}

// Union returns the smallest range containing both g and o. Callers must
// only call Union when Overlaps(o) is true.
func (g GenomicRange) Union(o GenomicRange) GenomicRange {
	if g.RefIndex != o.RefIndex {
		panic("genomicrange: Union of ranges on different contigs")
	}
	return GenomicRange{
		RefIndex: g.RefIndex,
		Start:    numbers.Min(g.Start, o.Start),
		End:      numbers.Max(g.End, o.End),
	}
}

// Less orders ranges by RefIndex, then Start, then End.
func (g GenomicRange) Less(o GenomicRange) bool {
	switch {
	case g.RefIndex != o.RefIndex:
		return g.RefIndex < o.RefIndex
	case g.Start != o.Start:
		return g.Start < o.Start
	default:
		return g.End < o.End
	}
}

// String satisfies fmt.Stringer for debug logging.
func (g GenomicRange) String() string {
	return fmt.Sprintf("%d:%d-%d", g.RefIndex, g.Start, g.End)
}
