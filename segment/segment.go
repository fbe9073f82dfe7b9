// Package segment builds the ordered chain of AlignedSegments representing
// one template's trajectory through the reference (spec §4.1-§4.5): one
// mapped sub-range of a template in read-sequencing order, independent of
// strand.
package segment

import (
	"errors"
	"fmt"

	"github.com/dasnellings/svpileup/cigarutil"
	"github.com/dasnellings/svpileup/genomicrange"
	"github.com/dasnellings/svpileup/record"
	"github.com/vertgenlab/gonomics/cigar"
)

// ErrMalformedAlignment is returned when a record cannot yield a valid
// AlignedSegment: it is unmapped, or its cigar implies readEnd < readStart.
var ErrMalformedAlignment = errors.New("segment: malformed alignment")

// ErrEmptyTemplate is returned when a template has neither an R1 nor an R2
// primary alignment.
var ErrEmptyTemplate = errors.New("segment: empty template")

// AlignedSegment is one mapped portion of a template, expressed in
// read-sequencing order (spec §3).
type AlignedSegment struct {
	Origin         Origin
	ReadStart      int // 1-based inclusive, read-sequencing order
	ReadEnd        int // 1-based inclusive, read-sequencing order
	PositiveStrand bool
	Cigar          []cigar.Cigar
	Range          genomicrange.GenomicRange
	Recs           record.Set

	// leftRecs and rightRecs partition Recs into the records supporting the
	// left vs. right side of this segment. For an un-merged segment (built
	// from a single record) both equal Recs: the whole segment, and every
	// record behind it, sits on whichever side the breakpoint detector
	// assigns. Only a merged Both-origin segment (spec §4.4) has a genuine
	// slop-based partition.
	leftRecs, rightRecs record.Set
}

// LeftRecs returns the records supporting the left side of this segment.
func (s AlignedSegment) LeftRecs() record.Set { return s.leftRecs }

// RightRecs returns the records supporting the right side of this segment.
func (s AlignedSegment) RightRecs() record.Set { return s.rightRecs }

// StrandOverlaps reports whether s and o have overlapping reference ranges
// and agree in strand (spec §3).
func (s AlignedSegment) StrandOverlaps(o AlignedSegment) bool {
	return s.PositiveStrand == o.PositiveStrand && s.Range.Overlaps(o.Range)
}

// Build constructs an AlignedSegment from a single mapped alignment record,
// per spec §4.1. The record's ID in arena becomes the segment's sole member
// of Recs.
func Build(arena *record.Arena, id record.ID) (AlignedSegment, error) {
	r := arena.Get(id)
	if !r.Mapped() {
		return AlignedSegment{}, fmt.Errorf("%w: record is unmapped", ErrMalformedAlignment)
	}

	c := r.Cigar()
	leading := cigarutil.LeadingClip(c)
	trailing := cigarutil.TrailingClip(c)
	middle := cigarutil.MiddleReadLength(c)

	var readStart, readEnd int
	if r.PositiveStrand() {
		readStart = leading + 1
		readEnd = leading + middle
	} else {
		readStart = trailing + 1
		readEnd = trailing + middle
	}
	if readEnd < readStart {
		return AlignedSegment{}, fmt.Errorf("%w: readEnd %d < readStart %d", ErrMalformedAlignment, readEnd, readStart)
	}

	origin := ReadOne
	if r.Paired() && r.SecondOfPair() {
		origin = ReadTwo
	}

	recs := record.NewSet(id)
	return AlignedSegment{
		Origin:         origin,
		ReadStart:      readStart,
		ReadEnd:        readEnd,
		PositiveStrand: r.PositiveStrand(),
		Cigar:          c,
		Range:          genomicrange.New(r.RefIndex(), r.Start(), r.End()),
		Recs:           recs,
		leftRecs:       recs,
		rightRecs:      recs,
	}, nil
}
