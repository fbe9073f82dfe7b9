package breakpoint

import (
	"github.com/dasnellings/svpileup/record"
	"github.com/dasnellings/svpileup/segment"
)

// DetectParams bundles the thresholds and reference metadata the detector
// needs (spec §4.6).
type DetectParams struct {
	MaxWithinReadDistance    int
	MaxReadPairInnerDistance int
	// IsCircular reports whether a contig (by refIndex) is circular, per
	// the sequence dictionary's circularity flag (spec §9 open question 4).
	IsCircular func(refIndex int) bool
}

// Detect walks chain pairwise via a sliding window of size 2 and emits one
// Evidence per pair where a breakpoint predicate fires (spec §4.6). A
// chain shorter than two segments yields no evidence.
func Detect(chain []segment.AlignedSegment, params DetectParams) []Evidence {
	if len(chain) < 2 {
		return nil
	}

	var out []Evidence
	for i := 0; i+1 < len(chain); i++ {
		s1, s2 := chain[i], chain[i+1]
		if !breakpointFires(s1, s2, params) {
			continue
		}

		kind := SplitRead
		if s1.Origin.IsInterRead(s2.Origin) {
			kind = ReadPair
		}

		bp, fromIsLeft := buildBreakpoint(s1, s2)
		fromRecs, intoRecs := roleRecords(s1, s2)

		out = append(out, Evidence{
			Breakpoint: bp,
			Evidence:   kind,
			From:       fromRecs,
			Into:       intoRecs,
			FromIsLeft: fromIsLeft,
		})
	}
	return out
}

func breakpointFires(s1, s2 segment.AlignedSegment, params DetectParams) bool {
	if s1.Range.RefIndex != s2.Range.RefIndex {
		return true // inter-contig predicate
	}

	fires := strandFlip(s1, s2) || forwardMovesBack(s1, s2) || reverseMovesBack(s1, s2) || innerDistanceExceeded(s1, s2, params)
	if !fires {
		return false
	}
	if params.IsCircular != nil && params.IsCircular(s1.Range.RefIndex) {
		return false // circular contigs suppress intra-contig firing (spec §4.6)
	}
	return true
}

func strandFlip(s1, s2 segment.AlignedSegment) bool {
	return s1.PositiveStrand != s2.PositiveStrand
}

func forwardMovesBack(s1, s2 segment.AlignedSegment) bool {
	return s1.PositiveStrand && s2.Range.Start < s1.Range.End
}

func reverseMovesBack(s1, s2 segment.AlignedSegment) bool {
	return !s1.PositiveStrand && s1.Range.Start < s2.Range.Start
}

func innerDistance(s1, s2 segment.AlignedSegment) int {
	if s1.Range.Start <= s2.Range.Start {
		return s2.Range.Start - s1.Range.End
	}
	return s1.Range.Start - s2.Range.End
}

func innerDistanceExceeded(s1, s2 segment.AlignedSegment, params DetectParams) bool {
	maxDist := params.MaxWithinReadDistance
	if s1.Origin.IsInterRead(s2.Origin) {
		maxDist = params.MaxReadPairInnerDistance
	}
	return innerDistance(s1, s2) > maxDist
}

// buildBreakpoint constructs a canonical Breakpoint from an ordered
// from -> into segment pair (spec §4.6).
func buildBreakpoint(from, into segment.AlignedSegment) (Breakpoint, bool) {
	var raw Breakpoint
	raw.LeftRefIndex = from.Range.RefIndex
	if from.PositiveStrand {
		raw.LeftPos = from.Range.End
	} else {
		raw.LeftPos = from.Range.Start
	}
	raw.LeftPositive = from.PositiveStrand

	raw.RightRefIndex = into.Range.RefIndex
	if into.PositiveStrand {
		raw.RightPos = into.Range.Start
	} else {
		raw.RightPos = into.Range.End
	}
	raw.RightPositive = into.PositiveStrand

	if raw.IsCanonical() {
		return raw, true
	}
	return raw.Reversed(), false
}

// roleRecords picks the left/right record-set half of each segment that
// supports the breakpoint, per spec §4.6's "Role sets for record tagging".
func roleRecords(from, into segment.AlignedSegment) (fromRecs, intoRecs record.Set) {
	if from.PositiveStrand {
		fromRecs = from.RightRecs()
	} else {
		fromRecs = from.LeftRecs()
	}
	if into.PositiveStrand {
		intoRecs = into.LeftRecs()
	} else {
		intoRecs = into.RightRecs()
	}
	return
}
