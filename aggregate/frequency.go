package aggregate

import (
	"strconv"
	"strings"
)

// RecordSource is the random-access query surface the allele-frequency
// scan needs (spec §4.10). samio.RandomAccess satisfies this.
type RecordSource interface {
	Overlapping(contig string, start, end int) []AllelicRecord
}

// AllelicRecord is the set of record accessors the frequency scan reads: a
// subset of record.Record's methods plus TemplateName and RefName. Kept narrow so RecordSource doesn't pull in the record package's
// full interface for a read-only consumer.
type AllelicRecord interface {
	TemplateName() string
	Start() int
	End() int
	Paired() bool
	MateRefName() string
	MateMapped() bool
	MateStart() int
	MateEnd() int
	PositiveStrand() bool
	MatePositiveStrand() bool
	RefName() string
}

// ComputeFrequencies fills LeftFrequency/RightFrequency on row in place,
// per spec §4.10: skipped (nil) below minBreakpointSupport, and abandoned
// (nil) if the overlapper count outgrows total/minFrequency mid-scan.
func ComputeFrequencies(row *Row, src RecordSource, params Params) {
	if src == nil {
		return
	}
	if row.Total < params.MinBreakpointSupport {
		return
	}
	row.LeftFrequency = scanSide(row.LeftContig, row.LeftMinPos, row.LeftMaxPos, parsePositions(row.LeftPileups), row, src, params)
	row.RightFrequency = scanSide(row.RightContig, row.RightMinPos, row.RightMaxPos, parsePositions(row.RightPileups), row, src, params)
}

func scanSide(contig string, minPos, maxPos int, positions []int, row *Row, src RecordSource, params Params) *float64 {
	bound := float64(row.Total) / params.MinFrequency
	start := minPos - params.Flank
	end := maxPos + params.Flank

	overlappers := make(map[string]bool)
	for _, rec := range src.Overlapping(contig, start, end) {
		spanStart, spanEnd := templateSpan(rec)
		if spansAnyBreakend(spanStart, spanEnd, positions) {
			overlappers[rec.TemplateName()] = true
			if float64(len(overlappers)) > bound {
				return nil
			}
		}
	}

	if len(overlappers) == 0 {
		return nil
	}
	freq := float64(row.Total) / float64(len(overlappers))
	return &freq
}

// parsePositions splits a LeftPileups/RightPileups column (comma-joined,
// per aggregateCluster's joinSortedUnique) back into its constituent
// breakend positions.
func parsePositions(csv string) []int {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// templateSpan returns the template's genomic span: the FR-pair span
// [min(start,mateStart), max(end,mateEnd)] when the record is paired with
// a mate mapped to the same contig, oriented FR (positive-strand read
// upstream of mate), else the record's own [start, end].
func templateSpan(rec AllelicRecord) (int, int) {
	orientedFR := rec.PositiveStrand() != rec.MatePositiveStrand() && rec.PositiveStrand() && rec.Start() <= rec.MateStart()
	if rec.Paired() && rec.MateMapped() && rec.MateRefName() == rec.RefName() && orientedFR {
		return min(rec.Start(), rec.MateStart()), max(rec.End(), rec.MateEnd())
	}
	return rec.Start(), rec.End()
}

// spansAnyBreakend reports whether [spanStart, spanEnd] covers any of the
// cluster's constituent breakend positions (spec §4.10: "iff any
// constituent breakend position lies within that span"), not just the
// cluster's min/max extremes.
func spansAnyBreakend(spanStart, spanEnd int, positions []int) bool {
	for _, p := range positions {
		if p >= spanStart && p <= spanEnd {
			return true
		}
	}
	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
