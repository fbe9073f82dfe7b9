package aggregate

import "testing"

type fakeAllelicRecord struct {
	templateName               string
	start, end                 int
	paired, mateMapped         bool
	mateRefName                string
	mateStart, mateEnd         int
	positiveStrand             bool
	matePositiveStrand         bool
	refName                    string
}

func (f *fakeAllelicRecord) TemplateName() string      { return f.templateName }
func (f *fakeAllelicRecord) Start() int                { return f.start }
func (f *fakeAllelicRecord) End() int                  { return f.end }
func (f *fakeAllelicRecord) Paired() bool              { return f.paired }
func (f *fakeAllelicRecord) MateRefName() string       { return f.mateRefName }
func (f *fakeAllelicRecord) MateMapped() bool          { return f.mateMapped }
func (f *fakeAllelicRecord) MateStart() int            { return f.mateStart }
func (f *fakeAllelicRecord) MateEnd() int              { return f.mateEnd }
func (f *fakeAllelicRecord) PositiveStrand() bool      { return f.positiveStrand }
func (f *fakeAllelicRecord) MatePositiveStrand() bool  { return f.matePositiveStrand }
func (f *fakeAllelicRecord) RefName() string           { return f.refName }

type fakeSource struct {
	recs []AllelicRecord
}

func (s *fakeSource) Overlapping(contig string, start, end int) []AllelicRecord {
	var out []AllelicRecord
	for _, r := range s.recs {
		out = append(out, r)
	}
	return out
}

func spanningRecord(name string, start, end int) AllelicRecord {
	return &fakeAllelicRecord{templateName: name, start: start, end: end, refName: "chr1"}
}

func TestComputeFrequenciesSkippedWithoutSource(t *testing.T) {
	row := Row{LeftContig: "chr1", LeftMinPos: 100, LeftMaxPos: 100, LeftPileups: "100", Total: 5}
	ComputeFrequencies(&row, nil, Params{MinFrequency: 0.1})
	if row.LeftFrequency != nil || row.RightFrequency != nil {
		t.Errorf("expected no frequencies computed without a source, got %+v", row)
	}
}

func TestComputeFrequenciesSkippedBelowMinSupport(t *testing.T) {
	row := Row{LeftContig: "chr1", LeftMinPos: 100, LeftMaxPos: 100, LeftPileups: "100", Total: 1}
	src := &fakeSource{recs: []AllelicRecord{spanningRecord("t1", 90, 110)}}
	ComputeFrequencies(&row, src, Params{MinBreakpointSupport: 2, MinFrequency: 0.1})
	if row.LeftFrequency != nil {
		t.Errorf("expected frequency skipped below MinBreakpointSupport, got %v", row.LeftFrequency)
	}
}

func TestComputeFrequenciesCountsUniqueTemplates(t *testing.T) {
	row := Row{
		LeftContig: "chr1", LeftMinPos: 100, LeftMaxPos: 100, LeftPileups: "100",
		RightContig: "chr1", RightMinPos: 500, RightMaxPos: 500, RightPileups: "500",
		Total: 2,
	}
	src := &fakeSource{recs: []AllelicRecord{
		spanningRecord("t1", 90, 110),
		spanningRecord("t2", 95, 105),
		spanningRecord("t3", 80, 120),
		spanningRecord("t4", 1000, 1010), // does not span either breakend
	}}
	ComputeFrequencies(&row, src, Params{MinFrequency: 0.01, Flank: 0})
	if row.LeftFrequency == nil {
		t.Fatalf("expected a left frequency to be computed")
	}
	if *row.LeftFrequency != 2.0/3.0 {
		t.Errorf("LeftFrequency = %v, want %v", *row.LeftFrequency, 2.0/3.0)
	}
}

func TestComputeFrequenciesNilWithNoOverlappers(t *testing.T) {
	row := Row{LeftContig: "chr1", LeftMinPos: 100, LeftMaxPos: 100, LeftPileups: "100", Total: 2}
	src := &fakeSource{recs: []AllelicRecord{spanningRecord("t1", 1000, 1010)}}
	ComputeFrequencies(&row, src, Params{MinFrequency: 0.01})
	if row.LeftFrequency != nil {
		t.Errorf("expected nil frequency when nothing overlaps, got %v", *row.LeftFrequency)
	}
}

func TestComputeFrequenciesAbandonedWhenOverlappersExceedBound(t *testing.T) {
	row := Row{LeftContig: "chr1", LeftMinPos: 100, LeftMaxPos: 100, LeftPileups: "100", Total: 1}
	src := &fakeSource{recs: []AllelicRecord{
		spanningRecord("t1", 90, 110),
		spanningRecord("t2", 90, 110),
		spanningRecord("t3", 90, 110),
	}}
	ComputeFrequencies(&row, src, Params{MinFrequency: 0.9})
	if row.LeftFrequency != nil {
		t.Errorf("expected frequency abandoned once overlappers outgrow total/minFrequency, got %v", *row.LeftFrequency)
	}
}

func TestComputeFrequenciesCountsConstituentPositionsNotJustExtremes(t *testing.T) {
	// Cluster spans [100,300] but its constituent breakends are only at
	// 100 and 300 (per LeftPileups) — nothing was actually pileup'd at
	// 200, so a template that only spans the gap (not either constituent
	// position) must not count as an overlapper.
	row := Row{LeftContig: "chr1", LeftMinPos: 100, LeftMaxPos: 300, LeftPileups: "100,300", Total: 2}
	src := &fakeSource{recs: []AllelicRecord{
		spanningRecord("t1", 95, 105),  // spans constituent position 100
		spanningRecord("t2", 295, 305), // spans constituent position 300
		spanningRecord("t3", 150, 250), // spans only the gap between 100 and 300
	}}
	ComputeFrequencies(&row, src, Params{MinFrequency: 0.01, Flank: 0})
	if row.LeftFrequency == nil {
		t.Fatalf("expected a left frequency to be computed")
	}
	if *row.LeftFrequency != 1.0 {
		t.Errorf("LeftFrequency = %v, want %v (2 total / 2 overlappers, t3 excluded)", *row.LeftFrequency, 1.0)
	}
}

func TestTemplateSpanUsesMatePairWhenOrientedFR(t *testing.T) {
	rec := &fakeAllelicRecord{
		start: 100, end: 150, refName: "chr1",
		paired: true, mateMapped: true, mateRefName: "chr1", mateStart: 200, mateEnd: 250,
		positiveStrand: true, matePositiveStrand: false,
	}
	start, end := templateSpan(rec)
	if start != 100 || end != 250 {
		t.Errorf("templateSpan = %d/%d, want 100/250", start, end)
	}
}

func TestTemplateSpanFallsBackToOwnSpan(t *testing.T) {
	rec := &fakeAllelicRecord{start: 100, end: 150, refName: "chr1", paired: false}
	start, end := templateSpan(rec)
	if start != 100 || end != 150 {
		t.Errorf("templateSpan = %d/%d, want 100/150", start, end)
	}
}

func TestTemplateSpanRejectsFFPairDespiteOrderedStarts(t *testing.T) {
	// Both ends positive strand: not FR, even though start <= mateStart.
	rec := &fakeAllelicRecord{
		start: 100, end: 150, refName: "chr1",
		paired: true, mateMapped: true, mateRefName: "chr1", mateStart: 200, mateEnd: 250,
		positiveStrand: true, matePositiveStrand: true,
	}
	start, end := templateSpan(rec)
	if start != 100 || end != 150 {
		t.Errorf("templateSpan = %d/%d, want own span 100/150 for an FF pair", start, end)
	}
}

func TestTemplateSpanRejectsDownstreamMateOfFRPair(t *testing.T) {
	// This is the negative-strand (downstream) mate of a genuine FR pair:
	// its own strand is negative, so it must not claim the merged span.
	rec := &fakeAllelicRecord{
		start: 200, end: 250, refName: "chr1",
		paired: true, mateMapped: true, mateRefName: "chr1", mateStart: 100, mateEnd: 150,
		positiveStrand: false, matePositiveStrand: true,
	}
	start, end := templateSpan(rec)
	if start != 200 || end != 250 {
		t.Errorf("templateSpan = %d/%d, want own span 200/250 for the downstream mate", start, end)
	}
}
