package segment

import (
	"testing"

	"github.com/dasnellings/svpileup/record"
	"github.com/vertgenlab/gonomics/cigar"
)

type fakeRecord struct {
	refIndex                       int
	start, end                     int
	cig                            []cigar.Cigar
	mapped, paired, second, supp   bool
	positiveStrand                 bool
	mateMapped, matePositiveStrand bool
	mateRefName                    string
	mateStart, mateEnd             int
	tags                           map[string]string
}

func (f *fakeRecord) RefIndex() int               { return f.refIndex }
func (f *fakeRecord) Start() int                  { return f.start }
func (f *fakeRecord) End() int                    { return f.end }
func (f *fakeRecord) Cigar() []cigar.Cigar         { return f.cig }
func (f *fakeRecord) MapQ() uint8                  { return 60 }
func (f *fakeRecord) Mapped() bool                 { return f.mapped }
func (f *fakeRecord) Paired() bool                 { return f.paired }
func (f *fakeRecord) FirstOfPair() bool            { return f.paired && !f.second }
func (f *fakeRecord) SecondOfPair() bool           { return f.paired && f.second }
func (f *fakeRecord) Supplementary() bool          { return f.supp }
func (f *fakeRecord) PositiveStrand() bool         { return f.positiveStrand }
func (f *fakeRecord) MateMapped() bool             { return f.mateMapped }
func (f *fakeRecord) MateRefName() string          { return f.mateRefName }
func (f *fakeRecord) MateStart() int               { return f.mateStart }
func (f *fakeRecord) MateEnd() int                 { return f.mateEnd }
func (f *fakeRecord) MatePositiveStrand() bool     { return f.matePositiveStrand }
func (f *fakeRecord) SetTag(name, value string) {
	if f.tags == nil {
		f.tags = make(map[string]string)
	}
	f.tags[name] = value
}

func m(n int) cigar.Cigar { return cigar.Cigar{Op: 'M', RunLength: n} }
func softClip(n int) cigar.Cigar { return cigar.Cigar{Op: 'S', RunLength: n} }

func TestBuildForwardSegment(t *testing.T) {
	arena := record.NewArena(1)
	id := arena.Add(&fakeRecord{
		refIndex: 0, start: 100, end: 199, mapped: true, positiveStrand: true,
		cig: []cigar.Cigar{m(100)},
	})
	seg, err := Build(arena, id)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if seg.ReadStart != 1 || seg.ReadEnd != 100 {
		t.Errorf("forward segment ReadStart/ReadEnd = %d/%d, want 1/100", seg.ReadStart, seg.ReadEnd)
	}
	if seg.Origin != ReadOne {
		t.Errorf("unpaired record should have Origin ReadOne, got %v", seg.Origin)
	}
}

func TestBuildReverseSegmentUsesTrailingClip(t *testing.T) {
	arena := record.NewArena(1)
	id := arena.Add(&fakeRecord{
		refIndex: 0, start: 100, end: 149, mapped: true, positiveStrand: false,
		cig: []cigar.Cigar{softClip(10), m(50), softClip(5)},
	})
	seg, err := Build(arena, id)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if seg.ReadStart != 6 || seg.ReadEnd != 55 {
		t.Errorf("reverse segment ReadStart/ReadEnd = %d/%d, want 6/55", seg.ReadStart, seg.ReadEnd)
	}
}

func TestBuildUnmappedIsMalformed(t *testing.T) {
	arena := record.NewArena(1)
	id := arena.Add(&fakeRecord{mapped: false})
	if _, err := Build(arena, id); err == nil {
		t.Errorf("expected ErrMalformedAlignment for an unmapped record")
	}
}

func TestReadChainDropsLowUniqueSupplementary(t *testing.T) {
	primary := AlignedSegment{ReadStart: 1, ReadEnd: 90}
	supp := AlignedSegment{ReadStart: 85, ReadEnd: 100} // only 10 unique bases
	chain := ReadChain(primary, []AlignedSegment{supp}, 100, 20)
	if len(chain) != 1 {
		t.Fatalf("expected supplementary below minUniqueBasesToAdd to be dropped, got chain %v", chain)
	}
}

func TestReadChainKeepsHighUniqueSupplementary(t *testing.T) {
	primary := AlignedSegment{ReadStart: 1, ReadEnd: 50}
	supp := AlignedSegment{ReadStart: 51, ReadEnd: 100}
	chain := ReadChain(primary, []AlignedSegment{supp}, 100, 20)
	if len(chain) != 2 {
		t.Fatalf("expected supplementary adding 50 unique bases to be kept, got chain %v", chain)
	}
}
