package samio

import (
	"fmt"

	"github.com/dasnellings/svpileup/cigarutil"
	"github.com/vertgenlab/gonomics/cigar"
	"github.com/vertgenlab/gonomics/sam"
)

// flagPaired, flagSupplementary, flagMateUnmapped, and flagMateReverse have
// no decoded-boolean helper in gonomics/sam (only mapped/strand/first-of-pair
// are exposed that way, via sam.IsUnmapped/sam.IsPosStrand/sam.IsForwardRead),
// so they're read off the raw flag bitmask directly.
const (
	flagPaired        uint16 = 0x1
	flagMateUnmapped  uint16 = 0x8
	flagMateReverse   uint16 = 0x20
	flagSupplementary uint16 = 0x800
)

// Record adapts one gonomics/sam.Sam alignment to the record.Record
// interface (spec §6).
type Record struct {
	S    *sam.Sam
	dict *Dictionary
}

func (r *Record) RefIndex() int {
	idx, _ := r.dict.RefIndex(r.S.RName)
	return idx
}

func (r *Record) Start() int { return int(r.S.Pos) }

func (r *Record) End() int {
	return int(r.S.Pos) + cigarutil.ReferenceLength(r.S.Cigar) - 1
}

func (r *Record) Cigar() []cigar.Cigar { return r.S.Cigar }
func (r *Record) MapQ() uint8          { return r.S.MapQ }
func (r *Record) Mapped() bool         { return !sam.IsUnmapped(*r.S) }
func (r *Record) Paired() bool         { return r.S.Flag&flagPaired != 0 }
func (r *Record) FirstOfPair() bool    { return sam.IsForwardRead(*r.S) }
func (r *Record) SecondOfPair() bool   { return r.Paired() && !sam.IsForwardRead(*r.S) }
func (r *Record) Supplementary() bool  { return r.S.Flag&flagSupplementary != 0 }
func (r *Record) PositiveStrand() bool { return sam.IsPosStrand(*r.S) }
func (r *Record) MateMapped() bool     { return r.S.Flag&flagMateUnmapped == 0 }
func (r *Record) MateRefName() string  { return r.S.RNext }
func (r *Record) MateStart() int       { return int(r.S.PNext) }

// MateEnd approximates the mate's reference end as its start: gonomics'
// sam.Sam does not expose the mate's cigar (no MC tag decoding), so the
// true mate span is unavailable from the primary record alone. This only
// affects the aggregator's optional allele-frequency scan (spec §4.10),
// which otherwise falls back to treating start==end for the mate.
func (r *Record) MateEnd() int { return int(r.S.PNext) }

func (r *Record) MatePositiveStrand() bool { return r.S.Flag&flagMateReverse == 0 }

// TemplateName and RefName satisfy aggregate.AllelicRecord, used only by
// the allele-frequency scan (spec §4.10).
func (r *Record) TemplateName() string { return r.S.QName }
func (r *Record) RefName() string      { return r.S.RName }

// SetTag appends a new string tag to the record's extra fields, matching
// families/families.go's addFamilyTag idiom.
func (r *Record) SetTag(name, value string) {
	sam.ParseExtra(r.S)
	if r.S.Extra != "" {
		r.S.Extra += "\t"
	}
	r.S.Extra += fmt.Sprintf("%s:Z:%s", name, value)
}
