// Package breakpoint walks a template's aligned-segment chain pairwise,
// decides where a breakpoint exists, canonicalizes it, classifies it as
// split-read- or read-pair-derived, and tracks per-breakpoint evidence
// counts across the lifetime of a run (spec §4.6-§4.9).
package breakpoint

import "github.com/dasnellings/svpileup/record"

// Breakpoint is a canonical pair of breakends with strand (spec §3).
// Canonical form orders (LeftRefIndex, LeftPos) < (RightRefIndex, RightPos),
// ties broken by LeftPositive == true.
type Breakpoint struct {
	LeftRefIndex  int
	LeftPos       int // 1-based inclusive
	LeftPositive  bool
	RightRefIndex int
	RightPos      int // 1-based inclusive
	RightPositive bool
}

// IsCanonical reports whether b is already in canonical form.
func (b Breakpoint) IsCanonical() bool {
	switch {
	case b.LeftRefIndex != b.RightRefIndex:
		return b.LeftRefIndex < b.RightRefIndex
	case b.LeftPos != b.RightPos:
		return b.LeftPos < b.RightPos
	default:
		return b.LeftPositive
	}
}

// Reversed swaps left and right and negates both strands. Reversed is an
// involution: b.Reversed().Reversed() == b always.
func (b Breakpoint) Reversed() Breakpoint {
	return Breakpoint{
		LeftRefIndex:  b.RightRefIndex,
		LeftPos:       b.RightPos,
		LeftPositive:  !b.RightPositive,
		RightRefIndex: b.LeftRefIndex,
		RightPos:      b.LeftPos,
		RightPositive: !b.LeftPositive,
	}
}

// Canonicalize returns b if already canonical, else b.Reversed().
// Canonicalize is idempotent: Canonicalize(Canonicalize(b)) == Canonicalize(b).
func (b Breakpoint) Canonicalize() Breakpoint {
	if b.IsCanonical() {
		return b
	}
	return b.Reversed()
}

// EvidenceType is a tagged variant distinguishing split-read- from
// read-pair-derived breakpoint evidence (spec §3).
type EvidenceType int

const (
	// SplitRead evidence comes from two aligned segments of the same read.
	SplitRead EvidenceType = iota
	// ReadPair evidence comes from segments on different reads of one
	// template.
	ReadPair
)

// SnakeName renders the evidence type the way the breakpoint table (§6)
// expects it.
func (e EvidenceType) SnakeName() string {
	switch e {
	case SplitRead:
		return "split_read"
	case ReadPair:
		return "read_pair"
	default:
		return "unknown"
	}
}

// Evidence ties a canonical Breakpoint to the records that support it
// (spec §3). From records are those on the sequencing-order-earlier side
// of the junction; Into records are on the later side. FromIsLeft records
// whether, after canonicalization, From corresponds to the breakpoint's
// left side (true) or right side (false) — needed to tag records "left"
// or "right" at annotation time (spec §4.9).
type Evidence struct {
	Breakpoint Breakpoint
	Evidence   EvidenceType
	From       record.Set
	Into       record.Set
	FromIsLeft bool
}
