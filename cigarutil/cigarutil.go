// Package cigarutil classifies CIGAR operators emitted by
// github.com/vertgenlab/gonomics/cigar as consuming read bases, consuming
// reference bases, or representing clipping. This is the "CIGAR parser"
// external collaborator assumed by the aligned-segment builder.
package cigarutil

import "github.com/vertgenlab/gonomics/cigar"

// ConsumesRead reports whether the operator advances a position in the
// read sequence.
func ConsumesRead(op rune) bool { return cigar.ConsumesQuery(op) }

// ConsumesRef reports whether the operator advances a position on the
// reference.
func ConsumesRef(op rune) bool { return cigar.ConsumesReference(op) }

// IsClipping reports whether the operator is soft ('S') or hard ('H') clip.
// gonomics/cigar has no exported clip-only classifier, so this one stays a
// direct operator comparison.
func IsClipping(op rune) bool { return op == 'S' || op == 'H' }

// LeadingClip sums the lengths of clipping operators at the start of c.
func LeadingClip(c []cigar.Cigar) int {
	var total int
	for i := range c {
		if !IsClipping(c[i].Op) {
			break
		}
		total += c[i].RunLength
	}
	return total
}

// TrailingClip sums the lengths of clipping operators at the end of c.
func TrailingClip(c []cigar.Cigar) int {
	var total int
	for i := len(c) - 1; i >= 0; i-- {
		if !IsClipping(c[i].Op) {
			break
		}
		total += c[i].RunLength
	}
	return total
}

// ReferenceLength sums the lengths of every reference-consuming operator,
// giving the span of reference bases the alignment covers.
func ReferenceLength(c []cigar.Cigar) int {
	var total int
	for i := range c {
		if ConsumesRef(c[i].Op) {
			total += c[i].RunLength
		}
	}
	return total
}

// TotalReadLength sums the lengths of every read-consuming operator,
// giving the length of the read sequence stored in the record: soft-clipped
// bases are included, hard-clipped bases are not.
func TotalReadLength(c []cigar.Cigar) int {
	var total int
	for i := range c {
		if ConsumesRead(c[i].Op) {
			total += c[i].RunLength
		}
	}
	return total
}

// MiddleReadLength sums the read-consuming lengths of the non-clipping
// operators strictly between the leading and trailing clip groups.
func MiddleReadLength(c []cigar.Cigar) int {
	lo := 0
	for lo < len(c) && IsClipping(c[lo].Op) {
		lo++
	}
	hi := len(c)
	for hi > lo && IsClipping(c[hi-1].Op) {
		hi--
	}
	var total int
	for i := lo; i < hi; i++ {
		if ConsumesRead(c[i].Op) {
			total += c[i].RunLength
		}
	}
	return total
}
