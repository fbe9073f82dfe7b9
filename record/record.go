// Package record defines the alignment-record interface consumed by the
// rest of svpileup (spec §6, "Aligned-record source (consumed)") and an
// arena that lets segments and breakpoint evidence refer to records by a
// small stable index rather than copying them, per the "Ownership of
// alignment records" design note.
package record

import "github.com/vertgenlab/gonomics/cigar"

// Record is one alignment record belonging to a template. Implementations
// wrap whatever on-disk format the caller reads (svpileup's own
// implementation is in package samio, backed by gonomics/sam).
type Record interface {
	RefIndex() int
	Start() int // 1-based inclusive
	End() int   // 1-based inclusive
	Cigar() []cigar.Cigar
	MapQ() uint8
	Mapped() bool
	Paired() bool
	FirstOfPair() bool
	SecondOfPair() bool
	Supplementary() bool
	PositiveStrand() bool
	MateMapped() bool
	MateRefName() string
	MateStart() int
	MateEnd() int
	MatePositiveStrand() bool
	// SetTag appends (or initializes) an extensible string tag on the
	// underlying record, used to write the breakpoint annotation (§4.9).
	SetTag(name, value string)
}

// ID is a stable, arena-local index for a Record. IDs are assigned in the
// order records are added to an Arena and never reused.
type ID int

// Arena owns every Record seen for one template. Segments and breakpoint
// evidence hold only IDs into the arena, never copies of the records
// themselves.
type Arena struct {
	records []Record
}

// NewArena returns an empty arena with capacity hinted by n.
func NewArena(n int) *Arena {
	return &Arena{records: make([]Record, 0, n)}
}

// Add appends r to the arena and returns its stable ID.
func (a *Arena) Add(r Record) ID {
	a.records = append(a.records, r)
	return ID(len(a.records) - 1)
}

// Get returns the Record for id.
func (a *Arena) Get(id ID) Record {
	return a.records[id]
}

// Len returns the number of records held by the arena.
func (a *Arena) Len() int {
	return len(a.records)
}

// Set is a sorted, deduplicated collection of record IDs. The zero value is
// an empty set.
type Set []ID

// NewSet builds a Set from the given ids, sorting and deduplicating them.
func NewSet(ids ...ID) Set {
	s := append(Set(nil), ids...)
	s.normalize()
	return s
}

func (s *Set) normalize() {
	if len(*s) < 2 {
		return
	}
	ss := *s
	for i := 1; i < len(ss); i++ {
		for j := i; j > 0 && ss[j-1] > ss[j]; j-- {
			ss[j-1], ss[j] = ss[j], ss[j-1]
		}
	}
	out := ss[:1]
	for i := 1; i < len(ss); i++ {
		if ss[i] != out[len(out)-1] {
			out = append(out, ss[i])
		}
	}
	*s = out
}

// Add inserts id into the set if not already present, keeping it sorted.
func (s *Set) Add(id ID) {
	for _, existing := range *s {
		if existing == id {
			return
		}
	}
	*s = append(*s, id)
	s.normalize()
}

// Union returns the sorted union of s and o, sharing no backing array with
// either input.
func (s Set) Union(o Set) Set {
	out := append(append(Set(nil), s...), o...)
	out.normalize()
	return out
}

// Contains reports whether id is a member of s.
func (s Set) Contains(id ID) bool {
	for _, existing := range s {
		if existing == id {
			return true
		}
	}
	return false
}
