package samio

import (
	"github.com/dasnellings/svpileup/cigarutil"
	"github.com/dasnellings/svpileup/pileup"
	"github.com/dasnellings/svpileup/record"
	"github.com/dasnellings/svpileup/segment"
	"github.com/vertgenlab/gonomics/sam"
)

// Source groups a query-name-sorted sam.Sam stream into templates, per
// spec §6. It mirrors pair/pair.go's sam.GoReadToChan-fed pipeline, but
// buffers one record ahead to detect a query-name change instead of
// requiring coordinate order.
type Source struct {
	ch     <-chan sam.Sam
	dict   *Dictionary
	header sam.Header
	peeked *sam.Sam
	done   bool
}

// OpenSource opens path (any format gonomics/sam.GoReadToChan accepts) for
// query-grouped template iteration.
func OpenSource(path string, circularOverride map[string]bool) *Source {
	ch, header := sam.GoReadToChan(path)
	return &Source{
		ch:     ch,
		dict:   NewDictionary(header.Chroms, circularOverride),
		header: header,
	}
}

// Header returns the sam.Header read from the input, needed to open a
// matching Sink.
func (s *Source) Header() sam.Header { return s.header }

// Dictionary implements pileup.Source.
func (s *Source) Dictionary() pileup.Dictionary { return s.dict }

// Next implements pileup.Source.
func (s *Source) Next() (*record.Arena, segment.Template, bool, error) {
	first, ok := s.nextRecord()
	if !ok {
		return nil, segment.Template{}, false, nil
	}

	qname := first.QName
	arena := record.NewArena(4)
	var tmpl segment.Template
	addToTemplate(arena, &tmpl, first, s.dict)

	for {
		next, ok := s.nextRecord()
		if !ok {
			break
		}
		if next.QName != qname {
			s.peeked = &next
			break
		}
		addToTemplate(arena, &tmpl, next, s.dict)
	}

	return arena, tmpl, true, nil
}

func (s *Source) nextRecord() (sam.Sam, bool) {
	if s.peeked != nil {
		r := *s.peeked
		s.peeked = nil
		return r, true
	}
	if s.done {
		return sam.Sam{}, false
	}
	r, ok := <-s.ch
	if !ok {
		s.done = true
		return sam.Sam{}, false
	}
	return r, true
}

// Close implements pileup.Source. GoReadToChan owns the underlying file
// handle and closes it when the channel drains, so there is nothing else
// to release here.
func (s *Source) Close() error { return nil }

func addToTemplate(arena *record.Arena, tmpl *segment.Template, s sam.Sam, dict *Dictionary) {
	rec := &Record{S: &s, dict: dict}
	id := arena.Add(rec)

	if !rec.Mapped() {
		return
	}

	readLen := cigarutil.TotalReadLength(rec.Cigar())
	isSecond := rec.Paired() && rec.SecondOfPair()

	if !isSecond {
		if rec.Supplementary() {
			tmpl.R1Supps = append(tmpl.R1Supps, id)
		} else if tmpl.R1Primary == nil {
			idCopy := id
			tmpl.R1Primary = &idCopy
			tmpl.ReadLength1 = readLen
		}
	} else {
		if rec.Supplementary() {
			tmpl.R2Supps = append(tmpl.R2Supps, id)
		} else if tmpl.R2Primary == nil {
			idCopy := id
			tmpl.R2Primary = &idCopy
			tmpl.ReadLength2 = readLen
		}
	}
}
