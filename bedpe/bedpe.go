// Package bedpe projects aggregated breakpoint pileups into BEDPE rows
// (spec §4.11).
package bedpe

import (
	"fmt"
	"io"

	"github.com/dasnellings/svpileup/aggregate"
)

// Entry is one 10-column BEDPE row, 0-based half-open on both sides.
type Entry struct {
	Chrom1  string
	Start1  int
	End1    int
	Chrom2  string
	Start2  int
	End2    int
	Name    string
	Score   int
	Strand1 string
	Strand2 string
}

// FromRow converts an aggregated pileup row into its BEDPE projection,
// converting 1-based inclusive positions to 0-based half-open intervals.
func FromRow(r aggregate.Row) Entry {
	return Entry{
		Chrom1:  r.LeftContig,
		Start1:  r.LeftMinPos - 1,
		End1:    r.LeftMaxPos,
		Chrom2:  r.RightContig,
		Start2:  r.RightMinPos - 1,
		End2:    r.RightMaxPos,
		Name:    r.ID,
		Score:   r.Total,
		Strand1: r.LeftStrand,
		Strand2: r.RightStrand,
	}
}

// Fprintln writes e as one tab-delimited BEDPE line, matching
// BedEntry.Fprintln's column-writer shape.
func (e Entry) Fprintln(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%d\t%d\t%s\t%d\t%s\t%s\n",
		e.Chrom1, e.Start1, e.End1, e.Chrom2, e.Start2, e.End2, e.Name, e.Score, e.Strand1, e.Strand2)
	return err
}

// WriteAll writes every row's BEDPE projection to w.
func WriteAll(w io.Writer, rows []aggregate.Row) error {
	for _, r := range rows {
		if err := FromRow(r).Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
