package samio

import (
	"github.com/dasnellings/svpileup/aggregate"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/sam"
)

// RandomAccess supports the aggregator's allele-frequency scan (spec
// §4.10), which must revisit a region of the original BAM to count reads
// spanning a breakpoint. Grounded on filter/filter.go's
// sam.OpenBam/sam.ReadBai/sam.SeekBamRegionRecycle pattern.
type RandomAccess struct {
	br   *sam.BamReader
	bai  sam.Bai
	dict *Dictionary
	buf  []sam.Sam
}

// OpenRandomAccess opens a coordinate-sorted, indexed BAM for region
// queries. path+".bai" must exist.
func OpenRandomAccess(path string, circularOverride map[string]bool) *RandomAccess {
	br, header := sam.OpenBam(path)
	bai := sam.ReadBai(path + ".bai")
	return &RandomAccess{
		br:   br,
		bai:  bai,
		dict: NewDictionary(header.Chroms, circularOverride),
	}
}

// Dictionary returns the dictionary read from this BAM's header.
func (ra *RandomAccess) Dictionary() *Dictionary { return ra.dict }

// Overlapping implements aggregate.RecordSource, returning every record
// overlapping [start, end) on contig. Reuses its internal buffer across
// calls like filter.retrievePile does.
func (ra *RandomAccess) Overlapping(contig string, start, end int) []aggregate.AllelicRecord {
	ra.buf = sam.SeekBamRegionRecycle(ra.br, ra.bai, contig, uint32(start), uint32(end), ra.buf)
	out := make([]aggregate.AllelicRecord, len(ra.buf))
	for i := range ra.buf {
		out[i] = &Record{S: &ra.buf[i], dict: ra.dict}
	}
	return out
}

// Close releases the underlying BAM file handle.
func (ra *RandomAccess) Close() error {
	err := ra.br.Close()
	exception.PanicOnErr(err)
	return nil
}
