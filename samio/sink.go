package samio

import (
	"fmt"

	"github.com/dasnellings/svpileup/record"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"github.com/vertgenlab/gonomics/sam"
)

// Sink writes annotated records to a BAM file, mirroring pair/pair.go's
// fileio.EasyCreate/sam.NewBamWriter/sam.WriteToBamFileHandle idiom.
type Sink struct {
	out *fileio.EasyWriter
	bw  *sam.BamWriter
}

// OpenSink creates path and writes header, ready to accept records.
func OpenSink(path string, header sam.Header) *Sink {
	out := fileio.EasyCreate(path)
	return &Sink{
		out: out,
		bw:  sam.NewBamWriter(out, header),
	}
}

// Write implements pileup.Sink. r must be a *Record produced by this
// package's Source; any other implementation indicates a Source/Sink
// mismatch.
func (s *Sink) Write(r record.Record) error {
	rec, ok := r.(*Record)
	if !ok {
		return fmt.Errorf("samio.Sink: Write called with non-samio record %T", r)
	}
	sam.WriteToBamFileHandle(s.bw, *rec.S, 0)
	return nil
}

// Close closes the underlying bam writer and file.
func (s *Sink) Close() error {
	err := s.bw.Close()
	exception.PanicOnErr(err)
	return s.out.Close()
}
