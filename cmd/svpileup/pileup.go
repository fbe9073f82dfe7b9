package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/dasnellings/svpileup/breakpoint"
	"github.com/dasnellings/svpileup/metric"
	"github.com/dasnellings/svpileup/pileup"
	"github.com/dasnellings/svpileup/samio"
	"github.com/dasnellings/svpileup/segment"
	"github.com/dasnellings/svpileup/targets"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

func pileupUsage(f *flag.FlagSet) {
	fmt.Print(
		"pileup - detect breakpoints supported by split reads and discordant pairs\n\n" +
			"Usage:\n" +
			"  svpileup pileup --input input.bam --output out_prefix\n\n" +
			"Options:\n")
	f.PrintDefaults()
}

func runPileup(args []string) {
	f := flag.NewFlagSet("pileup", flag.ExitOnError)

	input := f.String("input", "", "Input query-grouped or query-name-sorted record file.")
	output := f.String("output", "", "Output path prefix. Writes <prefix>.bam and <prefix>.txt.")
	maxReadPairInnerDistance := f.Int("max-read-pair-inner-distance", 1000, "Maximum inner distance between the two reads of a pair without calling a breakpoint; larger distances are called.")
	maxAlignedSegmentInnerDistance := f.Int("max-aligned-segment-inner-distance", 100, "Maximum gap between two segments within one read without calling a breakpoint; larger gaps are called.")
	minPrimaryMapQ := f.Int("min-primary-mapping-quality", 30, "Minimum mapping quality for a primary alignment.")
	minSuppMapQ := f.Int("min-supplementary-mapping-quality", 18, "Minimum mapping quality for a supplementary alignment.")
	minUniqueBasesToAdd := f.Int("min-unique-bases-to-add", 20, "Minimum unique read bases a segment must add to the chain to be kept.")
	slop := f.Int("slop", 5, "Tolerance, in bases, when assigning records to the left or right side of a merged R1/R2 segment.")
	targetsBed := f.String("targets-bed", "", "Optional BED file of target regions to annotate breakpoints with.")
	targetsBedRequirement := f.String("targets-bed-requirement", "AnnotateOnly", "One of AnnotateOnly, OverlapAny, OverlapBoth.")
	threads := f.Int("threads", 1, "Number of templates to process concurrently.")
	metricsPath := f.String("metrics", "", "Optional path to write a run-summary metrics file.")

	err := f.Parse(args)
	exception.PanicOnErr(err)
	f.Usage = func() { pileupUsage(f) }

	if *input == "" || *output == "" {
		f.Usage()
		errExit("\nERROR: --input and --output are required")
	}

	requirement, ok := targets.ParseRequirement(*targetsBedRequirement)
	if !ok {
		errExit(fmt.Sprintf("ERROR: invalid --targets-bed-requirement %q", *targetsBedRequirement))
	}
	if *targetsBed == "" && requirement != targets.AnnotateOnly {
		errExit("ERROR: --targets-bed-requirement of OverlapAny/OverlapBoth requires --targets-bed")
	}

	var idx *targets.Index
	if *targetsBed != "" {
		idx = targets.NewIndex(*targetsBed)
	}

	src := samio.OpenSource(*input, nil)
	sink := samio.OpenSink(*output+".bam", src.Header())
	tracker := breakpoint.NewTracker()

	params := pileup.Params{
		Filter: segment.FilterThresholds{
			MinPrimaryMapq:      uint8(*minPrimaryMapQ),
			MinSupplementaryMapq: uint8(*minSuppMapQ),
		},
		MinUniqueBasesToAdd:      *minUniqueBasesToAdd,
		Slop:                     *slop,
		MaxWithinReadDistance:    *maxAlignedSegmentInnerDistance,
		MaxReadPairInnerDistance: *maxReadPairInnerDistance,
		TagName:                  "be",
	}

	m, err := pileup.RunSharded(src, sink, tracker, params, *threads)
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}

	err = sink.Close()
	exception.PanicOnErr(err)
	err = src.Close()
	exception.PanicOnErr(err)

	rows := pileup.Table(tracker, src.Dictionary(), idx, requirement)
	out := fileio.EasyCreate(*output + ".txt")
	err = metric.WriteAll(out, rows)
	exception.PanicOnErr(err)
	err = out.Close()
	exception.PanicOnErr(err)

	if *metricsPath != "" {
		mOut := fileio.EasyCreate(*metricsPath)
		err = metric.WriteAll(mOut, []pileup.Metrics{m})
		exception.PanicOnErr(err)
		err = mOut.Close()
		exception.PanicOnErr(err)
	}
}
