package main

import (
	"flag"
	"fmt"

	"github.com/dasnellings/svpileup/aggregate"
	"github.com/dasnellings/svpileup/metric"
	"github.com/dasnellings/svpileup/pileup"
	"github.com/dasnellings/svpileup/samio"
	"github.com/dasnellings/svpileup/targets"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

func aggregateUsage(f *flag.FlagSet) {
	fmt.Print(
		"aggregate - cluster nearby breakpoints and compute allele frequency / target overlap\n\n" +
			"Usage:\n" +
			"  svpileup aggregate --input pileup.txt --output aggregated.txt\n\n" +
			"Options:\n")
	f.PrintDefaults()
}

func runAggregate(args []string) {
	f := flag.NewFlagSet("aggregate", flag.ExitOnError)

	input := f.String("input", "", "Input breakpoint-table file produced by 'svpileup pileup'.")
	output := f.String("output", "", "Output aggregated-table path.")
	bam := f.String("bam", "", "Optional coordinate-sorted, indexed BAM to compute allele frequency from.")
	flank := f.Int("flank", 1000, "Bases of padding on either side of a breakpoint's min/max span when scanning for overlapping templates.")
	minBreakpointSupport := f.Int("min-breakpoint-support", 10, "Minimum total support required before computing allele frequency.")
	minFrequency := f.Float64("min-frequency", 0.001, "Smallest allele frequency considered detectable; bounds the allele-frequency scan.")
	targetsBed := f.String("targets-bed", "", "Optional BED file of target regions to annotate aggregated breakpoints with.")
	maxDist := f.Int("max-dist", 10, "Maximum left/right position distance between two pileups to be clustered together.")

	err := f.Parse(args)
	exception.PanicOnErr(err)
	f.Usage = func() { aggregateUsage(f) }

	if *input == "" || *output == "" {
		f.Usage()
		errExit("\nERROR: --input and --output are required")
	}

	in := fileio.EasyOpen(*input)
	var rows []pileup.Row
	err = metric.ReadAll(in, &rows)
	exception.PanicOnErr(err)
	err = in.Close()
	exception.PanicOnErr(err)

	var idx *targets.Index
	if *targetsBed != "" {
		idx = targets.NewIndex(*targetsBed)
	}

	var src aggregate.RecordSource
	if *bam != "" {
		ra := samio.OpenRandomAccess(*bam, nil)
		defer ra.Close()
		src = ra
	}

	params := aggregate.Params{
		MaxDist:              *maxDist,
		Flank:                *flank,
		MinBreakpointSupport: *minBreakpointSupport,
		MinFrequency:         *minFrequency,
	}

	out := aggregate.Run(rows, params, src, idx)

	outFile := fileio.EasyCreate(*output)
	err = metric.WriteAll(outFile, out)
	exception.PanicOnErr(err)
	err = outFile.Close()
	exception.PanicOnErr(err)
}
