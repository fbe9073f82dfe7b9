package main

import (
	"flag"
	"fmt"

	"github.com/dasnellings/svpileup/aggregate"
	"github.com/dasnellings/svpileup/bedpe"
	"github.com/dasnellings/svpileup/metric"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

func bedpeUsage(f *flag.FlagSet) {
	fmt.Print(
		"bedpe - project an aggregated breakpoint table to BEDPE\n\n" +
			"Usage:\n" +
			"  svpileup bedpe --input aggregated.txt --output out.bedpe\n\n" +
			"Options:\n")
	f.PrintDefaults()
}

func runBedpe(args []string) {
	f := flag.NewFlagSet("bedpe", flag.ExitOnError)

	input := f.String("input", "", "Input aggregated-table file produced by 'svpileup aggregate'.")
	output := f.String("output", "", "Output BEDPE path.")

	err := f.Parse(args)
	exception.PanicOnErr(err)
	f.Usage = func() { bedpeUsage(f) }

	if *input == "" || *output == "" {
		f.Usage()
		errExit("\nERROR: --input and --output are required")
	}

	in := fileio.EasyOpen(*input)
	var rows []aggregate.Row
	err = metric.ReadAll(in, &rows)
	exception.PanicOnErr(err)
	err = in.Close()
	exception.PanicOnErr(err)

	out := fileio.EasyCreate(*output)
	err = bedpe.WriteAll(out, rows)
	exception.PanicOnErr(err)
	err = out.Close()
	exception.PanicOnErr(err)
}
