package aggregate

import (
	"github.com/dasnellings/svpileup/pileup"
	"github.com/dasnellings/svpileup/targets"
)

// Run aggregates rows, then computes allele frequencies (if src is
// non-nil) and target annotations (if idx is non-nil) on each resulting
// Row (spec §4.10).
func Run(rows []pileup.Row, params Params, src RecordSource, idx *targets.Index) []Row {
	out := Aggregate(rows, params)
	for i := range out {
		ComputeFrequencies(&out[i], src, params)
		AnnotateTargets(&out[i], idx)
	}
	return out
}
