package pileup

import (
	"github.com/dasnellings/svpileup/breakpoint"
	"github.com/dasnellings/svpileup/record"
	"github.com/dasnellings/svpileup/segment"
	"github.com/dasnellings/svpileup/targets"
)

// Dictionary resolves a contig's name and circularity from its refIndex
// (spec §6's sequence dictionary, with the circularity flag SPEC_FULL adds).
type Dictionary interface {
	Name(refIndex int) string
	Circular(refIndex int) bool
}

// Source is the aligned-record source consumed by the pileup driver
// (spec §6): a query-grouped iterator over templates, each exposing a
// fresh record.Arena holding every record seen so far for that template.
type Source interface {
	Dictionary() Dictionary
	// Next returns the next template, or ok=false once the source is
	// exhausted. arena holds every record belonging to the template,
	// including ones tmpl's filtered-out ends still reference, so they can
	// be written back out unannotated.
	Next() (arena *record.Arena, tmpl segment.Template, ok bool, err error)
	Close() error
}

// Sink is the aligned-record sink produced by the pileup driver (spec §6).
type Sink interface {
	Write(r record.Record) error
	Close() error
}

// Params bundles the tunables of the SvPileup CLI surface (spec §6).
type Params struct {
	Filter                   segment.FilterThresholds
	MinUniqueBasesToAdd      int
	Slop                     int
	MaxWithinReadDistance    int
	MaxReadPairInnerDistance int
	TagName                  string // default "be"
}

// Metrics summarizes one Run invocation (SPEC_FULL supplement 2).
type Metrics struct {
	TemplatesSeen       int `tsv:"templates_seen"`
	TemplatesFiltered   int `tsv:"templates_filtered"`
	TemplatesSkipped    int `tsv:"templates_skipped"`
	BreakpointsObserved int `tsv:"breakpoints_observed"`
}

// Run drives the full per-template pipeline: filter, build the segment
// chain, detect breakpoints, count them in tracker, annotate the
// template's records, and write every record to sink (spec §2 "Pileup
// driver"). Template invariant violations are logged and skipped per
// spec §7; filter-derived drops are not errors.
func Run(src Source, sink Sink, tracker *breakpoint.Tracker, params Params) (Metrics, error) {
	dict := src.Dictionary()
	var m Metrics

	for {
		arena, tmpl, ok, err := src.Next()
		if err != nil {
			return m, err
		}
		if !ok {
			break
		}
		m.TemplatesSeen++

		outcome := processTemplate(arena, tmpl, dict, tracker, params)
		m.TemplatesFiltered += outcome.filtered
		m.TemplatesSkipped += outcome.skipped
		m.BreakpointsObserved += outcome.breakpoints

		if err := writeAll(sink, arena); err != nil {
			return m, err
		}
	}
	return m, nil
}

func writeAll(sink Sink, arena *record.Arena) error {
	for i := 0; i < arena.Len(); i++ {
		if err := sink.Write(arena.Get(record.ID(i))); err != nil {
			return err
		}
	}
	return nil
}

// Table renders the tracker's contents as breakpoint-table Rows, sorted by
// PairedOrdering (spec §5), resolving contig names via dict. If idx is
// non-nil, each row's left/right targets columns are annotated and rows
// are dropped per requirement (spec §4.10, §6 "--targets-bed-requirement").
func Table(tracker *breakpoint.Tracker, dict Dictionary, idx *targets.Index, requirement targets.Requirement) []Row {
	entries := tracker.Entries()
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		row := Row{
			ID:          e.Info.ID,
			LeftContig:  dict.Name(e.Breakpoint.LeftRefIndex),
			LeftPos:     e.Breakpoint.LeftPos,
			LeftStrand:  strand(e.Breakpoint.LeftPositive),
			RightContig: dict.Name(e.Breakpoint.RightRefIndex),
			RightPos:    e.Breakpoint.RightPos,
			RightStrand: strand(e.Breakpoint.RightPositive),
			SplitReads:  e.Info.SplitRead,
			ReadPairs:   e.Info.ReadPair,
			Total:       e.Info.Total(),
		}

		if idx != nil {
			leftOverlaps, leftNames := idx.Overlaps(row.LeftContig, row.LeftPos, row.LeftPos)
			rightOverlaps, rightNames := idx.Overlaps(row.RightContig, row.RightPos, row.RightPos)
			if leftOverlaps {
				joined := targets.JoinNames(leftNames)
				row.LeftTargets = &joined
			}
			if rightOverlaps {
				joined := targets.JoinNames(rightNames)
				row.RightTargets = &joined
			}
			switch requirement {
			case targets.OverlapAny:
				if !leftOverlaps && !rightOverlaps {
					continue
				}
			case targets.OverlapBoth:
				if !leftOverlaps || !rightOverlaps {
					continue
				}
			}
		}

		rows = append(rows, row)
	}
	return rows
}
