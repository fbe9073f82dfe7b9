package segment

import "github.com/dasnellings/svpileup/record"

// FilterThresholds bundles the MAPQ cutoffs applied by FilterTemplate
// (spec §4.5).
type FilterThresholds struct {
	MinPrimaryMapq       uint8
	MinSupplementaryMapq uint8
}

// FilterTemplate drops low-MAPQ primaries and the supplementaries attached
// to a dropped end, per spec §4.5. Returns ok=false if neither end survives
// (callers should treat that as "no breakpoints", not an error, per §7).
func FilterTemplate(arena *record.Arena, t Template, th FilterThresholds) (Template, bool) {
	r1ok := primaryOK(arena, t.R1Primary, th.MinPrimaryMapq)
	r2ok := primaryOK(arena, t.R2Primary, th.MinPrimaryMapq)

	if !r1ok && !r2ok {
		return Template{}, false
	}

	out := t
	if !r1ok {
		out.R1Primary = nil
		out.R1Supps = nil
	} else {
		out.R1Supps = filterSupps(arena, t.R1Supps, th.MinSupplementaryMapq)
	}
	if !r2ok {
		out.R2Primary = nil
		out.R2Supps = nil
	} else {
		out.R2Supps = filterSupps(arena, t.R2Supps, th.MinSupplementaryMapq)
	}
	return out, true
}

func primaryOK(arena *record.Arena, id *record.ID, minMapq uint8) bool {
	if id == nil {
		return false
	}
	r := arena.Get(*id)
	return r.Mapped() && r.MapQ() >= minMapq
}

func filterSupps(arena *record.Arena, ids []record.ID, minMapq uint8) []record.ID {
	out := make([]record.ID, 0, len(ids))
	for _, id := range ids {
		if arena.Get(id).MapQ() >= minMapq {
			out = append(out, id)
		}
	}
	return out
}
