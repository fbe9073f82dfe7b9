package pileup

import (
	"fmt"
	"strings"

	"github.com/dasnellings/svpileup/breakpoint"
	"github.com/dasnellings/svpileup/record"
)

// annotate tags every record referenced by evs with its breakpoint
// role(s), per spec §4.9. ids[i] is the tracker-assigned id for evs[i].
func annotate(arena *record.Arena, evs []breakpoint.Evidence, ids []int, tagName string) {
	tags := make(map[record.ID][]string)
	for i, ev := range evs {
		id := ids[i]
		kind := ev.Evidence.SnakeName()

		fromSide, intoSide := "left", "right"
		if !ev.FromIsLeft {
			fromSide, intoSide = "right", "left"
		}

		for _, rid := range ev.From {
			tags[rid] = append(tags[rid], fmt.Sprintf("%d;%s;from;%s", id, fromSide, kind))
		}
		for _, rid := range ev.Into {
			tags[rid] = append(tags[rid], fmt.Sprintf("%d;%s;into;%s", id, intoSide, kind))
		}
	}

	for rid, values := range tags {
		arena.Get(rid).SetTag(defaultTagName(tagName), strings.Join(values, ","))
	}
}

func defaultTagName(tagName string) string {
	if tagName == "" {
		return "be"
	}
	return tagName
}
