package aggregate

import "github.com/dasnellings/svpileup/targets"

// AnnotateTargets fills LeftOverlapsTarget/RightOverlapsTarget and
// LeftTargets/RightTargets on row per spec §4.10, querying idx on each
// side's min/max span.
func AnnotateTargets(row *Row, idx *targets.Index) {
	if idx == nil {
		return
	}
	leftOverlaps, leftNames := idx.Overlaps(row.LeftContig, row.LeftMinPos, row.LeftMaxPos)
	row.LeftOverlapsTarget = &leftOverlaps
	if leftOverlaps {
		joined := targets.JoinNames(leftNames)
		row.LeftTargets = &joined
	}

	rightOverlaps, rightNames := idx.Overlaps(row.RightContig, row.RightMinPos, row.RightMaxPos)
	row.RightOverlapsTarget = &rightOverlaps
	if rightOverlaps {
		joined := targets.JoinNames(rightNames)
		row.RightTargets = &joined
	}
}
