package aggregate

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dasnellings/svpileup/pileup"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Params bundles AggregateSvPileup's tunables (spec §6).
type Params struct {
	MaxDist              int
	Flank                int
	MinBreakpointSupport int
	MinFrequency         float64
}

type topology struct {
	leftContig, rightContig   string
	leftPositive, rightPositive bool
}

// Aggregate partitions rows by topology, clusters each partition's rows
// into connected components under MaxDist, and aggregates each component
// into one Row (spec §4.10). Output order is deterministic: rows are sorted
// by left contig name, then ascending left_min_pos; ties keep partition
// first-seen order.
func Aggregate(rows []pileup.Row, params Params) []Row {
	partitions := make(map[topology][]pileup.Row)
	var order []topology
	for _, r := range rows {
		key := topology{r.LeftContig, r.RightContig, r.LeftStrand == "+", r.RightStrand == "+"}
		if _, ok := partitions[key]; !ok {
			order = append(order, key)
		}
		partitions[key] = append(partitions[key], r)
	}

	var out []Row
	for _, key := range order {
		part := partitions[key]
		for _, cluster := range clusterPartition(part, params.MaxDist) {
			out = append(out, aggregateCluster(cluster))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].LeftContig != out[j].LeftContig {
			return out[i].LeftContig < out[j].LeftContig
		}
		return out[i].LeftMinPos < out[j].LeftMinPos
	})
	return out
}

// clusterPartition groups same-topology rows into connected components
// under an undirected graph where two rows are neighbors iff
// |Δleft_pos| ≤ maxDist and |Δright_pos| ≤ maxDist (spec §4.10).
func clusterPartition(rows []pileup.Row, maxDist int) [][]pileup.Row {
	g := simple.NewUndirectedGraph()
	for i := range rows {
		g.AddNode(simple.Node(i))
	}
	for i := range rows {
		for j := i + 1; j < len(rows); j++ {
			if abs(rows[i].LeftPos-rows[j].LeftPos) <= maxDist && abs(rows[i].RightPos-rows[j].RightPos) <= maxDist {
				g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
			}
		}
	}

	components := topo.ConnectedComponents(g)
	out := make([][]pileup.Row, len(components))
	for ci, comp := range components {
		cluster := make([]pileup.Row, len(comp))
		for i, n := range comp {
			cluster[i] = rows[n.ID()]
		}
		sort.Slice(cluster, func(i, j int) bool { return cluster[i].ID < cluster[j].ID })
		out[ci] = cluster
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0].LeftPos < out[j][0].LeftPos })
	return out
}

func aggregateCluster(cluster []pileup.Row) Row {
	ids := make([]string, len(cluster))
	leftPos := make([]int, 0, len(cluster))
	rightPos := make([]int, 0, len(cluster))

	row := Row{
		LeftContig:  cluster[0].LeftContig,
		LeftStrand:  cluster[0].LeftStrand,
		RightContig: cluster[0].RightContig,
		RightStrand: cluster[0].RightStrand,
	}
	row.LeftMinPos = cluster[0].LeftPos
	row.LeftMaxPos = cluster[0].LeftPos
	row.RightMinPos = cluster[0].RightPos
	row.RightMaxPos = cluster[0].RightPos

	for i, c := range cluster {
		ids[i] = strconv.Itoa(c.ID)
		leftPos = append(leftPos, c.LeftPos)
		rightPos = append(rightPos, c.RightPos)
		if c.LeftPos < row.LeftMinPos {
			row.LeftMinPos = c.LeftPos
		}
		if c.LeftPos > row.LeftMaxPos {
			row.LeftMaxPos = c.LeftPos
		}
		if c.RightPos < row.RightMinPos {
			row.RightMinPos = c.RightPos
		}
		if c.RightPos > row.RightMaxPos {
			row.RightMaxPos = c.RightPos
		}
		row.SplitReads += c.SplitReads
		row.ReadPairs += c.ReadPairs
		row.Total += c.Total
	}

	slices.Sort(ids)
	row.ID = strings.Join(ids, "_")
	row.LeftPileups = joinSortedUnique(leftPos)
	row.RightPileups = joinSortedUnique(rightPos)
	row.Category = categoryFor(row.LeftContig, row.RightContig, row.LeftStrand == "+", row.RightStrand == "+")
	return row
}

func joinSortedUnique(vals []int) string {
	slices.Sort(vals)
	var parts []string
	for i, v := range vals {
		if i > 0 && vals[i-1] == v {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d", v))
	}
	return strings.Join(parts, ",")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
