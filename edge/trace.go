package edge

import (
	"math"

	"github.com/lixenwraith/weave/vmath"
)

// Tracing defaults
const (
	TraceRadius   = 15.0
	TraceMaxAngle = 0.5
	TraceMaxLen   = 50
	TraceMinLen   = 4
)

// Trace greedily chains points: from each unvisited seed it repeatedly steps to the nearest
// unvisited point within TraceRadius whose direction differs by less than TraceMaxAngle.
// Chains stop at TraceMaxLen points and chains shorter than TraceMinLen are dropped.
// Every input index is visited at most once across all chains
func Trace(points []Point) []Chain {
	visited := make([]bool, len(points))
	var chains []Chain

	for i := range points {
		if visited[i] {
			continue
		}
		chain := traceFrom(points, i, visited)
		if len(chain) >= TraceMinLen {
			chains = append(chains, chain)
		}
	}
	return chains
}

func traceFrom(points []Point, start int, visited []bool) Chain {
	visited[start] = true
	chain := Chain{points[start]}
	cur := points[start]

	for len(chain) < TraceMaxLen {
		next := -1
		bestDist := math.Inf(1)

		for j, p := range points {
			if visited[j] {
				continue
			}
			dist := math.Hypot(p.X-cur.X, p.Y-cur.Y)
			if dist >= TraceRadius || dist >= bestDist {
				continue
			}
			if vmath.AngleDiff(p.Direction, cur.Direction) < TraceMaxAngle {
				next, bestDist = j, dist
			}
		}
		if next < 0 {
			break
		}
		visited[next] = true
		chain = append(chain, points[next])
		cur = points[next]
	}
	return chain
}
