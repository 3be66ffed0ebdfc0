package driver

import (
	"fmt"
	"sort"
	"strings"

	"tanksim/internal/mapfile"
	"tanksim/internal/plugin"
)

// ComparativeInput bundles the inputs comparative mode needs: one map, one
// list of arbiters, exactly two algorithms — possibly the same artefact
// loaded twice, which is allowed.
type ComparativeInput struct {
	Map       *mapfile.Map
	Arbiters  []*plugin.ArbiterEntry
	Algo1     *plugin.AlgorithmEntry
	Algo2     *plugin.AlgorithmEntry
	NumThreads int
	Verbose   bool
}

// ComparativeGroup is one output block: every arbiter whose battle produced
// an identical (winner, reason, rounds, final_grid) tuple is grouped
// together.
type ComparativeGroup struct {
	ArbiterNames []string
	Winner       int
	Reason       string
	Rounds       int
	FinalGrid    []string
}

// RunComparative enqueues one task per arbiter, waits for all of them,
// groups identical (winner, reason, rounds, final_grid) outcomes, and
// sorts the resulting groups by size descending, equal-size groups by
// their first arbiter name.
func RunComparative(in ComparativeInput) []ComparativeGroup {
	pool := NewPool(in.NumThreads)

	for _, arb := range in.Arbiters {
		arb := arb
		pool.Submit(func() taskResult {
			runIn := buildRunInput(in.Map, in.Algo1, in.Algo2)
			gm := arb.Arbiter(in.Verbose)
			res, err := gm.Run(runIn)
			if err != nil {
				// A fatal init error has no real Reason; -1 renders as
				// Reason.String()'s "Unknown" and, since no successful battle
				// ever produces that value, this result never joins a group
				// with an actually-finished battle.
				res.Reason = -1
			}
			return taskResult{arbiterName: arb.Name, fingerprint: arb.Fingerprint, result: res}
		})
	}

	results := pool.Wait()

	groups := make(map[string]*ComparativeGroup)
	var order []string
	for _, r := range results {
		key := groupKey(r)
		g, ok := groups[key]
		if !ok {
			g = &ComparativeGroup{
				Winner:    r.result.Winner,
				Reason:    r.result.Reason.String(),
				Rounds:    r.result.Rounds,
				FinalGrid: r.result.FinalGrid,
			}
			groups[key] = g
			order = append(order, key)
		}
		g.ArbiterNames = append(g.ArbiterNames, r.arbiterName)
	}

	out := make([]ComparativeGroup, 0, len(order))
	for _, key := range order {
		g := groups[key]
		sort.Strings(g.ArbiterNames)
		out = append(out, *g)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i].ArbiterNames) != len(out[j].ArbiterNames) {
			return len(out[i].ArbiterNames) > len(out[j].ArbiterNames)
		}
		return out[i].ArbiterNames[0] < out[j].ArbiterNames[0]
	})
	return out
}

func groupKey(r taskResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d|%s|%d|", r.result.Winner, r.result.Reason, r.result.Rounds)
	b.WriteString(strings.Join(r.result.FinalGrid, "\n"))
	return b.String()
}
