package driver

import (
	"sort"

	"tanksim/internal/mapfile"
	"tanksim/internal/plugin"
)

// CompetitionInput bundles the inputs competition mode needs:
// one arbiter, K maps, N ≥ 2 algorithms.
type CompetitionInput struct {
	Arbiter    *plugin.ArbiterEntry
	Maps       []*mapfile.Map
	Algorithms []*plugin.AlgorithmEntry
	NumThreads int
	Verbose    bool
}

// Standing is one algorithm's aggregated score, the competition mode's
// output row.
type Standing struct {
	Name  string
	Score int
}

// RunCompetition plays a deduplicated round-robin schedule (pairing formula
// j = (i + 1 + k mod (N-1)) mod N, emitted only when i < j) across every
// map, aggregates win=3/tie=1/loss=0 scores, and returns standings ordered
// by score descending, ties broken by name.
func RunCompetition(in CompetitionInput) []Standing {
	n := len(in.Algorithms)
	pool := NewPool(in.NumThreads)

	for k, m := range in.Maps {
		m := m
		for i := 0; i < n; i++ {
			j := (i + 1 + k%(n-1)) % n
			if i >= j {
				continue
			}
			i, j, k := i, j, k
			pool.Submit(func() taskResult {
				runIn := buildRunInput(m, in.Algorithms[i], in.Algorithms[j])
				gm := in.Arbiter.Arbiter(in.Verbose)
				res, err := gm.Run(runIn)
				if err != nil {
					res.Winner = 0
				}
				return taskResult{
					mapIndex: k, algo1Idx: i, algo2Idx: j,
					algo1Name: in.Algorithms[i].Name, algo2Name: in.Algorithms[j].Name,
					result: res,
				}
			})
		}
	}

	results := pool.Wait()

	scores := make(map[string]int, n)
	for _, a := range in.Algorithms {
		scores[a.Name] = 0
	}
	for _, r := range results {
		switch r.result.Winner {
		case 1:
			scores[r.algo1Name] += 3
		case 2:
			scores[r.algo2Name] += 3
		case 0:
			scores[r.algo1Name]++
			scores[r.algo2Name]++
		}
	}

	out := make([]Standing, 0, len(scores))
	for name, score := range scores {
		out = append(out, Standing{Name: name, Score: score})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	return out
}
