// Package output renders the two result files (comparative and
// competition) to disk. Rendering is a pure function of the already
// computed driver results; it holds no simulation logic of its own.
package output

import (
	"fmt"
	"os"
	"strings"

	"tanksim/internal/driver"
	"tanksim/internal/utils"
)

// WriteComparative renders comparative_results_<timestamp>.txt. I/O
// failures degrade to stdout; they are never fatal.
func WriteComparative(path, gameMap, algo1, algo2 string, groups []driver.ComparativeGroup) {
	var b strings.Builder
	fmt.Fprintf(&b, "game_map=%s\n", gameMap)
	fmt.Fprintf(&b, "algorithm1=%s\n", algo1)
	fmt.Fprintf(&b, "algorithm2=%s\n", algo2)
	b.WriteByte('\n')

	for _, g := range groups {
		fmt.Fprintf(&b, "%s\n", strings.Join(g.ArbiterNames, ","))
		fmt.Fprintf(&b, "%s\n", resultMessage(g.Winner, g.Reason))
		fmt.Fprintf(&b, "%d\n", g.Rounds)
		for _, row := range g.FinalGrid {
			b.WriteString(row)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	write(path, b.String())
}

// WriteCompetition renders competition_<timestamp>.txt.
func WriteCompetition(path, mapsFolder, gameManager string, standings []driver.Standing) {
	var b strings.Builder
	fmt.Fprintf(&b, "game_maps_folder=%s\n", mapsFolder)
	fmt.Fprintf(&b, "game_manager=%s\n", gameManager)
	b.WriteByte('\n')

	for _, s := range standings {
		fmt.Fprintf(&b, "%s %d\n", s.Name, s.Score)
	}

	write(path, b.String())
}

func resultMessage(winner int, reason string) string {
	switch winner {
	case 0:
		return fmt.Sprintf("tie (%s)", reason)
	default:
		return fmt.Sprintf("side %d wins (%s)", winner, reason)
	}
}

// write degrades to stdout on failure: an I/O error while writing results
// is logged as a warning and the content is printed instead, never fatal.
func write(path, content string) {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		utils.Check(utils.NewErrFromError("output", 1, err))
		fmt.Print(content)
	}
}
