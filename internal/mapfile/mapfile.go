// Package mapfile lexes the plain-text map files the driver consumes. It
// is an external collaborator kept deliberately thin: the driver wants a
// parsed grid, not a parser exposed as a first-class component.
package mapfile

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"tanksim/internal/utils"
)

// Map is one parsed map file: the grid lines, already padded/truncated to
// Cols, plus the four match parameters carried on lines 2-5.
type Map struct {
	Description string
	MaxSteps    int
	NumShells   int
	Rows        int
	Cols        int
	Grid        []string // row-major, each line exactly Cols runes
}

// Load reads and lexes a map file from path.
func Load(path string) (*Map, *utils.Error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, utils.NewErrFromError(Map{}, 1, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, utils.NewErrFromError(Map{}, 2, err)
	}
	return Parse(lines)
}

// Parse lexes an already-split set of lines into a Map. Split out from Load
// so tests can exercise the format rules without touching the filesystem.
func Parse(lines []string) (*Map, *utils.Error) {
	if len(lines) < 5 {
		return nil, utils.NewErr(Map{}, 3, "map file has %d lines, need at least 5 (description + 4 params)", len(lines))
	}

	m := &Map{Description: lines[0]}
	params := []struct {
		key string
		dst *int
	}{
		{"MaxSteps", &m.MaxSteps},
		{"NumShells", &m.NumShells},
		{"Rows", &m.Rows},
		{"Cols", &m.Cols},
	}
	for i, p := range params {
		v, err := parseParamLine(lines[i+1], p.key)
		if err != nil {
			return nil, err
		}
		*p.dst = v
	}
	if m.Rows <= 0 || m.Cols <= 0 {
		return nil, utils.NewErr(Map{}, 4, "invalid dimensions %dx%d", m.Rows, m.Cols)
	}

	gridLines := lines[5:]
	m.Grid = make([]string, m.Rows)
	sideCount := [3]int{}
	for row := 0; row < m.Rows; row++ {
		var raw string
		if row < len(gridLines) {
			raw = gridLines[row]
		}
		m.Grid[row] = sanitizeRow(raw, m.Cols, &sideCount)
	}

	if sideCount[1] == 0 || sideCount[2] == 0 {
		return nil, utils.NewErr(Map{}, 5, "map requires at least one tank per side (got %d, %d)", sideCount[1], sideCount[2])
	}
	return m, nil
}

// parseParamLine expects a line of the form "<key> = <n>" (whitespace
// around '=' allowed, keys case-sensitive).
func parseParamLine(line, key string) (int, *utils.Error) {
	idx := strings.IndexByte(line, '=')
	if idx < 0 {
		return 0, utils.NewErr(Map{}, 6, "expected %q line, got %q", key, line)
	}
	gotKey := strings.TrimSpace(line[:idx])
	if gotKey != key {
		return 0, utils.NewErr(Map{}, 7, "expected key %q, got %q", key, gotKey)
	}
	v, err := strconv.Atoi(strings.TrimSpace(line[idx+1:]))
	if err != nil {
		return 0, utils.NewErrFromError(Map{}, 8, err)
	}
	return v, nil
}

// sanitizeRow pads/truncates raw to cols and maps every recognised cell
// character through unchanged; anything else becomes empty (space), per
// "Unrecognised characters become empty."
func sanitizeRow(raw string, cols int, sideCount *[3]int) string {
	runes := []rune(raw)
	out := make([]rune, cols)
	for col := 0; col < cols; col++ {
		ch := ' '
		if col < len(runes) {
			ch = runes[col]
		}
		switch ch {
		case '#', '@':
			// recognised terrain, kept as-is
		case '1':
			sideCount[1]++
		case '2':
			sideCount[2]++
		default:
			ch = ' '
		}
		out[col] = ch
	}
	return string(out)
}
