package grid

// Content is the terrain held by one grid cell. Tanks and shells are NOT
// part of Content — they are tracked by the engine as independent live
// objects and overlaid onto the terrain when a visibility snapshot or
// final grid is rendered: a flying shell's location does not occupy a
// cell for movement purposes.
type Content int

const (
	Empty Content = iota
	Wall
	WeakenedWall
	Mine
)

// Grid is a rectangular board of terrain cells. Movement across it is
// either toroidal (wraps modulo Rows/Cols) or closed (bounds-blocked); the
// reference GameManager defaults to toroidal, with the closed variant
// available as an arbiter option.
type Grid struct {
	Rows, Cols int
	Closed     bool
	cells      []Content
}

// New creates a Rows x Cols grid, all cells Empty.
func New(rows, cols int, closed bool) *Grid {
	return &Grid{Rows: rows, Cols: cols, Closed: closed, cells: make([]Content, rows*cols)}
}

func (g *Grid) index(row, col int) int { return row*g.Cols + col }

// InBounds reports whether (row, col) falls inside the board without wrap.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns the terrain content at (row, col). Panics on out-of-range
// input; callers must normalize coordinates first via Step or InBounds.
func (g *Grid) At(row, col int) Content {
	return g.cells[g.index(row, col)]
}

// Set overwrites the terrain content at (row, col).
func (g *Grid) Set(row, col int, c Content) {
	g.cells[g.index(row, col)] = c
}

// Normalize wraps (row, col) toroidally. Callers that need the closed-board
// variant should check InBounds before calling Normalize.
func (g *Grid) Normalize(row, col int) (int, int) {
	row = ((row % g.Rows) + g.Rows) % g.Rows
	col = ((col % g.Cols) + g.Cols) % g.Cols
	return row, col
}

// Step advances (row, col) by one cell in direction d, honoring the grid's
// movement model. For a toroidal grid this always succeeds. For a closed
// grid it returns ok=false when the target would leave the board, leaving
// (row, col) unchanged.
func (g *Grid) Step(row, col int, d Direction) (newRow, newCol int, ok bool) {
	dRow, dCol := d.Delta()
	nr, nc := row+dRow, col+dCol
	if g.Closed {
		if !g.InBounds(nr, nc) {
			return row, col, false
		}
		return nr, nc, true
	}
	nr, nc = g.Normalize(nr, nc)
	return nr, nc, true
}

// IsBlocking reports whether the terrain at (row, col) blocks tank
// movement: a wall (full or weakened) is blocking; empty and mines are
// not — a mine destroys a tank on entry rather than blocking it.
func (g *Grid) IsBlocking(row, col int) bool {
	c := g.At(row, col)
	return c == Wall || c == WeakenedWall
}

// HitWall resolves a shell impact against terrain: Wall -> WeakenedWall,
// WeakenedWall -> Empty, anything else is unchanged. Returns true if the
// cell held a wall (i.e. the shell should die).
func (g *Grid) HitWall(row, col int) bool {
	switch g.At(row, col) {
	case Wall:
		g.Set(row, col, WeakenedWall)
		return true
	case WeakenedWall:
		g.Set(row, col, Empty)
		return true
	default:
		return false
	}
}

// Clone returns a deep copy of the grid's terrain.
func (g *Grid) Clone() *Grid {
	cp := &Grid{Rows: g.Rows, Cols: g.Cols, Closed: g.Closed, cells: make([]Content, len(g.cells))}
	copy(cp.cells, g.cells)
	return cp
}
