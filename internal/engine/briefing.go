package engine

// Briefing is the concrete structure a Strategist hands to a Controller
// after reconstructing the board from a VisibilityView. Passed by value:
// Strategists hold no reference back into the GameManager.
type Briefing struct {
	Rows, Cols      int
	Board           [][]rune // board[row][col], '%' at the requesting tank's cell
	SelfRow, SelfCol int
	Facing          int  // -1 if not tracked (as the reference Strategist reports); read via FacingOrDefault
	ShellsRemaining int  // -1 if not tracked; reference Strategist reports its configured ammo budget
}

// FacingOrDefault returns Facing, or 0 when it was not tracked.
func (b Briefing) FacingOrDefault() int {
	if b.Facing < 0 {
		return 0
	}
	return b.Facing
}

// ShellsOrDefault returns ShellsRemaining, or 0 when it was not tracked.
// A Strategist that cannot observe the real remaining count should report
// an optimistic stand-in (its starting ammo budget) rather than 0: a
// controller that gates Shoot on ShellsOrDefault() > 0 would otherwise
// never fire, and the Manager already enforces the tank's true count
// before honoring any Shoot action.
func (b Briefing) ShellsOrDefault() int {
	if b.ShellsRemaining < 0 {
		return 0
	}
	return b.ShellsRemaining
}
