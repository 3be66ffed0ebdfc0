package engine

import (
	"log"
	"sort"

	"tanksim/internal/grid"
	"tanksim/internal/utils"
)

// Manager is the reference GameManager: it owns the board, the tanks and
// the in-flight shells for exactly one battle, and runs the step loop to
// completion. A Manager instance is used for one Run() and then
// discarded.
type Manager struct {
	verbose     bool
	closedBoard bool
	noAmmoGrace int

	g      *grid.Grid
	tanks  []*Tank // side-major then index-major order, fixed in init regardless of map discovery order
	shells []*Shell

	zeroShellStreak int
}

// NewManager builds a Manager ready for one Run() call.
func NewManager(verbose bool, opts ...Option) *Manager {
	m := &Manager{verbose: verbose, noAmmoGrace: 40}
	for _, o := range opts {
		o(m)
	}
	return m
}

var _ GameManager = (*Manager)(nil)

func defaultFacing(side int) grid.Direction {
	if side == 1 {
		return grid.Left
	}
	return grid.Right
}

// Run executes one battle to a terminal state.
func (m *Manager) Run(in RunInput) (GameResult, *utils.Error) {
	if err := m.init(in); err != nil {
		return GameResult{}, err
	}

	step := 0
	for step = 1; step <= in.MaxSteps; step++ {
		if m.verbose {
			log.Printf("=== step %d/%d ===", step, in.MaxSteps)
		}

		// 1. Shell half-move A.
		m.advanceShells()
		// 2. Collision resolution (first pass).
		resolveCollisions(m.g, m.tanks, m.shells)
		// 3. Dead-shell purge.
		m.purgeDeadShells()

		// 4-7. Controller query / action application / move validation / commit.
		if failedSide, err := m.runControllerPhase(in); err != nil {
			utils.Check(err)
			return m.forfeit(failedSide, step), nil
		}

		// 8. Shell half-move B.
		m.advanceShells()
		// 9. Collision resolution (second pass).
		resolveCollisions(m.g, m.tanks, m.shells)
		// 10. Dead-shell purge.
		m.purgeDeadShells()

		// 11. Terminal-condition check.
		if res, done := m.checkTermination(step, in.MaxSteps); done {
			return res, nil
		}
	}

	// Loop exited because step > MaxSteps without an earlier terminal hit;
	// evaluate MaxSteps termination at N == MaxSteps.
	res, _ := m.checkTermination(in.MaxSteps, in.MaxSteps)
	return res, nil
}

func (m *Manager) init(in RunInput) *utils.Error {
	if in.Width <= 0 || in.Height <= 0 {
		return utils.NewErr(m, 1, "invalid dimensions %dx%d", in.Width, in.Height)
	}
	m.g = grid.New(in.Height, in.Width, m.closedBoard)

	sideCount := [3]int{}
	for row := 0; row < in.Height && row < len(in.MapSnapshot); row++ {
		line := []rune(in.MapSnapshot[row])
		for col := 0; col < in.Width; col++ {
			var ch rune = ' '
			if col < len(line) {
				ch = line[col]
			}
			switch ch {
			case '#':
				m.g.Set(row, col, grid.Wall)
			case '@':
				m.g.Set(row, col, grid.Mine)
			case '1', '2':
				side := 1
				if ch == '2' {
					side = 2
				}
				idx := sideCount[side]
				sideCount[side]++
				t := &Tank{
					Side: side, Index: idx, Row: row, Col: col,
					PrevRow: row, PrevCol: col,
					Facing:          defaultFacing(side),
					ShellsRemaining: in.NumShells,
					Alive:           true,
				}
				if side == 1 {
					t.Controller = in.ControllerFactory1(idx)
				} else {
					t.Controller = in.ControllerFactory2(idx)
				}
				m.tanks = append(m.tanks, t)
			default:
				m.g.Set(row, col, grid.Empty)
			}
		}
	}

	if sideCount[1] == 0 || sideCount[2] == 0 {
		return utils.NewErr(m, 2, "map must contain at least one tank per side (got %d, %d)", sideCount[1], sideCount[2])
	}

	// m.tanks was built in board-discovery order (row-major, then column-major
	// within a row), which need not match side-major/index-major. Every tank
	// is queried once per step in m.tanks order, and an earlier tank's shot or
	// rotation is visible to a later tank's GetBattleInfo snapshot this same
	// step, so the order itself is observable: re-sort side 1 (index-major)
	// ahead of side 2 (index-major) to make it deterministic and independent
	// of map layout.
	sort.SliceStable(m.tanks, func(i, j int) bool {
		if m.tanks[i].Side != m.tanks[j].Side {
			return m.tanks[i].Side < m.tanks[j].Side
		}
		return m.tanks[i].Index < m.tanks[j].Index
	})
	return nil
}

func (m *Manager) advanceShells() {
	for _, s := range m.shells {
		if !s.Live {
			continue
		}
		if ok := s.advance(m.g); !ok {
			s.Live = false // left a closed board
		}
	}
}

func (m *Manager) purgeDeadShells() {
	live := m.shells[:0]
	for _, s := range m.shells {
		if s.Live {
			live = append(live, s)
		}
	}
	m.shells = live
}

// runControllerPhase implements step phases 4-7: controller query, action
// application, move validation and move commit. Returns a non-nil error
// only when a Strategist panics/errors — that is fatal to the battle and
// forfeits the offending side.
func (m *Manager) runControllerPhase(in RunInput) (failedSide int, strategistErr *utils.Error) {
	type pendingMove struct {
		tank      *Tank
		targetRow int
		targetCol int
		reverse   bool
	}
	var moves []pendingMove

	for _, t := range m.tanks {
		if !t.Alive {
			continue
		}
		t.PrevRow, t.PrevCol = t.Row, t.Col

		action, ctrlErr := m.queryController(t)
		if ctrlErr != nil {
			utils.Check(ctrlErr)
			action = DoNothing
		}

		// GetBattleInfo is served regardless of backward-wait suppression:
		// that suppression governs board-affecting action effects, and an
		// info request changes nothing about the board. The countdown below
		// still advances for it like any other non-MoveForward action.
		if action == GetBattleInfo {
			if err := m.serveBattleInfo(t, in); err != nil {
				return t.Side, err
			}
		}

		stage, reverse, outcome := t.applyBackwardStateMachine(action)
		if m.verbose {
			log.Printf("tank side=%d idx=%d action=%s outcome=%s", t.Side, t.Index, action, outcome)
		}

		if outcome != Ignored {
			switch action {
			case RotateLeft45:
				t.Facing = t.Facing.RotateLeft45()
			case RotateRight45:
				t.Facing = t.Facing.RotateRight45()
			case RotateLeft90:
				t.Facing = t.Facing.RotateLeft90()
			case RotateRight90:
				t.Facing = t.Facing.RotateRight90()
			case Shoot:
				m.tryShoot(t)
			}
		}

		if stage {
			facing := t.Facing
			if reverse {
				facing = facing.RotateRight90().RotateRight90() // 180°
			}
			nr, nc, _ := m.g.Step(t.Row, t.Col, facing)
			moves = append(moves, pendingMove{tank: t, targetRow: nr, targetCol: nc, reverse: reverse})
		}
	}

	// 6. Move validation.
	valid := make([]pendingMove, 0, len(moves))
	for _, mv := range moves {
		if m.g.IsBlocking(mv.targetRow, mv.targetCol) {
			continue
		}
		if occupant := m.tankAt(mv.targetRow, mv.targetCol); occupant != nil && occupant != mv.tank {
			continue
		}
		valid = append(valid, mv)
	}
	// Reject swaps: two tanks whose targets are each other's current cells.
	rejectSwap := make(map[*Tank]bool)
	for i := 0; i < len(valid); i++ {
		for j := i + 1; j < len(valid); j++ {
			a, b := valid[i], valid[j]
			if a.targetRow == b.tank.Row && a.targetCol == b.tank.Col &&
				b.targetRow == a.tank.Row && b.targetCol == a.tank.Col {
				rejectSwap[a.tank] = true
				rejectSwap[b.tank] = true
			}
		}
	}

	// 7. Move commit.
	for _, mv := range valid {
		if rejectSwap[mv.tank] {
			continue
		}
		mv.tank.Row, mv.tank.Col = mv.targetRow, mv.targetCol
	}
	return 0, nil
}

// queryController asks a living tank's Controller for its next Action.
// A panicking Controller is isolated: the tank reports DoNothing for this
// step and remains alive.
func (m *Manager) queryController(t *Tank) (action Action, err *utils.Error) {
	defer func() {
		if r := recover(); r != nil {
			err = utils.NewErr(t.Controller, 10, "controller panicked: %v", r)
		}
	}()
	return t.Controller.GetAction(), nil
}

func (m *Manager) tryShoot(t *Tank) {
	if t.ShellsRemaining <= 0 || t.ShootCooldown != 0 {
		return
	}
	t.ShellsRemaining--
	t.ShootCooldown = 4
	m.shells = append(m.shells, &Shell{
		Row: t.Row, Col: t.Col, PrevRow: t.Row, PrevCol: t.Col, Dir: t.Facing, Live: true,
	})
}

func (m *Manager) tankAt(row, col int) *Tank {
	for _, t := range m.tanks {
		if t.Alive && t.Row == row && t.Col == col {
			return t
		}
	}
	return nil
}

// tickCooldowns decrements every living tank's shoot cooldown; called once
// per step after the controller phase, matching the "strictly decreases by
// one per step when nonzero" invariant.
func (m *Manager) tickCooldowns() {
	for _, t := range m.tanks {
		if t.Alive && t.ShootCooldown > 0 {
			t.ShootCooldown--
		}
	}
}

func (m *Manager) checkTermination(step, maxSteps int) (GameResult, bool) {
	m.tickCooldowns()

	living := [3]int{}
	for _, t := range m.tanks {
		if t.Alive {
			living[t.Side]++
		}
	}

	if living[1] == 0 && living[2] == 0 {
		return m.result(0, AllTanksDead, living, step), true
	}
	if living[1] == 0 {
		return m.result(2, AllTanksDead, living, step), true
	}
	if living[2] == 0 {
		return m.result(1, AllTanksDead, living, step), true
	}

	allDry := true
	for _, t := range m.tanks {
		if t.Alive && t.ShellsRemaining > 0 {
			allDry = false
			break
		}
	}
	if allDry {
		m.zeroShellStreak++
	} else {
		m.zeroShellStreak = 0
	}
	if m.zeroShellStreak >= m.noAmmoGrace {
		return m.result(0, ZeroShells, living, step), true
	}

	if step == maxSteps {
		winner := 0
		switch {
		case living[1] > living[2]:
			winner = 1
		case living[2] > living[1]:
			winner = 2
		}
		return m.result(winner, MaxSteps, living, step), true
	}
	return GameResult{}, false
}

// forfeit ends the battle with failedSide treated as if all its tanks were
// destroyed: a Strategist error is fatal to the battle, and the offending
// side forfeits.
func (m *Manager) forfeit(failedSide, step int) GameResult {
	for _, t := range m.tanks {
		if t.Side == failedSide {
			t.Alive = false
		}
	}
	living := [3]int{}
	for _, t := range m.tanks {
		if t.Alive {
			living[t.Side]++
		}
	}
	winner := 3 - failedSide // the other side
	if living[winner] == 0 {
		winner = 0
	}
	return m.result(winner, AllTanksDead, living, step)
}

func (m *Manager) result(winner int, reason Reason, living [3]int, step int) GameResult {
	return GameResult{
		Winner:      winner,
		Reason:      reason,
		LivingTanks: [2]int{living[1], living[2]},
		Rounds:      step,
		FinalGrid:   m.renderFinalGrid(),
	}
}

func (m *Manager) renderFinalGrid() []string {
	rows := make([]string, m.g.Rows)
	for row := 0; row < m.g.Rows; row++ {
		line := make([]rune, m.g.Cols)
		for col := 0; col < m.g.Cols; col++ {
			line[col] = terrainRune(m.g.At(row, col))
		}
		for _, t := range m.tanks {
			if t.Alive && t.Row == row {
				line[t.Col] = tankRune(t.Side)
			}
		}
		rows[row] = string(line)
	}
	return rows
}

func terrainRune(c grid.Content) rune {
	switch c {
	case grid.Wall, grid.WeakenedWall:
		return '#'
	case grid.Mine:
		return '@'
	default:
		return ' '
	}
}

func tankRune(side int) rune {
	if side == 1 {
		return '1'
	}
	return '2'
}
