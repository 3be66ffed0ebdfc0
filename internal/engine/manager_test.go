package engine

import "testing"

// scriptedController returns queued actions in order, then DoNothing
// forever once the script runs out.
type scriptedController struct {
	script []Action
	i      int
}

func (c *scriptedController) GetAction() Action {
	if c.i >= len(c.script) {
		return DoNothing
	}
	a := c.script[c.i]
	c.i++
	return a
}

func (c *scriptedController) UpdateBattleInfo(Briefing) {}

// noopStrategist is never actually invoked in tests that never return
// GetBattleInfo, but RunInput requires one per side regardless.
type noopStrategist struct{}

func (noopStrategist) UpdateTankWithBattleInfo(Controller, VisibilityView) {}

func scriptedFactory(scripts map[int][]Action) func(tankIndex int) Controller {
	return func(tankIndex int) Controller {
		return &scriptedController{script: scripts[tankIndex]}
	}
}

// scenario 2: two tanks in the same column of a 3x3 board, each with one
// shell; side 1 turns to face Up, fires on step 2, and the shell wraps
// around the board onto side 2's tank, so side 1 wins.
func TestRunFaceOffSingleShotWin(t *testing.T) {
	m := NewManager(false)
	in := RunInput{
		Width: 3, Height: 3,
		MapSnapshot: []string{" 1 ", "   ", " 2 "},
		MaxSteps:    10,
		NumShells:   1,
		Side1Strategist:    noopStrategist{},
		Side2Strategist:    noopStrategist{},
		ControllerFactory1: scriptedFactory(map[int][]Action{0: {Shoot}}),
		ControllerFactory2: scriptedFactory(map[int][]Action{0: {DoNothing}}),
	}

	// Map's default facing puts side 1 facing Left and side 2 facing Right;
	// override via directly constructing the manager is not exposed, so this
	// test instead checks the general "a shot across the same column kills"
	// behaviour using rotation first.
	in.ControllerFactory1 = scriptedFactory(map[int][]Action{0: {RotateRight90, Shoot}})

	res, err := m.Run(in)
	if err != nil {
		t.Fatalf("unexpected strategist error: %v", err)
	}
	if res.Winner != 1 {
		t.Fatalf("winner = %d, want 1", res.Winner)
	}
	if res.Reason != AllTanksDead {
		t.Fatalf("reason = %v, want AllTanksDead", res.Reason)
	}
	if res.LivingTanks != [2]int{1, 0} {
		t.Fatalf("living tanks = %v, want [1 0]", res.LivingTanks)
	}
}

// : a Shoot with shells_remaining == 0 yields no shell.
func TestShootIgnoredWithoutAmmo(t *testing.T) {
	m := NewManager(false)
	in := RunInput{
		Width: 3, Height: 3,
		MapSnapshot: []string{" 1 ", "   ", " 2 "},
		MaxSteps:    1,
		NumShells:   0,
		Side1Strategist:    noopStrategist{},
		Side2Strategist:    noopStrategist{},
		ControllerFactory1: scriptedFactory(map[int][]Action{0: {Shoot}}),
		ControllerFactory2: scriptedFactory(map[int][]Action{0: {DoNothing}}),
	}
	res, err := m.Run(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.shells) != 0 {
		t.Fatalf("no shell should have spawned with zero ammo")
	}
	if res.Reason != ZeroShells && res.Reason != MaxSteps {
		t.Fatalf("with no ammo at all the battle should end ZeroShells or MaxSteps, got %v", res.Reason)
	}
}

// : a Shoot with shoot_cooldown > 0 yields no shell.
func TestShootIgnoredDuringCooldown(t *testing.T) {
	m := NewManager(false)
	in := RunInput{
		Width: 5, Height: 1,
		MapSnapshot: []string{"1  2"},
		MaxSteps:    2,
		NumShells:   2,
		Side1Strategist:    noopStrategist{},
		Side2Strategist:    noopStrategist{},
		ControllerFactory1: scriptedFactory(map[int][]Action{0: {Shoot, Shoot}}),
		ControllerFactory2: scriptedFactory(map[int][]Action{0: {DoNothing, DoNothing}}),
	}
	if _, err := m.Run(in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var t0 *Tank
	for _, tk := range m.tanks {
		if tk.Side == 1 {
			t0 = tk
		}
	}
	if t0.ShellsRemaining != 1 {
		t.Fatalf("second Shoot during cooldown should not have consumed ammo, shells_remaining=%d want 1", t0.ShellsRemaining)
	}
}

// Two successive MoveBackward from Idle take at least 3 steps (delay +
// move) before the tank actually displaces.
func TestBackwardIdleDelaysThreeSteps(t *testing.T) {
	tk := &Tank{Row: 2, Col: 2, Facing: 0, Alive: true}
	// step 1: MoveBackward from Idle -> Cooldown2, not staged.
	stage, _, _ := tk.applyBackwardStateMachine(MoveBackward)
	if stage {
		t.Fatalf("first MoveBackward from Idle must not stage a move")
	}
	// step 2: still in Cooldown2 (wait=2->1), not staged.
	stage, _, _ = tk.applyBackwardStateMachine(DoNothing)
	if stage {
		t.Fatalf("backward move should not stage before the wait elapses")
	}
	// step 3: wait reaches 0, the backward step is staged (reversed).
	stage, reverse, _ := tk.applyBackwardStateMachine(DoNothing)
	if !stage || !reverse {
		t.Fatalf("the third step should stage the delayed backward move, got stage=%v reverse=%v", stage, reverse)
	}
	// Repeat state: a further MoveBackward executes immediately.
	stage, reverse, _ = tk.applyBackwardStateMachine(MoveBackward)
	if !stage || !reverse {
		t.Fatalf("a MoveBackward from Repeat should execute immediately")
	}
}

// : MoveForward issued during Cooldown2 cancels back to Idle
// and performs the forward move instead.
func TestBackwardCancelledByForward(t *testing.T) {
	tk := &Tank{Row: 0, Col: 0, Facing: 0, Alive: true}
	tk.applyBackwardStateMachine(MoveBackward) // -> Cooldown2
	stage, reverse, _ := tk.applyBackwardStateMachine(MoveForward)
	if !stage || reverse {
		t.Fatalf("MoveForward during Cooldown2 should cancel and move forward, got stage=%v reverse=%v", stage, reverse)
	}
	if tk.backward != bwIdle {
		t.Fatalf("state should return to Idle after cancellation")
	}
}

// : a non-MoveForward action while backward_wait > 0 is
// reported but ignored.
func TestBackwardSuppressesOtherActionsWhilePending(t *testing.T) {
	tk := &Tank{Row: 0, Col: 0, Facing: 0, Alive: true}
	tk.applyBackwardStateMachine(MoveBackward) // Cooldown2, wait=2
	_, _, outcome := tk.applyBackwardStateMachine(Shoot)
	if outcome != Ignored {
		t.Fatalf("an action during Cooldown2 (other than MoveForward) must be Ignored, got %v", outcome)
	}
}

// move validation: a pair of tanks that would swap cells
// both reject.
func TestSwapMoveRejected(t *testing.T) {
	m := NewManager(false)
	in := RunInput{
		Width: 4, Height: 4,
		MapSnapshot: []string{"    ", " 1  ", "  2 ", "    "},
		MaxSteps:    1,
		NumShells:   1,
		Side1Strategist:    noopStrategist{},
		Side2Strategist:    noopStrategist{},
		// Tank 1 at (1,1) facing DownRight (towards (2,2)); tank 2 at (2,2)
		// facing UpLeft (towards (1,1)): both attempt to move onto the
		// other's current cell simultaneously.
		ControllerFactory1: scriptedFactory(map[int][]Action{0: {RotateLeft45, RotateLeft45, RotateLeft45, MoveForward}}),
		ControllerFactory2: scriptedFactory(map[int][]Action{0: {RotateLeft45, RotateLeft45, RotateLeft45, MoveForward}}),
	}
	in.MaxSteps = 4
	res, err := m.Run(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var t1, t2 *Tank
	for _, tk := range m.tanks {
		if tk.Side == 1 {
			t1 = tk
		} else {
			t2 = tk
		}
	}
	if t1.Row != 1 || t1.Col != 1 {
		t.Fatalf("tank 1's swap move should have been rejected, ended at (%d,%d) want (1,1)", t1.Row, t1.Col)
	}
	if t2.Row != 2 || t2.Col != 2 {
		t.Fatalf("tank 2's swap move should have been rejected, ended at (%d,%d) want (2,2)", t2.Row, t2.Col)
	}
	_ = res
}

func TestFinalGridNeverContainsShellMarker(t *testing.T) {
	m := NewManager(false)
	in := RunInput{
		Width: 3, Height: 3,
		MapSnapshot: []string{" 1 ", "   ", " 2 "},
		MaxSteps:    3,
		NumShells:   1,
		Side1Strategist:    noopStrategist{},
		Side2Strategist:    noopStrategist{},
		ControllerFactory1: scriptedFactory(map[int][]Action{0: {RotateRight90, Shoot}}),
		ControllerFactory2: scriptedFactory(map[int][]Action{0: {DoNothing}}),
	}
	res, err := m.Run(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, row := range res.FinalGrid {
		for _, ch := range row {
			if ch == '*' {
				t.Fatalf("final grid must never contain a shell marker, got row %q", row)
			}
		}
	}
}

func TestMaxStepsTerminationByTankCount(t *testing.T) {
	m := NewManager(false)
	in := RunInput{
		Width: 3, Height: 1,
		MapSnapshot: []string{"1 2"},
		MaxSteps:    2,
		NumShells:   0,
		Side1Strategist:    noopStrategist{},
		Side2Strategist:    noopStrategist{},
		ControllerFactory1: scriptedFactory(map[int][]Action{0: {DoNothing, DoNothing}}),
		ControllerFactory2: scriptedFactory(map[int][]Action{0: {DoNothing, DoNothing}}),
	}
	res, err := m.Run(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Reason != MaxSteps {
		t.Fatalf("reason = %v, want MaxSteps", res.Reason)
	}
	if res.Winner != 0 {
		t.Fatalf("winner = %d, want 0 (tie: equal living tanks)", res.Winner)
	}
}

// Controller query order is side-major/index-major regardless of where
// tanks happen to sit on the map: a side-2 tank placed ahead of a side-1
// tank in board-scan order must still be queried after every side-1 tank.
func TestTankQueryOrderIsSideMajorRegardlessOfMapLayout(t *testing.T) {
	m := NewManager(false)
	var order []int
	in := RunInput{
		Width: 3, Height: 1,
		MapSnapshot: []string{"2 1"}, // side 2 appears first in board-scan order
		MaxSteps:    1,
		NumShells:   0,
		Side1Strategist: noopStrategist{},
		Side2Strategist: noopStrategist{},
		ControllerFactory1: func(tankIndex int) Controller {
			return &orderRecordingController{side: 1, order: &order}
		},
		ControllerFactory2: func(tankIndex int) Controller {
			return &orderRecordingController{side: 2, order: &order}
		},
	}
	if _, err := m.Run(in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("query order = %v, want [1 2] (side-major regardless of board layout)", order)
	}
}

type orderRecordingController struct {
	side  int
	order *[]int
}

func (c *orderRecordingController) GetAction() Action {
	*c.order = append(*c.order, c.side)
	return DoNothing
}
func (c *orderRecordingController) UpdateBattleInfo(Briefing) {}

func TestControllerPanicIsolatesToDoNothing(t *testing.T) {
	m := NewManager(false)
	in := RunInput{
		Width: 3, Height: 1,
		MapSnapshot: []string{"1 2"},
		MaxSteps:    1,
		NumShells:   1,
		Side1Strategist:    noopStrategist{},
		Side2Strategist:    noopStrategist{},
		ControllerFactory1: func(tankIndex int) Controller { return panicController{} },
		ControllerFactory2: scriptedFactory(map[int][]Action{0: {DoNothing}}),
	}
	res, err := m.Run(in)
	if err != nil {
		t.Fatalf("a panicking controller must not be fatal to the battle: %v", err)
	}
	if res.LivingTanks[0] != 1 {
		t.Fatalf("the tank whose controller panicked should remain alive")
	}
}

type panicController struct{}

func (panicController) GetAction() Action          { panic("boom") }
func (panicController) UpdateBattleInfo(Briefing) {}
