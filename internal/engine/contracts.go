package engine

import "tanksim/internal/utils"

// Controller is the per-tank component: one is created per living tank and
// lives for that tank's lifetime.
type Controller interface {
	GetAction() Action
	UpdateBattleInfo(b Briefing)
}

// Strategist is the per-side component: one is created per side per battle,
// invoked only when one of its tanks requests info.
type Strategist interface {
	UpdateTankWithBattleInfo(controller Controller, view VisibilityView)
}

// GameManager runs exactly one battle to a terminal state.
type GameManager interface {
	Run(input RunInput) (GameResult, *utils.Error)
}

// RunInput bundles the Run() parameters instead of passing them
// positionally; a struct keeps the plugin-facing signature stable as
// fields are added.
type RunInput struct {
	Width, Height        int
	MapSnapshot          []string // row-major, each string Width runes long
	MaxSteps             int
	NumShells            int
	Side1Strategist      Strategist
	Side2Strategist      Strategist
	ControllerFactory1   func(tankIndex int) Controller
	ControllerFactory2   func(tankIndex int) Controller
}

// StrategistFactory builds one Strategist for one side of one battle.
type StrategistFactory func(side, width, height, maxSteps, numShells int) Strategist

// ControllerFactory builds one Controller for one tank.
type ControllerFactory func(side, tankIndex int) Controller

// ArbiterFactory builds one GameManager instance.
type ArbiterFactory func(verbose bool) GameManager
