package engine

import "tanksim/internal/utils"

// serveBattleInfo implements the GetBattleInfo side-effect: build an
// immutable VisibilityView bound to t, then hand it to t's side's
// Strategist. A Strategist failure is fatal to the battle and is reported
// as a *utils.Error so the caller can forfeit the offending side.
func (m *Manager) serveBattleInfo(t *Tank, in RunInput) (err *utils.Error) {
	defer func() {
		if r := recover(); r != nil {
			err = utils.NewErr(t.Controller, 20, "strategist panicked: %v", r)
		}
	}()

	view := &snapshot{rows: m.g.Rows, cols: m.g.Cols, markers: m.renderMarkers(t)}

	strategist := in.Side1Strategist
	if t.Side == 2 {
		strategist = in.Side2Strategist
	}
	strategist.UpdateTankWithBattleInfo(t.Controller, view)
	return nil
}

// renderMarkers renders the full board from t's point of view: '%' the
// requesting tank, '1'/'2' other tanks, '#' wall or weakened wall, '@'
// mine, ' ' empty, '*' shell (overlaid on top of everything, including a
// tank).
func (m *Manager) renderMarkers(t *Tank) [][]rune {
	rows := make([][]rune, m.g.Rows)
	for row := 0; row < m.g.Rows; row++ {
		line := make([]rune, m.g.Cols)
		for col := 0; col < m.g.Cols; col++ {
			line[col] = terrainRune(m.g.At(row, col))
		}
		rows[row] = line
	}
	for _, other := range m.tanks {
		if !other.Alive {
			continue
		}
		if other == t {
			rows[other.Row][other.Col] = '%'
		} else {
			rows[other.Row][other.Col] = tankRune(other.Side)
		}
	}
	for _, s := range m.shells {
		if s.Live {
			rows[s.Row][s.Col] = '*'
		}
	}
	return rows
}
