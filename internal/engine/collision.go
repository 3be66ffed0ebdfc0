package engine

import "tanksim/internal/grid"

// movingObject is the minimal shape collision resolution needs, uniform
// across tanks and shells.
type movingObject struct {
	isShell          bool
	shellIdx         int
	tankIdx          int
	row, col         int
	prevRow, prevCol int
}

// resolveCollisions runs one collision-resolution pass: wall/mine impacts
// first, then pairwise same-cell or crossed-path destruction among all
// currently-live tanks and shells. Mutates tanks/shells/board in place.
func resolveCollisions(g *grid.Grid, tanks []*Tank, shells []*Shell) {
	for _, sh := range shells {
		if !sh.Live {
			continue
		}
		if g.HitWall(sh.Row, sh.Col) {
			sh.Live = false
		}
	}

	for _, t := range tanks {
		if !t.Alive {
			continue
		}
		if g.At(t.Row, t.Col) == grid.Mine {
			t.Alive = false
			g.Set(t.Row, t.Col, grid.Empty)
		}
	}

	var objs []movingObject
	for i, sh := range shells {
		if sh.Live {
			objs = append(objs, movingObject{isShell: true, shellIdx: i, row: sh.Row, col: sh.Col, prevRow: sh.PrevRow, prevCol: sh.PrevCol})
		}
	}
	for i, t := range tanks {
		if t.Alive {
			objs = append(objs, movingObject{isShell: false, tankIdx: i, row: t.Row, col: t.Col, prevRow: t.PrevRow, prevCol: t.PrevCol})
		}
	}

	dead := make(map[int]struct{}) // index into objs
	for i := 0; i < len(objs); i++ {
		for j := i + 1; j < len(objs); j++ {
			a, b := objs[i], objs[j]
			sameCell := a.row == b.row && a.col == b.col
			crossed := a.row == b.prevRow && a.col == b.prevCol && b.row == a.prevRow && b.col == a.prevCol
			if sameCell || crossed {
				dead[i] = struct{}{}
				dead[j] = struct{}{}
			}
		}
	}
	for i := range dead {
		o := objs[i]
		if o.isShell {
			shells[o.shellIdx].Live = false
		} else {
			tanks[o.tankIdx].Alive = false
		}
	}
}
