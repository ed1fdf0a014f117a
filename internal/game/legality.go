// path: internal/game/legality.go
package game

import "quantum_shogi/internal/shared"

// delta4 is a displacement across all four axes: file, rank, world, time.
type delta4 struct {
	dx, dy, dw, dt int
}

// goldSteps, silverSteps and knightSteps enumerate the legal displacements
// for the stepping types, parameterized by the owner's forward sign f.
func goldSteps(f int) [8]delta4 {
	return [8]delta4{
		{0, f, 0, 0},
		{1, 0, 0, 0},
		{-1, 0, 0, 0},
		{0, -f, 0, 0},
		{1, f, 0, 0},
		{-1, f, 0, 0},
		{0, 0, f, 0},
		{0, 0, 0, -1},
	}
}

func silverSteps(f int) [7]delta4 {
	return [7]delta4{
		{0, f, 0, 0},
		{1, f, 0, 0},
		{-1, f, 0, 0},
		{1, -f, 0, 0},
		{-1, -f, 0, 0},
		{0, 0, f, 0},
		{0, 0, 0, -1},
	}
}

func knightSteps(f int) [6]delta4 {
	return [6]delta4{
		{1, 2 * f, 0, 0},
		{-1, 2 * f, 0, 0},
		{1, 0, 2 * f, 0},
		{-1, 0, 2 * f, 0},
		{1, 0, 0, -2},
		{-1, 0, 0, -2},
	}
}

// typeAllows decides whether the candidate type permits the displacement
// (dx, dy, dw, dt) for the owner, reading src only for line-of-sight checks.
// It is evaluated independently per candidate type; the subset of types that
// allow the move becomes the piece's new candidate set.
func (g *Game) typeAllows(t shared.PieceType, owner shared.Player, d delta4, from Coord, src *Snapshot) bool {
	if g.settings.TimePolicy == TimePastOnly && d.dt > 0 {
		return false
	}
	switch t {
	case shared.Pawn, shared.Gold, shared.Silver, shared.King:
		if abs(d.dw) >= 2 {
			return false
		}
	}

	f := owner.Forward()
	switch t {
	case shared.King:
		return max4(abs(d.dx), abs(d.dy), abs(d.dw), abs(d.dt)) == 1
	case shared.Pawn:
		return d == delta4{0, f, 0, 0} ||
			d == delta4{0, 0, f, 0} ||
			d == delta4{0, 0, 0, -1}
	case shared.Gold:
		for _, s := range goldSteps(f) {
			if d == s {
				return true
			}
		}
		return false
	case shared.Silver:
		for _, s := range silverSteps(f) {
			if d == s {
				return true
			}
		}
		return false
	case shared.Knight:
		for _, s := range knightSteps(f) {
			if d == s {
				return true
			}
		}
		return false
	case shared.Lance:
		if d == (delta4{}) {
			return false
		}
		forwardRank := d.dx == 0 && d.dw == 0 && d.dt == 0 && sign(d.dy) == f
		forwardWorld := d.dx == 0 && d.dy == 0 && d.dt == 0 && sign(d.dw) == f
		return (forwardRank || forwardWorld) && lineClear(from, d.dx, d.dy, src)
	case shared.Rook:
		zeros := 0
		for _, v := range [4]int{d.dx, d.dy, d.dw, d.dt} {
			if v == 0 {
				zeros++
			}
		}
		return zeros == 3 && lineClear(from, d.dx, d.dy, src)
	case shared.Bishop:
		mag := 0
		nonZero := 0
		for _, v := range [4]int{d.dx, d.dy, d.dw, d.dt} {
			if v == 0 {
				continue
			}
			nonZero++
			if mag == 0 {
				mag = abs(v)
			} else if abs(v) != mag {
				return false
			}
		}
		return nonZero >= 2 && lineClear(from, d.dx, d.dy, src)
	default:
		return false
	}
}

// lineClear checks the x/y projection of a sliding path: every intermediate
// square must be on-board and empty in the source snapshot. World and time
// steps are not blockable by board occupancy.
func lineClear(from Coord, dx, dy int, src *Snapshot) bool {
	steps := max4(abs(dx), abs(dy), 0, 0)
	if steps <= 1 {
		return true
	}
	sx := sign(dx)
	sy := sign(dy)
	for i := 1; i < steps; i++ {
		c := Coord{X: from.X + sx*i, Y: from.Y + sy*i}
		if !c.OnBoard() {
			return false
		}
		if src.Board().At(c) != nil {
			return false
		}
	}
	return true
}

// filterMoveCandidates narrows the piece's candidate set to the types whose
// displacement rule matches the plan. Destination occupancy by the mover's
// own piece and off-board targets are rejected here, before any filtering.
func (g *Game) filterMoveCandidates(piece *Piece, from, to Coord, dw, dt int, src, target *Snapshot) (shared.TypeSet, error) {
	if !to.OnBoard() {
		return 0, ruleErr(CodeOffBoard, "destination (%d,%d)", to.X, to.Y)
	}
	if occ := target.Board().At(to); occ != nil && occ.Owner == piece.Owner {
		return 0, ruleErr(CodeDestinationOwnPiece, "square (%d,%d)", to.X, to.Y)
	}
	d := delta4{dx: to.X - from.X, dy: to.Y - from.Y, dw: dw, dt: dt}
	var out shared.TypeSet
	for _, t := range piece.Candidates.Types() {
		if g.typeAllows(t, piece.Owner, d, from, src) {
			out = out.Add(t)
		}
	}
	return out, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func max4(a, b, c, d int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	if d > m {
		m = d
	}
	return m
}
