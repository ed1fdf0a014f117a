// path: internal/game/executor.go
package game

import "quantum_shogi/internal/shared"

// executeMove applies one staged plan against a (sourcePresent, target)
// snapshot pair. For a non-branching move target is the same snapshot as
// sourcePresent; for a branching move target is a clone of the past or
// other-world snapshot that seeds the new worldline. The mover departs from
// sourcePresent and arrives in target only.
func (g *Game) executeMove(sourcePresent, target *Snapshot, plan *MovePlan, branching bool, globalUse map[shared.PieceType]int) error {
	if plan.Mode == ModeDrop {
		return g.executeDrop(sourcePresent, target, plan, globalUse)
	}

	if !plan.From.OnBoard() {
		return ruleErr(CodeOffBoard, "origin (%d,%d)", plan.From.X, plan.From.Y)
	}
	piece := sourcePresent.Board().At(plan.From)
	if piece == nil {
		return ruleErr(CodeEmptyOrigin, "square (%d,%d)", plan.From.X, plan.From.Y)
	}
	if piece.Owner != g.turn {
		return ruleErr(CodeNotOwnersPiece, "square (%d,%d) holds a %s piece", plan.From.X, plan.From.Y, piece.Owner)
	}

	candidates, err := g.filterMoveCandidates(piece, plan.From, plan.To, plan.DeltaWorld, plan.DeltaTime, sourcePresent, target)
	if err != nil {
		return err
	}
	if candidates.Empty() {
		return ruleErr(CodeNoLegalCandidate, "no candidate type of %s permits the move", piece.Candidates)
	}

	sourcePresent.Board().set(plan.From, nil)
	mover := clonePiece(piece)
	mover.Candidates = candidates
	mover.Promoted = plan.Promote

	if victim := target.Board().At(plan.To); victim != nil {
		captured := clonePiece(victim)
		captured.Owner = g.turn
		// A captured piece can never again present as a king.
		captured.Candidates = captured.Candidates.Remove(shared.King)
		captured.Promoted = false
		target.hands[g.turn.Index()] = append(target.hands[g.turn.Index()], captured)
		target.Board().set(plan.To, nil)
	}

	// Non-branching: target aliases sourcePresent, so the origin clear above
	// already happened there. Branching: the forked timeline receives only
	// the arrival; its board keeps whatever stood on the origin square at the
	// fork point.
	target.Board().set(plan.To, mover)
	return nil
}

// executeDrop removes a hand piece from sourcePresent, filters its candidate
// set by the drop restrictions, and places it in target.
func (g *Game) executeDrop(sourcePresent, target *Snapshot, plan *MovePlan, globalUse map[shared.PieceType]int) error {
	if !plan.To.OnBoard() {
		return ruleErr(CodeOffBoard, "destination (%d,%d)", plan.To.X, plan.To.Y)
	}
	if target.Board().At(plan.To) != nil {
		return ruleErr(CodeDestinationOccupied, "square (%d,%d)", plan.To.X, plan.To.Y)
	}
	hand := sourcePresent.hands[g.turn.Index()]
	if plan.HandIndex < 0 || plan.HandIndex >= len(hand) {
		return ruleErr(CodeInvalidHandIndex, "index %d of %d", plan.HandIndex, len(hand))
	}

	piece := hand[plan.HandIndex]
	filtered := g.filterDropCandidates(piece.Candidates, plan.To, target)
	if filtered.Empty() {
		return ruleErr(CodeNoLegalCandidate, "drop restrictions eliminate every candidate of %s", piece.Candidates)
	}

	// Global usage is counted per surviving candidate type: a type the drop
	// restrictions eliminate consumes no hand cover.
	if g.settings.HandMode == HandGlobal && globalUse != nil {
		filtered.Iter(func(t shared.PieceType) { globalUse[t]++ })
	}

	sourcePresent.hands[g.turn.Index()] = append(hand[:plan.HandIndex:plan.HandIndex], hand[plan.HandIndex+1:]...)
	dropped := clonePiece(piece)
	dropped.Owner = g.turn
	dropped.Candidates = filtered
	target.Board().set(plan.To, dropped)
	return nil
}

// filterDropCandidates removes the candidate types that may not be dropped at
// the square: pawns on a double-pawn file or the farthest rank, lances on the
// farthest rank, knights within the nearest two ranks.
func (g *Game) filterDropCandidates(cands shared.TypeSet, to Coord, target *Snapshot) shared.TypeSet {
	var out shared.TypeSet
	cands.Iter(func(t shared.PieceType) {
		switch t {
		case shared.Pawn:
			if g.doublePawnFile(target, to.X, g.turn) {
				return
			}
			if to.Y == farthestRank(g.turn) {
				return
			}
		case shared.Lance:
			if to.Y == farthestRank(g.turn) {
				return
			}
		case shared.Knight:
			if nearFarthestRank(g.turn, to.Y) {
				return
			}
		}
		out = out.Add(t)
	})
	return out
}

// doublePawnFile reports whether the file already holds a piece of the owner
// whose candidate set has collapsed to exactly {pawn}.
func (g *Game) doublePawnFile(s *Snapshot, file int, owner shared.Player) bool {
	for y := 0; y < BoardSize; y++ {
		p := s.board[y][file]
		if p != nil && p.Owner == owner && p.Candidates.Only(shared.Pawn) {
			return true
		}
	}
	return false
}

// farthestRank is the rank the player can never retreat from.
func farthestRank(p shared.Player) int {
	if p == shared.Sente {
		return 0
	}
	return BoardSize - 1
}

// nearFarthestRank reports whether the rank is within the player's two
// farthest ranks, where a knight would have no onward move.
func nearFarthestRank(p shared.Player, y int) bool {
	if p == shared.Sente {
		return y <= 1
	}
	return y >= BoardSize-2
}
