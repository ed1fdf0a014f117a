// path: internal/game/status.go
package game

import "quantum_shogi/internal/shared"

// KingCandidates lists every square of the snapshot holding a piece of the
// owner whose candidate set still contains the king type. An empty result
// means the owner's king has been fully eliminated.
func KingCandidates(s *Snapshot, owner shared.Player) []Coord {
	var out []Coord
	s.eachBoardPiece(func(c Coord, p *Piece) {
		if p.Owner == owner && p.Candidates.Has(shared.King) {
			out = append(out, c)
		}
	})
	return out
}

// CheckReport describes the in-snapshot threats against one player's king
// candidates.
type CheckReport struct {
	Player     shared.Player
	Threatened []Coord
}

// CheckStatus reports, for each player, which of the world's king-candidate
// squares an enemy board piece attacks within the present snapshot (dw=0,
// dt=0). Under CheckPossible an attacker threatens a square if any of its
// candidate types reaches it; under CheckCertain every remaining candidate
// type must reach it.
func (g *Game) CheckStatus(worldID int) ([2]CheckReport, error) {
	wl, ok := g.worlds[worldID]
	if !ok {
		return [2]CheckReport{}, ruleErr(CodeWorldNotFound, "world %d", worldID)
	}
	s := wl.Present()

	var out [2]CheckReport
	for _, pl := range []shared.Player{shared.Sente, shared.Gote} {
		report := CheckReport{Player: pl}
		for _, kc := range KingCandidates(s, pl) {
			if g.squareAttacked(s, kc, pl.Opposite()) {
				report.Threatened = append(report.Threatened, kc)
			}
		}
		out[pl.Index()] = report
	}
	return out, nil
}

// squareAttacked reports whether any of attacker's board pieces reaches the
// target square under the configured check mode.
func (g *Game) squareAttacked(s *Snapshot, target Coord, attacker shared.Player) bool {
	found := false
	s.eachBoardPiece(func(from Coord, p *Piece) {
		if found || p.Owner != attacker || from == target {
			return
		}
		d := delta4{dx: target.X - from.X, dy: target.Y - from.Y}
		reaching := 0
		p.Candidates.Iter(func(t shared.PieceType) {
			if g.typeAllows(t, attacker, d, from, s) {
				reaching++
			}
		})
		switch g.settings.CheckMode {
		case CheckCertain:
			if reaching > 0 && reaching == p.Candidates.Count() {
				found = true
			}
		default:
			if reaching > 0 {
				found = true
			}
		}
	})
	return found
}
