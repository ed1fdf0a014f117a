// path: internal/game/collapse.go
package game

import "quantum_shogi/internal/shared"

// maxCollapsePasses bounds the fixpoint loop. The scan is monotone (candidate
// sets only shrink) so it terminates on its own; the cap guards against a
// future rule change breaking that.
const maxCollapsePasses = 64

// collapseByCount forces candidate sets to a singleton once a type's live
// count for an owner equals its limit, counting across every world's present
// board and that owner's hands. One collapse can change the counts feeding
// another (owner, type) pair, so the scan repeats until a full pass changes
// nothing.
func (g *Game) collapseByCount() {
	presents := make([]*Snapshot, 0, len(g.worlds))
	for _, wl := range g.worlds {
		presents = append(presents, wl.Present())
	}

	for pass := 0; pass < maxCollapsePasses; pass++ {
		if !g.collapsePass(presents) {
			return
		}
	}
}

// collapsePass runs one full scan and reports whether anything changed.
func (g *Game) collapsePass(presents []*Snapshot) bool {
	changed := false
	for _, owner := range []shared.Player{shared.Sente, shared.Gote} {
		for _, t := range shared.AllPieceTypes {
			holders := make([]*Piece, 0, t.Limit())
			for _, s := range presents {
				s.eachBoardPiece(func(_ Coord, p *Piece) {
					if p.Owner == owner && p.Candidates.Has(t) {
						holders = append(holders, p)
					}
				})
				for _, p := range s.Hand(owner) {
					if p.Candidates.Has(t) {
						holders = append(holders, p)
					}
				}
			}
			if len(holders) != t.Limit() {
				continue
			}
			for _, p := range holders {
				if p.Candidates.Only(t) {
					continue
				}
				p.Candidates = shared.Singleton(t)
				changed = true
			}
		}
	}
	return changed
}
