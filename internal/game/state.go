// path: internal/game/state.go
package game

import "quantum_shogi/internal/shared"

// PieceState is a serializable representation of a Piece.
type PieceState struct {
	ID         int      `json:"id"`
	Owner      string   `json:"owner"`
	Candidates []string `json:"candidates"`
	Promoted   bool     `json:"promoted"`
	X          int      `json:"x"`
	Y          int      `json:"y"`
}

// HandPieceState is a serializable hand entry; its index is the drop index.
type HandPieceState struct {
	ID         int      `json:"id"`
	Candidates []string `json:"candidates"`
}

// SnapshotState is a serializable Snapshot.
type SnapshotState struct {
	Pieces []PieceState                `json:"pieces"`
	Hands  map[string][]HandPieceState `json:"hands"`
}

// WorldState is a serializable WorldLine present plus its metadata.
type WorldState struct {
	ID             int                `json:"id"`
	HistoryLen     int                `json:"historyLen"`
	Lost           bool               `json:"lost"`
	HasStaged      bool               `json:"hasStaged"`
	Present        SnapshotState      `json:"present"`
	KingCandidates map[string][]Coord `json:"kingCandidates"`
}

// GameState is the full serializable game, consumed by front-ends.
type GameState struct {
	Turn        string       `json:"turn"`
	Message     string       `json:"message"`
	MaxWorlds   int          `json:"maxWorlds"`
	MaxTimeJump int          `json:"maxTimeJump"`
	HandMode    string       `json:"handMode"`
	TimePolicy  string       `json:"timePolicy"`
	CheckMode   string       `json:"checkMode"`
	Worlds      []WorldState `json:"worlds"`
}

// State produces the serializable representation of the whole game.
func (g *Game) State() GameState {
	state := GameState{
		Turn:        g.turn.String(),
		Message:     g.message,
		MaxWorlds:   g.settings.MaxWorlds,
		MaxTimeJump: g.settings.MaxTimeJump,
		HandMode:    g.settings.HandMode.String(),
		TimePolicy:  g.settings.TimePolicy.String(),
		CheckMode:   g.settings.CheckMode.String(),
		Worlds:      make([]WorldState, 0, len(g.worlds)),
	}
	for _, id := range g.sortedWorldIDs() {
		wl := g.worlds[id]
		state.Worlds = append(state.Worlds, WorldState{
			ID:         wl.ID,
			HistoryLen: len(wl.History),
			Lost:       wl.Lost,
			HasStaged:  wl.Staged != nil,
			Present:    snapshotState(wl.Present()),
			KingCandidates: map[string][]Coord{
				shared.Sente.String(): KingCandidates(wl.Present(), shared.Sente),
				shared.Gote.String():  KingCandidates(wl.Present(), shared.Gote),
			},
		})
	}
	return state
}

func snapshotState(s *Snapshot) SnapshotState {
	out := SnapshotState{
		Pieces: make([]PieceState, 0, 2*3*BoardSize),
		Hands:  make(map[string][]HandPieceState, 2),
	}
	s.eachBoardPiece(func(c Coord, p *Piece) {
		out.Pieces = append(out.Pieces, PieceState{
			ID:         p.ID,
			Owner:      p.Owner.String(),
			Candidates: p.Candidates.Names(),
			Promoted:   p.Promoted,
			X:          c.X,
			Y:          c.Y,
		})
	})
	for _, pl := range []shared.Player{shared.Sente, shared.Gote} {
		hand := make([]HandPieceState, 0, len(s.Hand(pl)))
		for _, p := range s.Hand(pl) {
			hand = append(hand, HandPieceState{ID: p.ID, Candidates: p.Candidates.Names()})
		}
		out.Hands[pl.String()] = hand
	}
	return out
}
