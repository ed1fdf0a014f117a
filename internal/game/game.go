// path: internal/game/game.go
package game

import "quantum_shogi/internal/shared"

// Game owns the whole rule-engine state: the world map, the active player,
// the id counter, and the last status message. It is a plain value with no
// process-wide singleton; independent games can coexist. All methods are
// synchronous and single-threaded; callers that share a Game across
// goroutines serialize access themselves.
type Game struct {
	settings Settings
	worlds   map[int]*WorldLine
	turn     shared.Player
	message  string
	lastCode string
	nextID   int
}

// NewGame builds a game with world 0 holding the initial snapshot and the
// first player to move.
func NewGame(settings Settings) *Game {
	g := &Game{settings: settings}
	g.reset()
	return g
}

// Reset reinitializes the game to the starting position, keeping settings.
func (g *Game) Reset() { g.reset() }

func (g *Game) reset() {
	g.worlds = make(map[int]*WorldLine)
	g.turn = shared.Sente
	g.message = "new game"
	g.lastCode = ""
	g.nextID = 1
	s := g.initialSnapshot()
	g.worlds[0] = &WorldLine{ID: 0, History: []*Snapshot{s}}
}

// initialSnapshot fills ranks 0-2 with Gote pieces and ranks 6-8 with Sente
// pieces, every piece carrying the full candidate set.
func (g *Game) initialSnapshot() *Snapshot {
	s := NewSnapshot()
	for y := 0; y < 3; y++ {
		for x := 0; x < BoardSize; x++ {
			s.board[y][x] = g.newPiece(shared.Gote)
		}
	}
	for y := BoardSize - 3; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			s.board[y][x] = g.newPiece(shared.Sente)
		}
	}
	return s
}

func (g *Game) newPiece(owner shared.Player) *Piece {
	p := &Piece{ID: g.nextID, Owner: owner, Candidates: shared.FullTypeSet}
	g.nextID++
	return p
}

// Settings returns the fixed rule configuration.
func (g *Game) Settings() Settings { return g.settings }

// Turn returns the player to move.
func (g *Game) Turn() shared.Player { return g.turn }

// Message returns the human-readable outcome of the last operation.
func (g *Game) Message() string { return g.message }

// LastCode returns the rule-failure code of the last rejected commit, or the
// empty string after a success.
func (g *Game) LastCode() string { return g.lastCode }

// WorldIDs lists the existing worlds in ascending order.
func (g *Game) WorldIDs() []int { return g.sortedWorldIDs() }

// Present returns the latest snapshot of a world.
func (g *Game) Present(worldID int) (*Snapshot, error) {
	wl, ok := g.worlds[worldID]
	if !ok {
		return nil, ruleErr(CodeWorldNotFound, "world %d", worldID)
	}
	return wl.Present(), nil
}

// Stage records or overwrites the pending plan for a world. Unknown ids are
// ignored, matching the staging barrier contract: commit reports the missing
// input, not stage.
func (g *Game) Stage(worldID int, plan MovePlan) {
	if wl, ok := g.worlds[worldID]; ok {
		wl.Staged = &plan
	}
}

// ClearStaged discards every pending plan without side effects.
func (g *Game) ClearStaged() {
	for _, wl := range g.worlds {
		wl.Staged = nil
	}
}
