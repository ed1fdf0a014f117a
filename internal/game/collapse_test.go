// path: internal/game/collapse_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quantum_shogi/internal/shared"
)

func TestCollapseForcesSingletonAtLimit(t *testing.T) {
	g := newBareGame(DefaultSettings())
	a := g.placePiece(0, Coord{X: 2, Y: 2}, shared.Sente, shared.TS(shared.Gold).Add(shared.Rook))
	b := g.placePiece(0, Coord{X: 6, Y: 6}, shared.Sente, shared.TS(shared.Gold).Add(shared.Bishop))

	g.collapseByCount()

	// Exactly two gold candidates remain for a limit of two, so both must
	// be the golds.
	require.Equal(t, shared.Singleton(shared.Gold), a.Candidates)
	require.Equal(t, shared.Singleton(shared.Gold), b.Candidates)
}

func TestCollapseCascades(t *testing.T) {
	g := newBareGame(DefaultSettings())
	a := g.placePiece(0, Coord{X: 2, Y: 2}, shared.Sente, shared.TS(shared.King).Add(shared.Rook))
	b := g.placePiece(0, Coord{X: 6, Y: 6}, shared.Sente, shared.TS(shared.Rook).Add(shared.Gold))

	g.collapseByCount()

	// The king collapse on the first pass strips the rook candidate from
	// a, which leaves b as the only rook candidate on the next pass.
	require.Equal(t, shared.Singleton(shared.King), a.Candidates)
	require.Equal(t, shared.Singleton(shared.Rook), b.Candidates)
}

func TestCollapseCountsHandPieces(t *testing.T) {
	g := newBareGame(DefaultSettings())
	board := g.placePiece(0, Coord{X: 4, Y: 4}, shared.Sente, shared.TS(shared.Silver).Add(shared.Bishop))
	hand := g.addHandPiece(0, shared.Sente, shared.TS(shared.Silver))

	g.collapseByCount()

	require.Equal(t, shared.Singleton(shared.Silver), board.Candidates)
	require.Equal(t, shared.Singleton(shared.Silver), hand.Candidates)
}

func TestCollapseSpansWorlds(t *testing.T) {
	g := newBareGame(DefaultSettings())
	g.addWorld(1)
	a := g.placePiece(0, Coord{X: 2, Y: 2}, shared.Sente, shared.TS(shared.Knight).Add(shared.Rook))
	b := g.placePiece(1, Coord{X: 6, Y: 6}, shared.Sente, shared.TS(shared.Knight).Add(shared.Bishop))

	g.collapseByCount()

	// Knight candidates are counted across every world's present, so the
	// two holders hit the limit together.
	require.Equal(t, shared.Singleton(shared.Knight), a.Candidates)
	require.Equal(t, shared.Singleton(shared.Knight), b.Candidates)
}

func TestCollapseIgnoresOpponentPieces(t *testing.T) {
	g := newBareGame(DefaultSettings())
	sente := g.placePiece(0, Coord{X: 2, Y: 2}, shared.Sente, shared.TS(shared.King).Add(shared.Gold))
	gote := g.placePiece(0, Coord{X: 6, Y: 6}, shared.Gote, shared.TS(shared.King).Add(shared.Gold))

	g.collapseByCount()

	// Each side has a single king candidate of its own; the opponent's
	// pieces never feed the count.
	require.Equal(t, shared.Singleton(shared.King), sente.Candidates)
	require.Equal(t, shared.Singleton(shared.King), gote.Candidates)
}

func TestCollapseBelowLimitLeavesSetsAlone(t *testing.T) {
	g := newBareGame(DefaultSettings())
	a := g.placePiece(0, Coord{X: 2, Y: 2}, shared.Sente, shared.TS(shared.Gold).Add(shared.Silver))

	g.collapseByCount()

	// One gold candidate against a limit of two proves nothing.
	require.Equal(t, shared.TS(shared.Gold).Add(shared.Silver), a.Candidates)
}
