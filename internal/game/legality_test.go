// path: internal/game/legality_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quantum_shogi/internal/shared"
)

func TestTypeAllowsDisplacements(t *testing.T) {
	g := newBareGame(DefaultSettings())
	from := Coord{X: 4, Y: 4}
	src := g.worlds[0].Present()

	// Sente's forward sign is -1.
	tests := []struct {
		name  string
		typ   shared.PieceType
		d     delta4
		allow bool
	}{
		{"king one step", shared.King, delta4{1, 0, 0, 0}, true},
		{"king diagonal across axes", shared.King, delta4{1, -1, 1, -1}, true},
		{"king two steps", shared.King, delta4{2, 0, 0, 0}, false},
		{"king world jump of two", shared.King, delta4{0, 0, 2, 0}, false},

		{"pawn forward", shared.Pawn, delta4{0, -1, 0, 0}, true},
		{"pawn backward", shared.Pawn, delta4{0, 1, 0, 0}, false},
		{"pawn world forward", shared.Pawn, delta4{0, 0, -1, 0}, true},
		{"pawn time back", shared.Pawn, delta4{0, 0, 0, -1}, true},
		{"pawn sideways", shared.Pawn, delta4{1, 0, 0, 0}, false},

		{"gold forward", shared.Gold, delta4{0, -1, 0, 0}, true},
		{"gold side", shared.Gold, delta4{1, 0, 0, 0}, true},
		{"gold straight back", shared.Gold, delta4{0, 1, 0, 0}, true},
		{"gold diagonal back", shared.Gold, delta4{1, 1, 0, 0}, false},
		{"gold world forward", shared.Gold, delta4{0, 0, -1, 0}, true},
		{"gold world backward", shared.Gold, delta4{0, 0, 1, 0}, false},
		{"gold world jump of two", shared.Gold, delta4{0, 0, -2, 0}, false},

		{"silver diagonal forward", shared.Silver, delta4{1, -1, 0, 0}, true},
		{"silver diagonal back", shared.Silver, delta4{1, 1, 0, 0}, true},
		{"silver side", shared.Silver, delta4{1, 0, 0, 0}, false},
		{"silver straight back", shared.Silver, delta4{0, 1, 0, 0}, false},

		{"knight jump", shared.Knight, delta4{1, -2, 0, 0}, true},
		{"knight jump mirrored", shared.Knight, delta4{-1, -2, 0, 0}, true},
		{"knight world jump", shared.Knight, delta4{1, 0, -2, 0}, true},
		{"knight time jump", shared.Knight, delta4{-1, 0, 0, -2}, true},
		{"knight backward jump", shared.Knight, delta4{1, 2, 0, 0}, false},

		{"lance forward slide", shared.Lance, delta4{0, -3, 0, 0}, true},
		{"lance backward slide", shared.Lance, delta4{0, 3, 0, 0}, false},
		{"lance world slide", shared.Lance, delta4{0, 0, -2, 0}, true},
		{"lance mixed axes", shared.Lance, delta4{0, -1, -1, 0}, false},
		{"lance zero", shared.Lance, delta4{0, 0, 0, 0}, false},

		{"rook single axis", shared.Rook, delta4{0, -3, 0, 0}, true},
		{"rook time axis", shared.Rook, delta4{0, 0, 0, -2}, true},
		{"rook two axes", shared.Rook, delta4{2, -2, 0, 0}, false},

		{"bishop plane diagonal", shared.Bishop, delta4{2, 2, 0, 0}, true},
		{"bishop cross-axis diagonal", shared.Bishop, delta4{0, 2, -2, 0}, true},
		{"bishop three axes", shared.Bishop, delta4{1, 1, 1, 0}, true},
		{"bishop unequal magnitudes", shared.Bishop, delta4{1, 2, 0, 0}, false},
		{"bishop single axis", shared.Bishop, delta4{0, 2, 0, 0}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := g.typeAllows(tt.typ, shared.Sente, tt.d, from, src)
			require.Equal(t, tt.allow, got)
		})
	}
}

func TestTypeAllowsTimePolicy(t *testing.T) {
	g := newBareGame(DefaultSettings())
	src := g.worlds[0].Present()
	from := Coord{X: 4, Y: 4}

	// past_only forbids dt > 0 for every type, even the king.
	require.False(t, g.typeAllows(shared.King, shared.Sente, delta4{0, 0, 0, 1}, from, src))

	g.settings.TimePolicy = TimeAnyDirection
	require.True(t, g.typeAllows(shared.King, shared.Sente, delta4{0, 0, 0, 1}, from, src))
	require.True(t, g.typeAllows(shared.Rook, shared.Sente, delta4{0, 0, 0, 3}, from, src))
}

func TestLineOfSightBlocksSliders(t *testing.T) {
	g := newBareGame(DefaultSettings())
	src := g.worlds[0].Present()
	from := Coord{X: 4, Y: 8}

	g.placePiece(0, from, shared.Sente, shared.FullTypeSet)
	g.placePiece(0, Coord{X: 4, Y: 6}, shared.Gote, shared.FullTypeSet)

	// (4,6) blocks the x/y projection of a slide to (4,5).
	require.False(t, g.typeAllows(shared.Rook, shared.Sente, delta4{0, -3, 0, 0}, from, src))
	require.False(t, g.typeAllows(shared.Lance, shared.Sente, delta4{0, -3, 0, 0}, from, src))
	// Up to the blocker is fine; capture squares are not intermediates.
	require.True(t, g.typeAllows(shared.Rook, shared.Sente, delta4{0, -2, 0, 0}, from, src))
	// World/time steps are not blockable by board occupancy.
	require.True(t, g.typeAllows(shared.Rook, shared.Sente, delta4{0, 0, -3, 0}, from, src))
}

func TestMoveNarrowsCandidates(t *testing.T) {
	g := newBareGame(DefaultSettings())
	src := g.worlds[0].Present()
	piece := g.placePiece(0, Coord{X: 4, Y: 8}, shared.Sente, shared.FullTypeSet)

	got, err := g.filterMoveCandidates(piece, Coord{X: 4, Y: 8}, Coord{X: 4, Y: 7}, 0, 0, src, src)
	require.NoError(t, err)

	// A single forward step is compatible with every type whose table entry
	// includes (0,f,0,0): pawn, lance, silver, gold, rook, king. Knight and
	// bishop are eliminated.
	want := shared.TS(shared.Pawn).
		Add(shared.Lance).
		Add(shared.Silver).
		Add(shared.Gold).
		Add(shared.Rook).
		Add(shared.King)
	require.Equal(t, want, got)
}

func TestFilterMoveCandidatesRejections(t *testing.T) {
	g := newBareGame(DefaultSettings())
	src := g.worlds[0].Present()
	piece := g.placePiece(0, Coord{X: 4, Y: 4}, shared.Sente, shared.FullTypeSet)
	g.placePiece(0, Coord{X: 4, Y: 3}, shared.Sente, shared.FullTypeSet)

	_, err := g.filterMoveCandidates(piece, Coord{X: 4, Y: 4}, Coord{X: 4, Y: 9}, 0, 0, src, src)
	require.Equal(t, CodeOffBoard, CodeOf(err))

	_, err = g.filterMoveCandidates(piece, Coord{X: 4, Y: 4}, Coord{X: 4, Y: 3}, 0, 0, src, src)
	require.Equal(t, CodeDestinationOwnPiece, CodeOf(err))
}
