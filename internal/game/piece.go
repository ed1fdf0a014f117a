// path: internal/game/piece.go
// Package game implements the quantum spacetime shogi rule engine: legality
// checking over (x, y, world, time) displacements, the simultaneous
// multi-world commit protocol, and the candidate-collapse fixpoint.
package game

import "quantum_shogi/internal/shared"

// BoardSize is the edge length of the square board.
const BoardSize = 9

// Coord addresses a board square. x is the file (0..8), y the rank (0..8).
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// OnBoard reports whether the coordinate lies inside the grid.
func (c Coord) OnBoard() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// Piece is a single physical piece. ID is assigned once from the game's
// counter and never reused; it tracks the piece across clones, captures and
// collapses. Candidates only ever shrinks.
type Piece struct {
	ID         int
	Owner      shared.Player
	Candidates shared.TypeSet
	Promoted   bool
}

func clonePiece(p *Piece) *Piece {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

// Board is the 9x9 grid, indexed board[y][x].
type Board [BoardSize][BoardSize]*Piece

// At returns the piece on the square, or nil. The coordinate must be on-board.
func (b *Board) At(c Coord) *Piece { return b[c.Y][c.X] }

func (b *Board) set(c Coord, p *Piece) { b[c.Y][c.X] = p }

// Snapshot is one board state plus both players' hands. Snapshots are
// deep-owned: cloning copies every piece so mutating a clone never aliases
// the original.
type Snapshot struct {
	board Board
	hands [2][]*Piece
}

// NewSnapshot returns an empty snapshot with empty hands.
func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// Board exposes the grid for read access.
func (s *Snapshot) Board() *Board { return &s.board }

// Hand returns the player's captured pieces in drop order.
func (s *Snapshot) Hand(p shared.Player) []*Piece { return s.hands[p.Index()] }

// Clone deep-copies the snapshot, preserving every piece's identity fields.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{}
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			out.board[y][x] = clonePiece(s.board[y][x])
		}
	}
	for i := range s.hands {
		if len(s.hands[i]) == 0 {
			continue
		}
		out.hands[i] = make([]*Piece, len(s.hands[i]))
		for j, p := range s.hands[i] {
			out.hands[i][j] = clonePiece(p)
		}
	}
	return out
}

// eachBoardPiece visits every occupied square.
func (s *Snapshot) eachBoardPiece(fn func(Coord, *Piece)) {
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if p := s.board[y][x]; p != nil {
				fn(Coord{X: x, Y: y}, p)
			}
		}
	}
}
