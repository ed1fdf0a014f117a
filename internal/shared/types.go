// path: internal/shared/types.go
// Package shared holds the small enums and value types used by both the
// engine and its front-door layers.
package shared

import (
	"fmt"
	"strings"
)

// Player identifies one of the two sides.
type Player uint8

const (
	Sente Player = iota // first player, moves toward rank 0
	Gote                // second player, moves toward rank 8
)

func (p Player) Opposite() Player {
	if p == Sente {
		return Gote
	}
	return Sente
}

// Forward is the sign of the player's forward direction on the y axis.
// Sente starts on ranks 6-8 and advances toward rank 0.
func (p Player) Forward() int {
	if p == Sente {
		return -1
	}
	return 1
}

func (p Player) Index() int { return int(p) }

func (p Player) String() string {
	if p == Sente {
		return "sente"
	}
	return "gote"
}

// ParsePlayer accepts the canonical names plus single-letter shorthand.
func ParsePlayer(s string) (Player, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sente", "s", "first":
		return Sente, true
	case "gote", "g", "second":
		return Gote, true
	default:
		return 0, false
	}
}

// PieceType is one of the eight shogi piece kinds.
type PieceType uint8

const (
	Pawn PieceType = iota
	Lance
	Knight
	Silver
	Gold
	Rook
	Bishop
	King

	NumPieceTypes = 8
)

func (t PieceType) String() string {
	switch t {
	case Pawn:
		return "P"
	case Lance:
		return "L"
	case Knight:
		return "N"
	case Silver:
		return "S"
	case Gold:
		return "G"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case King:
		return "K"
	default:
		return fmt.Sprintf("piece(%d)", t)
	}
}

// Name returns the long form used in API payloads and messages.
func (t PieceType) Name() string {
	switch t {
	case Pawn:
		return "pawn"
	case Lance:
		return "lance"
	case Knight:
		return "knight"
	case Silver:
		return "silver"
	case Gold:
		return "gold"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case King:
		return "king"
	default:
		return fmt.Sprintf("piece(%d)", t)
	}
}

// Limit is the maximum number of pieces per owner that may simultaneously
// carry this type as a candidate, counted over every world's present board
// plus that owner's hands.
func (t PieceType) Limit() int {
	switch t {
	case King, Rook, Bishop:
		return 1
	case Gold, Silver, Knight, Lance:
		return 2
	case Pawn:
		return 9
	default:
		return 0
	}
}

// AllPieceTypes lists every type in enum order.
var AllPieceTypes = [NumPieceTypes]PieceType{
	Pawn, Lance, Knight, Silver, Gold, Rook, Bishop, King,
}

// ParsePieceType accepts long names and single-letter shorthand.
func ParsePieceType(s string) (PieceType, bool) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, t := range AllPieceTypes {
		if needle == t.Name() || needle == strings.ToLower(t.String()) {
			return t, true
		}
	}
	return 0, false
}
