// path: internal/shared/typeset.go
package shared

import (
	"math/bits"
	"strings"
)

// TypeSet is a fixed-size bit set over the eight piece types. A piece's
// candidate set only ever shrinks, so the zero value (empty set) marks an
// illegal piece.
type TypeSet uint8

// FullTypeSet contains every piece type.
const FullTypeSet TypeSet = 1<<NumPieceTypes - 1

func TS(t PieceType) TypeSet { return 1 << t }

// Singleton builds the one-element set {t}.
func Singleton(t PieceType) TypeSet { return TS(t) }

func (s TypeSet) Empty() bool { return s == 0 }

func (s TypeSet) Has(t PieceType) bool { return s&(1<<t) != 0 }

func (s TypeSet) Add(t PieceType) TypeSet { return s | (1 << t) }

func (s TypeSet) Remove(t PieceType) TypeSet { return s &^ (1 << t) }

func (s TypeSet) Count() int { return bits.OnesCount8(uint8(s)) }

// Only reports whether the set is exactly {t}.
func (s TypeSet) Only(t PieceType) bool { return s == 1<<t }

func (s TypeSet) Iter(fn func(PieceType)) {
	for _, t := range AllPieceTypes {
		if s.Has(t) {
			fn(t)
		}
	}
}

// Types expands the set into a slice in enum order.
func (s TypeSet) Types() []PieceType {
	out := make([]PieceType, 0, s.Count())
	s.Iter(func(t PieceType) { out = append(out, t) })
	return out
}

// Names returns the long-form names, for API payloads.
func (s TypeSet) Names() []string {
	out := make([]string, 0, s.Count())
	s.Iter(func(t PieceType) { out = append(out, t.Name()) })
	return out
}

func (s TypeSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	s.Iter(func(t PieceType) {
		if !first {
			b.WriteByte(',')
		}
		b.WriteString(t.String())
		first = false
	})
	b.WriteByte('}')
	return b.String()
}
