// path: internal/game/world.go
package game

// MoveMode distinguishes a board move from a hand drop.
type MoveMode uint8

const (
	ModeMove MoveMode = iota
	ModeDrop
)

func (m MoveMode) String() string {
	if m == ModeDrop {
		return "drop"
	}
	return "move"
}

// MovePlan is a fully specified candidate move for one world. It is
// ephemeral: created by a front-end, held in a world's staged slot, and
// consumed (or discarded) by the next commit.
type MovePlan struct {
	Mode       MoveMode
	From       Coord
	To         Coord
	HandIndex  int
	Promote    bool
	DeltaWorld int
	DeltaTime  int
}

// Branching reports whether applying the plan forks a new worldline.
func (p MovePlan) Branching() bool {
	return p.DeltaWorld != 0 || p.DeltaTime < 0
}

// WorldLine is one branch of the game: an append-only snapshot history
// (index = time coordinate, last entry = present), an optional staged plan,
// and a lost flag recomputed every committed turn.
type WorldLine struct {
	ID      int
	History []*Snapshot
	Staged  *MovePlan
	Lost    bool
}

// Present returns the latest snapshot. A worldline always has at least one
// history entry.
func (w *WorldLine) Present() *Snapshot {
	return w.History[len(w.History)-1]
}

// PresentIndex is the time coordinate of the present snapshot.
func (w *WorldLine) PresentIndex() int {
	return len(w.History) - 1
}
