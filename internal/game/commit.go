// path: internal/game/commit.go
package game

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"quantum_shogi/internal/shared"
)

// pendingWorld is the resolved outcome for one staged world, built entirely
// on clones. Nothing in it touches live state until install.
type pendingWorld struct {
	id         int
	newPresent *Snapshot  // appended to the existing world's history
	branch     *WorldLine // new worldline seeded by a branching move, or nil
}

// pendingCommit gathers every world's resolved outcome plus the bookkeeping
// the global-hand check needs. A commit installs it atomically or not at all.
type pendingCommit struct {
	worlds    []pendingWorld
	globalUse map[shared.PieceType]int
}

// CommitTurn runs the simultaneous commit: every existing world must have a
// staged plan; all plans are validated and executed against clones in
// ascending world order; only if every world succeeds (and, under global
// hands, the usage check passes) are the results installed, staged plans
// cleared, the collapse fixpoint and loss detection run, and the turn
// flipped. On failure the message names the offending code and no state
// changes.
func (g *Game) CommitTurn() bool {
	pending, err := g.resolveCommit()
	if err != nil {
		g.lastCode = CodeOf(err)
		g.message = fmt.Sprintf("rejected: %v", err)
		return false
	}

	for _, pw := range pending.worlds {
		wl := g.worlds[pw.id]
		wl.History = append(wl.History, pw.newPresent)
		if pw.branch != nil {
			g.worlds[pw.branch.ID] = pw.branch
		}
	}
	for _, wl := range g.worlds {
		wl.Staged = nil
	}

	g.collapseByCount()
	for _, wl := range g.worlds {
		s := wl.Present()
		wl.Lost = len(KingCandidates(s, g.turn)) == 0 ||
			len(KingCandidates(s, g.turn.Opposite())) == 0
	}

	g.turn = g.turn.Opposite()
	g.message = "turn committed"
	g.lastCode = ""
	return true
}

// resolveCommit is the validate-and-stage phase. It never mutates the game.
func (g *Game) resolveCommit() (*pendingCommit, error) {
	ids := g.sortedWorldIDs()

	var missing *multierror.Error
	for _, id := range ids {
		if g.worlds[id].Staged == nil {
			missing = multierror.Append(missing, ruleErr(CodeMissingStagedInput, "world %d has no staged move", id))
		}
	}
	if err := missing.ErrorOrNil(); err != nil {
		return nil, err
	}

	pending := &pendingCommit{globalUse: make(map[shared.PieceType]int)}
	worldCount := len(ids)
	claimed := make(map[int]struct{})

	for _, id := range ids {
		pw, err := g.resolveWorld(g.worlds[id], worldCount, claimed, pending.globalUse)
		if err != nil {
			return nil, errors.Wrapf(err, "world %d", id)
		}
		if pw.branch != nil {
			claimed[pw.branch.ID] = struct{}{}
			worldCount++
		}
		pending.worlds = append(pending.worlds, pw)
	}

	if g.settings.HandMode == HandGlobal {
		if err := g.checkGlobalHands(pending); err != nil {
			return nil, err
		}
	}
	return pending, nil
}

// resolveWorld validates and executes one world's staged plan on clones.
func (g *Game) resolveWorld(wl *WorldLine, worldCount int, claimed map[int]struct{}, globalUse map[shared.PieceType]int) (pendingWorld, error) {
	plan := wl.Staged
	pw := pendingWorld{id: wl.ID}

	if g.settings.TimePolicy == TimePastOnly && plan.DeltaTime > 0 {
		return pw, ruleErr(CodeFutureMoveForbidden, "delta_time %d", plan.DeltaTime)
	}
	if abs(plan.DeltaTime) > g.settings.MaxTimeJump {
		return pw, ruleErr(CodeTimeJumpTooLarge, "|%d| > %d", plan.DeltaTime, g.settings.MaxTimeJump)
	}
	tBase := wl.PresentIndex() + plan.DeltaTime
	if tBase < 0 || tBase >= len(wl.History) {
		return pw, ruleErr(CodeHistoryOutOfRange, "t_base %d outside [0,%d]", tBase, wl.PresentIndex())
	}

	if !plan.Branching() {
		clone := wl.Present().Clone()
		if err := g.executeMove(clone, clone, plan, false, globalUse); err != nil {
			return pw, err
		}
		pw.newPresent = clone
		return pw, nil
	}

	newID := wl.ID + plan.DeltaWorld
	if worldCount >= g.settings.MaxWorlds {
		return pw, ruleErr(CodeWorldLimitReached, "max_worlds %d", g.settings.MaxWorlds)
	}
	if _, exists := g.worlds[newID]; exists {
		return pw, ruleErr(CodeWorldIDCollision, "world %d already exists", newID)
	}
	if _, taken := claimed[newID]; taken {
		return pw, ruleErr(CodeWorldIDCollision, "world %d already created this commit", newID)
	}

	srcNow := wl.Present().Clone()
	seed := wl.History[tBase].Clone()
	if err := g.executeMove(srcNow, seed, plan, true, globalUse); err != nil {
		return pw, err
	}
	pw.newPresent = srcNow
	pw.branch = &WorldLine{ID: newID, History: []*Snapshot{seed}}
	return pw, nil
}

// checkGlobalHands verifies the per-type drop usage against the total count
// of candidate holders across every world's post-commit hands for the moving
// player.
func (g *Game) checkGlobalHands(pending *pendingCommit) error {
	total := make(map[shared.PieceType]int)
	count := func(s *Snapshot) {
		for _, p := range s.Hand(g.turn) {
			p.Candidates.Iter(func(t shared.PieceType) { total[t]++ })
		}
	}
	for _, pw := range pending.worlds {
		count(pw.newPresent)
		if pw.branch != nil {
			count(pw.branch.Present())
		}
	}
	for t, used := range pending.globalUse {
		if used > total[t] {
			return ruleErr(CodeInsufficientHand, "%s used %d of %d", t.Name(), used, total[t])
		}
	}
	return nil
}

func (g *Game) sortedWorldIDs() []int {
	ids := make([]int, 0, len(g.worlds))
	for id := range g.worlds {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
