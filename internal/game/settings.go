// path: internal/game/settings.go
package game

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// HandMode controls how captured pieces are shared between worlds.
type HandMode uint8

const (
	// HandPerWorld keeps each world's hand independent.
	HandPerWorld HandMode = iota
	// HandGlobal treats hands as a shared pool: a commit may not consume
	// more copies of a candidate type than exist across all worlds' hands.
	HandGlobal
)

func (m HandMode) String() string {
	if m == HandGlobal {
		return "global"
	}
	return "per_world"
}

// TimePolicy bounds the direction of time jumps.
type TimePolicy uint8

const (
	// TimePastOnly forbids any positive delta-time.
	TimePastOnly TimePolicy = iota
	// TimeAnyDirection allows forward jumps within the history range.
	TimeAnyDirection
)

func (p TimePolicy) String() string {
	if p == TimeAnyDirection {
		return "any"
	}
	return "past_only"
}

// CheckMode selects how the check-threat report treats quantum attackers.
type CheckMode uint8

const (
	// CheckPossible flags a threat if any candidate type of the attacker
	// reaches the king square.
	CheckPossible CheckMode = iota
	// CheckCertain flags a threat only if every remaining candidate type
	// reaches it.
	CheckCertain
)

func (m CheckMode) String() string {
	if m == CheckCertain {
		return "certain"
	}
	return "possible"
}

// Settings is the fixed rule configuration, immutable after NewGame.
type Settings struct {
	MaxWorlds   int
	MaxTimeJump int
	HandMode    HandMode
	TimePolicy  TimePolicy
	CheckMode   CheckMode
}

// DefaultSettings mirrors the values a fresh prototype game uses.
func DefaultSettings() Settings {
	return Settings{
		MaxWorlds:   7,
		MaxTimeJump: 5,
		HandMode:    HandPerWorld,
		TimePolicy:  TimePastOnly,
		CheckMode:   CheckPossible,
	}
}

// Validate reports every out-of-range field at once.
func (s Settings) Validate() error {
	var errs *multierror.Error
	if s.MaxWorlds < 1 {
		errs = multierror.Append(errs, fmt.Errorf("max_worlds must be >= 1, got %d", s.MaxWorlds))
	}
	if s.MaxTimeJump < 1 {
		errs = multierror.Append(errs, fmt.Errorf("max_time_jump must be >= 1, got %d", s.MaxTimeJump))
	}
	if s.HandMode > HandGlobal {
		errs = multierror.Append(errs, fmt.Errorf("unknown hand mode %d", s.HandMode))
	}
	if s.TimePolicy > TimeAnyDirection {
		errs = multierror.Append(errs, fmt.Errorf("unknown time policy %d", s.TimePolicy))
	}
	if s.CheckMode > CheckCertain {
		errs = multierror.Append(errs, fmt.Errorf("unknown check mode %d", s.CheckMode))
	}
	return errs.ErrorOrNil()
}
