// path: internal/game/errors.go
package game

import (
	"errors"
	"fmt"
)

// Rule failure codes. Every validation failure the engine can produce maps to
// exactly one of these; front-ends key on the code, not the message.
const (
	CodeFutureMoveForbidden = "future-move-forbidden"
	CodeTimeJumpTooLarge    = "time-jump-too-large"
	CodeHistoryOutOfRange   = "history-out-of-range"
	CodeWorldLimitReached   = "world-limit-reached"
	CodeWorldIDCollision    = "world-id-collision"
	CodeOffBoard            = "off-board"
	CodeDestinationOwnPiece = "destination-occupied-by-own-piece"
	CodeDestinationOccupied = "destination-occupied-on-drop"
	CodeEmptyOrigin         = "empty-origin-square"
	CodeNotOwnersPiece      = "not-owners-piece"
	CodeInvalidHandIndex    = "invalid-hand-index"
	CodeNoLegalCandidate    = "no-legal-candidate"
	CodeMissingStagedInput  = "missing-staged-input"
	CodeInsufficientHand    = "insufficient-global-hand"
	CodeWorldNotFound       = "world-not-found"
)

var knownCodes = map[string]struct{}{
	CodeFutureMoveForbidden: {},
	CodeTimeJumpTooLarge:    {},
	CodeHistoryOutOfRange:   {},
	CodeWorldLimitReached:   {},
	CodeWorldIDCollision:    {},
	CodeOffBoard:            {},
	CodeDestinationOwnPiece: {},
	CodeDestinationOccupied: {},
	CodeEmptyOrigin:         {},
	CodeNotOwnersPiece:      {},
	CodeInvalidHandIndex:    {},
	CodeNoLegalCandidate:    {},
	CodeMissingStagedInput:  {},
	CodeInsufficientHand:    {},
	CodeWorldNotFound:       {},
}

// IsKnownCode reports whether code belongs to the rule-failure taxonomy.
func IsKnownCode(code string) bool {
	_, ok := knownCodes[code]
	return ok
}

// RuleError is a recoverable legality or state failure. The engine never
// mutates game state before returning one.
type RuleError struct {
	Code   string
	Detail string
}

func (e *RuleError) Error() string {
	if e.Detail == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

func ruleErr(code, format string, args ...any) *RuleError {
	return &RuleError{Code: code, Detail: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the taxonomy code from err, unwrapping as needed.
func CodeOf(err error) string {
	var re *RuleError
	if errors.As(err, &re) {
		return re.Code
	}
	return ""
}
