package regen

import "errors"

// Sentinel errors returned (wrapped via fmt.Errorf("%w: ...")) by the
// driver, builder, compactor, and sequence engine. Callers should match
// with errors.Is, not string comparison.
var (
	// ErrUnknownState is returned when the driver looks up a state absent
	// from the transition table. Indicates a malformed table, not bad
	// user input.
	ErrUnknownState = errors.New("regen: unknown state")

	// ErrNoTransition is returned when the driver finds no table entry
	// admitting the current character. Indicates a table bug: every
	// reachable user-facing state must end in a wildcard or ERR catch-all.
	ErrNoTransition = errors.New("regen: no matching transition")

	// ErrSyntax is returned when the driver enters the ERR trap state on
	// user input.
	ErrSyntax = errors.New("regen: syntax error")

	// ErrUnterminatedParse is returned when the driver exhausts input
	// without reaching the EOF state.
	ErrUnterminatedParse = errors.New("regen: unterminated parse")

	// ErrUnclosedScope is returned when the builder reaches EOF with a
	// non-empty scope stack (an unmatched '(').
	ErrUnclosedScope = errors.New("regen: unclosed scope")

	// ErrScopeUnderflow is returned when the builder sees a ')' with no
	// matching '('.
	ErrScopeUnderflow = errors.New("regen: scope underflow")

	// ErrOutOfRange is returned by Generator.At when the index is outside
	// [0, Len()).
	ErrOutOfRange = errors.New("regen: index out of range")

	// ErrCardinalityOverflow is returned when a cardinality or index
	// exceeds the engine's numeric domain. Reserved for implementations
	// that cap precision; this engine uses math/big throughout and does
	// not raise it in practice, but keeps the sentinel so callers written
	// against a capped implementation still compile against this one.
	ErrCardinalityOverflow = errors.New("regen: cardinality overflow")
)
