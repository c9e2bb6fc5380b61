package regen

import "fmt"

// transition is the (old_state, new_state, character) triple C2 delivers
// to the builder, in input order, including the synthetic BOF and EOF
// bookends.
type transition struct {
	old  string
	new  string
	char string
}

// sink receives transition events in order. It returns an error to abort
// the drive immediately — used by the builder to fail fast the moment
// the driver enters the ERR trap state, rather than looping on it.
type sink func(t transition) error

// apply looks up state in the transition table and returns the first
// entry whose match_spec admits c. c == "" denotes the BOF/EOF sentinel.
func apply(state, c string) (string, error) {
	entries, ok := transitionTable[state]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownState, state)
	}
	for _, e := range entries {
		if e.match.admits(c) {
			return e.next, nil
		}
	}
	return "", fmt.Errorf("%w: state %q, char %q", ErrNoTransition, state, c)
}

// drive feeds text through the table, emitting one transition per input
// character plus the BOF and EOF bookends, strictly in input order. No
// lookahead, no backtracking.
func drive(text string, emit sink) error {
	state, err := apply(stateBOF, "")
	if err != nil {
		return err
	}
	if err := emit(transition{old: stateBOF, new: state, char: ""}); err != nil {
		return err
	}

	for i := 0; i < len(text); i++ {
		c := string(text[i])
		next, err := apply(state, c)
		if err != nil {
			return err
		}
		if err := emit(transition{old: state, new: next, char: c}); err != nil {
			return err
		}
		state = next
	}

	final, err := apply(state, "")
	if err != nil {
		return err
	}
	if err := emit(transition{old: state, new: final, char: ""}); err != nil {
		return err
	}
	if final != stateEOF {
		return fmt.Errorf("%w: final state %q", ErrUnterminatedParse, final)
	}
	return nil
}
