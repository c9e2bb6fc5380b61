package regen

import (
	"errors"
	"testing"
)

func TestDriveEmitsBOFAndEOFBookends(t *testing.T) {
	var got []transition
	err := drive("a", func(t transition) error {
		got = append(got, t)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 transitions (BOF, 'a', EOF), got %d: %v", len(got), got)
	}
	if got[0].old != stateBOF || got[0].char != "" {
		t.Errorf("first transition should be the BOF bookend, got %v", got[0])
	}
	if got[1].char != "a" {
		t.Errorf("middle transition should carry 'a', got %v", got[1])
	}
	if got[2].char != "" || got[2].new != stateEOF {
		t.Errorf("last transition should be the EOF bookend, got %v", got[2])
	}
}

func TestDriveAbortsOnSinkError(t *testing.T) {
	sentinel := errors.New("sink stop")
	count := 0
	err := drive("abc", func(t transition) error {
		count++
		if count == 2 {
			return sentinel
		}
		return nil
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("expected sentinel error, got %v", err)
	}
	if count != 2 {
		t.Errorf("expected drive to stop after the 2nd transition, got %d", count)
	}
}

func TestDriveUnterminatedOnRawErrState(t *testing.T) {
	// An unclosed list lands the table in the ERR state at EOF. The raw
	// driver (no builder attached) only knows the final state isn't EOF;
	// turning that into a user-facing syntax error is the builder's job
	// (see TestParseErrors in regen_test.go).
	err := drive("[", func(t transition) error { return nil })
	if !errors.Is(err, ErrUnterminatedParse) {
		t.Errorf("expected ErrUnterminatedParse, got %v", err)
	}
}
