package regen

import (
	"fmt"
	"strconv"
)

// builder is a pushdown automaton over transition events: it interprets
// new_state as a command (and sometimes old_state for post-hoc rewrites).
// State is an explicit object with methods for each command, not a
// closure-captured mutable record.
type builder struct {
	started   bool   // whether the very first regex_start command has run
	current   []Node // children of the scope currently being assembled
	pendingOr *Node  // accumulating `or`, or nil
	accum     []byte // char_accum
	repeatAcc []int  // repeat_accum; nil means "not inside a {...}"
	stack     []frame
	result    Node
}

// frame is one (node, pending_or) pair snapshotted across '(' ... ')'.
type frame struct {
	node      []Node
	pendingOr *Node
}

// flush (store_characters): if char_accum is nonempty, append it as a
// literal child of the current scope and clear the buffer.
func (b *builder) flush() {
	if len(b.accum) > 0 {
		b.current = append(b.current, newLiteral(string(b.accum)))
		b.accum = b.accum[:0]
	}
}

// storeLastCharacter splits off everything before the last byte of
// char_accum as its own literal, so a following quantifier affects only
// the final character. With at most one byte it is a plain flush: a
// single byte becomes one literal, and an empty buffer adds nothing (the
// repeat target is already the last child, e.g. a just-closed group).
func (b *builder) storeLastCharacter() {
	if len(b.accum) > 1 {
		prefix := string(b.accum[:len(b.accum)-1])
		last := string(b.accum[len(b.accum)-1:])
		b.current = append(b.current, newLiteral(prefix), newLiteral(last))
		b.accum = b.accum[:0]
		return
	}
	b.flush()
}

// wrapLastInRepeat replaces the last child of the current scope with
// repeat(min, max, child).
func (b *builder) wrapLastInRepeat(min, max int) error {
	if len(b.current) == 0 {
		return fmt.Errorf("%w: quantifier has nothing to repeat", ErrSyntax)
	}
	last := b.current[len(b.current)-1]
	b.current[len(b.current)-1] = newRepeat(min, max, last)
	return nil
}

// finishCurrentScope wraps the in-progress children into a scope, folding
// in pendingOr as its final alternative when one is open. Shared by the
// EOF and regex_next_regex commands.
func (b *builder) finishCurrentScope() Node {
	scope := newScope(b.current...)
	if b.pendingOr != nil {
		b.pendingOr.Children = append(b.pendingOr.Children, scope)
		return *b.pendingOr
	}
	return scope
}

// expandRange rewrites the last two bytes of char_accum — the endpoints
// of an a-b list range, the dash itself never having been accumulated
// (see DESIGN.md's resolution of the list-range open question) — into
// the full inclusive run of bytes between them.
func (b *builder) expandRange() error {
	n := len(b.accum)
	if n < 2 {
		return nil
	}
	lo, hi := b.accum[n-2], b.accum[n-1]
	if lo > hi {
		return fmt.Errorf("%w: descending character range %q-%q", ErrSyntax, lo, hi)
	}
	b.accum = b.accum[:n-2]
	for c := lo; ; c++ {
		b.accum = append(b.accum, c)
		if c == hi {
			break
		}
	}
	return nil
}

// handle executes the command for one transition event. It is used as
// the sink passed to drive(), so returning an error aborts the parse
// immediately.
func (b *builder) handle(t transition) error {
	if t.old == stListNextRange {
		if err := b.expandRange(); err != nil {
			return err
		}
	}

	switch t.new {
	case stateEOF:
		if len(b.stack) > 0 {
			return fmt.Errorf("%w: %d unclosed group(s)", ErrUnclosedScope, len(b.stack))
		}
		b.flush()
		b.result = b.finishCurrentScope()
		return nil

	case stRegexStart:
		if b.started {
			b.flush()
			b.stack = append(b.stack, frame{node: b.current, pendingOr: b.pendingOr})
		}
		b.started = true
		b.current = []Node{}
		b.pendingOr = nil
		return nil

	case stRegexNextRegex:
		b.flush()
		if len(b.stack) == 0 {
			return fmt.Errorf("%w: unmatched ')'", ErrScopeUnderflow)
		}
		finished := b.finishCurrentScope()
		top := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		top.node = append(top.node, finished)
		b.current = top.node
		b.pendingOr = top.pendingOr
		return nil

	case stRegexRepeatFromStrt:
		b.storeLastCharacter()
		b.repeatAcc = []int{}
		return nil

	case stRegexRepeatToStart:
		n, err := strconv.Atoi(string(b.accum))
		if err != nil {
			return fmt.Errorf("%w: invalid repeat count %q", ErrSyntax, b.accum)
		}
		b.repeatAcc = append(b.repeatAcc, n)
		b.accum = b.accum[:0]
		return nil

	case stRegexNextRepeat:
		if b.repeatAcc == nil {
			b.storeLastCharacter()
			return b.wrapLastInRepeat(0, 1)
		}
		for len(b.repeatAcc) < 2 {
			n, err := strconv.Atoi(string(b.accum))
			if err != nil {
				return fmt.Errorf("%w: invalid repeat count %q", ErrSyntax, b.accum)
			}
			b.repeatAcc = append(b.repeatAcc, n)
		}
		b.accum = b.accum[:0]
		min, max := b.repeatAcc[0], b.repeatAcc[1]
		b.repeatAcc = nil
		if min < 0 || max < min {
			return fmt.Errorf("%w: invalid repeat bounds {%d,%d}", ErrSyntax, min, max)
		}
		return b.wrapLastInRepeat(min, max)

	case stListStart:
		b.flush()
		return nil

	case stRegexNextList:
		if t.old == stListRangeNext {
			// A '-' immediately followed by ']' (e.g. "[\d-]"): the dash
			// was swallowed as a no-op when list_range_next was entered,
			// expecting a range end byte that never came. Restore it as
			// a literal before closing the list.
			b.accum = append(b.accum, '-')
		}
		b.current = append(b.current, newList(string(b.accum)))
		b.accum = b.accum[:0]
		return nil

	case stRegexNextOr:
		b.flush()
		if b.pendingOr == nil {
			b.pendingOr = &Node{Tag: TagOr}
		}
		b.pendingOr.Children = append(b.pendingOr.Children, newScope(b.current...))
		b.current = []Node{}
		return nil

	case stListEscape, stRegexEscape, stListRangeNext:
		// no-op; the triggering character is consumed on the following
		// transition, via the old_state checks below.
		return nil

	case stateErr:
		return fmt.Errorf("%w: unexpected character %q", ErrSyntax, t.char)

	default:
		// regex_next, list_next, list_next_range, regex_repeat_from_next,
		// regex_repeat_to_next: accumulate, with old_state-driven escape
		// and named-class handling.
		c := t.char[0]
		switch t.old {
		case stListEscape:
			if cls, ok := namedClasses[c]; ok {
				b.accum = append(b.accum, cls...)
			} else if literalEscapes[c] {
				b.accum = append(b.accum, c)
			} else {
				return fmt.Errorf("%w: unknown escape %q", ErrSyntax, "\\"+string(c))
			}
		case stRegexEscape:
			if cls, ok := namedClasses[c]; ok {
				b.flush()
				b.current = append(b.current, newList(cls))
			} else if literalEscapes[c] {
				b.accum = append(b.accum, c)
			} else {
				return fmt.Errorf("%w: unknown escape %q", ErrSyntax, "\\"+string(c))
			}
		default:
			b.accum = append(b.accum, c)
		}
		return nil
	}
}

// parseAST runs the driver over src through a fresh builder and returns
// the raw (uncompacted) AST.
func parseAST(src string) (Node, error) {
	b := &builder{}
	if err := drive(src, b.handle); err != nil {
		return Node{}, err
	}
	return b.result, nil
}
