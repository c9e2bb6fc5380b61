package regen

// The transition table is a static, read-only description: state name
// (string) -> an ordered sequence of (next_state, match_spec) entries.
// Entries are evaluated in declaration order; the first matching entry
// wins. This ordering is semantically significant (a wildcard fallback
// typically appears last) so the table is built with plain slice
// literals, never a map keyed by character.

// Reserved sentinel states.
const (
	stateBOF = "BOF"
	stateEOF = "EOF"
	stateErr = "ERR"
)

// Grammar states. Named to match the commands the builder (C3) dispatches
// on; see builder.go.
const (
	stRegexStart          = "regex_start"
	stRegexNext           = "regex_next"
	stRegexNextRegex      = "regex_next_regex"
	stRegexNextOr         = "regex_next_or"
	stRegexNextRepeat     = "regex_next_repeat"
	stRegexNextList       = "regex_next_list"
	stRegexEscape         = "regex_escape"
	stRegexRepeatFromStrt = "regex_repeat_from_start"
	stRegexRepeatFromNext = "regex_repeat_from_next"
	stRegexRepeatToStart  = "regex_repeat_to_start"
	stRegexRepeatToNext   = "regex_repeat_to_next"
	stListStart           = "list_start"
	stListNext            = "list_next"
	stListEscape          = "list_escape"
	stListRangeNext       = "list_range_next"
	stListNextRange       = "list_next_range"
)

const digits = "0123456789"

// matchKind is the shape of a match_spec.
type matchKind int8

const (
	matchWildcard matchKind = iota // no character restriction; matches any real char
	matchSet                       // matches c iff c is a member of the set
	matchEmpty                     // matches only the BOF/EOF sentinel c == ""
)

type matchSpec struct {
	kind matchKind
	set  string
}

// admits reports whether this match_spec accepts character c. c == ""
// denotes the BOF/EOF sentinel; wildcard never admits the sentinel, only
// an explicit empty match_spec does.
func (m matchSpec) admits(c string) bool {
	switch m.kind {
	case matchEmpty:
		return c == ""
	case matchWildcard:
		return c != ""
	case matchSet:
		return c != "" && indexByte(m.set, c[0]) >= 0
	}
	return false
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

type tableEntry struct {
	next  string
	match matchSpec
}

func onChars(next, set string) tableEntry { return tableEntry{next, matchSpec{kind: matchSet, set: set}} }
func onEmpty(next string) tableEntry      { return tableEntry{next, matchSpec{kind: matchEmpty}} }
func onWildcard(next string) tableEntry   { return tableEntry{next, matchSpec{kind: matchWildcard}} }

// bodyRow is the entry set shared by every state that resumes "regular
// regex body" parsing: regex_next itself, and every "_next_X" state that
// lands back into ordinary parsing after closing a construct (a group, a
// repeat, an alternative, a list). The continuation states behave
// identically to regex_next, which is why the table reuses one row for
// all of them rather than repeating it.
func bodyRow() []tableEntry {
	return []tableEntry{
		onChars(stRegexNextRepeat, "?"),
		onChars(stRegexRepeatFromStrt, "{"),
		onChars(stRegexStart, "("),
		onChars(stRegexNextRegex, ")"),
		onChars(stRegexEscape, "\\"),
		onChars(stListStart, "["),
		onChars(stRegexNextOr, "|"),
		onEmpty(stateEOF),
		onWildcard(stRegexNext),
	}
}

// repeatFromRow is shared by regex_repeat_from_start and
// regex_repeat_from_next: both accumulate the first {m,n} integer and
// react the same way to ',' and '}'.
func repeatFromRow() []tableEntry {
	return []tableEntry{
		onChars(stRegexRepeatToStart, ","),
		onChars(stRegexNextRepeat, "}"),
		onEmpty(stateErr),
		onChars(stRegexRepeatFromNext, digits),
		onWildcard(stateErr),
	}
}

func listBodyRow() []tableEntry {
	return []tableEntry{
		onChars(stListEscape, "\\"),
		onChars(stListRangeNext, "-"),
		onChars(stRegexNextList, "]"),
		onEmpty(stateErr),
		onWildcard(stListNext),
	}
}

// transitionTable is a static map from state name to its ordered
// entries. Declaration order within each row is significant.
var transitionTable = map[string][]tableEntry{
	stateBOF: {onEmpty(stRegexStart)},

	stRegexStart: {
		onChars(stRegexEscape, "\\"),
		onChars(stListStart, "["),
		onChars(stRegexStart, "("),
		onEmpty(stateEOF),
		onWildcard(stRegexNext),
	},

	stRegexNext:       bodyRow(),
	stRegexNextRegex:  bodyRow(),
	stRegexNextOr:     bodyRow(),
	stRegexNextRepeat: bodyRow(),
	stRegexNextList:   bodyRow(),

	stRegexEscape: {
		onEmpty(stateErr),
		onWildcard(stRegexNext),
	},

	stRegexRepeatFromStrt: repeatFromRow(),
	stRegexRepeatFromNext: repeatFromRow(),

	stRegexRepeatToStart: {
		onEmpty(stateErr),
		onChars(stRegexRepeatToNext, digits),
		onWildcard(stateErr),
	},
	stRegexRepeatToNext: {
		onChars(stRegexNextRepeat, "}"),
		onEmpty(stateErr),
		onChars(stRegexRepeatToNext, digits),
		onWildcard(stateErr),
	},

	stListStart: {
		onChars(stListEscape, "\\"),
		onChars(stRegexNextList, "]"),
		onEmpty(stateErr),
		onWildcard(stListNext),
	},
	stListNext:      listBodyRow(),
	stListNextRange: listBodyRow(),

	stListEscape: {
		onEmpty(stateErr),
		onWildcard(stListNext),
	},
	stListRangeNext: {
		// A '-' immediately followed by ']' is a trailing literal hyphen,
		// not a dangling range operator, mirroring the leading-hyphen
		// case in list_start. This entry must come before the wildcard
		// so closing the list wins over starting a range.
		onChars(stRegexNextList, "]"),
		onEmpty(stateErr),
		onWildcard(stListNextRange),
	},

	stateErr: {
		onEmpty(stateErr),
		onWildcard(stateErr),
	},
	stateEOF: {
		onEmpty(stateEOF),
		onWildcard(stateErr),
	},
}
