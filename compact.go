package regen

// compact rewrites an AST into canonical form: literal fusion,
// single-child scope elision, and or-flattening. It is idempotent —
// compact(compact(n)) == compact(n) — because every rule it applies is
// already a fixed point of itself (see *_test.go).
func compact(n Node) Node {
	return compactNode(n, TagScope, false)
}

// compactNode recurses with the parent's tag, since the scope-elision
// rule only fires when the parent is a scope or an or. hasParent is
// false only for the synthetic call at the tree root.
func compactNode(n Node, parentTag Tag, hasParent bool) Node {
	switch n.Tag {
	case TagScope:
		children := make([]Node, 0, len(n.Children))
		for _, c := range n.Children {
			children = append(children, compactNode(c, TagScope, true))
		}
		children = fuseLiterals(children)
		if hasParent && (parentTag == TagScope || parentTag == TagOr) && len(children) == 1 {
			return children[0]
		}
		return newScope(children...)

	case TagOr:
		flat := make([]Node, 0, len(n.Children))
		for _, c := range n.Children {
			cc := compactNode(c, TagOr, true)
			if cc.Tag == TagOr {
				flat = append(flat, cc.Children...)
			} else {
				flat = append(flat, cc)
			}
		}
		return newOr(flat...)

	case TagRepeat:
		// The repeat's sole child is a leaf or an already-finalized
		// scope/or built when its own ')' or '|' fired. Elision only
		// fires for a scope or or parent, not a repeat, so there is
		// nothing to recurse into here. Trade-off: a single-child scope
		// under a repeat (e.g. "(a(b)){2}") stays un-elided, so the tree
		// isn't fully canonical, though Len/At are unaffected.
		return n

	case TagList:
		return promoteContiguousRange(n)

	default:
		return n
	}
}

// fuseLiterals performs the single left-to-right pass that fuses maximal
// runs of literal children into one literal.
func fuseLiterals(children []Node) []Node {
	out := make([]Node, 0, len(children))
	for _, c := range children {
		if c.Tag == TagLiteral && len(out) > 0 && out[len(out)-1].Tag == TagLiteral {
			out[len(out)-1] = newLiteral(out[len(out)-1].Lit + c.Lit)
			continue
		}
		out = append(out, c)
	}
	return out
}

// promoteContiguousRange rewrites a list whose characters are a strictly
// ascending, duplicate-free run (e.g. "0123456789" from \d, or the flat
// expansion of [a-z]) into the equivalent range(a,b) node. len and At
// are identical either way (range.At(i) == lo+i == list.At(i) for such a
// list); this only gives the sequence engine a constant-size
// representation instead of one proportional to the span. A list with
// duplicates or a non-contiguous/non-ascending order is left as a list,
// since duplicates must still count toward cardinality.
func promoteContiguousRange(n Node) Node {
	s := n.Lit
	if len(s) < 2 {
		return n
	}
	seen := make(map[byte]bool, len(s))
	for i := 0; i < len(s); i++ {
		if i > 0 && s[i] != s[i-1]+1 {
			return n
		}
		if seen[s[i]] {
			return n
		}
		seen[s[i]] = true
	}
	return newRange(s[0], s[len(s)-1])
}
