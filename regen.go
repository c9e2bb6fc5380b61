// Package regen compiles a bounded regular expression into an enumerable
// language: a Generator that reports how many strings the pattern matches
// and produces any one of them directly by index, without walking the
// others.
package regen

// Parse reads a pattern and returns its AST in canonical form (after
// literal fusion, single-child scope elision, and or-flattening). Returns
// ErrSyntax, ErrUnclosedScope, or ErrScopeUnderflow on malformed input.
func Parse(pattern string) (Node, error) {
	n, err := parseAST(pattern)
	if err != nil {
		return Node{}, err
	}
	c := compact(n)
	// The pattern's top-level scope has no parent for compact to elide it
	// into; unwrap it here when it holds a single child, so "(a|b|c)" and
	// "a|b|c" both parse to the same or node.
	if c.Tag == TagScope && len(c.Children) == 1 {
		return c.Children[0], nil
	}
	return c, nil
}

// CompilePattern parses pattern and compiles it into a Generator in one
// step.
func CompilePattern(pattern string) (Generator, error) {
	n, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	return Compile(n)
}
