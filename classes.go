package regen

// Named character classes reachable via \d, \l, \L, both inside and
// outside a list. Declared as data, same spirit as the transition table:
// a grammar variant swaps these out without touching the builder logic
// that consumes them.
var namedClasses = map[byte]string{
	'd': "0123456789",
	'l': "abcdefghijklmnopqrstuvwxyz",
	'L': "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
}

// escapable punctuation outside a list: \\ \( \) \[ \* \+ \? \{
// (and \] \} \| for symmetry, and \- for completeness inside lists).
// Any of these simply contribute their literal byte to char_accum.
var literalEscapes = map[byte]bool{
	'\\': true,
	'(':  true,
	')':  true,
	'[':  true,
	']':  true,
	'*':  true,
	'+':  true,
	'?':  true,
	'{':  true,
	'}':  true,
	'|':  true,
	'-':  true,
}
