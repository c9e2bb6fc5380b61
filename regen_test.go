package regen

import (
	"fmt"
	"math/big"
	"testing"
)

func enumerate(t *testing.T, pattern string) []string {
	t.Helper()
	n, err := Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	g, err := Compile(n)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	length := g.Len()
	if !length.IsInt64() {
		t.Fatalf("%q: length too large to enumerate in a test: %v", pattern, length)
	}
	out := make([]string, 0, length.Int64())
	for i := big.NewInt(0); i.Cmp(length) < 0; i.Add(i, big.NewInt(1)) {
		s, err := g.At(new(big.Int).Set(i))
		if err != nil {
			t.Fatalf("%q: At(%v): %v", pattern, i, err)
		}
		out = append(out, s)
	}
	return out
}

func equalSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	count := map[string]int{}
	for _, s := range a {
		count[s]++
	}
	for _, s := range b {
		count[s]--
	}
	for _, c := range count {
		if c != 0 {
			return false
		}
	}
	return true
}

func TestParseCompileEnumerate(t *testing.T) {
	for _, test := range []struct {
		pattern  string
		expected []string
	}{
		{"a", []string{"a"}},
		{"a?", []string{"", "a"}},
		{"[abc]", []string{"a", "b", "c"}},
		{"(a|b)(c|d)", []string{"ac", "ad", "bc", "bd"}},
		{"a{2,3}", []string{"aa", "aaa"}},
		{`\d`, []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}},
		{"a|b|c", []string{"a", "b", "c"}},
	} {
		t.Run(test.pattern, func(t *testing.T) {
			actual := enumerate(t, test.pattern)
			if !equalSets(actual, test.expected) {
				t.Errorf("%q: expected %v got %v", test.pattern, test.expected, actual)
			}
		})
	}
}

func TestLenMatchesCardinality(t *testing.T) {
	for _, test := range []struct {
		pattern  string
		expected int64
	}{
		{"a", 1},
		{"a?", 2},
		{"[abc]", 3},
		{`[\d]{2}`, 100},
		{"a{2,3}", 2},
		{"(a|b|c)", 3},
	} {
		t.Run(test.pattern, func(t *testing.T) {
			g, err := CompilePattern(test.pattern)
			if err != nil {
				t.Fatalf("CompilePattern(%q): %v", test.pattern, err)
			}
			if got := g.Len().Int64(); got != test.expected {
				t.Errorf("%q: expected len %d got %d", test.pattern, test.expected, got)
			}
		})
	}
}

func TestAtOutOfRange(t *testing.T) {
	g, err := CompilePattern("[ab]")
	if err != nil {
		t.Fatalf("CompilePattern: %v", err)
	}
	if _, err := g.At(big.NewInt(2)); err == nil {
		t.Errorf("expected error for out-of-range index, got none")
	}
	if _, err := g.At(big.NewInt(-1)); err == nil {
		t.Errorf("expected error for negative index, got none")
	}
}

func TestSingleChildOrSurvivesElision(t *testing.T) {
	n, err := Parse("(a|b|c)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Tag != TagOr {
		t.Errorf("expected top-level node to remain an or, got tag %v", n.Tag)
	}
	if len(n.Children) != 3 {
		t.Errorf("expected 3 alternatives, got %d", len(n.Children))
	}
}

func TestParseErrors(t *testing.T) {
	for _, pattern := range []string{
		"(a",
		"a)",
		"[a",
		"a{3,1}",
		`\x`,
	} {
		t.Run(pattern, func(t *testing.T) {
			if _, err := Parse(pattern); err == nil {
				t.Errorf("%q: expected error, got none", pattern)
			}
		})
	}
}

func TestRangePromotionPreservesDuplicates(t *testing.T) {
	n, err := Parse("[aab]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Tag != TagList {
		t.Errorf("expected list with duplicates to stay a list, got tag %v", n.Tag)
	}
	g, err := Compile(n)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if got := g.Len().Int64(); got != 3 {
		t.Errorf("expected len 3 (duplicates counted), got %d", got)
	}
}

func ExampleParse() {
	n, err := Parse("[abc]")
	if err != nil {
		fmt.Println(err)
		return
	}
	g, err := Compile(n)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Len())
	s, _ := g.At(big.NewInt(1))
	fmt.Println(s)
	// Output:
	// 3
	// b
}
