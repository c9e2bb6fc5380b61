package regen

import (
	"fmt"
	"math/big"
	"strings"
)

// Every AST node compiles into a generator exposing Len() and At(i);
// composition is by product (scope), sum (or), bounded power sum
// (repeat), and primitive enumeration (literal, list, range).
// Cardinalities are arbitrary precision (math/big) throughout, since
// expressions like [\d]{1,20} exceed 64-bit range.

// Generator reports the size of a compiled pattern's language and
// decodes any one word of it directly by index.
type Generator interface {
	// Len returns the cardinality of the compiled node's language.
	Len() *big.Int
	// At returns the i-th word, 0 <= i < Len(). Returns ErrOutOfRange
	// otherwise.
	At(i *big.Int) (string, error)
}

// sizedNode mirrors Node but with each subtree's cardinality computed
// once, up front, so At(i) only ever does O(depth) work (plus the cost
// of the big.Int arithmetic itself) instead of recomputing sizes on
// every call.
type sizedNode struct {
	tag      Tag
	lit      string
	lo, hi   byte
	min, max int
	children []*sizedNode
	size     *big.Int
}

type generator struct {
	root *sizedNode
}

// Compile compiles an AST node into a Generator.
func Compile(n Node) (Generator, error) {
	root, err := annotate(n)
	if err != nil {
		return nil, err
	}
	return &generator{root: root}, nil
}

func (g *generator) Len() *big.Int {
	return new(big.Int).Set(g.root.size)
}

func (g *generator) At(i *big.Int) (string, error) {
	if i.Sign() < 0 || i.Cmp(g.root.size) >= 0 {
		return "", fmt.Errorf("%w: index %s, length %s", ErrOutOfRange, i, g.root.size)
	}
	return atNode(g.root, i)
}

// annotate walks an AST bottom-up, computing and caching each subtree's
// cardinality.
func annotate(n Node) (*sizedNode, error) {
	sn := &sizedNode{tag: n.Tag, lit: n.Lit, lo: n.Lo, hi: n.Hi, min: n.Min, max: n.Max}

	switch n.Tag {
	case TagLiteral:
		sn.size = big.NewInt(1)

	case TagList:
		sn.size = big.NewInt(int64(len(n.Lit)))

	case TagRange:
		sn.size = big.NewInt(int64(n.Hi) - int64(n.Lo) + 1)

	case TagScope:
		sn.children = make([]*sizedNode, len(n.Children))
		size := big.NewInt(1)
		for idx, c := range n.Children {
			cs, err := annotate(c)
			if err != nil {
				return nil, err
			}
			sn.children[idx] = cs
			size.Mul(size, cs.size)
		}
		sn.size = size

	case TagOr:
		sn.children = make([]*sizedNode, len(n.Children))
		size := big.NewInt(0)
		for idx, c := range n.Children {
			cs, err := annotate(c)
			if err != nil {
				return nil, err
			}
			sn.children[idx] = cs
			size.Add(size, cs.size)
		}
		sn.size = size

	case TagRepeat:
		if len(n.Children) != 1 {
			return nil, fmt.Errorf("regen: repeat node must have exactly one child")
		}
		if n.Min < 0 || n.Max < n.Min {
			return nil, fmt.Errorf("%w: invalid repeat bounds {%d,%d}", ErrSyntax, n.Min, n.Max)
		}
		child, err := annotate(n.Children[0])
		if err != nil {
			return nil, err
		}
		sn.children = []*sizedNode{child}
		sn.size = repeatCardinality(child.size, n.Min, n.Max)

	default:
		return nil, fmt.Errorf("regen: unknown AST tag %d", n.Tag)
	}
	return sn, nil
}

// repeatCardinality computes Σ_{k=min..max} L^k in closed form instead of
// looping max-min+1 times: for L == 1 every term is 1; for L == 0 only
// the k == 0 term (which is always 1, by the L^0 == 1 convention)
// contributes; otherwise it is the geometric series
// (L^(max+1) - L^min) / (L - 1), an exact integer division.
func repeatCardinality(L *big.Int, min, max int) *big.Int {
	one := big.NewInt(1)
	switch L.Cmp(one) {
	case 0:
		return big.NewInt(int64(max - min + 1))
	}
	if L.Sign() == 0 {
		if min == 0 {
			return big.NewInt(1)
		}
		return big.NewInt(0)
	}
	upper := new(big.Int).Exp(L, big.NewInt(int64(max+1)), nil)
	lower := new(big.Int).Exp(L, big.NewInt(int64(min)), nil)
	num := new(big.Int).Sub(upper, lower)
	den := new(big.Int).Sub(L, one)
	return num.Div(num, den)
}

// atNode unranks index i within the language of sn, per-tag.
func atNode(sn *sizedNode, i *big.Int) (string, error) {
	switch sn.tag {
	case TagLiteral:
		return sn.lit, nil

	case TagList:
		return string(sn.lit[i.Int64()]), nil

	case TagRange:
		return string(rune(int(sn.lo) + int(i.Int64()))), nil

	case TagScope:
		return atScope(sn, i)

	case TagOr:
		return atOr(sn, i)

	case TagRepeat:
		return atRepeat(sn, i)
	}
	return "", fmt.Errorf("regen: unknown AST tag %d", sn.tag)
}

// atScope decomposes i in mixed radix using the children's lengths as a
// big-endian positional system: pj = floor(i / (L_{j+1}·…·Lk)) mod Lj.
func atScope(sn *sizedNode, i *big.Int) (string, error) {
	k := len(sn.children)
	if k == 0 {
		return "", nil
	}
	suffix := make([]*big.Int, k+1)
	suffix[k] = big.NewInt(1)
	for j := k - 1; j >= 0; j-- {
		suffix[j] = new(big.Int).Mul(suffix[j+1], sn.children[j].size)
	}
	var sb strings.Builder
	for j := 0; j < k; j++ {
		div := new(big.Int).Div(i, suffix[j+1])
		pj := div.Mod(div, sn.children[j].size)
		s, err := atNode(sn.children[j], pj)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

// atOr finds the smallest j with i < Σ_{m<=j} len(cm) and recurses into
// that child with the remaining offset.
func atOr(sn *sizedNode, i *big.Int) (string, error) {
	rem := new(big.Int).Set(i)
	for _, c := range sn.children {
		if rem.Cmp(c.size) < 0 {
			return atNode(c, rem)
		}
		rem.Sub(rem, c.size)
	}
	return "", fmt.Errorf("%w: or index out of range", ErrOutOfRange)
}

// atRepeat finds the smallest k in [min, max] with i < Σ_{h=min..k} L^h,
// then decodes the remaining offset as a k-digit mixed-radix number with
// every radix equal to L = len(child).
func atRepeat(sn *sizedNode, i *big.Int) (string, error) {
	child := sn.children[0]
	L := child.size
	rem := new(big.Int).Set(i)
	for k := sn.min; k <= sn.max; k++ {
		count := new(big.Int).Exp(L, big.NewInt(int64(k)), nil)
		if rem.Cmp(count) < 0 {
			return atRepeatDigits(child, rem, k)
		}
		rem.Sub(rem, count)
	}
	return "", fmt.Errorf("%w: repeat index out of range", ErrOutOfRange)
}

func atRepeatDigits(child *sizedNode, offset *big.Int, k int) (string, error) {
	if k == 0 {
		return "", nil
	}
	L := child.size
	var sb strings.Builder
	for j := 1; j <= k; j++ {
		weight := new(big.Int).Exp(L, big.NewInt(int64(k-j)), nil)
		div := new(big.Int).Div(offset, weight)
		pj := div.Mod(div, L)
		s, err := atNode(child, pj)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}
