package expr

import "strings"

// Display symbols.
const (
	universalSymbol    = "U"
	emptySymbol        = "∅"
	complementSymbol   = "′"
	differenceSymbol   = `\`
	intersectionSymbol = "∩"
	unionSymbol        = "∪"
)

func (Universal) String() string { return universalSymbol }
func (Empty) String() string     { return emptySymbol }
func (a Atom) String() string    { return a.id }

func (c ComplementOf) String() string {
	return embed(c.operand) + complementSymbol
}

func (d DifferenceOf) String() string {
	return embed(d.minuend) + differenceSymbol + embed(d.subtrahend)
}

func (i IntersectionOf) String() string { return join(i.operands, intersectionSymbol) }

func (u UnionOf) String() string { return join(u.operands, unionSymbol) }

// embed renders e as an operand of an enclosing expression.
// Compound binary and n-ary forms are parenthesized.
func embed(e Expression) string {
	switch e.Kind() {
	case KindDifference, KindIntersection, KindUnion:
		return "(" + e.String() + ")"
	default:
		return e.String()
	}
}

func join(ops []Expression, sep string) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = embed(op)
	}

	return strings.Join(parts, sep)
}
