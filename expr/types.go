package expr

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors. Both are programmer errors: the algebra panics with them
// rather than returning a wrong expression.
var (
	// ErrNilOperand indicates a nil Expression was passed to an operator.
	ErrNilOperand = errors.New("expr: nil operand")

	// ErrEmptyAtomID indicates an atom was created with an empty identifier.
	ErrEmptyAtomID = errors.New("expr: empty atom identifier")
)

// Kind identifies which of the seven variants an Expression is.
type Kind int

// Expression variants.
const (
	KindUniversal Kind = iota
	KindEmpty
	KindAtom
	KindComplement
	KindDifference
	KindIntersection
	KindUnion
)

var kindNames = [...]string{
	KindUniversal:    "Universal",
	KindEmpty:        "Empty",
	KindAtom:         "Atom",
	KindComplement:   "Complement",
	KindDifference:   "Difference",
	KindIntersection: "Intersection",
	KindUnion:        "Union",
}

// String returns the variant name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// Expression is an immutable class expression in canonical form.
//
// The interface is sealed: the only implementations are the seven variant
// types of this package, and values are obtained only through U, None,
// NewAtom and the algebra operators. Two expressions are structurally equal
// iff their keys are equal.
type Expression interface {
	// Kind reports the variant.
	Kind() Kind

	// Key is the canonical structural identity of the expression.
	// It is stable across runs and never used for display.
	Key() string

	// String renders the expression for humans.
	String() string

	sealed()
}

// Universal is the class of everything (owl:Thing).
type Universal struct{}

// Empty is the empty class (owl:Nothing).
type Empty struct{}

// Atom is a named class.
type Atom struct {
	id string
}

// ComplementOf is the complement of a non-trivial expression.
type ComplementOf struct {
	operand Expression
	key     string
}

// DifferenceOf is minuend \ subtrahend.
type DifferenceOf struct {
	minuend    Expression
	subtrahend Expression
	key        string
}

// IntersectionOf is the intersection of two or more distinct operands.
// Operands are kept sorted by key.
type IntersectionOf struct {
	operands []Expression
	key      string
}

// UnionOf is the union of two or more distinct operands.
// Operands are kept sorted by key.
type UnionOf struct {
	operands []Expression
	key      string
}

// U returns the universal class.
func U() Expression { return Universal{} }

// None returns the empty class.
func None() Expression { return Empty{} }

// NewAtom returns the atom named id. It panics with ErrEmptyAtomID if id is
// blank; use ParseAtom for untrusted input.
func NewAtom(id string) Expression {
	a, err := ParseAtom(id)
	if err != nil {
		panic(err)
	}

	return a
}

// ParseAtom validates id and returns the corresponding atom.
// Surrounding whitespace is not trimmed; a blank id is rejected.
func ParseAtom(id string) (Atom, error) {
	if strings.TrimSpace(id) == "" {
		return Atom{}, ErrEmptyAtomID
	}

	return Atom{id: id}, nil
}

func (Universal) Kind() Kind      { return KindUniversal }
func (Empty) Kind() Kind          { return KindEmpty }
func (Atom) Kind() Kind           { return KindAtom }
func (ComplementOf) Kind() Kind   { return KindComplement }
func (DifferenceOf) Kind() Kind   { return KindDifference }
func (IntersectionOf) Kind() Kind { return KindIntersection }
func (UnionOf) Kind() Kind        { return KindUnion }

func (Universal) Key() string        { return "U" }
func (Empty) Key() string            { return "0" }
func (a Atom) Key() string           { return "a:" + strconv.Quote(a.id) }
func (c ComplementOf) Key() string   { return c.key }
func (d DifferenceOf) Key() string   { return d.key }
func (i IntersectionOf) Key() string { return i.key }
func (u UnionOf) Key() string        { return u.key }

func (Universal) sealed()      {}
func (Empty) sealed()          {}
func (Atom) sealed()           {}
func (ComplementOf) sealed()   {}
func (DifferenceOf) sealed()   {}
func (IntersectionOf) sealed() {}
func (UnionOf) sealed()        {}

// ID returns the atom identifier.
func (a Atom) ID() string { return a.id }

// Operand returns the complemented expression.
func (c ComplementOf) Operand() Expression { return c.operand }

// Minuend returns the left side of the difference.
func (d DifferenceOf) Minuend() Expression { return d.minuend }

// Subtrahend returns the right side of the difference.
func (d DifferenceOf) Subtrahend() Expression { return d.subtrahend }

// Operands returns a copy of the operand set in key order.
func (i IntersectionOf) Operands() []Expression { return append([]Expression(nil), i.operands...) }

// Operands returns a copy of the operand set in key order.
func (u UnionOf) Operands() []Expression { return append([]Expression(nil), u.operands...) }

func newComplement(e Expression) ComplementOf {
	return ComplementOf{operand: e, key: "c(" + e.Key() + ")"}
}

func newDifference(a, b Expression) DifferenceOf {
	return DifferenceOf{minuend: a, subtrahend: b, key: "d(" + a.Key() + "," + b.Key() + ")"}
}

// naryKey joins sorted operand keys under prefix.
func naryKey(prefix string, ops []Expression) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte('(')
	for i, op := range ops {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(op.Key())
	}
	b.WriteByte(')')

	return b.String()
}
