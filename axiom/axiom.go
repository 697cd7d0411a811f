package axiom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/closeworld/expr"
)

// ErrUnknownType indicates an axiom type name that ParseType does not know.
var ErrUnknownType = errors.New("axiom: unknown axiom type")

// Type selects which closure axiom is generated for each sibling group.
type Type int

// Closure axiom types.
const (
	TypeDisjointClasses Type = iota
	TypeDisjointUnion
	TypeEquivalentClasses
)

var typeNames = map[Type]string{
	TypeDisjointClasses:   "disjoint-classes",
	TypeDisjointUnion:     "disjoint-union",
	TypeEquivalentClasses: "equivalent-classes",
}

// String returns the kebab-case name used in configuration and flags.
func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}

	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType accepts "disjoint-classes", "DISJOINT_CLASSES" and other
// case/separator variants of the three type names.
func ParseType(s string) (Type, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	for t, name := range typeNames {
		if name == norm {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Types lists every axiom type in declaration order.
func Types() []Type {
	return []Type{TypeDisjointClasses, TypeDisjointUnion, TypeEquivalentClasses}
}

// Kind identifies an Axiom variant.
type Kind int

// Axiom variants.
const (
	KindSubClassOf Kind = iota
	KindDisjointClasses
	KindEquivalentClasses
	KindDisjointUnion
)

var kindNames = [...]string{
	KindSubClassOf:        "SubClassOf",
	KindDisjointClasses:   "DisjointClasses",
	KindEquivalentClasses: "EquivalentClasses",
	KindDisjointUnion:     "DisjointUnion",
}

// String returns the OWL construct name of the variant.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Axiom is an immutable statement over class expressions. Equality is by Key,
// which depends on operand set content, not insertion order.
type Axiom interface {
	Kind() Kind
	Key() string
	String() string
	sealed()
}

// SubClassOf states Sub ⊑ Super.
type SubClassOf struct {
	sub, super expr.Expression
}

// DisjointClasses states that its operands are pairwise disjoint.
type DisjointClasses struct {
	operands []expr.Expression
}

// EquivalentClasses states that its operands denote the same class.
type EquivalentClasses struct {
	operands []expr.Expression
}

// DisjointUnion states that Class is the disjoint union of its operands.
type DisjointUnion struct {
	class    expr.Atom
	operands []expr.Expression
}

// NewSubClassOf returns sub ⊑ super.
func NewSubClassOf(sub, super expr.Expression) SubClassOf {
	if sub == nil || super == nil {
		panic(expr.ErrNilOperand)
	}

	return SubClassOf{sub: sub, super: super}
}

// NewDisjointClasses returns DisjointClasses over the distinct members of es.
func NewDisjointClasses(es ...expr.Expression) DisjointClasses {
	return DisjointClasses{operands: expr.Distinct(es...)}
}

// NewEquivalentClasses returns EquivalentClasses over the distinct members of es.
func NewEquivalentClasses(es ...expr.Expression) EquivalentClasses {
	return EquivalentClasses{operands: expr.Distinct(es...)}
}

// NewDisjointUnion returns DisjointUnion(class, es).
func NewDisjointUnion(class expr.Atom, es ...expr.Expression) DisjointUnion {
	return DisjointUnion{class: class, operands: expr.Distinct(es...)}
}

func (SubClassOf) Kind() Kind        { return KindSubClassOf }
func (DisjointClasses) Kind() Kind   { return KindDisjointClasses }
func (EquivalentClasses) Kind() Kind { return KindEquivalentClasses }
func (DisjointUnion) Kind() Kind     { return KindDisjointUnion }

func (SubClassOf) sealed()        {}
func (DisjointClasses) sealed()   {}
func (EquivalentClasses) sealed() {}
func (DisjointUnion) sealed()     {}

// Sub returns the subclass.
func (a SubClassOf) Sub() expr.Expression { return a.sub }

// Super returns the superclass.
func (a SubClassOf) Super() expr.Expression { return a.super }

// Operands returns the operand set in key order.
func (a DisjointClasses) Operands() []expr.Expression { return clone(a.operands) }

// Operands returns the operand set in key order.
func (a EquivalentClasses) Operands() []expr.Expression { return clone(a.operands) }

// Class returns the named class being partitioned.
func (a DisjointUnion) Class() expr.Atom { return a.class }

// Operands returns the partition in key order.
func (a DisjointUnion) Operands() []expr.Expression { return clone(a.operands) }

func (a SubClassOf) Key() string { return "sub(" + a.sub.Key() + "," + a.super.Key() + ")" }

func (a DisjointClasses) Key() string { return setKey("dc(", a.operands) }

func (a EquivalentClasses) Key() string { return setKey("eq(", a.operands) }

func (a DisjointUnion) Key() string { return setKey("du("+a.class.Key()+";", a.operands) }

func (a SubClassOf) String() string {
	return "SubClassOf(" + a.sub.String() + ", " + a.super.String() + ")"
}

func (a DisjointClasses) String() string { return "DisjointClasses(" + list(a.operands) + ")" }

func (a EquivalentClasses) String() string { return "EquivalentClasses(" + list(a.operands) + ")" }

func (a DisjointUnion) String() string {
	return "DisjointUnion(" + a.class.String() + ", " + list(a.operands) + ")"
}

// Operands returns the class expressions an axiom mentions, in the order
// they appear in the axiom.
func Operands(a Axiom) []expr.Expression {
	switch v := a.(type) {
	case SubClassOf:
		return []expr.Expression{v.sub, v.super}
	case DisjointClasses:
		return v.Operands()
	case EquivalentClasses:
		return v.Operands()
	case DisjointUnion:
		return append([]expr.Expression{v.class}, v.operands...)
	default:
		return nil
	}
}

func setKey(prefix string, ops []expr.Expression) string {
	var b strings.Builder
	b.WriteString(prefix)
	for i, op := range ops {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(op.Key())
	}
	b.WriteByte(')')

	return b.String()
}

func list(ops []expr.Expression) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = op.String()
	}

	return strings.Join(parts, ", ")
}

func clone(ops []expr.Expression) []expr.Expression {
	return append([]expr.Expression(nil), ops...)
}
