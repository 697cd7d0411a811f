package owl

import (
	"errors"
	"net/url"
	"sort"
	"strings"

	"github.com/katalvlaran/closeworld/axiom"
	"github.com/katalvlaran/closeworld/expr"
)

// ErrInvalidPrefix indicates a prefix name that cannot appear in a
// functional-syntax Prefix declaration.
var ErrInvalidPrefix = errors.New("owl: invalid prefix name")

// Well-known namespaces.
const (
	NamespaceOWL  = "http://www.w3.org/2002/07/owl#"
	NamespaceRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NamespaceRDFS = "http://www.w3.org/2000/01/rdf-schema#"
	NamespaceXSD  = "http://www.w3.org/2001/XMLSchema#"
)

// Option configures a Translator.
type Option func(*Translator)

// WithBase binds the default prefix ":" to iri. Bare atom identifiers are
// then written as ":id".
func WithBase(iri string) Option {
	return func(t *Translator) { t.base = iri }
}

// WithPrefix binds name to iri. Atom identifiers of the form "name:local"
// are then kept as abbreviated IRIs.
func WithPrefix(name, iri string) Option {
	return func(t *Translator) { t.prefixes[name] = iri }
}

// Translator maps expressions and axioms to OWL 2 functional syntax.
// A Translator is immutable after construction and safe for concurrent use.
type Translator struct {
	base     string
	prefixes map[string]string
}

// NewTranslator returns a Translator with the owl, rdf, rdfs and xsd
// prefixes bound, plus any given options.
func NewTranslator(opts ...Option) *Translator {
	t := &Translator{prefixes: map[string]string{
		"owl":  NamespaceOWL,
		"rdf":  NamespaceRDF,
		"rdfs": NamespaceRDFS,
		"xsd":  NamespaceXSD,
	}}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// IRI renders an atom identifier:
//
//	"http://x#A", "urn:x:A"  →  <http://x#A>, <urn:x:A>
//	"owl:Thing" (bound prefix)  →  owl:Thing
//	"Car" with a base  →  :Car
//	"Car" without a base  →  <Car>
//
// A bare identifier that is not a valid local name is expanded against the
// base and percent-escaped.
func (t *Translator) IRI(id string) string {
	if isAbsolute(id) {
		return "<" + id + ">"
	}
	if name, local, ok := strings.Cut(id, ":"); ok {
		if _, bound := t.prefixes[name]; bound && validLocal(local) {
			return id
		}
	}
	if t.base == "" {
		return "<" + id + ">"
	}
	if validLocal(id) {
		return ":" + id
	}

	return "<" + t.base + url.PathEscape(id) + ">"
}

// Expression renders e. A difference a\b becomes
// ObjectIntersectionOf(a ObjectComplementOf(b)).
func (t *Translator) Expression(e expr.Expression) string {
	var b strings.Builder
	t.writeExpr(&b, e)

	return b.String()
}

func (t *Translator) writeExpr(b *strings.Builder, e expr.Expression) {
	switch v := e.(type) {
	case expr.Universal:
		b.WriteString("owl:Thing")
	case expr.Empty:
		b.WriteString("owl:Nothing")
	case expr.Atom:
		b.WriteString(t.IRI(v.ID()))
	case expr.ComplementOf:
		b.WriteString("ObjectComplementOf(")
		t.writeExpr(b, v.Operand())
		b.WriteByte(')')
	case expr.DifferenceOf:
		t.writeExpr(b, expr.Intersection(v.Minuend(), expr.Complement(v.Subtrahend())))
	case expr.IntersectionOf:
		t.writeList(b, "ObjectIntersectionOf", v.Operands())
	case expr.UnionOf:
		t.writeList(b, "ObjectUnionOf", v.Operands())
	}
}

func (t *Translator) writeList(b *strings.Builder, construct string, es []expr.Expression) {
	b.WriteString(construct)
	b.WriteByte('(')
	for i, e := range es {
		if i > 0 {
			b.WriteByte(' ')
		}
		t.writeExpr(b, e)
	}
	b.WriteByte(')')
}

// Axiom renders a.
func (t *Translator) Axiom(a axiom.Axiom) string {
	var b strings.Builder
	switch v := a.(type) {
	case axiom.SubClassOf:
		t.writeList(&b, "SubClassOf", []expr.Expression{v.Sub(), v.Super()})
	case axiom.DisjointClasses:
		t.writeList(&b, "DisjointClasses", v.Operands())
	case axiom.EquivalentClasses:
		t.writeList(&b, "EquivalentClasses", v.Operands())
	case axiom.DisjointUnion:
		t.writeList(&b, "DisjointUnion", axiom.Operands(v))
	}

	return b.String()
}

// Declarations returns Declaration(Class(...)) for every atom mentioned by
// as, ordered by identifier.
func (t *Translator) Declarations(as []axiom.Axiom) []string {
	seen := make(map[string]struct{})
	for _, a := range as {
		for _, op := range axiom.Operands(a) {
			for _, at := range expr.Atoms(op) {
				seen[at.(expr.Atom).ID()] = struct{}{}
			}
		}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = "Declaration(Class(" + t.IRI(id) + "))"
	}

	return out
}

func isAbsolute(id string) bool {
	return strings.Contains(id, "://") || strings.HasPrefix(id, "urn:")
}

// validLocal is a conservative PN_LOCAL check.
func validLocal(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		case (r == '-' || r == '.') && i > 0 && i < len(s)-1:
		default:
			return false
		}
	}

	return true
}

func validPrefixName(s string) bool {
	return s == "" || (validLocal(s) && !strings.Contains(s, "."))
}
