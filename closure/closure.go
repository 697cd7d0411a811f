// SPDX-License-Identifier: MIT
package closure

import (
	"fmt"

	"github.com/katalvlaran/closeworld/axiom"
	"github.com/katalvlaran/closeworld/expr"
	"github.com/katalvlaran/closeworld/taxonomy"
)

// Option configures Generate.
type Option func(*Options)

// Options holds the settings of one closure run.
type Options struct {
	// Type selects the axiom emitted per sibling group.
	// Default is axiom.TypeDisjointClasses.
	Type axiom.Type

	// TreeAxioms, if true, also emits one SubClassOf per edge of the tree,
	// so the difference classes introduced by Treeify are anchored.
	TreeAxioms bool
}

// DefaultOptions returns Options with DisjointClasses and no tree axioms.
func DefaultOptions() Options {
	return Options{Type: axiom.TypeDisjointClasses}
}

// WithType selects the closure axiom type.
func WithType(t axiom.Type) Option {
	return func(o *Options) { o.Type = t }
}

// WithTreeAxioms also emits the tree edges as SubClassOf axioms.
func WithTreeAxioms() Option {
	return func(o *Options) { o.TreeAxioms = true }
}

// Result is the outcome of Generate.
type Result struct {
	// Axioms holds the closure axioms (and tree axioms, if requested).
	Axioms *axiom.Set

	// Tree is the treeified taxonomy the axioms were derived from.
	Tree *taxonomy.Taxonomy

	// Degraded lists, in key order, the parents whose DisjointUnion was
	// weakened to DisjointClasses because they are not named classes.
	// Always empty for types other than TypeDisjointUnion.
	Degraded []expr.Expression
}

// Generate validates that t is connected, treeifies it, validates the tree
// and emits one axiom per sibling group:
//
//	TypeDisjointClasses   DisjointClasses(children)
//	TypeDisjointUnion     DisjointUnion(parent, children) for an atom parent,
//	                      DisjointClasses(children) otherwise (recorded in Degraded)
//	TypeEquivalentClasses nothing
//
// Errors: ErrUnconnectedTaxonomy for a disconnected input, ErrInvalidTree if
// the treeified result is not a tree, ErrUnknownType for an invalid Type.
//
// Complexity: dominated by Treeify.
func Generate(t *taxonomy.Taxonomy, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if _, ok := typeSet[o.Type]; !ok {
		return nil, fmt.Errorf("closure: %w: %v", axiom.ErrUnknownType, o.Type)
	}

	if err := t.EnsureConnected(); err != nil {
		return nil, fmt.Errorf("closure: %w", err)
	}
	tree := t.Treeify()
	if err := tree.EnsureTree(); err != nil {
		return nil, fmt.Errorf("closure: %w", err)
	}

	res := &Result{Axioms: axiom.NewSet(), Tree: tree}
	for _, g := range tree.SiblingMap() {
		switch o.Type {
		case axiom.TypeDisjointClasses:
			res.Axioms.Add(axiom.NewDisjointClasses(g.Children...))
		case axiom.TypeDisjointUnion:
			if atom, ok := g.Parent.(expr.Atom); ok {
				res.Axioms.Add(axiom.NewDisjointUnion(atom, g.Children...))
				continue
			}
			res.Axioms.Add(axiom.NewDisjointClasses(g.Children...))
			res.Degraded = append(res.Degraded, g.Parent)
		case axiom.TypeEquivalentClasses:
			// no closure axiom is defined for this type
		}
	}
	if o.TreeAxioms {
		for _, a := range tree.SubClassAxioms() {
			res.Axioms.Add(a)
		}
	}

	return res, nil
}

// GenerateClosureAxioms is Generate with only the axiom type set, returning
// just the axioms.
func GenerateClosureAxioms(t *taxonomy.Taxonomy, typ axiom.Type) (*axiom.Set, error) {
	res, err := Generate(t, WithType(typ))
	if err != nil {
		return nil, err
	}

	return res.Axioms, nil
}

var typeSet = func() map[axiom.Type]struct{} {
	m := make(map[axiom.Type]struct{})
	for _, t := range axiom.Types() {
		m[t] = struct{}{}
	}
	return m
}()
