package taxonomy

import "github.com/katalvlaran/closeworld/axiom"

// SubClassAxioms returns one SubClassOf axiom per edge, in edge order.
func (t *Taxonomy) SubClassAxioms() []axiom.Axiom {
	edges := t.Edges()
	out := make([]axiom.Axiom, len(edges))
	for i, e := range edges {
		out[i] = axiom.NewSubClassOf(e.Sub, e.Super)
	}

	return out
}
