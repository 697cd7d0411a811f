package bundle

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

const owlNamespace = "http://www.w3.org/2002/07/owl#"

var (
	xpOntology   = xpath.MustCompile(`/*[local-name()='Ontology']`)
	xpPrefix     = xpath.MustCompile(`*[local-name()='Prefix']`)
	xpSubClassOf = xpath.MustCompile(`//*[local-name()='SubClassOf']`)
	xpDeclared   = xpath.MustCompile(`//*[local-name()='Declaration']/*[local-name()='Class']`)
)

// parseOWLXML reads an OWL/XML ontology. Every SubClassOf whose two operands
// are named classes becomes an edge; anonymous class expressions are
// skipped. Class IRIs under the ontology's default prefix are shortened to
// their local name.
//
// Axioms naming owl:Thing record the other class as a vertex only, and
// owl:Nothing is ignored, so neither becomes a vertex and the file's own
// roots stay roots.
func parseOWLXML(data []byte) (*Document, error) {
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("bundle: parse owl/xml: %w", err)
	}
	onto := xmlquery.QuerySelector(root, xpOntology)
	if onto == nil {
		return nil, fmt.Errorf("%w: no Ontology element", ErrUnsupportedFormat)
	}

	r := resolver{prefixes: map[string]string{"owl": owlNamespace}}
	for _, p := range xmlquery.QuerySelectorAll(onto, xpPrefix) {
		r.prefixes[p.SelectAttr("name")] = p.SelectAttr("IRI")
	}
	r.base = r.prefixes[""]

	doc := &Document{IRI: onto.SelectAttr("ontologyIRI"), Subclasses: make(map[string][]string)}
	seen := make(map[string]struct{})
	vertex := func(name string) {
		if _, dup := seen[name]; !dup {
			seen[name] = struct{}{}
			doc.Vertices = append(doc.Vertices, name)
		}
	}

	for _, sc := range xmlquery.QuerySelectorAll(root, xpSubClassOf) {
		ops := elementChildren(sc)
		if len(ops) != 2 || !isClass(ops[0]) || !isClass(ops[1]) {
			continue
		}
		sub, sup := r.name(ops[0]), r.name(ops[1])
		switch {
		case sub == "" || sup == "":
			continue
		case sup == r.nothing() || sub == r.nothing():
		case sup == r.thing():
			vertex(sub)
		case sub == r.thing():
			vertex(sup)
		default:
			doc.Subclasses[sup] = append(doc.Subclasses[sup], sub)
		}
	}
	for _, c := range xmlquery.QuerySelectorAll(root, xpDeclared) {
		if name := r.name(c); name != "" && name != r.thing() && name != r.nothing() {
			vertex(name)
		}
	}

	return doc, nil
}

// resolver shortens IRIs against the ontology prefixes.
type resolver struct {
	base     string
	prefixes map[string]string
}

func (r resolver) thing() string   { return r.shorten(owlNamespace + "Thing") }
func (r resolver) nothing() string { return r.shorten(owlNamespace + "Nothing") }

// name returns the class name carried by an IRI or abbreviatedIRI attribute.
func (r resolver) name(n *xmlquery.Node) string {
	if abbr := n.SelectAttr("abbreviatedIRI"); abbr != "" {
		prefix, local, _ := strings.Cut(abbr, ":")
		if ns, ok := r.prefixes[prefix]; ok {
			return r.shorten(ns + local)
		}
		return abbr
	}
	iri := n.SelectAttr("IRI")
	if strings.HasPrefix(iri, "#") && r.base != "" {
		iri = strings.TrimSuffix(r.base, "#") + iri
	}

	return r.shorten(iri)
}

// shorten maps base+local to local and owl:* to its prefixed form.
func (r resolver) shorten(iri string) string {
	if r.base != "" && strings.HasPrefix(iri, r.base) && len(iri) > len(r.base) {
		return strings.TrimPrefix(iri, r.base)
	}
	if strings.HasPrefix(iri, owlNamespace) {
		return "owl:" + strings.TrimPrefix(iri, owlNamespace)
	}

	return strings.TrimPrefix(iri, "#")
}

func elementChildren(n *xmlquery.Node) []*xmlquery.Node {
	var out []*xmlquery.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			out = append(out, c)
		}
	}

	return out
}

func isClass(n *xmlquery.Node) bool { return n.Data == "Class" }
