package owl

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/katalvlaran/closeworld/axiom"
)

// Document is a functional-syntax ontology holding a list of axioms.
type Document struct {
	// IRI names the ontology. Empty yields an anonymous Ontology( ... ).
	IRI string

	// Axioms are written in the given order.
	Axioms []axiom.Axiom

	// Declare, if true, precedes the axioms with a class declaration for
	// every named class they mention.
	Declare bool
}

// Write renders d to w:
//
//	Prefix(:=<base>)
//	Prefix(owl:=<http://www.w3.org/2002/07/owl#>)
//	...
//
//	Ontology(<iri>
//	DisjointClasses(:b :c)
//	)
//
// Prefix names that are not valid in functional syntax yield ErrInvalidPrefix.
func (t *Translator) Write(w io.Writer, d Document) error {
	names := make([]string, 0, len(t.prefixes))
	for name := range t.prefixes {
		if !validPrefixName(name) {
			return fmt.Errorf("%w: %q", ErrInvalidPrefix, name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	bw := bufio.NewWriter(w)
	if t.base != "" {
		fmt.Fprintf(bw, "Prefix(:=<%s>)\n", t.base)
	}
	for _, name := range names {
		fmt.Fprintf(bw, "Prefix(%s:=<%s>)\n", name, t.prefixes[name])
	}
	bw.WriteString("\nOntology(")
	if d.IRI != "" {
		bw.WriteString("<" + d.IRI + ">")
	}
	bw.WriteByte('\n')
	if d.Declare {
		for _, decl := range t.Declarations(d.Axioms) {
			bw.WriteString(decl + "\n")
		}
	}
	for _, a := range d.Axioms {
		bw.WriteString(t.Axiom(a) + "\n")
	}
	bw.WriteString(")\n")

	return bw.Flush()
}

// Document renders d to a string. See Write.
func (t *Translator) Document(d Document) (string, error) {
	var sb strings.Builder
	if err := t.Write(&sb, d); err != nil {
		return "", err
	}

	return sb.String(), nil
}
