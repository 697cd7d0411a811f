package bundle

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/closeworld/expr"
	"github.com/katalvlaran/closeworld/taxonomy"
)

// Sentinel errors.
var (
	// ErrUnsupportedFormat indicates a file extension or Format with no reader.
	ErrUnsupportedFormat = errors.New("bundle: unsupported format")

	// ErrMalformedEdge indicates an edge that is not a [super, sub] pair of
	// non-empty class names.
	ErrMalformedEdge = errors.New("bundle: malformed edge")

	// ErrNoMatches indicates a glob pattern that matched no file.
	ErrNoMatches = errors.New("bundle: pattern matched no files")
)

// Format identifies a document encoding.
type Format int

// Supported formats.
const (
	FormatYAML Format = iota
	FormatJSON
	FormatOWLXML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatOWLXML:
		return "owl-xml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// DetectFormat picks a Format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".owl", ".owx", ".xml":
		return FormatOWLXML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Document is a taxonomy as written by users.
//
// Edges and Subclasses both state subsumptions; a document may use either or
// both. Vertices lists classes that must appear even without edges.
type Document struct {
	Name       string              `yaml:"name,omitempty" json:"name,omitempty"`
	IRI        string              `yaml:"iri,omitempty" json:"iri,omitempty"`
	Vertices   []string            `yaml:"vertices,omitempty" json:"vertices,omitempty"`
	Edges      [][]string          `yaml:"edges,omitempty" json:"edges,omitempty"`
	Subclasses map[string][]string `yaml:"subclasses,omitempty" json:"subclasses,omitempty"`
}

// Parse decodes a document from r.
func Parse(r io.Reader, f Format) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("bundle: read: %w", err)
	}

	doc := &Document{}
	switch f {
	case FormatYAML:
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("bundle: parse yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(doc); err != nil {
			return nil, fmt.Errorf("bundle: parse json: %w", err)
		}
	case FormatOWLXML:
		return parseOWLXML(data)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}

	return doc, nil
}

// LoadFile reads and parses the document at path, choosing the format by
// extension. An unnamed document is named after the file.
func LoadFile(path string) (*Document, error) {
	f, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bundle: %w", err)
	}
	defer fh.Close()

	doc, err := Parse(fh, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return doc, nil
}

func (d *Document) validate() error {
	for i, e := range d.Edges {
		if len(e) != 2 || strings.TrimSpace(e[0]) == "" || strings.TrimSpace(e[1]) == "" {
			return fmt.Errorf("%w: edge %d: %v", ErrMalformedEdge, i, e)
		}
	}
	for sup, subs := range d.Subclasses {
		if strings.TrimSpace(sup) == "" {
			return fmt.Errorf("%w: empty superclass", ErrMalformedEdge)
		}
		for _, sub := range subs {
			if strings.TrimSpace(sub) == "" {
				return fmt.Errorf("%w: empty subclass of %q", ErrMalformedEdge, sup)
			}
		}
	}

	return nil
}

// Pairs returns every (super, sub) pair of d, deduplicated and sorted.
func (d *Document) Pairs() [][2]string {
	seen := make(map[[2]string]struct{})
	for _, e := range d.Edges {
		if len(e) == 2 {
			seen[[2]string{e[0], e[1]}] = struct{}{}
		}
	}
	for sup, subs := range d.Subclasses {
		for _, sub := range subs {
			seen[[2]string{sup, sub}] = struct{}{}
		}
	}

	out := make([][2]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out
}

// Taxonomy builds the taxonomy over the atoms named by d.
func (d *Document) Taxonomy() (*taxonomy.Taxonomy, error) {
	vs := make([]expr.Expression, 0, len(d.Vertices))
	for _, name := range d.Vertices {
		a, err := expr.ParseAtom(name)
		if err != nil {
			return nil, fmt.Errorf("bundle: vertex %q: %w", name, err)
		}
		vs = append(vs, a)
	}

	pairs := d.Pairs()
	edges := make([]taxonomy.Edge, 0, len(pairs))
	for _, p := range pairs {
		sup, err := expr.ParseAtom(p[0])
		if err != nil {
			return nil, fmt.Errorf("bundle: %w: %v", ErrMalformedEdge, p)
		}
		sub, err := expr.ParseAtom(p[1])
		if err != nil {
			return nil, fmt.Errorf("bundle: %w: %v", ErrMalformedEdge, p)
		}
		edges = append(edges, taxonomy.Edge{Super: sup, Sub: sub})
	}

	return taxonomy.New(vs, edges)
}

// Merge combines documents into one bundle. Name and IRI come from the first
// document that sets them.
func Merge(docs ...*Document) *Document {
	out := &Document{Subclasses: make(map[string][]string)}
	seenV := make(map[string]struct{})
	for _, d := range docs {
		if out.Name == "" {
			out.Name = d.Name
		}
		if out.IRI == "" {
			out.IRI = d.IRI
		}
		for _, v := range d.Vertices {
			if _, dup := seenV[v]; !dup {
				seenV[v] = struct{}{}
				out.Vertices = append(out.Vertices, v)
			}
		}
		for _, p := range d.Pairs() {
			out.Subclasses[p[0]] = append(out.Subclasses[p[0]], p[1])
		}
	}

	return out
}
