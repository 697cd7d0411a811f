// Package bundle loads taxonomies from files.
//
// A bundle is one or more documents selected by glob patterns
// (doublestar syntax, "**" matches any depth) and merged into a single
// Document:
//
//	name: vehicles
//	iri: http://example.com/vehicles
//	edges:
//	  - [Vehicle, Car]
//	subclasses:
//	  Vehicle: [Truck, Bus]
//
// YAML (.yaml, .yml), JSON (.json) and OWL/XML (.owl, .owx, .xml) are
// recognised by extension. From OWL/XML only SubClassOf axioms between named
// classes are read, plus class declarations.
//
// Fingerprint hashes the resolved files so a watcher can tell real changes
// from editor noise.
package bundle
