package axiom

import "sort"

// Set is a collection of structurally distinct axioms.
// The zero value is not usable; call NewSet.
type Set struct {
	byKey map[string]Axiom
}

// NewSet returns a set holding the distinct members of as.
func NewSet(as ...Axiom) *Set {
	s := &Set{byKey: make(map[string]Axiom, len(as))}
	for _, a := range as {
		s.Add(a)
	}

	return s
}

// Add inserts a and reports whether it was new.
func (s *Set) Add(a Axiom) bool {
	k := a.Key()
	if _, dup := s.byKey[k]; dup {
		return false
	}
	s.byKey[k] = a

	return true
}

// Contains reports whether a structurally equal axiom is present.
func (s *Set) Contains(a Axiom) bool {
	_, ok := s.byKey[a.Key()]
	return ok
}

// Len returns the number of axioms.
func (s *Set) Len() int { return len(s.byKey) }

// Axioms returns the members ordered by key.
func (s *Set) Axioms() []Axiom {
	out := make([]Axiom, 0, len(s.byKey))
	for _, a := range s.byKey {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })

	return out
}

// CountByKind tallies members per variant.
func (s *Set) CountByKind() map[Kind]int {
	out := make(map[Kind]int)
	for _, a := range s.byKey {
		out[a.Kind()]++
	}

	return out
}

// Equal reports whether s and o hold the same axioms.
func (s *Set) Equal(o *Set) bool {
	if s.Len() != o.Len() {
		return false
	}
	for k := range s.byKey {
		if _, ok := o.byKey[k]; !ok {
			return false
		}
	}

	return true
}
