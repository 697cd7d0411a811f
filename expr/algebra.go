package expr

// Equal reports structural equality. Two nil expressions are equal.
func Equal(a, b Expression) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Key() == b.Key()
}

// mustOperand panics with ErrNilOperand for a nil expression.
func mustOperand(es ...Expression) {
	for _, e := range es {
		if e == nil {
			panic(ErrNilOperand)
		}
	}
}

// Complement returns e′.
//
//	U′ = ∅, ∅′ = U, (x′)′ = x
func Complement(e Expression) Expression {
	mustOperand(e)
	switch v := e.(type) {
	case Universal:
		return Empty{}
	case Empty:
		return Universal{}
	case ComplementOf:
		return v.operand
	default:
		return newComplement(e)
	}
}

// Difference returns a \ b.
//
//	a\∅ = a, a\U = ∅, a\a = ∅, ∅\a = ∅, (x\y)\b = x\(y∪b)
func Difference(a, b Expression) Expression {
	mustOperand(a, b)
	switch {
	case b.Kind() == KindEmpty:
		return a
	case b.Kind() == KindUniversal:
		return Empty{}
	case Equal(a, b):
		return Empty{}
	case a.Kind() == KindEmpty:
		return Empty{}
	}
	if d, ok := a.(DifferenceOf); ok {
		return Difference(d.minuend, Union(d.subtrahend, b))
	}

	return newDifference(a, b)
}

// Intersection returns a ∩ b.
//
//	a∩a = a, U∩b = b, ∅∩b = ∅, nested intersections are flattened,
//	and a singleton operand set collapses to its member.
func Intersection(a, b Expression) Expression {
	mustOperand(a, b)
	switch {
	case Equal(a, b):
		return a
	case a.Kind() == KindEmpty || b.Kind() == KindEmpty:
		return Empty{}
	case a.Kind() == KindUniversal:
		return b
	case b.Kind() == KindUniversal:
		return a
	}

	ops := mergeOperands(KindIntersection, a, b)
	if len(ops) == 1 {
		return ops[0]
	}

	return IntersectionOf{operands: ops, key: naryKey("i", ops)}
}

// Union returns a ∪ b.
//
//	a∪a = a, U∪b = U, ∅∪b = b, nested unions are flattened,
//	and a singleton operand set collapses to its member.
func Union(a, b Expression) Expression {
	mustOperand(a, b)
	switch {
	case Equal(a, b):
		return a
	case a.Kind() == KindUniversal || b.Kind() == KindUniversal:
		return Universal{}
	case a.Kind() == KindEmpty:
		return b
	case b.Kind() == KindEmpty:
		return a
	}

	ops := mergeOperands(KindUnion, a, b)
	if len(ops) == 1 {
		return ops[0]
	}

	return UnionOf{operands: ops, key: naryKey("u", ops)}
}

// mergeOperands flattens a and b into one deduplicated operand set of the
// given n-ary kind, sorted by key.
func mergeOperands(kind Kind, a, b Expression) []Expression {
	var ops []Expression
	for _, e := range []Expression{a, b} {
		if e.Kind() == kind {
			ops = append(ops, Operands(e)...)
			continue
		}
		ops = append(ops, e)
	}

	return Distinct(ops...)
}
