package shape

// Join returns the least shape that describes every value described by a or b.
func Join(a, b Shape) Shape {
	if Equal(a, b) {
		return a
	}

	switch {
	case b.Kind == KindBottom:
		return a
	case a.Kind == KindBottom:
		return b
	case isNumber(a.Kind) && isNumber(b.Kind):
		return Floating()
	case b.Kind == KindNull:
		return a.IntoOptional()
	case a.Kind == KindNull:
		return b.IntoOptional()
	case b.Kind == KindOptional:
		return Join(a, b.Inner()).IntoOptional()
	case a.Kind == KindOptional:
		return Join(a.Inner(), b).IntoOptional()
	}

	switch {
	case a.Kind == KindTuple && b.Kind == KindTuple:
		if a.Arity() == b.Arity() {
			elems := make([]Shape, a.Arity())
			for i := range a.Elems {
				elems[i] = Join(a.Elems[i], b.Elems[i])
			}

			return Tuple(elems...)
		}

		return Vec(Join(Fold(a.Elems), Fold(b.Elems)))

	case a.Kind == KindTuple && b.Kind == KindVec:
		return Vec(Join(b.Inner(), Fold(a.Elems)))

	case a.Kind == KindVec && b.Kind == KindTuple:
		return Vec(Join(a.Inner(), Fold(b.Elems)))

	case a.Kind == KindVec && b.Kind == KindVec:
		return Vec(Join(a.Inner(), b.Inner()))

	case a.Kind == KindMap && b.Kind == KindMap:
		return Map(Join(a.Inner(), b.Inner()))

	case a.Kind == KindStruct && b.Kind == KindStruct:
		return Struct(joinFields(a.Fields, b.Fields)...)

	case a.Kind == KindOpaque:
		return a

	case b.Kind == KindOpaque:
		return b
	}

	return Any()
}

// Fold joins all shapes, starting from Bottom.
func Fold(shapes []Shape) Shape {
	acc := Bottom()
	for _, s := range shapes {
		acc = Join(acc, s)
	}

	return acc
}

// joinFields merges two field lists. Fields missing on either side become
// optional; the left order comes first, followed by fields only on the right.
func joinFields(left, right []Field) []Field {
	result := make([]Field, 0, len(left)+len(right))

	for _, f := range left {
		other, ok := findField(right, f.Name)
		if ok {
			result = append(result, Field{Name: f.Name, Shape: Join(f.Shape, other)})
		} else {
			result = append(result, Field{Name: f.Name, Shape: f.Shape.IntoOptional()})
		}
	}

	for _, f := range right {
		if _, ok := findField(left, f.Name); !ok {
			result = append(result, Field{Name: f.Name, Shape: f.Shape.IntoOptional()})
		}
	}

	return result
}

func isNumber(k Kind) bool {
	return k == KindInteger || k == KindFloating
}
