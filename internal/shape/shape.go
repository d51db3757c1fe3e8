package shape

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind identifies the variant of a Shape.
type Kind int

const (
	KindBottom Kind = iota // uninhabited, the identity of Join
	KindAny                // unconstrained
	KindNull               // only null was observed
	KindBool
	KindString
	KindInteger
	KindFloating
	KindTuple
	KindVec
	KindStruct
	KindMap
	KindOpaque
	KindOptional
)

// Field is a single named member of a struct shape.
type Field struct {
	Name  string
	Shape Shape
}

// Shape is an inferred structural type summarizing a set of JSON values.
// Shapes are immutable once built; constructors copy their inputs.
type Shape struct {
	Kind Kind

	// Elems holds tuple elements.
	Elems []Shape
	// Elem is the element of Vec, the value of Map and the inner shape of Optional.
	Elem *Shape
	// Fields holds struct members in insertion order.
	Fields []Field
	// Name is the literal type text of Opaque.
	Name string
}

func Bottom() Shape   { return Shape{Kind: KindBottom} }
func Any() Shape      { return Shape{Kind: KindAny} }
func Null() Shape     { return Shape{Kind: KindNull} }
func Bool() Shape     { return Shape{Kind: KindBool} }
func StringT() Shape  { return Shape{Kind: KindString} }
func Integer() Shape  { return Shape{Kind: KindInteger} }
func Floating() Shape { return Shape{Kind: KindFloating} }

// Tuple returns a fixed-arity shape; the arity is the number of elements.
func Tuple(elems ...Shape) Shape {
	return Shape{Kind: KindTuple, Elems: append([]Shape{}, elems...)}
}

// Vec returns a homogeneous sequence of elem.
func Vec(elem Shape) Shape {
	return Shape{Kind: KindVec, Elem: &elem}
}

// Struct returns an object shape with the given fields, order preserved.
func Struct(fields ...Field) Shape {
	return Shape{Kind: KindStruct, Fields: append([]Field{}, fields...)}
}

// Map returns a string-keyed map of value.
func Map(value Shape) Shape {
	return Shape{Kind: KindMap, Elem: &value}
}

// Opaque returns a shape rendered as the literal type text name.
func Opaque(name string) Shape {
	return Shape{Kind: KindOpaque, Name: name}
}

// Optional returns a shape that may be missing or null.
func Optional(inner Shape) Shape {
	return Shape{Kind: KindOptional, Elem: &inner}
}

// Arity returns the number of tuple elements.
func (s Shape) Arity() int {
	return len(s.Elems)
}

// Inner returns the element shape of Vec, Map and Optional, or Bottom for other kinds.
func (s Shape) Inner() Shape {
	if s.Elem == nil {
		return Bottom()
	}

	return *s.Elem
}

// IsUnconstrained reports whether s carries no static information.
func (s Shape) IsUnconstrained() bool {
	switch s.Kind {
	case KindNull, KindAny, KindBottom:
		return true
	default:
		return false
	}
}

// IntoOptional wraps s in Optional unless it already admits absence.
func (s Shape) IntoOptional() Shape {
	switch s.Kind {
	case KindNull, KindAny, KindBottom, KindOptional:
		return s
	default:
		return Optional(s)
	}
}

// Collapse unwraps exactly one Optional layer.
func Collapse(s Shape) (bool, Shape) {
	if s.Kind == KindOptional {
		return true, s.Inner()
	}

	return false, s
}

// Equal reports whether a and b are structurally identical.
// Struct field order is significant.
func Equal(a, b Shape) bool {
	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case KindTuple:
		if len(a.Elems) != len(b.Elems) {
			return false
		}

		for i := range a.Elems {
			if !Equal(a.Elems[i], b.Elems[i]) {
				return false
			}
		}

		return true

	case KindVec, KindMap, KindOptional:
		return Equal(a.Inner(), b.Inner())

	case KindStruct:
		if len(a.Fields) != len(b.Fields) {
			return false
		}

		for i := range a.Fields {
			if a.Fields[i].Name != b.Fields[i].Name || !Equal(a.Fields[i].Shape, b.Fields[i].Shape) {
				return false
			}
		}

		return true

	case KindOpaque:
		return a.Name == b.Name

	default:
		return true
	}
}

// Field returns the member called name and whether it exists.
func (s Shape) Field(name string) (Shape, bool) {
	return findField(s.Fields, name)
}

func findField(fields []Field, name string) (Shape, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f.Shape, true
		}
	}

	return Shape{}, false
}
