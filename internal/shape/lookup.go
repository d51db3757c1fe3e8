package shape

import (
	"fmt"
	"strconv"
)

// Lookup resolves already-parsed pointer segments against s.
// Optional layers are transparent and stripped from the result; vec elements
// accept any index or "-", map values accept any key.
func Lookup(s Shape, segments []string) (Shape, error) {
	if len(segments) == 0 {
		return s, nil
	}

	current := s

	for i, seg := range segments {
		for current.Kind == KindOptional {
			current = current.Inner()
		}

		switch current.Kind {
		case KindStruct:
			next, ok := current.Field(seg)
			if !ok {
				return Shape{}, fmt.Errorf("segment %d: no field %q", i, seg)
			}

			current = next

		case KindTuple:
			n, err := strconv.Atoi(seg)
			if err != nil || n < 0 || n >= current.Arity() {
				return Shape{}, fmt.Errorf("segment %d: %q is not a valid tuple index", i, seg)
			}

			current = current.Elems[n]

		case KindVec, KindMap:
			current = current.Inner()

		default:
			return Shape{}, fmt.Errorf("segment %d: cannot descend into %s", i, current.Kind.Keyword())
		}
	}

	for current.Kind == KindOptional {
		current = current.Inner()
	}

	return current, nil
}
