package hints

import "json-typegen/internal/common"

// HintType selects how a hint overrides the inferred structure.
type HintType int

const (
	// UseType replaces the node with the named type.
	UseType HintType = iota
	// UseMap renders an object node as a string-keyed map.
	UseMap
	// UseName emits the node as its own named declaration.
	UseName
)

// String returns a human-readable hint type name.
func (t HintType) String() string {
	switch t {
	case UseType:
		return "use_type"
	case UseMap:
		return "use_map"
	case UseName:
		return "use_name"
	default:
		return common.UnknownStr
	}
}

// Hint is a single override annotation.
type Hint struct {
	Type HintType
	Name string
	// Pointer is the path the hint was registered under, kept for diagnostics.
	Pointer string
	// Used is set once the generator applies the hint.
	Used bool
}

// Handle refers to a hint owned by a Set.
type Handle int

// Set owns every registered hint. Path entries refer to hints by Handle.
type Set struct {
	hints []Hint
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{}
}

// Add stores h and returns its handle. Handles grow in registration order.
func (s *Set) Add(h Hint) Handle {
	s.hints = append(s.hints, h)

	return Handle(len(s.hints) - 1)
}

// Get returns the hint behind handle.
func (s *Set) Get(h Handle) Hint {
	return s.hints[h]
}

// MarkUsed records that the hint behind handle was applied.
func (s *Set) MarkUsed(h Handle) {
	s.hints[h].Used = true
}

// Len returns the number of registered hints.
func (s *Set) Len() int {
	return len(s.hints)
}

// Unused returns every hint that was never applied, in registration order.
func (s *Set) Unused() []Hint {
	var unused []Hint

	for _, h := range s.hints {
		if !h.Used {
			unused = append(unused, h)
		}
	}

	return unused
}
