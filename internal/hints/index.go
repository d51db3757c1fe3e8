package hints

import (
	"slices"
	"strconv"
)

// rule is a pending hint: the pointer segments still to be matched.
// remaining is never empty.
type rule struct {
	remaining []string
	handle    Handle
}

// Index narrows registered hints as a shape tree is walked.
//
// Every Step method returns a new Index and leaves the receiver untouched, so
// one Index can be stepped into any number of sibling subtrees. Hints whose
// pointer is fully consumed by a step become applicable in the returned Index
// and are dropped from its pending rules.
type Index struct {
	rules      []rule
	applicable []Handle
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	return &Index{}
}

// Add registers handle under pointer. The empty pointer makes the hint
// applicable at the current node.
// Registration must finish before the Index is stepped.
func (x *Index) Add(pointer string, handle Handle) error {
	segments, err := ParsePointer(pointer)
	if err != nil {
		return err
	}

	if len(segments) == 0 {
		x.applicable = append(x.applicable, handle)

		return nil
	}

	x.rules = append(x.rules, rule{remaining: segments, handle: handle})

	return nil
}

// MustAdd is like Add but panics on a malformed pointer.
func (x *Index) MustAdd(pointer string, handle Handle) {
	if err := x.Add(pointer, handle); err != nil {
		panic(err)
	}
}

// StepField descends into the object member name.
//
//	([/a/b, /a/c, /d/e], "a") -> [/b, /c]
func (x *Index) StepField(name string) *Index {
	return x.step(func(first string) bool { return first == name })
}

// StepIndex descends into the array position i. Only the literal numeral
// matches; the wildcard does not.
//
//	([/2/b, /a/c, /-/e, /3/d], 3) -> [/d]
func (x *Index) StepIndex(i int) *Index {
	want := strconv.Itoa(i)

	return x.step(func(first string) bool { return first == want })
}

// StepArray descends into an array element of unknown position.
//
//	[/1/b, /a/c, /-/e] -> [/b, /e]
func (x *Index) StepArray() *Index {
	return x.step(isIndex)
}

// StepAny descends into a child that has no identity in path space.
//
//	[/1/b, /a/c, /-/e] -> [/b, /c, /e]
func (x *Index) StepAny() *Index {
	return x.step(func(string) bool { return true })
}

func (x *Index) step(match func(first string) bool) *Index {
	next := &Index{}

	for _, r := range x.rules {
		if !match(r.remaining[0]) {
			continue
		}

		rest := r.remaining[1:]
		if len(rest) == 0 {
			next.applicable = append(next.applicable, r.handle)
		} else {
			next.rules = append(next.rules, rule{remaining: rest, handle: r.handle})
		}
	}

	return next
}

// Applicable returns the hints that apply at the current node in
// registration order, so the first one takes precedence.
func (x *Index) Applicable() []Handle {
	handles := append([]Handle(nil), x.applicable...)
	slices.Sort(handles)

	return handles
}

// Pending returns a copy that keeps the rules for deeper nodes but drops the
// hints applicable at the current node.
func (x *Index) Pending() *Index {
	return &Index{rules: x.rules}
}

// Len returns the number of hints still waiting for deeper nodes.
func (x *Index) Len() int {
	return len(x.rules)
}

// Empty reports whether nothing applies here or below.
func (x *Index) Empty() bool {
	return len(x.rules) == 0 && len(x.applicable) == 0
}
