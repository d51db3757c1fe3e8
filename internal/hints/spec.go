package hints

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// ErrAmbiguousSpec is returned when a Spec sets more or fewer than one override.
var ErrAmbiguousSpec = errors.New("hint must set exactly one of use_type, use_map, use_name")

// Spec is the configuration form of a hint.
//
//	hints:
//	  - pointer: /created_at
//	    use_type: Date
//	  - pointer: /labels
//	    use_map: Record
//	  - pointer: /items/-
//	    use_name: Item
type Spec struct {
	Pointer string  `yaml:"pointer"`
	UseType *string `yaml:"use_type,omitempty"`
	UseMap  *string `yaml:"use_map,omitempty"`
	UseName *string `yaml:"use_name,omitempty"`
}

// Hint converts the spec into a Hint.
func (s Spec) Hint() (Hint, error) {
	var (
		hint Hint
		set  int
	)

	if s.UseType != nil {
		hint = Hint{Type: UseType, Name: *s.UseType}
		set++
	}

	if s.UseMap != nil {
		hint = Hint{Type: UseMap, Name: *s.UseMap}
		set++
	}

	if s.UseName != nil {
		hint = Hint{Type: UseName, Name: *s.UseName}
		set++
	}

	if set != 1 {
		return Hint{}, ErrAmbiguousSpec
	}

	if hint.Type != UseMap && hint.Name == "" {
		return Hint{}, fmt.Errorf("%s requires a type name", hint.Type)
	}

	hint.Pointer = s.Pointer

	return hint, nil
}

// SpecError reports an invalid hint declaration.
type SpecError struct {
	// Index is the position of the declaration in the hint list.
	Index   int
	Pointer string
	Err     error
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("hint %d at %q: %v", e.Index, e.Pointer, e.Err)
}

func (e *SpecError) Unwrap() error {
	return e.Err
}

// Register builds a Set and a root Index from specs, in order.
// Every invalid spec is reported as a *SpecError, combined with multierr.
func Register(specs []Spec) (*Set, *Index, error) {
	set := NewSet()
	idx := NewIndex()

	var errs error

	for i, spec := range specs {
		hint, err := spec.Hint()
		if err == nil {
			err = idx.Add(spec.Pointer, set.Add(hint))
		}

		if err != nil {
			errs = multierr.Append(errs, &SpecError{Index: i, Pointer: spec.Pointer, Err: err})
		}
	}

	if errs != nil {
		return nil, nil, errs
	}

	return set, idx, nil
}
