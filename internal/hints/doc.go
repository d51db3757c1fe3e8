// Package hints implements path-scoped override annotations for type generation.
//
// A hint is registered under a JSON pointer (RFC 6901) relative to the root of
// the shape being generated. The generator walks the shape depth-first and
// narrows an Index at every step:
//
//   - StepField for object members
//   - StepIndex for tuple positions (literal numerals only)
//   - StepArray for array elements ("-" or any numeral)
//   - StepAny for map values
//
// When a pointer is fully consumed the hint becomes applicable at that node.
//
// # Precedence
//
// Several hints may become applicable at the same node. The hint registered
// first wins; the others stay unused and are reported as warnings.
//
// # Ownership
//
// Hints live in a Set. Indexes hold Handles into the Set, so the "used" flag is
// written in one place no matter how many pointer entries refer to a hint.
package hints
