package hints

import (
	"fmt"

	"github.com/go-openapi/jsonpointer"
)

// Wildcard is the array segment that matches any position.
const Wildcard = "-"

// ParsePointer splits a root-anchored JSON pointer into its decoded segments.
// The empty pointer refers to the root and has no segments; any other pointer
// must start with "/".
func ParsePointer(pointer string) ([]string, error) {
	p, err := jsonpointer.New(pointer)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON pointer %q: a pointer not referring to the root has to start with '/': %w",
			pointer, err)
	}

	return p.DecodedTokens(), nil
}

// AppendSegment extends a pointer by one escaped segment.
func AppendSegment(pointer, segment string) string {
	return pointer + "/" + jsonpointer.Escape(segment)
}

// isIndex reports whether seg addresses an array position: the wildcard or a
// base-10 non-negative integer without superfluous leading zeros.
func isIndex(seg string) bool {
	if seg == Wildcard {
		return true
	}

	if seg == "" || (len(seg) > 1 && seg[0] == '0') {
		return false
	}

	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return false
		}
	}

	return true
}
