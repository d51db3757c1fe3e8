package gen

import (
	"strings"

	"go.uber.org/zap"

	"json-typegen/internal/diagnostic"
	"json-typegen/internal/hints"
	"json-typegen/options"
)

const indentUnit = "    "

// Context is the mutable state of one generation call. It is never shared
// between calls.
type Context struct {
	Options options.Options

	indentLevel int
	hints       *hints.Set
	logger      *zap.Logger
	diagnostics *diagnostic.Diagnostics

	// pointer is the JSON pointer of the node being rendered.
	pointer string

	// declarations holds named declarations split out by UseName hints,
	// in discovery order.
	declarations []declaration
}

type declaration struct {
	name string
	code string
}

func newContext(opts options.Options, set *hints.Set, logger *zap.Logger) *Context {
	if set == nil {
		set = hints.NewSet()
	}

	return &Context{
		Options:     opts,
		indentLevel: 1,
		hints:       set,
		logger:      logger,
		diagnostics: &diagnostic.Diagnostics{},
	}
}

// indent returns the whitespace for the current depth.
func (c *Context) indent() string {
	return strings.Repeat(indentUnit, c.indentLevel)
}

// enter moves the current pointer one segment down and returns a function
// restoring it.
func (c *Context) enter(segment string) func() {
	prev := c.pointer
	c.pointer = hints.AppendSegment(prev, segment)

	return func() { c.pointer = prev }
}

func (c *Context) declared(name string) bool {
	for _, d := range c.declarations {
		if d.name == name {
			return true
		}
	}

	return false
}
