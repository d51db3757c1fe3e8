package gen

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"json-typegen/internal/diagnostic"
	"json-typegen/internal/hints"
	"json-typegen/internal/shape"
	"json-typegen/options"
)

// Output is the result of generating one named type.
type Output struct {
	// Ident is the identifier of the generated type.
	Ident string
	// Code holds the declarations, each terminated by a blank line.
	// Empty when the backend needs no declaration for the shape.
	Code string
}

// HasCode reports whether any declaration text was produced.
func (o Output) HasCode() bool {
	return o.Code != ""
}

// Backend renders a shape as declarations in one target language.
type Backend interface {
	// Mode returns the output mode this backend implements.
	Mode() options.OutputMode
	// Declare renders s as the declaration name, consulting idx at every node.
	Declare(ctx *Context, name string, s shape.Shape, idx *hints.Index) Output
}

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Logger receives debug output about applied hints. Nil disables logging.
	Logger *zap.Logger
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{Logger: zap.NewNop()}
}

// Generator turns shapes into type declarations.
type Generator struct {
	config   GeneratorConfig
	backends map[options.OutputMode]Backend
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}

	g := &Generator{
		config:   config,
		backends: make(map[options.OutputMode]Backend),
	}
	g.register(typeScriptTypeAlias{})

	return g
}

func (g *Generator) register(b Backend) {
	g.backends[b.Mode()] = b
}

// Generate renders s as a declaration called name.
//
// Hints in idx are resolved against the generated shape, which is the sub-shape
// selected by opts.Unwrap when set. set must own every handle in idx; a nil set
// and idx mean no hints. Hints that never applied are reported as warnings.
func (g *Generator) Generate(
	name string,
	s shape.Shape,
	opts options.Options,
	set *hints.Set,
	idx *hints.Index,
) (Output, diagnostic.Diagnostics, error) {
	if opts.OutputMode == "" {
		opts.OutputMode = options.OutputTypeScriptTypeAlias
	}

	backend, ok := g.backends[opts.OutputMode]
	if !ok {
		return Output{}, diagnostic.Diagnostics{}, fmt.Errorf("unsupported output mode %q", opts.OutputMode)
	}

	if opts.Unwrap != "" {
		segments, err := hints.ParsePointer(opts.Unwrap)
		if err != nil {
			return Output{}, diagnostic.Diagnostics{}, fmt.Errorf("unwrap: %w", err)
		}

		s, err = shape.Lookup(s, segments)
		if err != nil {
			return Output{}, diagnostic.Diagnostics{}, fmt.Errorf("unwrap %q: %w", opts.Unwrap, err)
		}
	}

	if idx == nil {
		idx = hints.NewIndex()
	}

	ctx := newContext(opts, set, g.config.Logger.With(zap.String("type", name)))
	out := backend.Declare(ctx, name, s, idx)

	for _, h := range ctx.hints.Unused() {
		ctx.diagnostics.AddWarning(diagnostic.CodeHintUnused,
			fmt.Sprintf("%s %q was never applied", h.Type, h.Name), h.Pointer)
	}

	return out, *ctx.diagnostics, nil
}

// GenerateFromOptions registers opts.Hints and renders s as a declaration
// called name. Invalid hints abort generation; each one is returned as an
// error diagnostic.
func (g *Generator) GenerateFromOptions(
	name string,
	s shape.Shape,
	opts options.Options,
) (Output, diagnostic.Diagnostics, error) {
	set, idx, err := hints.Register(opts.Hints)
	if err != nil {
		diags := invalidHints(err)
		return Output{}, diags, fmt.Errorf("registering hints: %w", diags.Error())
	}

	return g.Generate(name, s, opts, set, idx)
}

func invalidHints(err error) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, e := range multierr.Errors(err) {
		var specErr *hints.SpecError
		if errors.As(e, &specErr) {
			diags.AddError(diagnostic.CodeHintInvalid, specErr.Err.Error(), specErr.Pointer)
			continue
		}

		diags.AddError(diagnostic.CodeHintInvalid, e.Error(), "")
	}

	return diags
}
