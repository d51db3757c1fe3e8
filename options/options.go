package options

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"json-typegen/internal/hints"
)

// OutputMode selects the backend used to render declarations.
type OutputMode string

const (
	// OutputTypeScriptTypeAlias emits `export type Name = ...;` declarations.
	OutputTypeScriptTypeAlias OutputMode = "typescript/typealias"
)

// Options controls code generation.
type Options struct {
	// OutputMode selects the backend. Defaults to OutputTypeScriptTypeAlias.
	OutputMode OutputMode `yaml:"output_mode"`
	// UseDefaultForMissingFields renders optional shapes as their inner type,
	// leaving absence to defaulting logic elsewhere.
	UseDefaultForMissingFields bool `yaml:"use_default_for_missing_fields"`
	// Unwrap is a JSON pointer selecting the sub-shape to generate.
	Unwrap string `yaml:"unwrap,omitempty"`
	// Hints are path-scoped overrides, in precedence order.
	Hints []hints.Spec `yaml:"hints,omitempty"`
}

// Default returns the default options.
func Default() Options {
	return Options{
		OutputMode: OutputTypeScriptTypeAlias,
	}
}

// LoadFile loads and parses a YAML options file from the given path.
func LoadFile(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into Options.
func Parse(data []byte) (*Options, error) {
	var opts Options

	err := yaml.Unmarshal(data, &opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse options YAML: %w", err)
	}

	applyDefaults(&opts)

	err = opts.Validate()
	if err != nil {
		return nil, err
	}

	return &opts, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(opts *Options) {
	if opts.OutputMode == "" {
		opts.OutputMode = OutputTypeScriptTypeAlias
	}
}

// Validate checks option values that cannot be enforced by decoding.
// All problems are reported together.
func (o Options) Validate() error {
	var err error

	switch o.OutputMode {
	case OutputTypeScriptTypeAlias:
	default:
		err = multierr.Append(err, fmt.Errorf("unsupported output mode %q", o.OutputMode))
	}

	if o.Unwrap != "" {
		_, perr := hints.ParsePointer(o.Unwrap)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("unwrap: %w", perr))
		}
	}

	_, _, herr := hints.Register(o.Hints)

	return multierr.Append(err, herr)
}
