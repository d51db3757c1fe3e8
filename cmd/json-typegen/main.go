// Package main provides the CLI entrypoint for json-typegen.
//
// json-typegen renders an inferred JSON shape descriptor as TypeScript type
// declarations, applying path-scoped hints from an options file:
//
//	json-typegen -shape order.shape.yaml -config typegen.yaml -name Order -out order.ts
package main

import (
	"flag"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"json-typegen/internal/gen"
	"json-typegen/internal/shape"
	"json-typegen/options"
)

var (
	shapePath  = flag.String("shape", "", "shape descriptor file (YAML or JSON)")
	configPath = flag.String("config", "", "options file (YAML)")
	typeName   = flag.String("name", "Root", "name of the generated type")
	outPath    = flag.String("out", "", "output file, stdout if empty")
	verbose    = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Parse()
	os.Exit(main1())
}

func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true

	if !*verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}

func main1() int {
	logger := newLogger().Named("typegen")
	defer func() { _ = logger.Sync() }()

	if *shapePath == "" {
		logger.Error("Missing required flag", zap.String("flag", "-shape"))
		flag.Usage()

		return 2
	}

	opts := options.Default()

	if *configPath != "" {
		loaded, err := options.LoadFile(*configPath)
		if err != nil {
			for _, e := range multierr.Errors(err) {
				logger.Error("Failed to load options", zap.Error(e))
			}

			return 1
		}

		opts = *loaded
	}

	s, err := shape.LoadFile(*shapePath)
	if err != nil {
		logger.Error("Failed to load shape", zap.Error(err))
		return 1
	}

	generator := gen.NewGenerator(gen.GeneratorConfig{Logger: logger})

	out, diags, err := generator.GenerateFromOptions(*typeName, s, opts)
	if diags.HasErrors() {
		for _, e := range diags.Errors {
			logger.Error(e.Message, zap.String("code", e.Code), zap.String("pointer", e.Pointer))
		}

		return 1
	}

	if err != nil {
		logger.Error("Failed to generate", zap.Error(err))
		return 1
	}

	for _, w := range diags.Warnings {
		logger.Warn(w.Message, zap.String("code", w.Code), zap.String("pointer", w.Pointer))
	}

	for _, i := range diags.Infos {
		logger.Debug(i.Message, zap.String("code", i.Code), zap.String("pointer", i.Pointer))
	}

	if *outPath == "" {
		err = gen.WriteTo(os.Stdout, out)
	} else {
		err = gen.WriteFile(out, *outPath)
	}

	if err != nil {
		logger.Error("Failed to write output", zap.Error(err))
		return 1
	}

	logger.Debug("Generated type", zap.String("ident", out.Ident), zap.Int("bytes", len(out.Code)))

	return 0
}
