// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// SPDX-License-Identifier: MIT

// pairsum reads a count n, n integers and a target, then prints the indices
// of the first two values that sum to the target as "[i,j]".
//
// Usage:
//
//	echo "4 2 7 11 15 9" | pairsum
//	pairsum -input problem.txt -output result.txt
//	pairsum -config pairsum.yaml
//
// Exit codes:
//   - 0: A pair was found and printed
//   - 1: No pair exists (the no-match sentinel was printed)
//   - 2: Usage, configuration, input or output error
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ManuGH/pairsum/internal/app"
	"github.com/ManuGH/pairsum/internal/config"
	xglog "github.com/ManuGH/pairsum/internal/log"
	"github.com/ManuGH/pairsum/internal/validate"
	"github.com/ManuGH/pairsum/internal/version"
)

const (
	exitFound    = 0
	exitNotFound = 1
	exitFailure  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pairsum", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath  string
		inputPath   string
		outputPath  string
		strict      bool
		showVersion bool
	)
	fs.StringVar(&configPath, "config", "", "path to YAML configuration file")
	fs.StringVar(&configPath, "c", "", "path to YAML configuration file (shorthand)")
	fs.StringVar(&inputPath, "input", "", "read the problem from this file instead of stdin")
	fs.StringVar(&outputPath, "output", "", "write the result to this file instead of stdout")
	fs.BoolVar(&strict, "strict", true, "reject malformed, missing or trailing input tokens")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitFound
		}
		return exitFailure
	}

	if showVersion {
		fmt.Fprintln(stdout, version.String())
		return exitFound
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected arguments: %v\n", fs.Args())
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "  pairsum [-config file.yaml] [-input file] [-output file] [-strict=false]")
		return exitFailure
	}

	// Configure logger with safe defaults until config is loaded
	xglog.Configure(xglog.Config{
		Level:   config.DefaultLogLevel,
		Output:  stderr,
		Version: version.Version,
	})

	loader := config.NewLoader(configPath, version.Version)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			loader.Override(func(c *config.AppConfig) { c.Input.Path = inputPath })
		case "output":
			loader.Override(func(c *config.AppConfig) { c.Output.Path = outputPath })
		case "strict":
			loader.Override(func(c *config.AppConfig) { c.Input.Strict = strict })
		}
	})

	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintln(stderr, "Configuration error:")
		var verr validate.ValidationError
		if errors.As(err, &verr) {
			for _, fe := range verr.Errors() {
				fmt.Fprintf(stderr, "  - %s\n", fe.Error())
			}
		} else {
			fmt.Fprintf(stderr, "  %v\n", err)
		}
		return exitFailure
	}

	// Re-configure logger with loaded configuration
	xglog.Configure(xglog.Config{
		Level:   cfg.LogLevel,
		Output:  stderr,
		Service: cfg.LogService,
		Version: cfg.Version,
	})

	runID := xglog.NewRunID()
	ctx := xglog.ContextWithRunID(context.Background(), runID)
	logger := xglog.WithComponentFromContext(ctx, "cli")
	logger.Debug().
		Str(xglog.FieldEvent, "config.loaded").
		Str(xglog.FieldConfigPath, configPath).
		Str(xglog.FieldInputPath, cfg.Input.Path).
		Str(xglog.FieldOutputPath, cfg.Output.Path).
		Bool("strict", cfg.Input.Strict).
		Strs(xglog.FieldEnvKeys, loader.AppliedEnvKeys()).
		Msg("configuration loaded")

	outcome, err := app.Run(ctx, app.Deps{
		Config: cfg,
		Stdin:  stdin,
		Stdout: stdout,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	if outcome == app.OutcomeNotFound {
		return exitNotFound
	}
	return exitFound
}
