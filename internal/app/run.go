// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package app runs one read, search and write cycle.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ManuGH/pairsum/internal/config"
	"github.com/ManuGH/pairsum/internal/input"
	xglog "github.com/ManuGH/pairsum/internal/log"
	"github.com/ManuGH/pairsum/internal/metrics"
	"github.com/ManuGH/pairsum/internal/output"
	"github.com/ManuGH/pairsum/internal/pairfind"
)

// Outcome classifies a run.
type Outcome int

const (
	OutcomeError Outcome = iota
	OutcomeFound
	OutcomeNotFound
)

// String returns the metrics label for o.
func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return metrics.OutcomeFound
	case OutcomeNotFound:
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}

// Deps contains what a run needs from its environment.
type Deps struct {
	Config config.AppConfig

	// Stdin is read when Config.Input.Path is empty.
	Stdin io.Reader
	// Stdout receives the result when Config.Output.Path is empty.
	Stdout io.Writer

	// Metrics is optional; a fresh recorder is used when nil.
	Metrics *metrics.Recorder
	// Now is optional; time.Now is used when nil.
	Now func() time.Time
}

// Validate checks if the dependencies are valid.
func (d *Deps) Validate() error {
	if d.Config.Input.Path == "" && d.Stdin == nil {
		return ErrMissingStdin
	}
	if d.Config.Output.Path == "" && d.Stdout == nil {
		return ErrMissingStdout
	}
	return nil
}

// Run reads one problem, searches it and writes the rendered result.
// A missing pair is not an error: it yields OutcomeNotFound and the
// configured sentinel is written.
func Run(ctx context.Context, deps Deps) (Outcome, error) {
	if err := deps.Validate(); err != nil {
		return OutcomeError, err
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	rec := deps.Metrics
	if rec == nil {
		rec = metrics.NewRecorder()
	}
	cfg := deps.Config
	logger := xglog.WithComponentFromContext(ctx, "app")
	start := now()

	outcome, res, n, err := run(ctx, deps)
	elapsed := now().Sub(start)
	if err != nil {
		rec.ObserveFailure(elapsed)
		logger.Debug().
			Err(err).
			Str(xglog.FieldEvent, "run.failed").
			Str(xglog.FieldOutcome, outcome.String()).
			Msg("run failed")
	} else {
		rec.ObserveRun(outcome.String(), n, res.Scanned, elapsed)
	}

	if cfg.Metrics.Textfile != "" {
		if mErr := rec.WriteTextfile(cfg.Metrics.Textfile); mErr != nil {
			logger.Warn().
				Err(mErr).
				Str(xglog.FieldEvent, "metrics.export_failed").
				Str(xglog.FieldPath, cfg.Metrics.Textfile).
				Msg("failed to export metrics textfile")
		}
	}

	return outcome, err
}

func run(ctx context.Context, deps Deps) (Outcome, pairfind.Result, int, error) {
	cfg := deps.Config
	logger := xglog.WithComponentFromContext(ctx, "app")

	problem, err := readProblem(cfg.Input, deps.Stdin)
	if err != nil {
		return OutcomeError, pairfind.Result{}, 0, err
	}
	logger.Debug().
		Str(xglog.FieldEvent, "problem.read").
		Int(xglog.FieldLength, len(problem.Values)).
		Int(xglog.FieldTarget, problem.Target).
		Msg("problem decoded")

	res := pairfind.Scan(problem.Values, problem.Target)

	data := output.Format(res, output.Options{
		NoMatch:         cfg.Output.NoMatch,
		TrailingNewline: cfg.Output.TrailingNewline,
	})
	if cfg.Output.Path != "" {
		err = output.WriteFile(ctx, cfg.Output.Path, data)
	} else {
		err = output.Write(deps.Stdout, data)
	}
	if err != nil {
		return OutcomeError, res, len(problem.Values), err
	}

	if res.Found {
		logger.Info().
			Str(xglog.FieldEvent, "pair.found").
			Str(xglog.FieldOutcome, OutcomeFound.String()).
			Int(xglog.FieldFirst, res.Pair.First).
			Int(xglog.FieldSecond, res.Pair.Second).
			Int(xglog.FieldScanned, res.Scanned).
			Msg("pair found")
		return OutcomeFound, res, len(problem.Values), nil
	}
	logger.Info().
		Str(xglog.FieldEvent, "pair.not_found").
		Str(xglog.FieldOutcome, OutcomeNotFound.String()).
		Int(xglog.FieldScanned, res.Scanned).
		Msg("no pair sums to target")
	return OutcomeNotFound, res, len(problem.Values), nil
}

func readProblem(cfg config.InputConfig, stdin io.Reader) (input.Problem, error) {
	src := stdin
	if cfg.Path != "" {
		// #nosec G304 -- input paths are provided by the operator via CLI/ENV/config
		f, err := os.Open(filepath.Clean(cfg.Path))
		if err != nil {
			return input.Problem{}, fmt.Errorf("open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		src = f
	}

	problem, err := input.NewReader(src, input.Options{
		Strict:   cfg.Strict,
		MaxCount: cfg.MaxCount,
	}).Read()
	if err != nil {
		return input.Problem{}, fmt.Errorf("read input: %w", err)
	}
	return problem, nil
}
