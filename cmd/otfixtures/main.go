// Command otfixtures runs the JSONL fixture files against the op engine and
// reports which ones the engine disagrees with.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog"
	"github.com/sanity-io/litter"

	"github.com/otcore/textot/fixture"
)

var (
	dir      = flag.String("dir", "fixture/testdata", "directory containing apply.jsonl, compose.jsonl, transform.jsonl")
	logLevel = flag.String("log-level", "info", "zerolog level: debug, info, warn, error")
	dump     = flag.Bool("dump", false, "litter-dump every failing case")
)

var logIO = zerolog.ConsoleWriter{
	Out:        os.Stdout,
	TimeFormat: time.RFC3339,
}

func newLogger(level zerolog.Level) zerolog.Logger {
	logger := zerolog.New(logIO).With().Timestamp().Logger()
	return logger.Level(level)
}

func main() {
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "otfixtures: invalid -log-level %q: %v\n", *logLevel, err)
		os.Exit(1)
	}
	logger := newLogger(level)

	shapesSeen := mapset.NewSet[string]()
	failures := 0

	failures += runApply(logger, shapesSeen)
	failures += runCompose(logger, shapesSeen)
	failures += runTransform(logger, shapesSeen)

	logger.Info().
		Int("shapes_covered", shapesSeen.Cardinality()).
		Strs("shapes", shapesSeen.ToSlice()).
		Msg("fixture coverage")

	if failures > 0 {
		logger.Error().Int("failures", failures).Msg("fixtures failed")
		os.Exit(1)
	}
	logger.Info().Msg("all fixtures passed")
}

func runApply(logger zerolog.Logger, shapesSeen mapset.Set[string]) int {
	path := filepath.Join(*dir, "apply.jsonl")
	f, err := os.Open(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("skipping apply fixtures")
		return 0
	}
	defer f.Close()

	cases, err := fixture.LoadApplyCases(f)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("failed to load apply fixtures")
		return 1
	}

	failures := 0
	for i, c := range cases {
		shapesSeen.Add("apply")
		if c.Error != "" {
			shapesSeen.Add("apply/error")
		}
		if err := fixture.RunApply(c); err != nil {
			failures++
			logger.Error().Int("case", i).Err(err).Msg("apply fixture failed")
			if *dump {
				litter.Dump(c)
			}
		}
	}
	return failures
}

func runCompose(logger zerolog.Logger, shapesSeen mapset.Set[string]) int {
	path := filepath.Join(*dir, "compose.jsonl")
	f, err := os.Open(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("skipping compose fixtures")
		return 0
	}
	defer f.Close()

	cases, err := fixture.LoadComposeCases(f)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("failed to load compose fixtures")
		return 1
	}

	failures := 0
	for i, c := range cases {
		shapesSeen.Add("compose")
		if err := fixture.RunCompose(c); err != nil {
			failures++
			logger.Error().Int("case", i).Err(err).Msg("compose fixture failed")
			if *dump {
				litter.Dump(c)
			}
		}
	}
	return failures
}

func runTransform(logger zerolog.Logger, shapesSeen mapset.Set[string]) int {
	path := filepath.Join(*dir, "transform.jsonl")
	f, err := os.Open(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("skipping transform fixtures")
		return 0
	}
	defer f.Close()

	cases, err := fixture.LoadTransformCases(f)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("failed to load transform fixtures")
		return 1
	}

	failures := 0
	for i, c := range cases {
		shapesSeen.Add("transform/" + c.Side)
		if err := fixture.RunTransform(c); err != nil {
			failures++
			logger.Error().Int("case", i).Err(err).Msg("transform fixture failed")
			if *dump {
				litter.Dump(c)
			}
		}
	}
	return failures
}
