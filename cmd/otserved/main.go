// Command otserved runs a realtime collaborative text server backed by the
// op engine.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/otcore/textot/hub"
)

var (
	addr     = flag.String("addr", "localhost:8080", "address to listen on")
	logLevel = flag.String("log-level", "info", "zerolog level: debug, info, warn, error")
	seed     = flag.String("seed", "", "initial document text")
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
		fmt.Fprintf(os.Stderr, "otserved: invalid -log-level %q: %v\n", *logLevel, err)
		os.Exit(1)
	}
	logger := newLogger(level)

	doc := hub.NewDocument(*seed)
	h := hub.New(logger, doc)

	logger.Info().Str("addr", *addr).Msg("listening")
	if err := http.ListenAndServe(*addr, h); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
