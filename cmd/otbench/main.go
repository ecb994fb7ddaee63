// Command otbench measures Compose and Transform throughput over synthetic
// chains of operations, the way a client applying a long edit history would
// exercise the op engine.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/otcore/textot/internal/util"
	"github.com/otcore/textot/op"
)

var (
	docLen   = flag.Int("doc-len", 2000, "length of the synthetic document in runes")
	numOps   = flag.Int("num-ops", 500, "number of operations to chain")
	seed     = flag.Int64("seed", 1, "random seed")
	logLevel = flag.String("log-level", "info", "zerolog level: debug, info, warn, error")
)

var logIO = zerolog.ConsoleWriter{
	Out:        os.Stdout,
	TimeFormat: time.RFC3339,
}

func newLogger(level zerolog.Level) zerolog.Logger {
	logger := zerolog.New(logIO).With().Timestamp().Logger()
	return logger.Level(level)
}

// randomOp builds a well-formed random operation over a document of length
// docLen: retain a run, replace a small run with a random insert, retain the
// remainder.
func randomOp(rng *rand.Rand, docLen int) op.Operation {
	if docLen == 0 {
		return op.Operation{op.Insert(randomString(rng, 1+rng.Intn(5)))}
	}
	cut := rng.Intn(docLen)
	deleteLen := rng.Intn(util.MinInt(5, docLen-cut))
	insertLen := rng.Intn(6)

	var out op.Operation
	if cut > 0 {
		out = out.Append(op.Retain(cut))
	}
	if insertLen > 0 {
		out = out.Append(op.Insert(randomString(rng, insertLen)))
	}
	if deleteLen > 0 {
		out = out.Append(op.Delete(deleteLen))
	}
	remainder := docLen - cut - deleteLen
	util.Assert(remainder >= 0, "negative remainder: docLen=", docLen, " cut=", cut, " deleteLen=", deleteLen)
	if remainder > 0 {
		out = out.Append(op.Retain(remainder))
	}
	return out
}

func randomString(rng *rand.Rand, n int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}

// outputLength returns the rune length of the document that op produces when
// applied to a document of length docLen.
func outputLength(o op.Operation, docLen int) int {
	consumed := 0
	length := 0
	for _, c := range o {
		switch c.Kind() {
		case op.KindRetain:
			consumed += c.Length()
			length += c.Length()
		case op.KindDelete:
			consumed += c.Length()
		case op.KindInsert:
			length += c.Length()
		}
	}
	length += docLen - consumed
	return length
}

func main() {
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "otbench: invalid -log-level %q: %v\n", *logLevel, err)
		os.Exit(1)
	}
	logger := newLogger(level)

	rng := rand.New(rand.NewSource(*seed))

	ops := make([]op.Operation, 0, *numOps)
	length := *docLen
	for i := 0; i < *numOps; i++ {
		o := randomOp(rng, length)
		ops = append(ops, o)
		length = outputLength(o, length)
	}

	logger.Info().Int("doc_len", *docLen).Int("num_ops", *numOps).Msg("generated synthetic history")

	start := time.Now()
	composed := ops[0]
	for _, o := range ops[1:] {
		composed = op.Compose(composed, o)
	}
	composeElapsed := time.Since(start)
	logger.Info().
		Dur("elapsed", composeElapsed).
		Int("composed_components", len(composed)).
		Msg("composed full history")

	start = time.Now()
	transformed := 0
	for i := 1; i < len(ops); i++ {
		op.Transform(ops[i], ops[i-1], op.SideLeft)
		transformed++
	}
	transformElapsed := time.Since(start)
	logger.Info().
		Dur("elapsed", transformElapsed).
		Int("pairs", transformed).
		Msg("transformed adjacent pairs")
}
