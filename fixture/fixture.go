// Package fixture loads and runs the JSON-Lines fixture files that serve as
// the authoritative behavioral oracle for the op engine (spec.md §6). It is
// purely a caller of the op package's exported functions — it never reaches
// into op's internals — matching the spec's explicit non-goal of putting
// fixture loading inside the core.
package fixture

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/xerrors"

	"github.com/otcore/textot/op"
)

// ApplyCase is one line of an apply-shaped fixture file.
type ApplyCase struct {
	Str    string        `json:"str"`
	Op     []interface{} `json:"op"`
	Result *string       `json:"result"`
	Error  string        `json:"error,omitempty"`
}

// ComposeCase is one line of a compose-shaped fixture file.
type ComposeCase struct {
	Op1    []interface{} `json:"op1"`
	Op2    []interface{} `json:"op2"`
	Result []interface{} `json:"result"`
}

// TransformCase is one line of a transform-shaped fixture file.
type TransformCase struct {
	Op      []interface{} `json:"op"`
	OtherOp []interface{} `json:"otherOp"`
	Side    string        `json:"side"`
	Result  []interface{} `json:"result"`
}

// ParseSide converts the fixture file's "left"/"right" string into an
// op.Side.
func ParseSide(s string) (op.Side, error) {
	switch s {
	case "left":
		return op.SideLeft, nil
	case "right":
		return op.SideRight, nil
	default:
		return 0, fmt.Errorf("fixture: unknown side %q", s)
	}
}

func loadLines(r io.Reader, decode func(line []byte) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, 1<<20)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if err := decode(line); err != nil {
			return xerrors.Errorf("fixture: line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

// LoadApplyCases reads an apply-shaped JSONL fixture file.
func LoadApplyCases(r io.Reader) ([]ApplyCase, error) {
	var cases []ApplyCase
	err := loadLines(r, func(line []byte) error {
		var c ApplyCase
		if err := json.Unmarshal(line, &c); err != nil {
			return err
		}
		cases = append(cases, c)
		return nil
	})
	return cases, err
}

// LoadComposeCases reads a compose-shaped JSONL fixture file.
func LoadComposeCases(r io.Reader) ([]ComposeCase, error) {
	var cases []ComposeCase
	err := loadLines(r, func(line []byte) error {
		var c ComposeCase
		if err := json.Unmarshal(line, &c); err != nil {
			return err
		}
		cases = append(cases, c)
		return nil
	})
	return cases, err
}

// LoadTransformCases reads a transform-shaped JSONL fixture file.
func LoadTransformCases(r io.Reader) ([]TransformCase, error) {
	var cases []TransformCase
	err := loadLines(r, func(line []byte) error {
		var c TransformCase
		if err := json.Unmarshal(line, &c); err != nil {
			return err
		}
		cases = append(cases, c)
		return nil
	})
	return cases, err
}

// RunApply checks c against op.Apply, returning a descriptive error if the
// engine disagrees with the fixture.
func RunApply(c ApplyCase) error {
	got, err := op.Apply(c.Str, op.NewOperation(c.Op))
	if c.Error != "" {
		if err == nil {
			return fmt.Errorf("expected error %q, got result %q", c.Error, got)
		}
		var want error
		switch c.Error {
		case "delete_mismatch":
			want = op.ErrDeleteMismatch
		case "retain_too_long":
			want = op.ErrRetainTooLong
		default:
			return fmt.Errorf("fixture: unknown error kind %q", c.Error)
		}
		if !errors.Is(err, want) {
			return xerrors.Errorf("expected error %q, got: %w", c.Error, err)
		}
		return nil
	}
	if err != nil {
		return xerrors.Errorf("unexpected error: %w", err)
	}
	if c.Result == nil {
		return fmt.Errorf("fixture has neither result nor error")
	}
	if got != *c.Result {
		return fmt.Errorf("got %q, want %q", got, *c.Result)
	}
	return nil
}

// RunCompose checks c against op.Compose.
func RunCompose(c ComposeCase) error {
	got := op.Compose(op.NewOperation(c.Op1), op.NewOperation(c.Op2))
	want := op.NewOperation(c.Result)
	if !got.Equal(want) {
		return fmt.Errorf("got %v, want %v", got, want)
	}
	return nil
}

// RunTransform checks c against op.Transform.
func RunTransform(c TransformCase) error {
	side, err := ParseSide(c.Side)
	if err != nil {
		return err
	}
	got := op.Transform(op.NewOperation(c.Op), op.NewOperation(c.OtherOp), side)
	want := op.NewOperation(c.Result)
	if !got.Equal(want) {
		return fmt.Errorf("got %v, want %v", got, want)
	}
	return nil
}
