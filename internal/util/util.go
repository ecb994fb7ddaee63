// Package util provides small helpers shared across the non-core packages
// (hub, cmd). The op package has no dependency on it and defines its own
// local assert.
package util

import (
	"fmt"

	"golang.org/x/xerrors"
)

// MaxInt returns the larger of a and b.
func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// MinInt returns the smaller of a and b.
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// PanicOnError panics if err is non-nil, wrapping it with xerrors so the
// panic carries a stack-aware message.
func PanicOnError(err error) {
	if err != nil {
		panic(xerrors.Errorf("fatal: %w", err))
	}
}

// Assert panics with v if condition is false.
func Assert(condition bool, v ...interface{}) {
	if !condition {
		panic(fmt.Sprint(v...))
	}
}
