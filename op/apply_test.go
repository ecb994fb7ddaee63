package op

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		op   Operation
		want string
	}{
		{"scenario-1", "Foo", Operation{Retain(3), Insert(" Bar")}, "Foo Bar"},
		{"insert-only", "", Operation{Insert("hello")}, "hello"},
		{"delete-middle", "hello world", Operation{Retain(5), Delete(6)}, "hello"},
		{"mixed", "foobar", Operation{Retain(3), Delete(3), Insert("baz")}, "foobaz"},
		{"trailing-retain-tolerated", "abc", Operation{Retain(3)}, "abc"},
		{"unicode", "日本語です", Operation{Retain(2), Delete(1), Insert("の")}, "日本のです"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Apply(tc.doc, tc.op)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestApplyDeleteMismatch(t *testing.T) {
	_, err := Apply("Foo", Operation{Delete(4)})
	require.True(t, errors.Is(err, ErrDeleteMismatch))
}

func TestApplyRetainTooLong(t *testing.T) {
	_, err := Apply("Hi", Operation{Retain(5)})
	require.True(t, errors.Is(err, ErrRetainTooLong))
}

func TestApplyFailsFast(t *testing.T) {
	// The insert before the failing delete must not leak into the result.
	got, err := Apply("ab", Operation{Insert("xyz"), Delete(5)})
	require.True(t, errors.Is(err, ErrDeleteMismatch))
	require.Empty(t, got)
}

func TestMustApplyPanicsOnError(t *testing.T) {
	require.Panics(t, func() {
		MustApply("ab", Operation{Retain(5)})
	})
}
