package op

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposeScenario4(t *testing.T) {
	a := Operation{Insert("Bar")}
	b := Operation{Insert("Foo")}
	got := Compose(a, b)
	want := Operation{Insert("FooBar")}
	require.True(t, got.Equal(want), "got %v, want %v", got, want)
}

func TestComposeIdentity(t *testing.T) {
	a := Operation{Retain(2), Insert("x"), Delete(1)}
	require.True(t, Compose(a, nil).Equal(a))
	require.True(t, Compose(nil, a).Equal(a))
}

func TestComposeInsertThenDeleteCancels(t *testing.T) {
	a := Operation{Insert("xyz")}
	b := Operation{Delete(3)}
	got := Compose(a, b)
	require.Empty(t, got)
}

func TestComposeLawAgreesWithSequentialApply(t *testing.T) {
	// Composition law: apply(compose(A,B), d) == apply(B, apply(A, d)).
	cases := []struct {
		doc string
		a   Operation
		b   Operation
	}{
		{
			doc: "abc",
			a:   Operation{Retain(3), Insert("X")},
			b:   Operation{Retain(1), Delete(1), Retain(2)},
		},
		{
			doc: "hello world",
			a:   Operation{Retain(5), Delete(1), Insert("_"), Retain(5)},
			b:   Operation{Delete(6), Retain(5)},
		},
		{
			doc: "日本語です",
			a:   Operation{Retain(2), Insert("の"), Retain(3)},
			b:   Operation{Retain(1), Delete(2), Retain(3)},
		},
	}
	for i, tc := range cases {
		composed := Compose(tc.a, tc.b)
		viaCompose, err := Apply(tc.doc, composed)
		require.NoError(t, err, "case %d: apply(compose) failed", i)

		intermediate, err := Apply(tc.doc, tc.a)
		require.NoError(t, err, "case %d: apply(a) failed", i)
		viaSequential, err := Apply(intermediate, tc.b)
		require.NoError(t, err, "case %d: apply(b) failed", i)

		require.Equal(t, viaSequential, viaCompose, "case %d", i)
	}
}

func TestComposeOutputIsCanonical(t *testing.T) {
	a := Operation{Retain(3), Insert("X")}
	b := Operation{Retain(1), Delete(1), Retain(2)}
	got := Compose(a, b)
	assertCanonical(t, got)
}

func assertCanonical(t *testing.T, op Operation) {
	t.Helper()
	for i, c := range op {
		if c.IsNoOp() {
			t.Errorf("component %d is a no-op: %v", i, c)
		}
		if i > 0 && op[i-1].Kind() == c.Kind() {
			t.Errorf("components %d and %d share kind %v", i-1, i, c.Kind())
		}
	}
}
