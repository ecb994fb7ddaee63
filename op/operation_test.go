package op

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func opEqual(a, b Operation) bool {
	return a.Equal(b)
}

func TestAppendMerge(t *testing.T) {
	var result Operation
	result = result.Append(Retain(2))
	result = result.Append(Retain(3))
	require.True(t, opEqual(result, Operation{Retain(5)}), "got %v", result)

	result = nil
	result = result.Append(Insert("foo"))
	result = result.Append(Insert("bar"))
	require.True(t, opEqual(result, Operation{Insert("foobar")}), "got %v", result)
}

func TestAppendDropsNoOps(t *testing.T) {
	var result Operation
	result = result.Append(Retain(0))
	result = result.Append(Insert(""))
	result = result.Append(Delete(0))
	require.Empty(t, result)

	result = result.Append(Retain(3))
	result = result.Append(Retain(0))
	require.True(t, opEqual(result, Operation{Retain(3)}))
}

func TestAppendNoMergeAcrossKinds(t *testing.T) {
	var result Operation
	result = result.Append(Retain(2))
	result = result.Append(Insert("x"))
	result = result.Append(Retain(3))
	want := Operation{Retain(2), Insert("x"), Retain(3)}
	if diff := cmp.Diff(want.Raw(), result.Raw()); diff != "" {
		t.Errorf("unexpected diff (-want +got):\n%s", diff)
	}
}

func TestJoin(t *testing.T) {
	a := Operation{Retain(2)}
	b := Operation{Retain(3), Insert("x")}
	got := a.Join(b)
	require.True(t, opEqual(got, Operation{Retain(5), Insert("x")}), "got %v", got)

	require.True(t, opEqual(Operation{}.Join(b), b))
	require.True(t, opEqual(a.Join(nil), a))
}

func TestNewOperation(t *testing.T) {
	raw := []interface{}{3, " Bar", map[string]interface{}{"d": 2}, RawDelete{D: 1}}
	got := NewOperation(raw)
	want := Operation{Retain(3), Insert(" Bar"), Delete(3)}
	require.True(t, opEqual(got, want), "got %v, want %v", got, want)
}

func TestNewOperationCanonicalizes(t *testing.T) {
	raw := []interface{}{3, 0, "", "foo", "bar", map[string]int{"d": 0}}
	got := NewOperation(raw)
	want := Operation{Retain(3), Insert("foobar")}
	require.True(t, opEqual(got, want), "got %v, want %v", got, want)
}

func TestNewOperationInvalidShapePanics(t *testing.T) {
	require.Panics(t, func() {
		NewOperation([]interface{}{3.5i})
	})
}

func TestRawRoundTrip(t *testing.T) {
	op := Operation{Retain(2), Insert("hi"), Delete(4)}
	raw := op.Raw()
	back := NewOperation(raw)
	require.True(t, opEqual(op, back), "got %v, want %v", back, op)
}
