package ctygraph_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/graphclone/clone"
	"github.com/katalvlaran/graphclone/codec/ctygraph"
	"github.com/katalvlaran/graphclone/container"
)

func plain(v any) any {
	n, ok := container.AsNode(v)
	if !ok {
		return v
	}
	if n.Kind() == container.Array {
		out := make([]any, 0, n.Len())
		for _, e := range n.Entries() {
			out = append(out, plain(e.Value))
		}
		return out
	}
	out := make(map[any]any, n.Len())
	for _, e := range n.Entries() {
		out[e.Key] = plain(e.Value)
	}

	return out
}

// TestFromValue maps every cty kind onto nodes and primitives.
func TestFromValue(t *testing.T) {
	in := cty.ObjectVal(map[string]cty.Value{
		"name":  cty.StringVal("svc"),
		"port":  cty.NumberIntVal(8080),
		"ratio": cty.NumberFloatVal(0.25),
		"on":    cty.True,
		"none":  cty.NullVal(cty.String),
		"tags":  cty.ListVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")}),
		"mixed": cty.TupleVal([]cty.Value{cty.StringVal("x"), cty.NumberIntVal(1)}),
		"env":   cty.MapVal(map[string]cty.Value{"K": cty.StringVal("V")}),
	})

	got, err := ctygraph.FromValue(in)
	require.NoError(t, err)

	want := map[any]any{
		"name":  "svc",
		"port":  int64(8080),
		"ratio": 0.25,
		"on":    true,
		"none":  nil,
		"tags":  []any{"a", "b"},
		"mixed": []any{"x", int64(1)},
		"env":   map[any]any{"K": "V"},
	}
	if diff := cmp.Diff(want, plain(got)); diff != "" {
		t.Errorf("FromValue() mismatch (-want +got):\n%s", diff)
	}

	root := got.(*container.Node)
	env, _ := root.Get("env")
	assert.Equal(t, container.Map, env.(*container.Node).Kind())
}

// TestFromValue_Errors rejects unknown values.
func TestFromValue_Errors(t *testing.T) {
	_, err := ctygraph.FromValue(cty.UnknownVal(cty.String))
	assert.ErrorIs(t, err, ctygraph.ErrUnknownValue)

	nested := cty.ObjectVal(map[string]cty.Value{"x": cty.UnknownVal(cty.Number)})
	_, err = ctygraph.FromValue(nested)
	assert.ErrorIs(t, err, ctygraph.ErrUnknownValue)
}

// TestToValue converts a shared graph and duplicates the shared node.
func TestToValue(t *testing.T) {
	shared := container.NewObject()
	require.NoError(t, shared.Set("v", 9))
	arr := container.NewArray()
	require.NoError(t, arr.Append("s"))
	require.NoError(t, arr.Append(uint8(2)))
	require.NoError(t, arr.Append(1.5))
	root := container.NewObject()
	require.NoError(t, root.Set("p", shared))
	require.NoError(t, root.Set("q", shared))
	require.NoError(t, root.Set("arr", arr))
	require.NoError(t, root.Set("empty", container.NewArray()))
	require.NoError(t, root.Set("nothing", nil))
	require.NoError(t, root.Set("big", big.NewFloat(2)))

	got, err := ctygraph.ToValue(root)
	require.NoError(t, err)

	want := cty.ObjectVal(map[string]cty.Value{
		"p":       cty.ObjectVal(map[string]cty.Value{"v": cty.NumberIntVal(9)}),
		"q":       cty.ObjectVal(map[string]cty.Value{"v": cty.NumberIntVal(9)}),
		"arr":     cty.TupleVal([]cty.Value{cty.StringVal("s"), cty.NumberIntVal(2), cty.NumberFloatVal(1.5)}),
		"empty":   cty.EmptyTupleVal,
		"nothing": cty.NullVal(cty.DynamicPseudoType),
		"big":     cty.NumberIntVal(2),
	})
	assert.True(t, want.RawEquals(got), "got %#v", got)
}

// TestToValue_Errors covers cycles, bad keys and bad primitives.
func TestToValue_Errors(t *testing.T) {
	a := container.NewObject()
	require.NoError(t, a.Set("self", a))
	_, err := ctygraph.ToValue(a)
	assert.ErrorIs(t, err, ctygraph.ErrCyclic)

	m := container.NewMap()
	require.NoError(t, m.Set(1, "x"))
	_, err = ctygraph.ToValue(m)
	assert.ErrorIs(t, err, ctygraph.ErrUnsupportedKey)

	_, err = ctygraph.ToValue(struct{}{})
	assert.ErrorIs(t, err, ctygraph.ErrUnsupportedValue)
}

// TestToValue_NaN returns an error instead of panicking on NaN floats.
func TestToValue_NaN(t *testing.T) {
	n := container.NewObject()
	require.NoError(t, n.Set("x", math.NaN()))
	_, err := ctygraph.ToValue(n)
	assert.ErrorIs(t, err, ctygraph.ErrUnsupportedValue)
	assert.Contains(t, err.Error(), "x")

	_, err = ctygraph.ToValue(float32(math.NaN()))
	assert.ErrorIs(t, err, ctygraph.ErrUnsupportedValue)

	got, err := ctygraph.ToValue(math.Inf(1))
	require.NoError(t, err)
	assert.True(t, cty.PositiveInfinity.RawEquals(got))
}

// TestRoundTripThroughClone: cty → graph → clone → cty is lossless.
func TestRoundTripThroughClone(t *testing.T) {
	in := cty.ObjectVal(map[string]cty.Value{
		"a": cty.TupleVal([]cty.Value{cty.StringVal("x"), cty.True}),
		"b": cty.ObjectVal(map[string]cty.Value{"n": cty.NumberIntVal(-3)}),
	})
	g, err := ctygraph.FromValue(in)
	require.NoError(t, err)

	res, err := clone.Clone(g)
	require.NoError(t, err)
	out, err := ctygraph.ToValue(res.Value)
	require.NoError(t, err)

	assert.True(t, in.RawEquals(out))
}
