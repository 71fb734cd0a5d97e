// Package ctygraph converts between go-cty values and container graphs.
//
// cty values are immutable trees: FromValue always produces a tree (no
// sharing, no cycles) and ToValue duplicates shared containers and rejects
// cycles with ErrCyclic.
package ctygraph

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/graphclone/container"
)

var (
	// ErrUnknownValue indicates an unknown (not yet computed) cty value.
	ErrUnknownValue = errors.New("ctygraph: value is unknown")

	// ErrCyclic indicates a container graph that cannot be a cty tree.
	ErrCyclic = errors.New("ctygraph: graph is cyclic")

	// ErrUnsupportedKey indicates a Map key that is not a string.
	ErrUnsupportedKey = errors.New("ctygraph: map key is not a string")

	// ErrUnsupportedValue indicates a primitive with no cty equivalent.
	ErrUnsupportedValue = errors.New("ctygraph: unsupported value")
)

// FromValue converts v into a container graph.
//
//   - object → Object, map → Map (string keys, lexical order)
//   - list, tuple, set → Array
//   - string → string, bool → bool, number → int64 when exact, else float64
//   - null → nil
func FromValue(v cty.Value) (any, error) {
	if !v.IsKnown() {
		return nil, ErrUnknownValue
	}
	if v.IsNull() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Bool:
		return v.True(), nil
	case ty == cty.Number:
		return number(v.AsBigFloat()), nil
	case ty.IsObjectType(), ty.IsMapType():
		n := container.NewObject()
		if ty.IsMapType() {
			n = container.NewMap()
		}
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			child, err := FromValue(ev)
			if err != nil {
				return nil, fmt.Errorf("ctygraph: %s: %w", k.AsString(), err)
			}
			if err = n.Set(k.AsString(), child); err != nil {
				return nil, err
			}
		}
		return n, nil
	case ty.IsListType(), ty.IsTupleType(), ty.IsSetType():
		n := container.NewArray()
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			child, err := FromValue(ev)
			if err != nil {
				return nil, fmt.Errorf("ctygraph: [%d]: %w", n.Len(), err)
			}
			if err = n.Append(child); err != nil {
				return nil, err
			}
		}
		return n, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedValue, ty.FriendlyName())
	}
}

func number(f *big.Float) any {
	if f.IsInt() {
		if i, acc := f.Int64(); acc == big.Exact {
			return i
		}
	}
	out, _ := f.Float64()

	return out
}

// ToValue converts a container graph (or a primitive) into a cty value.
// Objects and Maps become object values, Arrays become tuples.
func ToValue(v any) (cty.Value, error) {
	e := &encoder{onPath: make(map[*container.Node]bool)}

	return e.value(v)
}

// encoder tracks the nodes on the current path to detect cycles.
type encoder struct {
	onPath map[*container.Node]bool
}

func (e *encoder) value(v any) (cty.Value, error) {
	if n, ok := container.AsNode(v); ok {
		return e.node(n)
	}

	switch x := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case string:
		return cty.StringVal(x), nil
	case bool:
		return cty.BoolVal(x), nil
	case int:
		return cty.NumberIntVal(int64(x)), nil
	case int8:
		return cty.NumberIntVal(int64(x)), nil
	case int16:
		return cty.NumberIntVal(int64(x)), nil
	case int32:
		return cty.NumberIntVal(int64(x)), nil
	case int64:
		return cty.NumberIntVal(x), nil
	case uint:
		return cty.NumberUIntVal(uint64(x)), nil
	case uint8:
		return cty.NumberUIntVal(uint64(x)), nil
	case uint16:
		return cty.NumberUIntVal(uint64(x)), nil
	case uint32:
		return cty.NumberUIntVal(uint64(x)), nil
	case uint64:
		return cty.NumberUIntVal(x), nil
	case float32:
		return float(float64(x))
	case float64:
		return float(x)
	case *big.Float:
		return cty.NumberVal(x), nil
	default:
		return cty.NilVal, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

// float rejects NaN, which cty numbers cannot hold.
func float(f float64) (cty.Value, error) {
	if math.IsNaN(f) {
		return cty.NilVal, fmt.Errorf("%w: NaN", ErrUnsupportedValue)
	}

	return cty.NumberFloatVal(f), nil
}

func (e *encoder) node(n *container.Node) (cty.Value, error) {
	if e.onPath[n] {
		return cty.NilVal, fmt.Errorf("%w: %s revisited", ErrCyclic, n)
	}
	e.onPath[n] = true
	defer delete(e.onPath, n)

	entries := n.Entries()
	if n.Kind() == container.Array {
		elems := make([]cty.Value, 0, len(entries))
		for _, en := range entries {
			ev, err := e.value(en.Value)
			if err != nil {
				return cty.NilVal, fmt.Errorf("ctygraph: [%v]: %w", en.Key, err)
			}
			elems = append(elems, ev)
		}
		if len(elems) == 0 {
			return cty.EmptyTupleVal, nil
		}
		return cty.TupleVal(elems), nil
	}

	attrs := make(map[string]cty.Value, len(entries))
	for _, en := range entries {
		k, ok := en.Key.(string)
		if !ok {
			return cty.NilVal, fmt.Errorf("%w: %T", ErrUnsupportedKey, en.Key)
		}
		ev, err := e.value(en.Value)
		if err != nil {
			return cty.NilVal, fmt.Errorf("ctygraph: %s: %w", k, err)
		}
		attrs[k] = ev
	}
	if len(attrs) == 0 {
		return cty.EmptyObjectVal, nil
	}

	return cty.ObjectVal(attrs), nil
}
