package yamlgraph

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphclone/container"
	"github.com/katalvlaran/graphclone/topology"
)

// ErrUnsupportedKey indicates a mapping key that is not a scalar (decode) or
// a Map key that is a container or does not encode to a scalar (encode).
var ErrUnsupportedKey = errors.New("yamlgraph: unsupported mapping key")

// Decode parses one YAML document into a container graph. An empty
// document decodes to nil.
//
// Map-kind nodes do not exist in YAML input: every mapping becomes an
// Object keyed by the key scalar's text.
func Decode(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yamlgraph: parse: %w", err)
	}
	if doc.Kind == 0 {
		return nil, nil
	}

	d := &decoder{memo: make(map[*yaml.Node]*container.Node)}

	return d.value(&doc)
}

// decoder maps each YAML collection node to the container built for it.
// The container is memoized before its children are decoded, which is what
// turns an alias to an enclosing anchor into a cycle.
type decoder struct {
	memo map[*yaml.Node]*container.Node
}

func (d *decoder) value(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.value(n.Content[0])

	case yaml.AliasNode:
		return d.value(n.Alias)

	case yaml.MappingNode:
		if c, ok := d.memo[n]; ok {
			return c, nil
		}
		c := container.NewObject()
		d.memo[n] = c
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			for k.Kind == yaml.AliasNode {
				k = k.Alias
			}
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: line %d", ErrUnsupportedKey, k.Line)
			}
			v, err := d.value(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			if err = c.Set(k.Value, v); err != nil {
				return nil, fmt.Errorf("yamlgraph: line %d: %w", k.Line, err)
			}
		}
		return c, nil

	case yaml.SequenceNode:
		if c, ok := d.memo[n]; ok {
			return c, nil
		}
		c := container.NewArray()
		d.memo[n] = c
		for _, item := range n.Content {
			v, err := d.value(item)
			if err != nil {
				return nil, err
			}
			if err = c.Append(v); err != nil {
				return nil, err
			}
		}
		return c, nil

	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("yamlgraph: line %d: %w", n.Line, err)
		}
		return v, nil
	}
}

// encoder assigns anchors to containers with more than one incoming
// reference and emits aliases for every later occurrence.
type encoder struct {
	root    *container.Node
	deg     map[*container.Node]int
	emitted map[*container.Node]*yaml.Node
	next    int
}

// Encode renders v as a YAML document with two-space indentation.
// Containers referenced more than once (including the root when a cycle
// returns to it) are anchored as n1, n2, ... in discovery order.
func Encode(v any) ([]byte, error) {
	root, ok := container.AsNode(v)
	if !ok {
		out, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("yamlgraph: encode: %w", err)
		}
		return out, nil
	}

	e := &encoder{
		root:    root,
		deg:     topology.InDegree(root),
		emitted: make(map[*container.Node]*yaml.Node),
	}
	node, err := e.node(root)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err = enc.Encode(node); err != nil {
		return nil, fmt.Errorf("yamlgraph: encode: %w", err)
	}
	if err = enc.Close(); err != nil {
		return nil, fmt.Errorf("yamlgraph: encode: %w", err)
	}

	return buf.Bytes(), nil
}

func (e *encoder) node(n *container.Node) (*yaml.Node, error) {
	if y, ok := e.emitted[n]; ok {
		return &yaml.Node{Kind: yaml.AliasNode, Value: y.Anchor, Alias: y}, nil
	}

	y := &yaml.Node{}
	e.emitted[n] = y
	refs := e.deg[n]
	if n == e.root {
		refs++
	}
	if refs > 1 {
		e.next++
		y.Anchor = fmt.Sprintf("n%d", e.next)
	}

	if n.Kind() == container.Array {
		y.Kind = yaml.SequenceNode
	} else {
		y.Kind = yaml.MappingNode
	}

	for _, entry := range n.Entries() {
		val, err := e.value(entry.Value)
		if err != nil {
			return nil, err
		}
		if y.Kind == yaml.SequenceNode {
			y.Content = append(y.Content, val)
			continue
		}
		key, err := e.key(entry.Key)
		if err != nil {
			return nil, err
		}
		y.Content = append(y.Content, key, val)
	}

	return y, nil
}

func (e *encoder) value(v any) (*yaml.Node, error) {
	if child, ok := container.AsNode(v); ok {
		return e.node(child)
	}
	var y yaml.Node
	if err := y.Encode(v); err != nil {
		return nil, fmt.Errorf("yamlgraph: encode %T: %w", v, err)
	}

	return &y, nil
}

func (e *encoder) key(k any) (*yaml.Node, error) {
	if _, ok := container.AsNode(k); ok {
		return nil, fmt.Errorf("%w: container key", ErrUnsupportedKey)
	}
	var y yaml.Node
	if err := y.Encode(k); err != nil {
		return nil, fmt.Errorf("yamlgraph: encode key %T: %w", k, err)
	}
	if y.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedKey, k)
	}

	return &y, nil
}
