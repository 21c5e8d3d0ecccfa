package document

import (
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// keyOrder remembers the order mapping keys appear in the source text.
// kin-openapi exposes paths and responses as Go maps, which lose it.
type keyOrder struct {
	root *yaml.Node
}

func newKeyOrder(data []byte) *keyOrder {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return &keyOrder{}
	}

	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		return &keyOrder{root: node.Content[0]}
	}

	return &keyOrder{}
}

// keys returns the mapping keys found at the given key path, in document order.
// Path elements address mapping keys or, inside sequences, item indexes.
func (o *keyOrder) keys(path ...string) []string {
	node := o.lookup(path...)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}

	keys := make([]string, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keys = append(keys, node.Content[i].Value)
	}

	return keys
}

func (o *keyOrder) lookup(path ...string) *yaml.Node {
	if o == nil || o.root == nil {
		return nil
	}

	node := o.root
	for _, key := range path {
		switch node.Kind {
		case yaml.MappingNode:
			node = mappingValue(node, key)
		case yaml.SequenceNode:
			node = sequenceItem(node, key)
		default:
			return nil
		}

		if node == nil {
			return nil
		}
	}

	return node
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}

	return nil
}

// sequenceItem steps into a sequence; key is the decimal item index.
func sequenceItem(node *yaml.Node, key string) *yaml.Node {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= len(node.Content) {
		return nil
	}

	return node.Content[i]
}

// inDocumentOrder sorts keys by their position in order. Keys missing from
// order go last, sorted lexically.
func inDocumentOrder(keys []string, order []string) []string {
	position := make(map[string]int, len(order))
	for i, key := range order {
		if _, seen := position[key]; !seen {
			position[key] = i
		}
	}

	sorted := append([]string(nil), keys...)
	sort.SliceStable(sorted, func(i, j int) bool {
		pi, iok := position[sorted[i]]
		pj, jok := position[sorted[j]]

		switch {
		case iok && jok:
			return pi < pj
		case iok != jok:
			return iok
		default:
			return sorted[i] < sorted[j]
		}
	})

	return sorted
}
