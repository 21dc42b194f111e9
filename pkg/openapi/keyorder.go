package openapi

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// PropertyOrder maps the JSON pointer of an object schema (for example
// "#/components/schemas/Pet") to its property names in document order.
type PropertyOrder map[string][]string

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// PointerToken escapes a key for use as a JSON pointer reference token
func PointerToken(key string) string {
	return pointerEscaper.Replace(key)
}

// Child returns the pointer of the named child of path
func Child(path string, tokens ...string) string {
	var b strings.Builder
	b.WriteString(path)
	for _, t := range tokens {
		b.WriteByte('/')
		b.WriteString(PointerToken(t))
	}
	return b.String()
}

// ExtractPropertyOrder parses a raw YAML or JSON document and records the key
// order of every "properties" object it contains.
func ExtractPropertyOrder(data []byte) (PropertyOrder, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("reading property order: %w", err)
	}
	order := PropertyOrder{}
	if len(root.Content) > 0 {
		walkNode(root.Content[0], "#", order)
	}
	return order, nil
}

func walkNode(n *yaml.Node, path string, order PropertyOrder) {
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i].Value, n.Content[i+1]
			if key == "properties" && val.Kind == yaml.MappingNode {
				names := make([]string, 0, len(val.Content)/2)
				for j := 0; j+1 < len(val.Content); j += 2 {
					names = append(names, val.Content[j].Value)
				}
				order[path] = names
			}
			walkNode(val, Child(path, key), order)
		}
	case yaml.SequenceNode:
		for i, c := range n.Content {
			walkNode(c, path+"/"+strconv.Itoa(i), order)
		}
	case yaml.AliasNode:
		if n.Alias != nil {
			walkNode(n.Alias, path, order)
		}
	}
}

// Sort returns names ordered as declared at path. Names the document does not
// list for path follow in lexical order.
func (o PropertyOrder) Sort(path string, names []string) []string {
	pending := make(map[string]struct{}, len(names))
	for _, n := range names {
		pending[n] = struct{}{}
	}
	out := make([]string, 0, len(names))
	for _, n := range o[path] {
		if _, ok := pending[n]; ok {
			out = append(out, n)
			delete(pending, n)
		}
	}
	rest := make([]string, 0, len(pending))
	for n := range pending {
		rest = append(rest, n)
	}
	sort.Strings(rest)
	return append(out, rest...)
}
