package flake

import (
	"fmt"
	"strings"
	"time"

	"github.com/iancoleman/orderedmap"
)

// SupportedVersion is the only lock file version the nodes schema accepts
const SupportedVersion = 7

// defaultRootName is used by the root-inputs schema when "root" is absent
const defaultRootName = "root"

// Schema selects how inputs are located in the lock document
type Schema string

const (
	// SchemaNodes reports every node except the root, after checking the version
	SchemaNodes Schema = "nodes"
	// SchemaRootInputs reports only the nodes the root node lists as inputs
	SchemaRootInputs Schema = "root-inputs"
)

// Schemas lists the accepted schema names
var Schemas = []Schema{SchemaNodes, SchemaRootInputs}

// ParseSchema validates a schema name. An empty name selects SchemaNodes.
func ParseSchema(name string) (Schema, error) {
	switch Schema(strings.TrimSpace(strings.ToLower(name))) {
	case "", SchemaNodes:
		return SchemaNodes, nil
	case SchemaRootInputs:
		return SchemaRootInputs, nil
	default:
		return "", fmt.Errorf("%w: %q (expected %q or %q)", ErrUnknownSchema, name, SchemaNodes, SchemaRootInputs)
	}
}

// Parse extracts the input set from a decoded lock document
func Parse(doc *Document, schema Schema) (*InputSet, error) {
	if doc == nil || doc.root == nil {
		return nil, malformed("empty document")
	}

	switch schema {
	case SchemaNodes, "":
		return parseNodes(doc)
	case SchemaRootInputs:
		return parseRootInputs(doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchema, schema)
	}
}

// checkVersion verifies the top-level version field
func checkVersion(doc *Document) error {
	if n, ok := doc.integer("version"); ok && n == SupportedVersion {
		return nil
	}
	v, ok := doc.literal("version")
	return &VersionError{Expected: SupportedVersion, Actual: rawText(v, ok)}
}

// parseNodes reads every node except the one named by "root"
func parseNodes(doc *Document) (*InputSet, error) {
	if err := checkVersion(doc); err != nil {
		return nil, err
	}

	// A missing root name excludes nothing
	rootName, _ := stringField(doc.root, "root")

	nodes, ok := objectField(doc.root, "nodes")
	if !ok {
		return nil, malformed("missing nodes object")
	}

	inputs := make(map[string]time.Time, len(nodes.Keys()))
	for _, name := range nodes.Keys() {
		if name == rootName {
			continue
		}
		node, _ := nodes.Get(name)
		ts, err := lastModified(doc, name, node)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", name, err)
		}
		inputs[name] = ts
	}

	return NewInputSet(inputs)
}

// parseRootInputs reads the nodes referenced by nodes.<root>.inputs
func parseRootInputs(doc *Document) (*InputSet, error) {
	nodes, ok := objectField(doc.root, "nodes")
	if !ok {
		return nil, malformed("missing nodes object")
	}

	rootName := defaultRootName
	if name, ok := stringField(doc.root, "root"); ok {
		rootName = name
	}

	rootNode, ok := objectField(nodes, rootName)
	if !ok {
		return nil, malformed("missing root node %q", rootName)
	}
	aliases, ok := objectField(rootNode, "inputs")
	if !ok {
		return nil, malformed("root node %q has no inputs object", rootName)
	}

	inputs := make(map[string]time.Time, len(aliases.Keys()))
	for _, alias := range aliases.Keys() {
		ref, _ := aliases.Get(alias)
		name, err := resolveInput(nodes, rootName, ref, 0)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", alias, err)
		}

		node, ok := nodes.Get(name)
		if !ok {
			return nil, fmt.Errorf("input %q: %w", alias, malformed("node %q does not exist", name))
		}
		ts, err := lastModified(doc, name, node)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", name, err)
		}
		inputs[name] = ts
	}

	return NewInputSet(inputs)
}

// resolveInput turns an input reference into a node name. A reference is
// either a node name or a follows path: input names walked from the root node.
func resolveInput(nodes *orderedmap.OrderedMap, rootName string, ref interface{}, depth int) (string, error) {
	if depth > len(nodes.Keys()) {
		return "", malformed("follows cycle")
	}

	switch r := ref.(type) {
	case string:
		return r, nil
	case []interface{}:
		current := rootName
		for _, segment := range r {
			name, ok := segment.(string)
			if !ok {
				return "", malformed("follows path contains a non-string element")
			}
			node, ok := objectField(nodes, current)
			if !ok {
				return "", malformed("node %q does not exist", current)
			}
			inputs, ok := objectField(node, "inputs")
			if !ok {
				return "", malformed("node %q has no inputs object", current)
			}
			next, ok := inputs.Get(name)
			if !ok {
				return "", malformed("node %q has no input %q", current, name)
			}
			resolved, err := resolveInput(nodes, rootName, next, depth+1)
			if err != nil {
				return "", err
			}
			current = resolved
		}
		return current, nil
	default:
		return "", malformed("input reference is neither a string nor a follows path")
	}
}

// lastModified reads nodes.<name>.locked.lastModified as Unix seconds
func lastModified(doc *Document, name string, node interface{}) (time.Time, error) {
	obj, ok := asObject(node)
	if !ok {
		return time.Time{}, malformed("node is not an object")
	}
	locked, ok := objectField(obj, "locked")
	if !ok {
		return time.Time{}, malformed("missing locked object")
	}
	if _, ok := locked.Get("lastModified"); !ok {
		return time.Time{}, malformed("missing locked.lastModified")
	}
	secs, ok := doc.integer("nodes", name, "locked", "lastModified")
	if !ok {
		return time.Time{}, malformed("locked.lastModified is not an integer")
	}
	return time.Unix(secs, 0).UTC(), nil
}
