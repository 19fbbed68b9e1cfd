package flake

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/iancoleman/orderedmap"
)

// Document is a decoded flake lock. Object keys keep the order they have in
// the file, so iteration (and the first error reported) is deterministic.
//
// orderedmap turns every number into a float64, which loses the difference
// between 7 and 7.0. numbers holds a second decoding of the same bytes with
// number literals kept as text.
type Document struct {
	root    *orderedmap.OrderedMap
	numbers map[string]interface{}
}

// DecodeDocument decodes lock file content into a Document.
// Invalid JSON yields a *SyntaxError; valid JSON whose top level is not an
// object yields ErrMalformed.
func DecodeDocument(data []byte) (*Document, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, &SyntaxError{Offset: syntaxErr.Offset, Err: err}
		}
		return nil, &SyntaxError{Err: err}
	}

	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, malformed("top level is not an object")
	}

	root := orderedmap.New()
	if err := json.Unmarshal(raw, root); err != nil {
		return nil, malformed("%v", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var numbers map[string]interface{}
	if err := dec.Decode(&numbers); err != nil {
		return nil, malformed("%v", err)
	}

	return &Document{root: root, numbers: numbers}, nil
}

// literal returns the value at path from the number-preserving decoding
func (d *Document) literal(path ...string) (interface{}, bool) {
	if d == nil || d.numbers == nil {
		return nil, false
	}
	var current interface{} = d.numbers
	for _, key := range path {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		if current, ok = obj[key]; !ok {
			return nil, false
		}
	}
	return current, true
}

// integer returns the value at path when it is written as an integer literal
func (d *Document) integer(path ...string) (int64, bool) {
	v, ok := d.literal(path...)
	if !ok {
		return 0, false
	}
	return integerLiteral(v)
}

// asObject converts a decoded JSON value to an ordered object.
// orderedmap stores nested objects by value, so both forms are accepted.
func asObject(v interface{}) (*orderedmap.OrderedMap, bool) {
	switch o := v.(type) {
	case *orderedmap.OrderedMap:
		return o, o != nil
	case orderedmap.OrderedMap:
		return &o, true
	case map[string]interface{}:
		keys := make([]string, 0, len(o))
		for k := range o {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		converted := orderedmap.New()
		for _, k := range keys {
			converted.Set(k, o[k])
		}
		return converted, true
	default:
		return nil, false
	}
}

// objectField returns obj[key] when it is an object
func objectField(obj *orderedmap.OrderedMap, key string) (*orderedmap.OrderedMap, bool) {
	if obj == nil {
		return nil, false
	}
	v, ok := obj.Get(key)
	if !ok {
		return nil, false
	}
	return asObject(v)
}

// stringField returns obj[key] when it is a string
func stringField(obj *orderedmap.OrderedMap, key string) (string, bool) {
	if obj == nil {
		return "", false
	}
	v, ok := obj.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// integerLiteral accepts JSON numbers written without a fraction or
// exponent that fit in an int64
func integerLiteral(v interface{}) (int64, bool) {
	n, ok := v.(json.Number)
	if !ok || strings.ContainsAny(n.String(), ".eE") {
		return 0, false
	}
	i, err := strconv.ParseInt(n.String(), 10, 64)
	return i, err == nil
}

// rawText renders a decoded value back to JSON for error messages
func rawText(v interface{}, present bool) string {
	if !present {
		return "null"
	}
	if o, ok := asObject(v); ok {
		v = o
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "?"
	}
	return string(data)
}
