package i18n

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrMalformedDictionary is returned by ParseDictionary when the payload is
// not a tree of strings.
var ErrMalformedDictionary = errors.New("malformed dictionary")

// Dictionary is a read-only tree of UI strings for one language. Nodes are
// map[string]any, []any or string.
type Dictionary struct {
	root map[string]any
	raw  []byte
}

// ParseDictionary decodes a JSON dictionary and checks its shape once:
// the root must be an object and every leaf a string.
func ParseDictionary(data []byte) (*Dictionary, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDictionary, err)
	}
	obj, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: root is %T, want object", ErrMalformedDictionary, root)
	}
	if err := checkTree("", obj); err != nil {
		return nil, err
	}
	return &Dictionary{root: obj, raw: append([]byte(nil), data...)}, nil
}

func checkTree(prefix string, node any) error {
	switch v := node.(type) {
	case string:
		return nil
	case map[string]any:
		for k, child := range v {
			if err := checkTree(join(prefix, k), child); err != nil {
				return err
			}
		}
		return nil
	case []any:
		for i, child := range v {
			if err := checkTree(join(prefix, strconv.Itoa(i)), child); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %s is %T, want string", ErrMalformedDictionary, prefix, node)
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// Resolve walks tree along the dot-delimited path. Objects are indexed by
// key and arrays by decimal position. It reports ok only when the full
// path ends on a string.
func Resolve(tree any, path string) (string, bool) {
	if path == "" {
		return "", false
	}
	node := tree
	for _, seg := range strings.Split(path, ".") {
		switch v := node.(type) {
		case map[string]any:
			child, ok := v[seg]
			if !ok {
				return "", false
			}
			node = child
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(v) {
				return "", false
			}
			node = v[i]
		default:
			return "", false
		}
	}
	s, ok := node.(string)
	return s, ok
}

// Resolve looks up path in the dictionary. A nil dictionary resolves
// nothing.
func (d *Dictionary) Resolve(path string) (string, bool) {
	if d == nil {
		return "", false
	}
	return Resolve(d.root, path)
}

// Lookup returns the value at path or fallback when it does not resolve to
// a non-empty string.
func (d *Dictionary) Lookup(path, fallback string) string {
	if s, ok := d.Resolve(path); ok && s != "" {
		return s
	}
	return fallback
}

// Count returns the number of entries of the array at path, or 0.
func (d *Dictionary) Count(path string) int {
	if d == nil {
		return 0
	}
	node := any(d.root)
	for _, seg := range strings.Split(path, ".") {
		switch v := node.(type) {
		case map[string]any:
			node = v[seg]
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(v) {
				return 0
			}
			node = v[i]
		default:
			return 0
		}
	}
	if list, ok := node.([]any); ok {
		return len(list)
	}
	return 0
}

// Keys lists every leaf path in lexical order.
func (d *Dictionary) Keys() []string {
	if d == nil {
		return nil
	}
	var keys []string
	var walk func(prefix string, node any)
	walk = func(prefix string, node any) {
		switch v := node.(type) {
		case string:
			keys = append(keys, prefix)
		case map[string]any:
			for k, child := range v {
				walk(join(prefix, k), child)
			}
		case []any:
			for i, child := range v {
				walk(join(prefix, strconv.Itoa(i)), child)
			}
		}
	}
	walk("", d.root)
	sort.Strings(keys)
	return keys
}

// JSON returns the dictionary as it was loaded.
func (d *Dictionary) JSON() []byte {
	if d == nil {
		return nil
	}
	return d.raw
}
