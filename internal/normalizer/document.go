package normalizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
)

// Document is a decoded catalog response: a JSON object with nested values.
type Document map[string]any

// Normalization errors.
var (
	ErrMalformedDocument = errors.New("response body is not a JSON object")
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidField      = errors.New("field has unexpected type")
	ErrMissingStat       = errors.New("missing base stat")
)

// Decode reads a single JSON object from r. Numbers are kept as json.Number.
func Decode(r io.Reader) (Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	if doc == nil {
		return nil, ErrMalformedDocument
	}

	return doc, nil
}

func field(obj map[string]any, path, key string) (any, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, path+key)
	}

	return v, nil
}

func invalid(path, key, want string) error {
	return fmt.Errorf("%w: %s (want %s)", ErrInvalidField, path+key, want)
}

func stringField(obj map[string]any, path, key string) (string, error) {
	v, err := field(obj, path, key)
	if err != nil {
		return "", err
	}

	s, ok := v.(string)
	if !ok {
		return "", invalid(path, key, "string")
	}

	return s, nil
}

func boolField(obj map[string]any, path, key string) (bool, error) {
	v, err := field(obj, path, key)
	if err != nil {
		return false, err
	}

	b, ok := v.(bool)
	if !ok {
		return false, invalid(path, key, "bool")
	}

	return b, nil
}

func floatField(obj map[string]any, path, key string) (float64, error) {
	v, err := field(obj, path, key)
	if err != nil {
		return 0, err
	}

	f, ok := toFloat(v)
	if !ok {
		return 0, invalid(path, key, "number")
	}

	return f, nil
}

func intField(obj map[string]any, path, key string) (int, error) {
	v, err := field(obj, path, key)
	if err != nil {
		return 0, err
	}

	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), nil
		}
	case float64:
		if n == math.Trunc(n) {
			return int(n), nil
		}
	}

	return 0, invalid(path, key, "integer")
}

func objectField(obj map[string]any, path, key string) (map[string]any, error) {
	v, err := field(obj, path, key)
	if err != nil {
		return nil, err
	}

	m, ok := asObject(v)
	if !ok {
		return nil, invalid(path, key, "object")
	}

	return m, nil
}

func listField(obj map[string]any, path, key string) ([]any, error) {
	v, err := field(obj, path, key)
	if err != nil {
		return nil, err
	}

	l, ok := v.([]any)
	if !ok {
		return nil, invalid(path, key, "array")
	}

	return l, nil
}

// resourceName reads obj[key].name, the catalog's named-resource shape.
func resourceName(obj map[string]any, path, key string) (string, error) {
	res, err := objectField(obj, path, key)
	if err != nil {
		return "", err
	}

	return stringField(res, path+key+".", "name")
}

// entries returns the list at obj[key] as objects.
func entries(obj map[string]any, path, key string) ([]map[string]any, error) {
	list, err := listField(obj, path, key)
	if err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(list))
	for i, item := range list {
		m, ok := asObject(item)
		if !ok {
			return nil, invalid(path, fmt.Sprintf("%s[%d]", key, i), "object")
		}

		out = append(out, m)
	}

	return out, nil
}

func entryPath(path, key string, i int) string {
	return fmt.Sprintf("%s%s[%d].", path, key, i)
}

func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Document:
		return m, true
	}

	return nil, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()

		return f, err == nil
	}

	return 0, false
}
