// ABOUTME: Decodes raw intake tokens from JSON documents.
// ABOUTME: Accepts a flat key map or one nested object per metric group.
package intake

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Decode reads a JSON object of raw tokens.
// Values may be strings, numbers, booleans, arrays (joined with commas) or null (absent).
// A nested object is treated as a group and its keys are merged into the result.
func Decode(data []byte) (Raw, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode intake: %w", err)
	}

	raw := Raw{}
	for k, v := range doc {
		if group, ok := v.(map[string]any); ok {
			for gk, gv := range group {
				tok, err := token(gv)
				if err != nil {
					return nil, fmt.Errorf("decode intake %s.%s: %w", k, gk, err)
				}
				raw[gk] = tok
			}
			continue
		}
		tok, err := token(v)
		if err != nil {
			return nil, fmt.Errorf("decode intake %s: %w", k, err)
		}
		raw[k] = tok
	}
	return raw, nil
}

func token(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		if t {
			return "true", nil
		}
		return "false", nil
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			s, err := token(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ","), nil
	default:
		return "", fmt.Errorf("unsupported value %T", v)
	}
}

// Unknown returns the keys of raw that are not in the catalog, in no particular order.
func Unknown(raw Raw) []string {
	var out []string
	for k := range raw {
		if !IsValidKey(k) {
			out = append(out, k)
		}
	}
	return out
}
