package autosview

import (
	"fmt"
	"reflect"
)

// DefaultIdentifiers are the fields used to pair array elements across layers.
// Issues are paired by tema; anything carrying an id is paired by id.
var DefaultIdentifiers = []string{"tema", "id"}

// MergeLayers merges document layers, later layers overriding earlier ones.
// Inputs are not modified.
//
// Merge rules:
//   - Scalars: the later value wins
//   - Objects: merged key by key, recursively
//   - Arrays: elements that are objects sharing an identifier value are merged in place;
//     elements already present verbatim are skipped; everything else is appended
func MergeLayers(layers []map[string]any, identifiers []string) (map[string]any, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("no layers to merge")
	}
	if identifiers == nil {
		identifiers = DefaultIdentifiers
	}
	merged := map[string]any{}
	for _, layer := range layers {
		merged = mergeObject(merged, layer, identifiers)
	}
	return merged, nil
}

func mergeObject(base, over map[string]any, identifiers []string) map[string]any {
	out := cloneObject(base)
	for key, ov := range over {
		bv, exists := out[key]
		if !exists {
			out[key] = cloneValue(ov)
			continue
		}
		switch ov := ov.(type) {
		case map[string]any:
			if bm, ok := bv.(map[string]any); ok {
				out[key] = mergeObject(bm, ov, identifiers)
				continue
			}
		case []any:
			if bs, ok := bv.([]any); ok {
				out[key] = mergeArray(bs, ov, identifiers)
				continue
			}
		}
		out[key] = cloneValue(ov)
	}
	return out
}

func mergeArray(base, over []any, identifiers []string) []any {
	out := cloneArray(base)
	if out == nil {
		out = []any{}
	}
	for _, el := range over {
		if containsEqual(out, el) {
			continue
		}
		if obj, ok := el.(map[string]any); ok {
			if idx := indexByIdentifier(out, obj, identifiers); idx >= 0 {
				out[idx] = mergeObject(out[idx].(map[string]any), obj, identifiers)
				continue
			}
		}
		out = append(out, cloneValue(el))
	}
	return out
}

// indexByIdentifier finds the element of items sharing obj's first non-empty identifier.
func indexByIdentifier(items []any, obj map[string]any, identifiers []string) int {
	for _, key := range identifiers {
		want, ok := obj[key]
		if !ok || want == nil || want == "" {
			continue
		}
		for i, item := range items {
			cand, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if reflect.DeepEqual(cand[key], want) {
				return i
			}
		}
		return -1
	}
	return -1
}

func containsEqual(items []any, el any) bool {
	for _, item := range items {
		if reflect.DeepEqual(item, el) {
			return true
		}
	}
	return false
}

func cloneObject(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneArray(s []any) []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return cloneObject(v)
	case []any:
		return cloneArray(v)
	}
	return v
}
