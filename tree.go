package appconfig

import (
	"fmt"
	"strings"
)

// setNestedValue sets a value in a nested map using explicit path segments.
// It creates intermediate maps if they don't exist.
// If a segment holds a scalar and a deeper path is inserted through it,
// the scalar is preserved inside the new container under implicitValueKey
// rather than discarded.
func setNestedValue(nested map[string]any, segments []string, value any) {
	current := nested

	// Iterate through segments up to the second-to-last one
	for i := 0; i < len(segments)-1; i++ {
		segment := segments[i]

		next, exists := current[segment]
		if !exists {
			newMap := make(map[string]any)
			current[segment] = newMap
			current = newMap
			continue
		}

		if nextMap, isMap := next.(map[string]any); isMap {
			current = nextMap
		} else {
			// A scalar already lives here; coerce it into a container
			// and keep the scalar under the implicit-value key.
			newMap := map[string]any{implicitValueKey: next}
			current[segment] = newMap
			current = newMap
		}
	}

	lastSegment := segments[len(segments)-1]
	if existing, exists := current[lastSegment]; exists {
		if existingMap, isMap := existing.(map[string]any); isMap {
			if _, isMap := value.(map[string]any); !isMap {
				// A container already lives at the target; tuck the
				// scalar inside it instead of overwriting the subtree.
				existingMap[implicitValueKey] = value
				return
			}
		}
	}
	current[lastSegment] = value
}

// getNestedValue resolves a dot-notation path against a nested map.
func getNestedValue(nested map[string]any, path string) (any, bool) {
	segments := strings.Split(path, ".")
	current := any(nested)

	for _, segment := range segments {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		value, exists := currentMap[segment]
		if !exists {
			return nil, false
		}
		current = value
	}

	return current, true
}

// flattenMap converts a nested map[string]any to a flat map[string]any with dot-notation paths.
func flattenMap(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range nested {
		newPath := key
		if prefix != "" {
			newPath = prefix + "." + key
		}

		if nestedMap, isMap := value.(map[string]any); isMap {
			for subPath, subValue := range flattenMap(nestedMap, newPath) {
				flat[subPath] = subValue
			}
		} else {
			flat[newPath] = value
		}
	}

	return flat
}

// deepCopyTree produces an independent copy of a configuration tree.
// Maps and []any sequences are copied recursively; scalars are shared.
func deepCopyTree(tree map[string]any) map[string]any {
	copied := make(map[string]any, len(tree))
	for key, value := range tree {
		copied[key] = deepCopyValue(value)
	}
	return copied
}

func deepCopyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return deepCopyTree(v)
	case []any:
		copied := make([]any, len(v))
		for i, elem := range v {
			copied[i] = deepCopyValue(elem)
		}
		return copied
	case []string:
		copied := make([]string, len(v))
		copy(copied, v)
		return copied
	default:
		return v
	}
}

// normalizeTree converts map[any]any containers (as produced by YAML
// decoding of some documents) into map[string]any so the whole pipeline
// operates on one container type.
func normalizeTree(tree map[string]any) map[string]any {
	for key, value := range tree {
		tree[key] = normalizeValue(value)
	}
	return tree
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return normalizeTree(v)
	case map[any]any:
		converted := make(map[string]any, len(v))
		for key, elem := range v {
			converted[stringifyKey(key)] = normalizeValue(elem)
		}
		return converted
	case []any:
		for i, elem := range v {
			v[i] = normalizeValue(elem)
		}
		return v
	default:
		return v
	}
}

func stringifyKey(key any) string {
	if s, ok := key.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", key)
}
