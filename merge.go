package appconfig

import (
	"fmt"
	"reflect"

	"dario.cat/mergo"
)

// treeTransformer steers mergo's merge of map[string]any values: keys
// present on both sides recurse when both values are maps, and in every
// other case the higher-precedence value replaces the lower one
// entirely, including empty strings, false, and whole sequences.
type treeTransformer struct{}

func (treeTransformer) Transformer(t reflect.Type) func(dst, src reflect.Value) error {
	if t != reflect.TypeOf(map[string]any(nil)) {
		return nil
	}
	return func(dst, src reflect.Value) error {
		dstTree, ok := dst.Interface().(map[string]any)
		if !ok {
			return fmt.Errorf("merge destination is %T, not a configuration tree", dst.Interface())
		}
		srcTree, ok := src.Interface().(map[string]any)
		if !ok {
			return fmt.Errorf("merge source is %T, not a configuration tree", src.Interface())
		}
		overlayTree(dstTree, srcTree)
		return nil
	}
}

// overlayTree applies higher-precedence keys onto lower in place.
func overlayTree(lower, higher map[string]any) {
	for key, highValue := range higher {
		if highTree, isTree := highValue.(map[string]any); isTree {
			if lowTree, isTree := lower[key].(map[string]any); isTree {
				overlayTree(lowTree, highTree)
				continue
			}
		}
		lower[key] = highValue
	}
}

// mergeTrees deep-merges higher-precedence values over lower-precedence
// ones. Inputs are not mutated.
func mergeTrees(lower, higher map[string]any) (map[string]any, error) {
	merged := deepCopyTree(lower)

	if err := mergo.Merge(&merged, deepCopyTree(higher),
		mergo.WithTransformers(treeTransformer{}),
	); err != nil {
		return nil, fmt.Errorf("failed to merge configuration trees: %w", err)
	}

	return merged, nil
}

// mergeSources folds an ordered list of source trees, first to last,
// each subsequent tree taking precedence over everything before it.
// Nil or empty entries (absent optional sources, an environment with no
// matching variables) contribute nothing.
func mergeSources(sources ...map[string]any) (map[string]any, error) {
	merged := make(map[string]any)

	for _, source := range sources {
		if len(source) == 0 {
			continue
		}
		next, err := mergeTrees(merged, source)
		if err != nil {
			return nil, err
		}
		merged = next
	}

	return merged, nil
}
