package appconfig

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the assembled configuration under a specific base path
// into the target struct or map. The target must be a non-nil pointer.
// Field mapping uses the "toml" struct tag.
func (c *Config) Scan(basePath string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	tree, err := c.All()
	if err != nil {
		return err
	}

	var sectionData any = tree

	// Navigate to the specific section if basePath is provided
	basePath = strings.TrimSuffix(basePath, ".")
	if basePath != "" {
		value, found := getNestedValue(tree, basePath)
		if !found {
			// Decode an empty section rather than failing on a path
			// that no source contributed.
			value = make(map[string]any)
		}
		sectionData = value
	}

	sectionMap, ok := sectionData.(map[string]any)
	if !ok {
		return fmt.Errorf("configuration path %q does not refer to a scannable section (map), but to type %T", basePath, sectionData)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true, // Allow conversions (e.g., string to int if needed by target)
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(sectionMap); err != nil {
		return fmt.Errorf("failed to scan section %q into %T: %w", basePath, target, err)
	}

	return nil
}
