package appconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Loader turns a source path into configuration data. The pipeline
// depends only on this interface, so sources are not tied to any
// particular file or module format.
type Loader interface {
	Load(path string) (map[string]any, error)
}

// FileLoader reads TOML, JSON, or YAML files, selecting the parser from
// the file extension with content detection as a fallback.
type FileLoader struct{}

// Load reads and parses the file at path.
// A missing file is reported as ErrFileNotFound.
func (FileLoader) Load(path string) (map[string]any, error) {
	fileData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s'", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(fileData)
		if format == "" {
			return nil, fmt.Errorf("%w for file '%s'", ErrUnknownFormat, path)
		}
	}

	fileConfig := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(fileData, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config file '%s': %w", path, err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(fileData))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file '%s': %w", path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(fileData, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file '%s': %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w for file '%s'", ErrUnknownFormat, path)
	}

	return normalizeTree(fileConfig), nil
}

// SafeLoad loads a file referenced from inside config data and never
// fails: on success it returns the parsed tree, otherwise a sentinel
// string classifying the failure. refPath must be relative; it is
// resolved against dir.
func SafeLoad(loader Loader, dir, refPath string) any {
	if loader == nil {
		loader = FileLoader{}
	}

	if filepath.IsAbs(refPath) {
		return SentinelAbsolutePath
	}

	tree, err := loader.Load(filepath.Join(dir, refPath))
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			return SentinelFileNotFound + refPath
		}
		return SentinelRequireError + err.Error()
	}

	return tree
}

// resolveFileRefs walks a source tree and replaces every "@file:" marker
// with the referenced file's content, or with the failure sentinel at
// the exact key where the reference lived. The walk covers sequence
// elements as well as map values.
func resolveFileRefs(loader Loader, dir string, tree map[string]any) map[string]any {
	for key, value := range tree {
		tree[key] = resolveFileRefValue(loader, dir, value)
	}
	return tree
}

func resolveFileRefValue(loader Loader, dir string, value any) any {
	switch v := value.(type) {
	case map[string]any:
		return resolveFileRefs(loader, dir, v)
	case []any:
		for i, elem := range v {
			v[i] = resolveFileRefValue(loader, dir, elem)
		}
		return v
	case string:
		if refPath, isRef := strings.CutPrefix(v, fileRefPrefix); isRef {
			return SafeLoad(loader, dir, refPath)
		}
		return v
	default:
		return v
	}
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	// Try JSON first (strict format)
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	// Try TOML before YAML: YAML accepts nearly any plain text
	var tomlTest any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	return ""
}
