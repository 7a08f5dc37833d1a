package appconfig

import (
	"sort"
	"strings"
)

// sequenceSeparator splits an environment variable value into a string
// sequence. Empty segments are dropped, so "a|" yields [a] and a value
// of exactly "|" yields an empty sequence.
const sequenceSeparator = "|"

// parseEnviron converts matching environment variables into a nested
// configuration tree. A variable participates when its name starts with
// prefix (case-sensitive); the remainder of the name, split on
// delimiter, becomes the insertion path. Values stay strings unless
// they contain the sequence separator.
//
// Keys are processed in sorted order so overlapping shallow/deep paths
// resolve the same way on every load: a scalar whose location also
// carries deeper keys is preserved inside the container under the
// implicit-value key "_" rather than discarded.
func parseEnviron(environ map[string]string, prefix, delimiter string) map[string]any {
	names := make([]string, 0, len(environ))
	for name := range environ {
		if strings.HasPrefix(name, prefix) && len(name) > len(prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	tree := make(map[string]any)
	for _, name := range names {
		segments := splitEnvPath(strings.TrimPrefix(name, prefix), delimiter)
		if len(segments) == 0 {
			continue
		}
		setNestedValue(tree, segments, coerceEnvValue(environ[name]))
	}

	return tree
}

// splitEnvPath splits a prefix-stripped variable name into path
// segments, skipping empties produced by doubled delimiters.
func splitEnvPath(name, delimiter string) []string {
	if delimiter == "" {
		return []string{name}
	}

	parts := strings.Split(name, delimiter)
	segments := parts[:0]
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// coerceEnvValue turns a raw environment value into either a scalar
// string or, when it contains the sequence separator, a sequence of the
// non-empty separated parts.
func coerceEnvValue(raw string) any {
	if !strings.Contains(raw, sequenceSeparator) {
		return raw
	}

	values := []any{}
	for _, part := range strings.Split(raw, sequenceSeparator) {
		if part != "" {
			values = append(values, part)
		}
	}
	return values
}

// environToMap converts os.Environ()-style "KEY=value" entries into a
// lookup map. Later duplicates win, matching process semantics.
func environToMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, entry := range environ {
		if key, value, found := strings.Cut(entry, "="); found && key != "" {
			env[key] = value
		}
	}
	return env
}
