package appconfig

import (
	"os"
	"path/filepath"
	"strings"
)

// findSourceFile locates a config source under dir by probing name with
// each extension in order. A name that already ends in one of the
// extensions is probed as-is; any other dot in the name (e.g.
// "config.local", "config.production") is part of the name itself.
// Returns the full path and whether anything was found.
func findSourceFile(dir, name string, extensions []string) (string, bool) {
	if hasKnownExtension(name, extensions) {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path, true
		}
		return "", false
	}

	for _, ext := range extensions {
		path := filepath.Join(dir, name+ext)
		if fileExists(path) {
			return path, true
		}
	}

	return "", false
}

func hasKnownExtension(name string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	for _, known := range extensions {
		if ext == strings.ToLower(known) {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && !stat.IsDir()
}

// environmentFileName builds the environment-specific source name by
// convention: "<configName>.<envName>", e.g. "config.production".
func environmentFileName(configName, envName string) string {
	return configName + "." + envName
}
