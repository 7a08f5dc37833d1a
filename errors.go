package appconfig

import "errors"

var (
	// ErrBaseConfigNotFound indicates the mandatory base config file
	// could not be located under the configured startup path.
	ErrBaseConfigNotFound = errors.New("base config file not found")

	// ErrFileNotFound indicates a config source file does not exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrUnknownFormat indicates a config file's format could not be
	// determined from its extension or content.
	ErrUnknownFormat = errors.New("unable to determine config format")
)

// Sentinel strings substituted inline for values that could not be
// produced from a file reference. Consumers may pattern-match on these
// exact prefixes, so they are part of the public contract.
const (
	// SentinelAbsolutePath replaces a file reference that used an
	// absolute path where only relative paths are permitted.
	SentinelAbsolutePath = "ABSOLUTE_PATH_NOT_ALLOWED"

	// SentinelFileNotFound prefixes the original path of a file
	// reference whose target does not exist.
	SentinelFileNotFound = "FILE_NOT_FOUND: "

	// SentinelRequireError prefixes the diagnostic detail of a file
	// reference whose target exists but failed to load.
	SentinelRequireError = "REQUIRE_ERROR: "
)

// implicitValueKey holds a scalar that was displaced when a deeper
// environment variable path forced its location to become a container.
const implicitValueKey = "_"

// fileRefPrefix marks a scalar config value as a reference to another
// file whose parsed content should replace it during assembly.
const fileRefPrefix = "@file:"
