package appconfig

// The package-level instance backs applications that read configuration
// as ambient process-wide state. Its lifecycle is uninitialized ->
// configured -> computed: Configure may be called any number of times
// before the first access, the first access computes and caches, and
// Reload forces recomputation while options persist.

var std = New()

// Configure replaces the options of the package-level instance.
func Configure(opts Options) {
	std.Configure(opts)
}

// All returns the assembled tree of the package-level instance,
// computing and caching it on first access.
func All() (map[string]any, error) {
	return std.All()
}

// Get retrieves a value from the package-level instance by dot-notation path.
func Get(path string) (any, bool) {
	return std.Get(path)
}

// Reload discards the package-level instance's cached tree and
// recomputes it immediately.
func Reload() (map[string]any, error) {
	return std.Reload()
}

// Default exposes the package-level instance for typed getters and Scan.
func Default() *Config {
	return std
}
