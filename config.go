package appconfig

import (
	"fmt"
	"os"
	"sync"
)

// Default conventions for source discovery and environment mapping.
const (
	DefaultConfigName      = "config"
	DefaultLocalConfigName = "config.local"
	DefaultEnvPrefix       = "app_config_"
	DefaultEnvDelimiter    = "_"
	DefaultEnvVariable     = "APP_ENV"
)

// Options controls how the configuration tree is assembled.
type Options struct {
	// StartupPath is the base directory for resolving source files and
	// relative file references. Empty means the process working directory.
	StartupPath string

	// ConfigName is the base config file name, without extension unless
	// a specific file is meant. The base config is mandatory.
	ConfigName string

	// LocalConfigName is the developer-local override file name.
	LocalConfigName string

	// EnvironmentPrefix selects which environment variables contribute
	// configuration. Matching is case-sensitive.
	EnvironmentPrefix string

	// EnvironmentDelimiter splits a prefix-stripped variable name into
	// nested path segments.
	EnvironmentDelimiter string

	// EnvironmentVariable names the variable that selects the active
	// environment (e.g. "production"). Unset means DefaultEnvironment.
	EnvironmentVariable string

	// Extensions to probe when a source name has none, in order.
	Extensions []string

	// EnableStateVariables controls injection of the derived nodeEnv,
	// isDebug, isProduction, and isStage fields. Nil means enabled;
	// pointing at false leaves the keys entirely absent from the
	// result. Use StateVariables to build the pointer.
	EnableStateVariables *bool

	// Loader overrides how a source path is turned into data.
	// Nil means FileLoader.
	Loader Loader

	// Environ overrides the process environment snapshot, in
	// os.Environ() "KEY=value" form. Nil means the live environment.
	Environ []string
}

// DefaultOptions returns the standard assembly options. Callers should
// start from these and override fields rather than building Options
// from the zero value.
func DefaultOptions() Options {
	return Options{
		ConfigName:           DefaultConfigName,
		LocalConfigName:      DefaultLocalConfigName,
		EnvironmentPrefix:    DefaultEnvPrefix,
		EnvironmentDelimiter: DefaultEnvDelimiter,
		EnvironmentVariable:  DefaultEnvVariable,
		Extensions:           []string{".toml", ".json", ".yaml", ".yml"},
		EnableStateVariables: StateVariables(true),
	}
}

// StateVariables builds the pointer Options.EnableStateVariables wants,
// keeping the zero Options value equivalent to the defaults.
func StateVariables(enabled bool) *bool {
	return &enabled
}

// Config assembles and caches the merged configuration tree.
type Config struct {
	mutex  sync.RWMutex
	opts   Options
	merged map[string]any // nil until first computed
}

// New creates a Config with default options.
func New() *Config {
	return &Config{opts: DefaultOptions()}
}

// NewWithOptions creates a Config with the given options.
func NewWithOptions(opts Options) *Config {
	c := New()
	c.Configure(opts)
	return c
}

// Configure replaces the active options. It does not itself trigger
// loading, but it invalidates any previously computed tree so the next
// access reflects the new options.
func (c *Config) Configure(opts Options) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.opts = fillOptions(opts)
	c.merged = nil
}

// Options returns a copy of the active options.
func (c *Config) Options() Options {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.opts
}

// All returns the assembled configuration tree, running the full
// pipeline on first access and caching the result for every subsequent
// call until Configure or Reload invalidates it. A missing or malformed
// base config surfaces as an error; absent optional override files are
// silently treated as empty contributions. The returned tree must be
// treated as read-only.
func (c *Config) All() (map[string]any, error) {
	c.mutex.RLock()
	merged := c.merged
	c.mutex.RUnlock()

	if merged != nil {
		return merged, nil
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.merged == nil {
		tree, err := assemble(c.opts)
		if err != nil {
			return nil, err
		}
		c.merged = tree
	}

	return c.merged, nil
}

// Reload discards the cached tree and recomputes it immediately against
// the current process environment and the active options.
func (c *Config) Reload() (map[string]any, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	tree, err := assemble(c.opts)
	if err != nil {
		c.merged = nil
		return nil, err
	}

	c.merged = tree
	return c.merged, nil
}

// Get retrieves a value from the assembled tree using a dot-notation
// path. It returns false when the path is absent or assembly fails; use
// All to observe assembly errors.
func (c *Config) Get(path string) (any, bool) {
	tree, err := c.All()
	if err != nil {
		return nil, false
	}
	return getNestedValue(tree, path)
}

// Flatten returns the assembled tree as a flat map of dot-notation
// paths to leaf values, useful for listing or diffing configuration.
func (c *Config) Flatten() (map[string]any, error) {
	tree, err := c.All()
	if err != nil {
		return nil, err
	}
	return flattenMap(tree, ""), nil
}

// fillOptions backfills convention defaults for fields left at their
// zero value, so a hand-built Options behaves like DefaultOptions for
// every field the caller did not touch.
func fillOptions(opts Options) Options {
	defaults := DefaultOptions()

	if opts.ConfigName == "" {
		opts.ConfigName = defaults.ConfigName
	}
	if opts.LocalConfigName == "" {
		opts.LocalConfigName = defaults.LocalConfigName
	}
	if opts.EnvironmentPrefix == "" {
		opts.EnvironmentPrefix = defaults.EnvironmentPrefix
	}
	if opts.EnvironmentDelimiter == "" {
		opts.EnvironmentDelimiter = defaults.EnvironmentDelimiter
	}
	if opts.EnvironmentVariable == "" {
		opts.EnvironmentVariable = defaults.EnvironmentVariable
	}
	if len(opts.Extensions) == 0 {
		opts.Extensions = defaults.Extensions
	}
	if opts.EnableStateVariables == nil {
		opts.EnableStateVariables = defaults.EnableStateVariables
	}

	return opts
}

// assemble runs the full pipeline: discover and load the three
// file-based sources in precedence order, merge the parsed environment
// variables on top, resolve redirect placeholders, then inject the
// derived state variables.
func assemble(opts Options) (map[string]any, error) {
	dir := opts.StartupPath
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		dir = cwd
	}

	loader := opts.Loader
	if loader == nil {
		loader = FileLoader{}
	}

	environ := opts.Environ
	if environ == nil {
		environ = os.Environ()
	}
	env := environToMap(environ)
	envName := environmentName(env, opts.EnvironmentVariable)

	base, err := loadSource(loader, dir, opts.ConfigName, opts.Extensions, true)
	if err != nil {
		return nil, err
	}
	markers := collectRedirectMarkers(base)

	envFile, err := loadSource(loader, dir, environmentFileName(opts.ConfigName, envName), opts.Extensions, false)
	if err != nil {
		return nil, err
	}

	localFile, err := loadSource(loader, dir, opts.LocalConfigName, opts.Extensions, false)
	if err != nil {
		return nil, err
	}

	envTree := parseEnviron(env, opts.EnvironmentPrefix, opts.EnvironmentDelimiter)

	merged, err := mergeSources(base, envFile, localFile, envTree)
	if err != nil {
		return nil, err
	}

	merged = resolveRedirects(merged, markers, env)

	if opts.EnableStateVariables == nil || *opts.EnableStateVariables {
		injectStateVariables(merged, envName)
	}

	return merged, nil
}

// loadSource discovers and loads one file-based source. An absent
// optional source yields nil without error; an absent mandatory source
// is an ErrBaseConfigNotFound. A present but unloadable file is always
// an error: that is a configuration-of-the-loader problem, not a data
// reference inside config values.
func loadSource(loader Loader, dir, name string, extensions []string, mandatory bool) (map[string]any, error) {
	path, found := findSourceFile(dir, name, extensions)
	if !found {
		if mandatory {
			return nil, fmt.Errorf("%w: '%s' under '%s'", ErrBaseConfigNotFound, name, dir)
		}
		return nil, nil
	}

	tree, err := loader.Load(path)
	if err != nil {
		return nil, err
	}

	return resolveFileRefs(loader, dir, tree), nil
}
