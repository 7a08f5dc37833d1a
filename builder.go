package appconfig

import "fmt"

// ValidatorFunc validates a fully assembled Config. It receives the
// loaded *Config and should return an error if validation fails.
type ValidatorFunc func(c *Config) error

// Builder provides a fluent interface for building configurations
type Builder struct {
	opts       Options
	validators []ValidatorFunc
}

// NewBuilder creates a new configuration builder
func NewBuilder() *Builder {
	return &Builder{
		opts:       DefaultOptions(),
		validators: make([]ValidatorFunc, 0),
	}
}

// WithStartupPath sets the base directory for resolving source files
func (b *Builder) WithStartupPath(path string) *Builder {
	b.opts.StartupPath = path
	return b
}

// WithConfigName sets the base config file name
func (b *Builder) WithConfigName(name string) *Builder {
	b.opts.ConfigName = name
	return b
}

// WithLocalConfigName sets the developer-local override file name
func (b *Builder) WithLocalConfigName(name string) *Builder {
	b.opts.LocalConfigName = name
	return b
}

// WithEnvPrefix sets the environment variable prefix
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.opts.EnvironmentPrefix = prefix
	return b
}

// WithEnvDelimiter sets the environment variable path delimiter
func (b *Builder) WithEnvDelimiter(delimiter string) *Builder {
	b.opts.EnvironmentDelimiter = delimiter
	return b
}

// WithEnvironmentVariable sets which variable selects the active environment
func (b *Builder) WithEnvironmentVariable(name string) *Builder {
	b.opts.EnvironmentVariable = name
	return b
}

// WithStateVariables toggles injection of the derived run-mode fields
func (b *Builder) WithStateVariables(enabled bool) *Builder {
	b.opts.EnableStateVariables = StateVariables(enabled)
	return b
}

// WithExtensions sets the extension probe order for source discovery
func (b *Builder) WithExtensions(extensions ...string) *Builder {
	b.opts.Extensions = extensions
	return b
}

// WithLoader overrides how source paths are turned into data
func (b *Builder) WithLoader(loader Loader) *Builder {
	b.opts.Loader = loader
	return b
}

// WithEnviron overrides the process environment snapshot
func (b *Builder) WithEnviron(environ []string) *Builder {
	b.opts.Environ = environ
	return b
}

// WithValidator adds a validation function that runs at the end of the
// build process. Multiple validators run in the order they were added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build creates the Config instance, assembles the tree eagerly, and
// runs the validators against it.
func (b *Builder) Build() (*Config, error) {
	cfg := NewWithOptions(b.opts)

	if _, err := cfg.All(); err != nil {
		return nil, err
	}

	for _, validator := range b.validators {
		if err := validator(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return cfg, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return cfg
}

// BuildAndScan builds and decodes the assembled configuration into the
// provided target struct pointer.
func (b *Builder) BuildAndScan(basePath string, target any) (*Config, error) {
	cfg, err := b.Build()
	if err != nil {
		return nil, err
	}

	if err := cfg.Scan(basePath, target); err != nil {
		return nil, fmt.Errorf("failed to scan final config into target: %w", err)
	}

	return cfg, nil
}
