package appconfig_test

import (
	"errors"
	"testing"
	"time"

	"appconfig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	t.Run("BuildAssemblesEagerly", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "settings.toml", `
[server]
host = "built.example.com"
`)

		cfg, err := appconfig.NewBuilder().
			WithStartupPath(dir).
			WithConfigName("settings").
			WithEnviron([]string{}).
			Build()
		require.NoError(t, err)

		host, err := cfg.String("server.host")
		require.NoError(t, err)
		assert.Equal(t, "built.example.com", host)
	})

	t.Run("BuildFailsOnMissingBase", func(t *testing.T) {
		_, err := appconfig.NewBuilder().
			WithStartupPath(t.TempDir()).
			WithEnviron([]string{}).
			Build()
		assert.ErrorIs(t, err, appconfig.ErrBaseConfigNotFound)
	})

	t.Run("ValidatorsRunInOrder", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "config.toml", `key = "base"`)

		var order []string
		_, err := appconfig.NewBuilder().
			WithStartupPath(dir).
			WithEnviron([]string{}).
			WithValidator(func(c *appconfig.Config) error {
				order = append(order, "first")
				return nil
			}).
			WithValidator(func(c *appconfig.Config) error {
				order = append(order, "second")
				return errors.New("port out of range")
			}).
			Build()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration validation failed")
		assert.Contains(t, err.Error(), "port out of range")
		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("StateVariablesToggle", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "config.toml", `key = "base"`)

		cfg, err := appconfig.NewBuilder().
			WithStartupPath(dir).
			WithEnviron([]string{}).
			WithStateVariables(false).
			Build()
		require.NoError(t, err)

		tree, err := cfg.All()
		require.NoError(t, err)
		assert.NotContains(t, tree, "nodeEnv")
	})

	t.Run("EnvPrefixAndDelimiter", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "config.toml", `key = "base"`)

		cfg, err := appconfig.NewBuilder().
			WithStartupPath(dir).
			WithEnvPrefix("CFG__").
			WithEnvDelimiter("__").
			WithEnviron([]string{"CFG__db__user=built"}).
			Build()
		require.NoError(t, err)

		val, found := cfg.Get("db.user")
		require.True(t, found)
		assert.Equal(t, "built", val)
	})

	t.Run("MustBuildPanicsOnError", func(t *testing.T) {
		assert.Panics(t, func() {
			appconfig.NewBuilder().
				WithStartupPath(t.TempDir()).
				WithEnviron([]string{}).
				MustBuild()
		})
	})
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", `
[server]
host = "example.com"
port = 9000
timeout = "5s"
tags = "a,b,c"
`)

	type serverConfig struct {
		Host    string        `toml:"host"`
		Port    int           `toml:"port"`
		Timeout time.Duration `toml:"timeout"`
		Tags    []string      `toml:"tags"`
	}

	t.Run("DecodesSubtree", func(t *testing.T) {
		cfg := appconfig.NewWithOptions(testOptions(dir))

		var server serverConfig
		require.NoError(t, cfg.Scan("server", &server))

		assert.Equal(t, "example.com", server.Host)
		assert.Equal(t, 9000, server.Port)
		assert.Equal(t, 5*time.Second, server.Timeout)
		assert.Equal(t, []string{"a", "b", "c"}, server.Tags)
	})

	t.Run("BuildAndScan", func(t *testing.T) {
		var server serverConfig
		_, err := appconfig.NewBuilder().
			WithStartupPath(dir).
			WithEnviron([]string{}).
			BuildAndScan("server", &server)
		require.NoError(t, err)

		assert.Equal(t, "example.com", server.Host)
	})

	t.Run("MissingSectionDecodesEmpty", func(t *testing.T) {
		cfg := appconfig.NewWithOptions(testOptions(dir))

		var server serverConfig
		require.NoError(t, cfg.Scan("absent.section", &server))
		assert.Equal(t, serverConfig{}, server)
	})

	t.Run("NonPointerTargetRejected", func(t *testing.T) {
		cfg := appconfig.NewWithOptions(testOptions(dir))

		var server serverConfig
		assert.Error(t, cfg.Scan("server", server))
	})

	t.Run("ScalarSectionRejected", func(t *testing.T) {
		cfg := appconfig.NewWithOptions(testOptions(dir))

		var server serverConfig
		assert.Error(t, cfg.Scan("server.host", &server))
	})
}
