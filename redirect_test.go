package appconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedirects(t *testing.T) {
	base := map[string]any{
		"db": map[string]any{
			"pass": "APP_DB_PASSWORD",
		},
		"hosts": []any{"APP_PRIMARY_HOST"},
		"plain": "just-a-value",
	}
	markers := collectRedirectMarkers(base)

	t.Run("SetVariableReplacesPlaceholder", func(t *testing.T) {
		tree := deepCopyTree(base)
		environ := map[string]string{"APP_DB_PASSWORD": "s3cr3t"}

		resolved := resolveRedirects(tree, markers, environ)

		assert.Equal(t, "s3cr3t", resolved["db"].(map[string]any)["pass"])
	})

	t.Run("UnsetVariableLeavesLiteralName", func(t *testing.T) {
		tree := deepCopyTree(base)

		resolved := resolveRedirects(tree, markers, map[string]string{})

		assert.Equal(t, "APP_DB_PASSWORD", resolved["db"].(map[string]any)["pass"])
	})

	t.Run("SequenceElementsResolve", func(t *testing.T) {
		tree := deepCopyTree(base)
		environ := map[string]string{"APP_PRIMARY_HOST": "db1.internal"}

		resolved := resolveRedirects(tree, markers, environ)

		assert.Equal(t, []any{"db1.internal"}, resolved["hosts"])
	})

	t.Run("UndeclaredValuesAreNeverRedirected", func(t *testing.T) {
		tree := map[string]any{"home": "HOME"}
		environ := map[string]string{"HOME": "/root"}

		// "HOME" was never declared by the base config, so the live
		// variable must not leak into the tree.
		resolved := resolveRedirects(tree, markers, environ)

		assert.Equal(t, "HOME", resolved["home"])
	})

	t.Run("OverriddenMarkerValueIsNotResolved", func(t *testing.T) {
		// A higher-precedence source replaced the placeholder with a
		// concrete value; the redirect pass must leave it alone.
		tree := map[string]any{
			"db": map[string]any{"pass": "explicit"},
		}
		environ := map[string]string{"APP_DB_PASSWORD": "s3cr3t"}

		resolved := resolveRedirects(tree, markers, environ)

		assert.Equal(t, "explicit", resolved["db"].(map[string]any)["pass"])
	})
}

func TestStateVariables(t *testing.T) {
	t.Run("EnvironmentNameDefaults", func(t *testing.T) {
		assert.Equal(t, "development", environmentName(map[string]string{}, "APP_ENV"))
		assert.Equal(t, "development", environmentName(map[string]string{"APP_ENV": ""}, "APP_ENV"))
		assert.Equal(t, "production", environmentName(map[string]string{"APP_ENV": "production"}, "APP_ENV"))
	})

	t.Run("DevelopmentFlags", func(t *testing.T) {
		tree := make(map[string]any)
		injectStateVariables(tree, "development")

		assert.Equal(t, map[string]any{
			"nodeEnv":      "development",
			"isDebug":      true,
			"isProduction": false,
			"isStage":      false,
		}, tree)
	})

	t.Run("ProductionFlags", func(t *testing.T) {
		tree := make(map[string]any)
		injectStateVariables(tree, "production")

		assert.Equal(t, false, tree["isDebug"])
		assert.Equal(t, true, tree["isProduction"])
		assert.Equal(t, false, tree["isStage"])
	})

	t.Run("StageFlags", func(t *testing.T) {
		tree := make(map[string]any)
		injectStateVariables(tree, "stage")

		assert.Equal(t, true, tree["isDebug"])
		assert.Equal(t, false, tree["isProduction"])
		assert.Equal(t, true, tree["isStage"])
	})
}
