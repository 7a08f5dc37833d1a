package appconfig_test

import (
	"testing"

	"appconfig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageLevelInstance(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", `
[db]
user = "test"
`)

	appconfig.Configure(testOptions(dir, "app_config_db_pass=fromEnv"))

	tree, err := appconfig.All()
	require.NoError(t, err)
	assert.Equal(t, "test", tree["db"].(map[string]any)["user"])

	val, found := appconfig.Get("db.pass")
	require.True(t, found)
	assert.Equal(t, "fromEnv", val)

	// The default instance feeds the typed getters through Default
	user, err := appconfig.Default().String("db.user")
	require.NoError(t, err)
	assert.Equal(t, "test", user)

	reloaded, err := appconfig.Reload()
	require.NoError(t, err)
	assert.Equal(t, tree, reloaded)
}
