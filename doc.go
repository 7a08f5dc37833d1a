// Package appconfig assembles a single runtime configuration tree from
// layered sources: a base config file, an environment-specific override
// file, a local (uncommitted) override file, and prefixed process
// environment variables.
//
// Features:
//   - Deterministic precedence: env vars > local file > environment file > base
//   - Deep structural merge (maps recurse, everything else is replaced)
//   - Environment variable names mapped to nested paths with a
//     configurable prefix and delimiter ("app_config_db_user" -> db.user)
//   - "|"-separated env values coerced to string sequences
//   - Redirect placeholders: a base config value naming an environment
//     variable is replaced by that variable's live value at assembly time
//   - File references: a value "@file:./extra.toml" inlines the parsed
//     content of another file; failures degrade to sentinel strings
//     instead of aborting assembly
//   - Derived state variables (nodeEnv, isDebug, isProduction, isStage)
//   - TOML, JSON, and YAML sources with automatic format detection
//
// Quick start:
//
//	opts := appconfig.DefaultOptions()
//	opts.StartupPath = "./config"
//
//	cfg := appconfig.New()
//	cfg.Configure(opts)
//
//	tree, err := cfg.All()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	user, _ := cfg.String("db.user")
//
// Precedence (highest to lowest):
//  1. Environment variables (app_config_db_user=...)
//  2. Local config file (config.local.toml)
//  3. Environment-specific file (config.production.toml)
//  4. Base config file (config.toml)
//
// The assembled tree is computed lazily on first access and cached;
// Reload discards the cache and recomputes against the current process
// environment. Callers must treat the returned tree as read-only.
//
// Failure policy is two-tier: a missing or malformed base config is an
// error surfaced to the caller, while a broken file reference inside
// config data degrades to an inline sentinel ("ABSOLUTE_PATH_NOT_ALLOWED",
// "FILE_NOT_FOUND: <path>", or a "REQUIRE_ERROR" string) at the exact
// key where the reference lived. Absent optional override files are not
// errors at all.
package appconfig
