package appconfig

// Well-known environment names driving the derived state variables.
const (
	// DefaultEnvironment is the active environment name when the
	// environment-name variable is unset.
	DefaultEnvironment = "development"

	// ProductionEnvironment flips isDebug false and isProduction true.
	ProductionEnvironment = "production"

	// StageEnvironment sets isStage true.
	StageEnvironment = "stage"
)

// Keys of the derived state variables injected into the merged tree.
const (
	KeyNodeEnv      = "nodeEnv"
	KeyIsDebug      = "isDebug"
	KeyIsProduction = "isProduction"
	KeyIsStage      = "isStage"
)

// environmentName resolves the active environment from the designated
// variable, defaulting to DefaultEnvironment when unset or empty.
func environmentName(environ map[string]string, variable string) string {
	if name := environ[variable]; name != "" {
		return name
	}
	return DefaultEnvironment
}

// injectStateVariables appends the derived run-mode fields to the
// merged tree. When injection is disabled the caller skips this pass
// entirely, so the keys are absent rather than false.
func injectStateVariables(tree map[string]any, envName string) {
	tree[KeyNodeEnv] = envName
	tree[KeyIsDebug] = envName != ProductionEnvironment
	tree[KeyIsProduction] = envName == ProductionEnvironment
	tree[KeyIsStage] = envName == StageEnvironment
}
