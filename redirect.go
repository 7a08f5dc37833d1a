package appconfig

// collectRedirectMarkers gathers every scalar string leaf of the base
// source tree. These values form the declared set of redirect targets:
// markers are data declared by the base config, never inferred from
// values contributed by other sources.
func collectRedirectMarkers(base map[string]any) map[string]bool {
	markers := make(map[string]bool)
	collectStringLeaves(base, markers)
	return markers
}

func collectStringLeaves(value any, markers map[string]bool) {
	switch v := value.(type) {
	case map[string]any:
		for _, elem := range v {
			collectStringLeaves(elem, markers)
		}
	case []any:
		for _, elem := range v {
			collectStringLeaves(elem, markers)
		}
	case string:
		if v != "" {
			markers[v] = true
		}
	}
}

// resolveRedirects walks the merged tree once, after all merges, and
// replaces every leaf holding a declared marker with the live value of
// the environment variable it names. An unset target leaves the literal
// variable name in place, self-documenting the missing configuration.
func resolveRedirects(tree map[string]any, markers map[string]bool, environ map[string]string) map[string]any {
	for key, value := range tree {
		tree[key] = resolveRedirectValue(value, markers, environ)
	}
	return tree
}

func resolveRedirectValue(value any, markers map[string]bool, environ map[string]string) any {
	switch v := value.(type) {
	case map[string]any:
		return resolveRedirects(v, markers, environ)
	case []any:
		for i, elem := range v {
			v[i] = resolveRedirectValue(elem, markers, environ)
		}
		return v
	case string:
		if markers[v] {
			if live, set := environ[v]; set {
				return live
			}
		}
		return v
	default:
		return v
	}
}
