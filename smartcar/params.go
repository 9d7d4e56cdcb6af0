package smartcar

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// CompatibilityOptions tunes a compatibility check. All fields are optional.
type CompatibilityOptions struct {
	// ClientID and ClientSecret override the client config (and the
	// SMARTCAR_CLIENT_ID / SMARTCAR_CLIENT_SECRET environment variables).
	ClientID     string
	ClientSecret string
	// Flags are feature flags rendered as "name:value" pairs.
	// Values may be strings or booleans.
	Flags map[string]any
	// TestMode, when non-nil, selects test ("true") or live ("false") mode.
	TestMode *bool
	// TestModeCompatibilityLevel forces test mode regardless of TestMode.
	// The upstream API documents only that a compatibility level implies
	// test mode, so this override order is preserved as-is.
	TestModeCompatibilityLevel string
	// APIVersion overrides the client API version for this call.
	APIVersion string
}

// compatibilityQuery assembles the query parameters for a compatibility
// check. An empty scope list still produces an empty scope parameter: the
// API distinguishes "no scope" from "missing scope".
func compatibilityQuery(vin string, scope []string, country string, opts *CompatibilityOptions) url.Values {
	if country == "" {
		country = "US"
	}
	query := url.Values{}
	query.Set("vin", vin)
	query.Set("scope", strings.Join(scope, " "))
	query.Set("country", country)
	if opts == nil {
		return query
	}

	if len(opts.Flags) > 0 {
		query.Set("flags", renderFlags(opts.Flags))
	}
	if opts.TestMode != nil {
		if *opts.TestMode {
			query.Set("mode", "test")
		} else {
			query.Set("mode", "live")
		}
	}
	if opts.TestModeCompatibilityLevel != "" {
		query.Set("mode", "test")
		query.Set("test_mode_compatibility_level", opts.TestModeCompatibilityLevel)
	}
	return query
}

// renderFlags serializes flags as "k1:v1,k2:v2". Keys are sorted so the
// query string is stable across calls.
func renderFlags(flags map[string]any) string {
	keys := make([]string, 0, len(flags))
	for k := range flags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s:%v", k, flags[k]))
	}
	return strings.Join(pairs, ",")
}
