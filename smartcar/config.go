package smartcar

import (
	"net/http"
	"os"
)

const (
	// DefaultAPIOrigin is the production API host.
	DefaultAPIOrigin = "https://api.smartcar.com"
	// DefaultAPIVersion is the API version used when none is configured.
	DefaultAPIVersion = "2.0"

	// EnvAPIOrigin overrides the API origin at request time, mainly for
	// pointing the client at a mock server.
	EnvAPIOrigin = "SMARTCAR_API_ORIGIN"
	// EnvClientID and EnvClientSecret supply the OAuth client credentials
	// used by compatibility checks when Config leaves them empty.
	EnvClientID     = "SMARTCAR_CLIENT_ID"
	EnvClientSecret = "SMARTCAR_CLIENT_SECRET"
)

// Config holds the per-client settings. The zero value is usable and
// resolves to the production origin and DefaultAPIVersion.
type Config struct {
	// APIOrigin is the scheme+host of the API, without a trailing slash.
	APIOrigin string `yaml:"api_origin"`
	// APIVersion selects the /v{version} path prefix. No format validation
	// happens here: an unknown version simply 404s server-side.
	APIVersion string `yaml:"api_version"`
	// ClientID and ClientSecret are the OAuth application credentials used
	// for basic-auth endpoints (compatibility checks).
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	// HTTPClient, when set, replaces http.DefaultClient. Timeouts and TLS
	// settings belong to this transport, not to the SDK.
	HTTPClient *http.Client `yaml:"-"`
}

// APIVersion returns the version used for the /v{version} path prefix.
func (c *Client) APIVersion() string {
	if c.config.APIVersion == "" {
		return DefaultAPIVersion
	}
	return c.config.APIVersion
}

// SetAPIVersion changes the version for subsequent requests. Callers must
// not change the version while requests expecting the old one are in flight.
func (c *Client) SetAPIVersion(version string) {
	c.config.APIVersion = version
}

// BaseURL resolves the API origin, checking the environment override first.
func (c *Client) BaseURL() string {
	if origin := os.Getenv(EnvAPIOrigin); origin != "" {
		return origin
	}
	if c.config.APIOrigin != "" {
		return c.config.APIOrigin
	}
	return DefaultAPIOrigin
}

// credentials returns the client id/secret pair, falling back to the
// environment when the config leaves them empty.
func (c *Client) credentials() (id, secret string) {
	id, secret = c.config.ClientID, c.config.ClientSecret
	if id == "" {
		id = os.Getenv(EnvClientID)
	}
	if secret == "" {
		secret = os.Getenv(EnvClientSecret)
	}
	return id, secret
}
