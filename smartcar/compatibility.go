package smartcar

import "net/http"

// GetCompatibility asks whether a VIN supports the requested permission
// scopes before the user goes through the authorization flow. It
// authenticates with the OAuth client credentials, taken from the options,
// the client config, or the environment, in that order.
func (c *Client) GetCompatibility(vin string, scope []string, country string, opts *CompatibilityOptions) (*Compatibility, error) {
	if vin == "" {
		return nil, errValidation("vin is required")
	}

	id, secret := c.credentials()
	var version string
	if opts != nil {
		if opts.ClientID != "" {
			id = opts.ClientID
		}
		if opts.ClientSecret != "" {
			secret = opts.ClientSecret
		}
		version = opts.APIVersion
	}
	if id == "" || secret == "" {
		return nil, errValidation("client credentials are required: set them in the config, the options, or %s/%s", EnvClientID, EnvClientSecret)
	}

	var out Compatibility
	meta, apiErr := c.doJSON(request{
		method:  http.MethodGet,
		path:    "/compatibility",
		auth:    basicAuth(id, secret),
		query:   compatibilityQuery(vin, scope, country, opts),
		version: version,
	}, &out)
	if apiErr != nil {
		return nil, apiErr
	}
	out.Meta = meta
	return &out, nil
}
