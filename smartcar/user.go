package smartcar

import (
	"net/http"
	"net/url"
	"strconv"
)

// GetUser fetches the id of the user who authorized the given token.
func (c *Client) GetUser(accessToken string) (*User, error) {
	if accessToken == "" {
		return nil, errValidation("access token is required")
	}
	var out User
	meta, apiErr := c.doJSON(request{
		method: http.MethodGet,
		path:   "/user",
		auth:   bearerAuth(accessToken),
	}, &out)
	if apiErr != nil {
		return nil, apiErr
	}
	out.Meta = meta
	return &out, nil
}

// GetVehicles lists the vehicle ids the token grants access to. Paging is
// caller-driven: pass Limit/Offset to walk the full list.
func (c *Client) GetVehicles(accessToken string, paging *PagingOptions) (*VehicleIDs, error) {
	if accessToken == "" {
		return nil, errValidation("access token is required")
	}
	query := url.Values{}
	if paging != nil {
		if paging.Limit > 0 {
			query.Set("limit", strconv.Itoa(paging.Limit))
		}
		if paging.Offset > 0 {
			query.Set("offset", strconv.Itoa(paging.Offset))
		}
	}
	var out VehicleIDs
	meta, apiErr := c.doJSON(request{
		method: http.MethodGet,
		path:   "/vehicles",
		auth:   bearerAuth(accessToken),
		query:  query,
	}, &out)
	if apiErr != nil {
		return nil, apiErr
	}
	out.Meta = meta
	return &out, nil
}
