package smartcar

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
)

var log = logrus.StandardLogger()

const (
	headerRequestID  = "SC-Request-Id"
	headerDataAge    = "SC-Data-Age"
	headerUnitSystem = "SC-Unit-System"
	headerUnit       = "smartcar-unit"
)

// Client dispatches authenticated requests against the Smartcar API.
// Multiple clients with independent configs can coexist in one process.
type Client struct {
	httpClient *http.Client
	config     Config
}

// New creates a Client. A nil config uses the defaults.
func New(config *Config) *Client {
	c := &Client{httpClient: http.DefaultClient}
	if config != nil {
		c.config = *config
		if config.HTTPClient != nil {
			c.httpClient = config.HTTPClient
		}
	}
	return c
}

// authorization selects exactly one auth scheme: a bearer token, or a
// client-id/secret basic-auth pair. Never both.
type authorization struct {
	token  string
	id     string
	secret string
}

func bearerAuth(token string) authorization {
	return authorization{token: token}
}

func basicAuth(id, secret string) authorization {
	return authorization{id: id, secret: secret}
}

func (a authorization) apply(req *http.Request) *Error {
	switch {
	case a.token != "":
		req.Header.Set("Authorization", "Bearer "+a.token)
	case a.id != "" && a.secret != "":
		req.SetBasicAuth(a.id, a.secret)
	default:
		return errValidation("missing credentials: an access token or a client id/secret pair is required")
	}
	return nil
}

// request describes one API call. Immutable once handed to the dispatcher.
type request struct {
	method  string
	path    string
	auth    authorization
	query   url.Values
	headers map[string]string
	body    any
	// version overrides the client API version for this call only.
	version string
}

// Meta is the response metadata attached to every decoded body, extracted
// from the SC-* response headers.
type Meta struct {
	// RequestID identifies the API request for support purposes.
	RequestID string `json:"requestId,omitempty"`
	// DataAge is the vendor timestamp of when the data was recorded.
	DataAge string `json:"dataAge,omitempty"`
	// UnitSystem echoes the unit system the response was rendered in.
	UnitSystem string `json:"unitSystem,omitempty"`
}

func metaFromHeader(header http.Header) Meta {
	return Meta{
		RequestID:  header.Get(headerRequestID),
		DataAge:    header.Get(headerDataAge),
		UnitSystem: header.Get(headerUnitSystem),
	}
}

// do performs a single HTTP round trip. No retries, no backoff: timeout and
// cancellation belong to the configured http.Client.
func (c *Client) do(r request) ([]byte, http.Header, *Error) {
	version := r.version
	if version == "" {
		version = c.APIVersion()
	}
	fullURL := c.BaseURL() + "/v" + version + r.path
	if len(r.query) > 0 {
		fullURL += "?" + r.query.Encode()
	}

	var bodyReader io.Reader
	if r.body != nil {
		encoded, err := json.Marshal(r.body)
		if err != nil {
			return nil, nil, errValidation("unencodable request body: %s", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequest(r.method, fullURL, bodyReader)
	if err != nil {
		return nil, nil, errValidation("invalid request: %s", err)
	}
	if apiErr := r.auth.apply(httpReq); apiErr != nil {
		return nil, nil, apiErr
	}
	httpReq.Header.Set("Accept", "application/json")
	if r.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, v := range r.headers {
		httpReq.Header.Set(k, v)
	}

	log.Debugf("%s %s", r.method, fullURL)
	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, nil, errTransport(err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, nil, errTransport(err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := normalizeError(res.StatusCode, resBody, res.Header)
		log.Debugf("request failed: %s", apiErr)
		return nil, nil, apiErr
	}
	return resBody, res.Header, nil
}

// doJSON performs a request and decodes the body into out. A body that is
// empty or not valid JSON is treated as an empty object, not an error.
func (c *Client) doJSON(r request, out any) (Meta, *Error) {
	body, header, apiErr := c.do(r)
	if apiErr != nil {
		return Meta{}, apiErr
	}
	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			log.Debugf("undecodable response body, treating as empty: %s", err)
		}
	}
	return metaFromHeader(header), nil
}

// doMap performs a request and returns the raw decoded object with the
// response metadata merged in under "meta". Keys the server already put
// there are left untouched.
func (c *Client) doMap(r request) (map[string]any, *Error) {
	body, header, apiErr := c.do(r)
	if apiErr != nil {
		return nil, apiErr
	}
	decoded := map[string]any{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &decoded); err != nil {
			log.Debugf("undecodable response body, treating as empty: %s", err)
			decoded = map[string]any{}
		}
	}
	injectMeta(decoded, metaFromHeader(header))
	return decoded, nil
}

// injectMeta merges header metadata under body["meta"] without overwriting
// anything the server (or caller) already placed there.
func injectMeta(body map[string]any, meta Meta) {
	sub, ok := body["meta"].(map[string]any)
	if !ok {
		if _, exists := body["meta"]; exists {
			// A non-object meta value belongs to the caller; leave it.
			return
		}
		sub = map[string]any{}
		body["meta"] = sub
	}
	setIfAbsent(sub, "requestId", meta.RequestID)
	setIfAbsent(sub, "dataAge", meta.DataAge)
	setIfAbsent(sub, "unitSystem", meta.UnitSystem)
}

func setIfAbsent(m map[string]any, key, value string) {
	if value == "" {
		return
	}
	if _, exists := m[key]; !exists {
		m[key] = value
	}
}
