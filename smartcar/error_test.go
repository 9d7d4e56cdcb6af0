package smartcar

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeError_StatusTable(t *testing.T) {
	cases := []struct {
		status int
		want   ErrorType
	}{
		{400, ErrorTypeValidation},
		{401, ErrorTypeAuthentication},
		{403, ErrorTypePermission},
		{404, ErrorTypeResourceNotFound},
		{409, ErrorTypeVehicleState},
		{429, ErrorTypeRateLimit},
		{430, ErrorTypeMonthlyLimit},
		{500, ErrorTypeServer},
		{504, ErrorTypeGatewayTimeout},
		{502, ErrorTypeSmartcar},
	}
	for _, tc := range cases {
		apiErr := normalizeError(tc.status, []byte(`{"description":"boom"}`), http.Header{})
		assert.Equal(t, tc.want, apiErr.Type, "status %d", tc.status)
		assert.Equal(t, tc.status, apiErr.StatusCode, "status %d", tc.status)
		assert.Equal(t, "boom", apiErr.Description)
	}
}

func TestNormalizeError_VendorTypeRefinesStatus(t *testing.T) {
	// A 400 carrying a vehicle-state type is classified by the type, not
	// the status table.
	apiErr := normalizeError(400, []byte(`{"type":"VEHICLE_STATE","code":"DOOR_OPEN","description":"door is open"}`), http.Header{})
	assert.Equal(t, ErrorTypeVehicleState, apiErr.Type)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, "DOOR_OPEN", apiErr.Code)

	apiErr = normalizeError(400, []byte(`{"type":"VEHICLE_SPEED","description":"vehicle is moving"}`), http.Header{})
	assert.Equal(t, ErrorTypeVehicleSpeed, apiErr.Type)
}

func TestNormalizeError_UnknownVendorTypeKeepsStatusKind(t *testing.T) {
	apiErr := normalizeError(401, []byte(`{"type":"SOMETHING_NEW","description":"huh"}`), http.Header{})
	assert.Equal(t, ErrorTypeAuthentication, apiErr.Type)
	assert.Equal(t, 401, apiErr.StatusCode)
}

func TestNormalizeError_NonJSONBody(t *testing.T) {
	// An unmapped status with an unparseable body stays UNKNOWN; the
	// status code survives verbatim.
	apiErr := normalizeError(418, []byte("<html>teapot</html>"), http.Header{})
	assert.Equal(t, ErrorTypeUnknown, apiErr.Type)
	assert.Equal(t, 418, apiErr.StatusCode)
	assert.Equal(t, "<html>teapot</html>", apiErr.Description)
}

func TestNormalizeError_UnmappedStatusWithVendorBody(t *testing.T) {
	// Only a recognizable vendor body promotes an unmapped 4xx/5xx to the
	// generic vendor kind.
	apiErr := normalizeError(418, []byte(`{"description":"teapot"}`), http.Header{})
	assert.Equal(t, ErrorTypeSmartcar, apiErr.Type)
	assert.Equal(t, 418, apiErr.StatusCode)
	assert.Equal(t, "teapot", apiErr.Description)
}

func TestNormalizeError_MappedStatusWithNonJSONBody(t *testing.T) {
	apiErr := normalizeError(500, []byte("internal server error"), http.Header{})
	assert.Equal(t, ErrorTypeServer, apiErr.Type)
	assert.Equal(t, 500, apiErr.StatusCode)
}

func TestNormalizeError_PreservesRequestIDAndResolution(t *testing.T) {
	header := http.Header{}
	header.Set(headerRequestID, "req-from-header")

	apiErr := normalizeError(409, []byte(`{
		"type": "VEHICLE_STATE",
		"code": "CHARGING_PLUG_NOT_CONNECTED",
		"description": "plug not connected",
		"docURL": "https://smartcar.com/docs/errors#vehicle-state",
		"requestId": "req-from-body",
		"resolution": {"type": "RETRY_LATER", "url": "https://smartcar.com/docs"},
		"detail": [{"field": "plug", "message": "not connected"}]
	}`), header)

	assert.Equal(t, "req-from-body", apiErr.RequestID)
	assert.Len(t, apiErr.Resolution, 1)
	assert.Equal(t, "RETRY_LATER", apiErr.Resolution[0].Type)
	assert.Equal(t, "https://smartcar.com/docs", apiErr.Resolution[0].URL)
	assert.Equal(t, "https://smartcar.com/docs/errors#vehicle-state", apiErr.DocURL)
	assert.Len(t, apiErr.Detail, 1)
	assert.Equal(t, "not connected", apiErr.Detail[0]["message"])
}

func TestNormalizeError_LegacyBodyShape(t *testing.T) {
	apiErr := normalizeError(401, []byte(`{"error":"authentication_error","message":"invalid token"}`), http.Header{})
	assert.Equal(t, ErrorTypeAuthentication, apiErr.Type)
	assert.Equal(t, "invalid token", apiErr.Description)
}

func TestError_Message(t *testing.T) {
	apiErr := normalizeError(429, []byte(`{"description":"slow down"}`), http.Header{})
	assert.Contains(t, apiErr.Error(), "RATE_LIMIT")
	assert.Contains(t, apiErr.Error(), "429")
	assert.Contains(t, apiErr.Error(), "slow down")
}
