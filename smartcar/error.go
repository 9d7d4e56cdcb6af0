package smartcar

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorType classifies an API failure.
type ErrorType string

const (
	ErrorTypeValidation       ErrorType = "VALIDATION"
	ErrorTypeAuthentication   ErrorType = "AUTHENTICATION"
	ErrorTypePermission       ErrorType = "PERMISSION"
	ErrorTypeResourceNotFound ErrorType = "RESOURCE_NOT_FOUND"
	ErrorTypeState            ErrorType = "STATE"
	ErrorTypeRateLimit        ErrorType = "RATE_LIMIT"
	ErrorTypeMonthlyLimit     ErrorType = "MONTHLY_LIMIT"
	ErrorTypeServer           ErrorType = "SERVER"
	ErrorTypeVehicleState     ErrorType = "VEHICLE_STATE"
	ErrorTypeVehicleSpeed     ErrorType = "VEHICLE_SPEED"
	ErrorTypeSmartcar         ErrorType = "SMARTCAR"
	ErrorTypeGatewayTimeout   ErrorType = "GATEWAY_TIMEOUT"
	ErrorTypeUnknown          ErrorType = "UNKNOWN"
)

// knownErrorTypes is the closed set of vendor error types. A vendor `type`
// outside this set never overrides the status-code classification.
var knownErrorTypes = map[ErrorType]bool{
	ErrorTypeValidation:       true,
	ErrorTypeAuthentication:   true,
	ErrorTypePermission:       true,
	ErrorTypeResourceNotFound: true,
	ErrorTypeState:            true,
	ErrorTypeRateLimit:        true,
	ErrorTypeMonthlyLimit:     true,
	ErrorTypeServer:           true,
	ErrorTypeVehicleState:     true,
	ErrorTypeVehicleSpeed:     true,
	ErrorTypeSmartcar:         true,
	ErrorTypeGatewayTimeout:   true,
}

// Resolution is a vendor-supplied remediation hint.
type Resolution struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Error is the single error type returned for every failed API operation.
// No raw transport or decoding error crosses the package boundary.
type Error struct {
	// Type is the classified kind of failure.
	Type ErrorType
	// StatusCode is the HTTP status of the failed response, or 0 when the
	// request never produced a response (transport failure, local
	// validation).
	StatusCode int
	// Code is the vendor-specific error code, when supplied.
	Code string
	// Description is the human-readable vendor description, or a local
	// explanation for pre-network failures.
	Description string
	// RequestID is the id echoed by the API, useful for support tickets.
	RequestID string
	// Resolution holds remediation hints from the vendor body.
	Resolution []Resolution
	// Detail lists per-field validation messages, when supplied.
	Detail []map[string]any
	// DocURL links the vendor documentation page for this error.
	DocURL string

	cause error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("smartcar: %s (status %d): %s", e.Type, e.StatusCode, e.Description)
	}
	return fmt.Sprintf("smartcar: %s: %s", e.Type, e.Description)
}

// Unwrap exposes the underlying transport error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// errValidation builds a pre-network validation error for programmer
// mistakes (missing token, empty vehicle id and the like).
func errValidation(format string, args ...any) *Error {
	return &Error{
		Type:        ErrorTypeValidation,
		Description: fmt.Sprintf(format, args...),
	}
}

// errTransport wraps a failure that happened before any response arrived.
func errTransport(err error) *Error {
	return &Error{
		Type:        ErrorTypeUnknown,
		Description: err.Error(),
		cause:       err,
	}
}

// statusToType is the primary classification signal.
var statusToType = map[int]ErrorType{
	http.StatusBadRequest:          ErrorTypeValidation,
	http.StatusUnauthorized:        ErrorTypeAuthentication,
	http.StatusForbidden:           ErrorTypePermission,
	http.StatusNotFound:            ErrorTypeResourceNotFound,
	http.StatusConflict:            ErrorTypeVehicleState,
	http.StatusTooManyRequests:     ErrorTypeRateLimit,
	430:                            ErrorTypeMonthlyLimit,
	http.StatusInternalServerError: ErrorTypeServer,
	http.StatusGatewayTimeout:      ErrorTypeGatewayTimeout,
}

// vendorError mirrors the documented JSON error body. Both the v1 shape
// (error/message) and the v2 shape (type/code/description) are accepted.
type vendorError struct {
	Type        string           `json:"type"`
	Code        string           `json:"code"`
	Description string           `json:"description"`
	DocURL      string           `json:"docURL"`
	RequestID   string           `json:"requestId"`
	Resolution  *Resolution      `json:"resolution"`
	Detail      []map[string]any `json:"detail"`

	// legacy shape
	Err     string `json:"error"`
	Message string `json:"message"`
}

// normalizeError converts a non-2xx response into exactly one *Error.
// It never fails: unrecognized bodies degrade to UNKNOWN (or the status
// table entry) with the status code preserved verbatim.
func normalizeError(status int, body []byte, header http.Header) *Error {
	apiErr := &Error{
		Type:       ErrorTypeUnknown,
		StatusCode: status,
		RequestID:  header.Get(headerRequestID),
	}
	if t, ok := statusToType[status]; ok {
		apiErr.Type = t
	}

	var vendor vendorError
	if err := json.Unmarshal(body, &vendor); err != nil {
		// Unrecognized shape: stay on the status-table kind (UNKNOWN when
		// the status is unmapped) and keep whatever the server said.
		apiErr.Description = string(body)
		if apiErr.Description == "" {
			apiErr.Description = http.StatusText(status)
		}
		return apiErr
	}

	// The body is a recognizable vendor error: an unmapped 4xx/5xx becomes
	// the generic vendor kind.
	if apiErr.Type == ErrorTypeUnknown && status >= 400 {
		apiErr.Type = ErrorTypeSmartcar
	}

	// The vendor type refines the status table when it names a known kind,
	// e.g. a 400 carrying VEHICLE_STATE.
	if t := ErrorType(vendor.Type); knownErrorTypes[t] {
		apiErr.Type = t
	}
	apiErr.Code = vendor.Code
	apiErr.DocURL = vendor.DocURL
	apiErr.Detail = vendor.Detail
	if vendor.RequestID != "" {
		apiErr.RequestID = vendor.RequestID
	}
	if vendor.Resolution != nil {
		apiErr.Resolution = []Resolution{*vendor.Resolution}
	}

	switch {
	case vendor.Description != "":
		apiErr.Description = vendor.Description
	case vendor.Message != "":
		apiErr.Description = vendor.Message
	case vendor.Err != "":
		apiErr.Description = vendor.Err
	default:
		apiErr.Description = http.StatusText(status)
	}
	return apiErr
}
