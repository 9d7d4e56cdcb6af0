package smartcar

import (
	"net/http"
	"net/url"
	"strconv"
)

// UnitSystem selects the units used for vehicle readings.
type UnitSystem string

const (
	Metric   UnitSystem = "metric"
	Imperial UnitSystem = "imperial"
)

// VehicleOptions tunes a vehicle handle at construction time.
type VehicleOptions struct {
	// UnitSystem for readings. Defaults to Metric.
	UnitSystem UnitSystem
	// APIVersion overrides the client API version for this vehicle.
	APIVersion string
}

// Vehicle is a handle for one authorized vehicle. It is immutable after
// construction and safe for concurrent use.
type Vehicle struct {
	id         string
	token      string
	unitSystem UnitSystem
	version    string
	client     *Client
}

// Vehicle builds a handle from a vehicle id and the access token that
// grants access to it.
func (c *Client) Vehicle(id, accessToken string, opts *VehicleOptions) *Vehicle {
	v := &Vehicle{
		id:         id,
		token:      accessToken,
		unitSystem: Metric,
		client:     c,
	}
	if opts != nil {
		if opts.UnitSystem != "" {
			v.unitSystem = opts.UnitSystem
		}
		v.version = opts.APIVersion
	}
	return v
}

// ID returns the vehicle id this handle was built with.
func (v *Vehicle) ID() string {
	return v.id
}

func (v *Vehicle) newRequest(method, endpoint string, body any) (request, *Error) {
	if v.id == "" {
		return request{}, errValidation("vehicle id is required")
	}
	if v.token == "" {
		return request{}, errValidation("access token is required")
	}
	return request{
		method:  method,
		path:    "/vehicles/" + v.id + endpoint,
		auth:    bearerAuth(v.token),
		headers: map[string]string{headerUnit: string(v.unitSystem)},
		body:    body,
		version: v.version,
	}, nil
}

func (v *Vehicle) get(endpoint string, out any) (Meta, *Error) {
	r, apiErr := v.newRequest(http.MethodGet, endpoint, nil)
	if apiErr != nil {
		return Meta{}, apiErr
	}
	return v.client.doJSON(r, out)
}

func (v *Vehicle) post(endpoint string, body any, out any) (Meta, *Error) {
	r, apiErr := v.newRequest(http.MethodPost, endpoint, body)
	if apiErr != nil {
		return Meta{}, apiErr
	}
	return v.client.doJSON(r, out)
}

// Attributes fetches the vehicle's make, model and year.
func (v *Vehicle) Attributes() (*Attributes, error) {
	var out Attributes
	meta, apiErr := v.get("", &out)
	if apiErr != nil {
		return nil, apiErr
	}
	out.Meta = meta
	return &out, nil
}

// VIN returns the vehicle identification number as a bare string.
func (v *Vehicle) VIN() (string, error) {
	var out struct {
		VIN string `json:"vin"`
	}
	if _, apiErr := v.get("/vin", &out); apiErr != nil {
		return "", apiErr
	}
	return out.VIN, nil
}

// Odometer reads the traveled distance.
func (v *Vehicle) Odometer() (*Odometer, error) {
	var out Odometer
	meta, apiErr := v.get("/odometer", &out)
	if apiErr != nil {
		return nil, apiErr
	}
	out.Meta = meta
	return &out, nil
}

// Location reads the last known GPS position.
func (v *Vehicle) Location() (*Location, error) {
	var out Location
	meta, apiErr := v.get("/location", &out)
	if apiErr != nil {
		return nil, apiErr
	}
	out.Meta = meta
	return &out, nil
}

// Battery reads the EV battery state of charge.
func (v *Vehicle) Battery() (*Battery, error) {
	var out Battery
	meta, apiErr := v.get("/battery", &out)
	if apiErr != nil {
		return nil, apiErr
	}
	out.Meta = meta
	return &out, nil
}

// BatteryCapacity returns the rated battery capacity in kWh as a bare
// number.
func (v *Vehicle) BatteryCapacity() (float64, error) {
	var out struct {
		Capacity float64 `json:"capacity"`
	}
	if _, apiErr := v.get("/battery/capacity", &out); apiErr != nil {
		return 0, apiErr
	}
	return out.Capacity, nil
}

// Charge reads the charging session state.
func (v *Vehicle) Charge() (*Charge, error) {
	var out Charge
	meta, apiErr := v.get("/charge", &out)
	if apiErr != nil {
		return nil, apiErr
	}
	out.Meta = meta
	return &out, nil
}

// ChargeLimit reads the configured charge limit.
func (v *Vehicle) ChargeLimit() (*ChargeLimit, error) {
	var out ChargeLimit
	meta, apiErr := v.get("/charge/limit", &out)
	if apiErr != nil {
		return nil, apiErr
	}
	out.Meta = meta
	return &out, nil
}

// Fuel reads the fuel tank state.
func (v *Vehicle) Fuel() (*Fuel, error) {
	var out Fuel
	meta, apiErr := v.get("/fuel", &out)
	if apiErr != nil {
		return nil, apiErr
	}
	out.Meta = meta
	return &out, nil
}

// EngineOil reads the remaining engine oil life.
func (v *Vehicle) EngineOil() (*EngineOil, error) {
	var out EngineOil
	meta, apiErr := v.get("/engine/oil", &out)
	if apiErr != nil {
		return nil, apiErr
	}
	out.Meta = meta
	return &out, nil
}

// TirePressure reads the pressure of all four tires.
func (v *Vehicle) TirePressure() (*TirePressure, error) {
	var out TirePressure
	meta, apiErr := v.get("/tires/pressure", &out)
	if apiErr != nil {
		return nil, apiErr
	}
	out.Meta = meta
	return &out, nil
}

// Permissions lists the scopes granted for this vehicle, one page at a
// time. A nil paging fetches the server default page.
func (v *Vehicle) Permissions(paging *PagingOptions) (*Permissions, error) {
	r, apiErr := v.newRequest(http.MethodGet, "/permissions", nil)
	if apiErr != nil {
		return nil, apiErr
	}
	if paging != nil {
		query := url.Values{}
		if paging.Limit > 0 {
			query.Set("limit", strconv.Itoa(paging.Limit))
		}
		if paging.Offset > 0 {
			query.Set("offset", strconv.Itoa(paging.Offset))
		}
		r.query = query
	}
	var out Permissions
	meta, apiErr := v.client.doJSON(r, &out)
	if apiErr != nil {
		return nil, apiErr
	}
	out.Meta = meta
	return &out, nil
}

type actionBody struct {
	Action string `json:"action"`
}

func (v *Vehicle) command(endpoint string, body any) (*CommandResponse, error) {
	var out CommandResponse
	meta, apiErr := v.post(endpoint, body, &out)
	if apiErr != nil {
		return nil, apiErr
	}
	out.Meta = meta
	return &out, nil
}

// Lock locks the vehicle's doors.
func (v *Vehicle) Lock() (*CommandResponse, error) {
	return v.command("/security", actionBody{Action: "LOCK"})
}

// Unlock unlocks the vehicle's doors.
func (v *Vehicle) Unlock() (*CommandResponse, error) {
	return v.command("/security", actionBody{Action: "UNLOCK"})
}

// StartCharge starts a charging session.
func (v *Vehicle) StartCharge() (*CommandResponse, error) {
	return v.command("/charge", actionBody{Action: "START"})
}

// StopCharge stops the current charging session.
func (v *Vehicle) StopCharge() (*CommandResponse, error) {
	return v.command("/charge", actionBody{Action: "STOP"})
}

// SetChargeLimit sets the maximum state of charge, as a fraction in (0, 1].
func (v *Vehicle) SetChargeLimit(limit float64) (*CommandResponse, error) {
	if limit <= 0 || limit > 1 {
		return nil, errValidation("charge limit must be a fraction in (0, 1], got %v", limit)
	}
	return v.command("/charge/limit", struct {
		Limit float64 `json:"limit"`
	}{Limit: limit})
}

// Disconnect revokes the application's access to this vehicle.
func (v *Vehicle) Disconnect() (*CommandResponse, error) {
	r, apiErr := v.newRequest(http.MethodDelete, "/application", nil)
	if apiErr != nil {
		return nil, apiErr
	}
	var out CommandResponse
	meta, apiErr := v.client.doJSON(r, &out)
	if apiErr != nil {
		return nil, apiErr
	}
	out.Meta = meta
	return &out, nil
}

// Subscribe subscribes this vehicle to a webhook.
func (v *Vehicle) Subscribe(webhookID string) (*Subscription, error) {
	if webhookID == "" {
		return nil, errValidation("webhook id is required")
	}
	var out Subscription
	meta, apiErr := v.post("/webhooks/"+webhookID, nil, &out)
	if apiErr != nil {
		return nil, apiErr
	}
	out.Meta = meta
	return &out, nil
}

// Unsubscribe removes this vehicle from a webhook. Unlike the other
// vehicle calls it authenticates with the application management token.
func (v *Vehicle) Unsubscribe(amt, webhookID string) (*CommandResponse, error) {
	if v.id == "" {
		return nil, errValidation("vehicle id is required")
	}
	if amt == "" {
		return nil, errValidation("application management token is required")
	}
	if webhookID == "" {
		return nil, errValidation("webhook id is required")
	}
	r := request{
		method:  http.MethodDelete,
		path:    "/vehicles/" + v.id + "/webhooks/" + webhookID,
		auth:    bearerAuth(amt),
		version: v.version,
	}
	var out CommandResponse
	meta, apiErr := v.client.doJSON(r, &out)
	if apiErr != nil {
		return nil, apiErr
	}
	out.Meta = meta
	return &out, nil
}

// Request is the raw escape hatch: it performs an arbitrary call under this
// vehicle's path and returns the decoded body with response metadata merged
// under "meta". Extra headers override the defaults.
func (v *Vehicle) Request(method, endpoint string, body any, headers map[string]string) (map[string]any, error) {
	r, apiErr := v.newRequest(method, endpoint, body)
	if apiErr != nil {
		return nil, apiErr
	}
	for k, val := range headers {
		r.headers[k] = val
	}
	res, apiErr := v.client.doMap(r)
	if apiErr != nil {
		return nil, apiErr
	}
	return res, nil
}
