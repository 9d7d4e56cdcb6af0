package smartcar

import (
	"errors"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testVehicleID = "36ab27d0-fd9d-4455-823a-ce30af709ffc"
	testToken     = "access-token"
)

func TestVehicle_Odometer(t *testing.T) {
	defer gock.Off()
	gock.New(DefaultAPIOrigin).
		Get("/v2.0/vehicles/" + testVehicleID + "/odometer").
		MatchHeader("Authorization", "Bearer "+testToken).
		MatchHeader(headerUnit, "metric").
		Reply(200).
		SetHeader(headerRequestID, "req-1").
		JSON(map[string]any{"distance": 104.32})

	c := New(nil)
	odo, err := c.Vehicle(testVehicleID, testToken, nil).Odometer()
	require.NoError(t, err)
	assert.Equal(t, 104.32, odo.Distance)
	assert.Equal(t, "req-1", odo.Meta.RequestID)
}

func TestVehicle_ImperialUnitHeader(t *testing.T) {
	defer gock.Off()
	gock.New(DefaultAPIOrigin).
		Get("/v2.0/vehicles/" + testVehicleID + "/odometer").
		MatchHeader(headerUnit, "imperial").
		Reply(200).
		JSON(map[string]any{"distance": 64.8})

	c := New(nil)
	v := c.Vehicle(testVehicleID, testToken, &VehicleOptions{UnitSystem: Imperial})
	odo, err := v.Odometer()
	require.NoError(t, err)
	assert.Equal(t, 64.8, odo.Distance)
}

func TestVehicle_VINIsBareValue(t *testing.T) {
	defer gock.Off()
	gock.New(DefaultAPIOrigin).
		Get("/v2.0/vehicles/" + testVehicleID + "/vin").
		Reply(200).
		JSON(map[string]any{"vin": "4T1BF1FK5GU260429"})

	c := New(nil)
	vin, err := c.Vehicle(testVehicleID, testToken, nil).VIN()
	require.NoError(t, err)
	assert.Equal(t, "4T1BF1FK5GU260429", vin)
}

func TestVehicle_BatteryCapacityIsBareValue(t *testing.T) {
	defer gock.Off()
	gock.New(DefaultAPIOrigin).
		Get("/v2.0/vehicles/" + testVehicleID + "/battery/capacity").
		Reply(200).
		JSON(map[string]any{"capacity": 75.0})

	c := New(nil)
	capacity, err := c.Vehicle(testVehicleID, testToken, nil).BatteryCapacity()
	require.NoError(t, err)
	assert.Equal(t, 75.0, capacity)
}

func TestVehicle_Lock(t *testing.T) {
	defer gock.Off()
	gock.New(DefaultAPIOrigin).
		Post("/v2.0/vehicles/" + testVehicleID + "/security").
		BodyString(`{"action":"LOCK"}`).
		Reply(200).
		JSON(map[string]any{"status": "success", "message": "locked"})

	c := New(nil)
	res, err := c.Vehicle(testVehicleID, testToken, nil).Lock()
	require.NoError(t, err)
	assert.Equal(t, "success", res.Status)
}

func TestVehicle_StartCharge(t *testing.T) {
	defer gock.Off()
	gock.New(DefaultAPIOrigin).
		Post("/v2.0/vehicles/" + testVehicleID + "/charge").
		BodyString(`{"action":"START"}`).
		Reply(200).
		JSON(map[string]any{"status": "success"})

	c := New(nil)
	res, err := c.Vehicle(testVehicleID, testToken, nil).StartCharge()
	require.NoError(t, err)
	assert.Equal(t, "success", res.Status)
}

func TestVehicle_SetChargeLimitValidatesRange(t *testing.T) {
	c := New(nil)
	_, err := c.Vehicle(testVehicleID, testToken, nil).SetChargeLimit(1.5)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrorTypeValidation, apiErr.Type)
	assert.Zero(t, apiErr.StatusCode)
}

func TestVehicle_MissingTokenFailsBeforeNetwork(t *testing.T) {
	// No gock mock: a network call would fail loudly.
	c := New(nil)
	_, err := c.Vehicle(testVehicleID, "", nil).Odometer()

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrorTypeValidation, apiErr.Type)
}

func TestVehicle_APIErrorIsNormalized(t *testing.T) {
	defer gock.Off()
	gock.New(DefaultAPIOrigin).
		Post("/v2.0/vehicles/" + testVehicleID + "/charge").
		Reply(409).
		SetHeader(headerRequestID, "req-409").
		JSON(map[string]any{
			"type":        "VEHICLE_STATE",
			"code":        "FULLY_CHARGED",
			"description": "battery is full",
		})

	c := New(nil)
	_, err := c.Vehicle(testVehicleID, testToken, nil).StartCharge()

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrorTypeVehicleState, apiErr.Type)
	assert.Equal(t, 409, apiErr.StatusCode)
	assert.Equal(t, "FULLY_CHARGED", apiErr.Code)
	assert.Equal(t, "req-409", apiErr.RequestID)
}

func TestVehicle_TransportFailureIsTyped(t *testing.T) {
	defer gock.Off()
	gock.New(DefaultAPIOrigin).
		Get("/v2.0/vehicles/" + testVehicleID + "/odometer").
		ReplyError(errors.New("connection refused"))

	c := New(nil)
	_, err := c.Vehicle(testVehicleID, testToken, nil).Odometer()

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrorTypeUnknown, apiErr.Type)
}

func TestVehicle_RawRequestInjectsMeta(t *testing.T) {
	defer gock.Off()
	gock.New(DefaultAPIOrigin).
		Get("/v2.0/vehicles/" + testVehicleID + "/tires/pressure").
		Reply(200).
		SetHeader(headerRequestID, "req-raw").
		JSON(map[string]any{"frontLeft": 219.98})

	c := New(nil)
	res, err := c.Vehicle(testVehicleID, testToken, nil).Request("GET", "/tires/pressure", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 219.98, res["frontLeft"])

	meta, ok := res["meta"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "req-raw", meta["requestId"])
}

func TestVehicle_RawRequestKeepsServerMeta(t *testing.T) {
	defer gock.Off()
	gock.New(DefaultAPIOrigin).
		Get("/v2.0/vehicles/" + testVehicleID + "/odometer").
		Reply(200).
		SetHeader(headerRequestID, "req-header").
		JSON(map[string]any{
			"distance": 12.5,
			"meta":     map[string]any{"requestId": "req-body", "custom": "kept"},
		})

	c := New(nil)
	res, err := c.Vehicle(testVehicleID, testToken, nil).Request("GET", "/odometer", nil, nil)
	require.NoError(t, err)

	meta := res["meta"].(map[string]any)
	assert.Equal(t, "req-body", meta["requestId"], "existing meta keys must not be overwritten")
	assert.Equal(t, "kept", meta["custom"])
}

func TestVehicle_Subscribe(t *testing.T) {
	defer gock.Off()
	gock.New(DefaultAPIOrigin).
		Post("/v2.0/vehicles/" + testVehicleID + "/webhooks/wh-123").
		MatchHeader("Authorization", "Bearer "+testToken).
		Reply(200).
		JSON(map[string]any{"webhookId": "wh-123", "vehicleId": testVehicleID})

	c := New(nil)
	sub, err := c.Vehicle(testVehicleID, testToken, nil).Subscribe("wh-123")
	require.NoError(t, err)
	assert.Equal(t, "wh-123", sub.WebhookID)
	assert.Equal(t, testVehicleID, sub.VehicleID)
}

func TestVehicle_SubscribeMissingWebhookID(t *testing.T) {
	c := New(nil)
	_, err := c.Vehicle(testVehicleID, testToken, nil).Subscribe("")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrorTypeValidation, apiErr.Type)
}

func TestVehicle_UnsubscribeUsesManagementToken(t *testing.T) {
	// Unsubscribe authenticates with the AMT, not the vehicle token.
	defer gock.Off()
	gock.New(DefaultAPIOrigin).
		Delete("/v2.0/vehicles/" + testVehicleID + "/webhooks/wh-123").
		MatchHeader("Authorization", "Bearer "+testAMT).
		Reply(200).
		JSON(map[string]any{"status": "success"})

	c := New(nil)
	res, err := c.Vehicle(testVehicleID, testToken, nil).Unsubscribe(testAMT, "wh-123")
	require.NoError(t, err)
	assert.Equal(t, "success", res.Status)
}

func TestVehicle_UnsubscribeValidation(t *testing.T) {
	c := New(nil)
	v := c.Vehicle(testVehicleID, testToken, nil)

	var apiErr *Error
	_, err := v.Unsubscribe("", "wh-123")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrorTypeValidation, apiErr.Type)

	_, err = v.Unsubscribe(testAMT, "")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrorTypeValidation, apiErr.Type)
}

func TestVehicle_Permissions(t *testing.T) {
	defer gock.Off()
	gock.New(DefaultAPIOrigin).
		Get("/v2.0/vehicles/" + testVehicleID + "/permissions").
		MatchParam("limit", "10").
		MatchParam("offset", "5").
		Reply(200).
		JSON(map[string]any{
			"permissions": []string{"read_odometer"},
			"paging":      map[string]int{"count": 1, "offset": 5},
		})

	c := New(nil)
	perms, err := c.Vehicle(testVehicleID, testToken, nil).Permissions(&PagingOptions{Limit: 10, Offset: 5})
	require.NoError(t, err)
	assert.Equal(t, []string{"read_odometer"}, perms.Permissions)
	assert.Equal(t, 5, perms.Paging.Offset)
}
