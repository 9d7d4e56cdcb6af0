// Package smartcar is a client for the Smartcar vehicle API. It covers the
// user, vehicle and compatibility endpoints, and the webhook signature
// helpers.
//
// A Client holds the configuration (API origin, version, OAuth client
// credentials) and dispatches all requests. Vehicle handles are built from
// a vehicle id and access token and expose one method per endpoint:
//
//	client := smartcar.New(nil)
//	vehicle := client.Vehicle(vehicleID, accessToken, nil)
//	odo, err := vehicle.Odometer()
//
// Every failed API call returns a *Error classified by ErrorType; no raw
// transport error escapes the package. The client never retries: timeouts
// and cancellation belong to the http.Client passed in the Config.
package smartcar
