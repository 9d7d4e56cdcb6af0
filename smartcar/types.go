package smartcar

// Paging describes the window of a paginated listing response.
type Paging struct {
	Count  int `json:"count"`
	Offset int `json:"offset"`
}

// PagingOptions selects a page of a caller-driven listing.
type PagingOptions struct {
	Limit  int
	Offset int
}

// User identifies the vehicle owner who authorized the application.
type User struct {
	ID   string `json:"id"`
	Meta Meta   `json:"-"`
}

// VehicleIDs is one page of vehicle ids authorized for the application.
type VehicleIDs struct {
	Vehicles []string `json:"vehicles"`
	Paging   Paging   `json:"paging"`
	Meta     Meta     `json:"-"`
}

// Attributes are the vehicle's static identity fields.
type Attributes struct {
	ID    string `json:"id"`
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
	Meta  Meta   `json:"-"`
}

// Odometer is the total traveled distance, in km or miles depending on the
// requested unit system.
type Odometer struct {
	Distance float64 `json:"distance"`
	Meta     Meta    `json:"-"`
}

// Location is the last known GPS position.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Meta      Meta    `json:"-"`
}

// Battery is the EV battery state of charge.
type Battery struct {
	PercentRemaining float64 `json:"percentRemaining"`
	Range            float64 `json:"range"`
	Meta             Meta    `json:"-"`
}

// Charge is the charging session state.
type Charge struct {
	IsPluggedIn bool   `json:"isPluggedIn"`
	State       string `json:"state"`
	Meta        Meta   `json:"-"`
}

// ChargeLimit is the configured maximum state of charge, as a fraction.
type ChargeLimit struct {
	Limit float64 `json:"limit"`
	Meta  Meta    `json:"-"`
}

// Fuel is the fossil-fuel tank state.
type Fuel struct {
	Range            float64 `json:"range"`
	PercentRemaining float64 `json:"percentRemaining"`
	AmountRemaining  float64 `json:"amountRemaining"`
	Meta             Meta    `json:"-"`
}

// EngineOil is the remaining oil life, as a fraction.
type EngineOil struct {
	LifeRemaining float64 `json:"lifeRemaining"`
	Meta          Meta    `json:"-"`
}

// TirePressure is the pressure of each tire, in kPa or psi.
type TirePressure struct {
	FrontLeft  float64 `json:"frontLeft"`
	FrontRight float64 `json:"frontRight"`
	BackLeft   float64 `json:"backLeft"`
	BackRight  float64 `json:"backRight"`
	Meta       Meta    `json:"-"`
}

// Permissions is one page of the scopes granted to the application.
type Permissions struct {
	Permissions []string `json:"permissions"`
	Paging      Paging   `json:"paging"`
	Meta        Meta     `json:"-"`
}

// CommandResponse acknowledges a vehicle command.
type CommandResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Meta    Meta   `json:"-"`
}

// Capability reports whether one permission is supported by a vehicle.
type Capability struct {
	Permission string  `json:"permission"`
	Endpoint   string  `json:"endpoint"`
	Capable    bool    `json:"capable"`
	Reason     *string `json:"reason"`
}

// Compatibility is the result of a pre-authorization compatibility check.
type Compatibility struct {
	Compatible   bool         `json:"compatible"`
	Reason       *string      `json:"reason"`
	Capabilities []Capability `json:"capabilities"`
	Meta         Meta         `json:"-"`
}

// Subscription acknowledges a webhook subscribe call.
type Subscription struct {
	WebhookID string `json:"webhookId"`
	VehicleID string `json:"vehicleId"`
	Meta      Meta   `json:"-"`
}
