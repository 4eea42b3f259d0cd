package accountsdk

import (
	"github.com/gaiyadev/accounts/pkg/jwtx"
)

// SignUpRequest is the registration payload for POST /v1/sign-up.
type SignUpRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest is the credential payload for POST /v1/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserData is the public projection of an account returned by sign-up and
// login. Names are intentionally omitted.
type UserData struct {
	// ID is the storage-assigned account id
	ID int64 `json:"id"`

	// Email the account was registered with
	Email string `json:"email"`
}

// SignUpResponse is the 201 body of POST /v1/sign-up.
type SignUpResponse struct {
	Message string   `json:"message"`
	Data    UserData `json:"data"`
}

// LoginResponse is the 200 body of POST /v1/login.
type LoginResponse struct {
	Data UserData `json:"data"`

	// Token is a signed JWT valid for one day
	Token string `json:"token"`
}

// MeResponse is the 200 body of GET /v1/me.
type MeResponse struct {
	Data Profile `json:"data"`
}

// Profile is the full account view available to its owner.
type Profile struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// MessageResponse is the generic single-message body used by error
// responses (401, 429, 500).
type MessageResponse struct {
	Message string `json:"message"`
}

// FieldError is one rule violation inside a 400 validation response.
type FieldError struct {
	// Field is the json name of the offending field
	Field string `json:"field"`

	// Rule that was violated (required, min, confirmed, email, unique, alpha)
	Rule string `json:"rule"`

	// Message is the fixed human-readable message for the rule
	Message string `json:"message"`
}

// ValidationResponse is the 400 body of POST /v1/sign-up. The message key
// carries the structured error list rather than a string.
type ValidationResponse struct {
	Message []FieldError `json:"message"`
}

// HealthChecks reports the status of each critical dependency.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// HealthResponse is the body of the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// JWKSResponse is the body of GET /.well-known/jwks.json.
type JWKSResponse = jwtx.JWKS
