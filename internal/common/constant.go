// Package common contains shared constants and sentinel errors used across
// nutritrack components.
package common

// AuthorizationHeaderName carries the bearer access token on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the access token in the Authorization header.
const BearerPrefix = "Bearer "

// Keys of the client-side key/value session medium.
const (
	SessionKeyAccessToken  = "auth_token"
	SessionKeyRefreshToken = "refresh_token"
	SessionKeyUserData     = "user_data"
	SessionKeyPrincipalID  = "principal_id"
	SessionKeyIssuedAt     = "issued_at"
)

// DateLayout is the wire format of log dates (meal_date, workout_date).
const DateLayout = "2006-01-02"
