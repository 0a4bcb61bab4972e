package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token on
// outbound requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName tags every outbound request with a correlation id.
const RequestIDHeaderName = "X-Request-ID"
