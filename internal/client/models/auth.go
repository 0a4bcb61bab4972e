package models

// LoginRequest is the body of POST /auth/local.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// RegisterRequest is the body of POST /auth/local/register.
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
}

// AuthResult is returned by both login and registration.
type AuthResult struct {
	JWT  string `json:"jwt"`
	User User   `json:"user"`
}

// UserDetail is the onboarding payload of POST /user-informations.
type UserDetail struct {
	FullName string  `json:"full_name"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	Age      int     `json:"age"`
	DOB      int64   `json:"dob"`
	Gender   string  `json:"gender"`
	User     string  `json:"user"`
}

// DataEnvelope wraps request and response bodies of collection endpoints.
type DataEnvelope[T any] struct {
	Data T `json:"data"`
}

// ErrorEnvelope is the backend's error body.
type ErrorEnvelope struct {
	Error struct {
		Status  int    `json:"status"`
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"error"`
}
