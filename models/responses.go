package models

// TokenResponse is the success body of POST /api/users and POST /api/auth.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse is the single-message error/confirmation envelope
// ({"msg": ...}) used for domain not-found and conflict responses.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// FieldError is one entry of a validation failure list.
type FieldError struct {
	Field string `json:"field,omitempty"`
	Msg   string `json:"msg"`
}

// ErrorsResponse is the validation failure envelope
// ({"errors": [{"field": ..., "msg": ...}, ...]}).
type ErrorsResponse struct {
	Errors []FieldError `json:"errors"`
}
