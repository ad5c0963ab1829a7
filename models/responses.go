package models

// ErrorResponse is the JSON body returned for every failed request:
// a machine-readable code plus a human-readable message. Validation
// failures additionally carry per-field messages for form re-display.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// SessionListResponse is the payload of the sessions listing endpoint.
// CurrentSessionID lets the client mark which entry is the session used
// to make the request itself.
type SessionListResponse struct {
	Sessions         []Session `json:"sessions"`
	CurrentSessionID string    `json:"currentSessionId"`
}

// SuccessResponse acknowledges a mutation that has no other payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}
