package models

// UnknownValue is stored in place of any client attribute that could not be
// determined. Capture is best effort and must never fail a request.
const UnknownValue = "unknown"

// RequestInfo carries the client metadata captured when a session is
// established: IP address, user agent and a coarse location string.
type RequestInfo struct {
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
	Location  string `json:"location"`
}
