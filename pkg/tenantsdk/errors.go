package tenantsdk

import "fmt"

// APIError is a non-2xx response from the service, decoded from the standard
// error envelope.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("tenantsdk: %s (%d): %s", e.Code, e.StatusCode, e.Description)
	}
	return fmt.Sprintf("tenantsdk: %s (%d)", e.Code, e.StatusCode)
}

// IsStatus reports whether err is an APIError with the given HTTP status.
func IsStatus(err error, status int) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == status
}
