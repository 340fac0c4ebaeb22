package drnapi

import "fmt"

// NetworkError means no response was received (connection or transport
// failure). The request may or may not have reached the server.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// AuthError is a 401 or 403 response: the credential was rejected.
type AuthError struct {
	Status int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication rejected (http %d)", e.Status)
}

// ServerError is any other non-2xx response, carrying the server-supplied
// error message when the body had one.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (http %d): %s", e.Status, e.Message)
}
