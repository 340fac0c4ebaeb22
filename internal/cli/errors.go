package cli

import (
	"errors"
	"fmt"

	"github.com/drnpkg/drn/sdk/go/drnapi"
)

const msgNotLoggedIn = "you are not logged in. Run 'drn login <api_key>' first"

// describe renders a failed API call into exactly one user-facing message.
func describe(err error) string {
	var (
		authErr *drnapi.AuthError
		srvErr  *drnapi.ServerError
		netErr  *drnapi.NetworkError
	)
	switch {
	case errors.As(err, &authErr):
		return fmt.Sprintf("your API key was rejected (HTTP %d). Run 'drn login <api_key>' with a valid key", authErr.Status)
	case errors.As(err, &srvErr):
		return fmt.Sprintf("the registry returned an error (HTTP %d): %s", srvErr.Status, srvErr.Message)
	case errors.As(err, &netErr):
		return "could not reach the registry server. Check your network connection and try again"
	default:
		return err.Error()
	}
}

// apiErr wraps a failed API call for display.
func apiErr(err error) error {
	return errors.New(describe(err))
}
