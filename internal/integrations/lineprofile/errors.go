package lineprofile

import "errors"

var (
	// ErrUnauthorized is returned when the access token is rejected
	ErrUnauthorized = errors.New("lineprofile client: access token rejected")

	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("lineprofile client: internal error")

	// ErrInvalidResponse is returned when the profile endpoint answers with a
	// body the client cannot parse
	ErrInvalidResponse = errors.New("lineprofile client: invalid response")

	// ErrServiceDegraded is returned when graceful degradation is applied.
	// The caller should fall back to the configured default display name.
	ErrServiceDegraded = errors.New("lineprofile unavailable: graceful degradation applied")
)
