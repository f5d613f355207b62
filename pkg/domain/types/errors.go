package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")

	// ErrPlatform is satisfied by any failed remote call to the hosting platform
	ErrPlatform = goerr.New("platform error")
	// ErrNotFound is satisfied when an expected remote resource is absent
	ErrNotFound = goerr.New("not found")
	// ErrParse is satisfied by malformed issue template front matter
	ErrParse = goerr.New("parse error")
	// ErrProvisioning is satisfied by a failed provisioning saga
	ErrProvisioning = goerr.New("provisioning error")
)
