package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrInternalServerError = errors.New("remote internal server error")

	ErrEmptyIDToken      = errors.New("empty id token")
	ErrInvalidIDToken    = errors.New("invalid id token")
	ErrAudienceMismatch  = errors.New("id token was issued for another client")
	ErrEmailNotVerified  = errors.New("google email is not verified")
	ErrEmptyClientID     = errors.New("google client id is not configured")
	ErrEmptyTokenInfoURL = errors.New("google token info url is not configured")
)
