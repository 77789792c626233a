package service

import "errors"

// Authentication errors.
var (
	ErrUnauthorizedAccess  = errors.New("Unauthorized Access")
	ErrIncorrectPassword   = errors.New("Incorrect Password")
	ErrTokenCreationFailed = errors.New("session token creation failed")
	ErrGoogleSignInFailed  = errors.New("Google sign-in failed")
)

// Authorization errors. The messages are returned to the client as is.
var (
	ErrUserUpdateForbidden  = errors.New("User is unauthorized to make these changes")
	ErrUserDeleteForbidden  = errors.New("User is not authorized to perform this action")
	ErrListUsersForbidden   = errors.New("You are not authorized to perform this operation")
	ErrCreatePostForbidden  = errors.New("You are not authorized to perform this action")
	ErrPostChangeForbidden  = errors.New("You are not allowed to perform this action")
	ErrActOnBehalfForbidden = errors.New("You are not allowed to act on behalf of another user")
)

// ErrSomethingWentWrong is returned when a like toggle cannot be confirmed.
var ErrSomethingWentWrong = errors.New("Something went wrong")
