package validators

import (
	"context"

	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of checks (field-level scoping).
const (
	// FieldRequired checks that every mandatory field of the request is non-empty.
	FieldRequired = "required"

	// FieldUsername applies ValidateUsername to the request's username.
	FieldUsername = "username"

	// FieldPassword applies the password length limits.
	FieldPassword = "password"
)

const minPasswordLength = 6

// RequestValidator implements the Validator interface for the API request
// payloads: SignUpRequest, SignInRequest, UpdateUserRequest,
// CreatePostRequest, CreateCommentRequest and EditCommentRequest.
type RequestValidator struct{}

// NewRequestValidator constructs a new RequestValidator
// and returns it as the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported request are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known request.
// Optional fields restrict validation to the named subset; when omitted,
// every check defined for the type runs in its default order.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.validateSignUp(value, fields...)
	case *models.SignUpRequest:
		return v.validateSignUp(*value, fields...)

	case models.SignInRequest:
		return v.validateSignIn(value, fields...)
	case *models.SignInRequest:
		return v.validateSignIn(*value, fields...)

	case models.UpdateUserRequest:
		return v.validateUpdateUser(value, fields...)
	case *models.UpdateUserRequest:
		return v.validateUpdateUser(*value, fields...)

	case models.CreatePostRequest:
		return v.validateCreatePost(value, fields...)
	case *models.CreatePostRequest:
		return v.validateCreatePost(*value, fields...)

	case models.CreateCommentRequest:
		return v.validateCreateComment(value, fields...)
	case *models.CreateCommentRequest:
		return v.validateCreateComment(*value, fields...)

	case models.EditCommentRequest:
		return v.validateEditComment(value, fields...)
	case *models.EditCommentRequest:
		return v.validateEditComment(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateSignUp validates a sign-up request.
//
// Default validated fields: required, username, password.
func (v *RequestValidator) validateSignUp(req models.SignUpRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired, FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if req.Username == "" || req.Email == "" || req.Password == "" {
				return ErrAllFieldsRequired
			}
		case FieldUsername:
			if err := ValidateUsername(req.Username); err != nil {
				return err
			}
		case FieldPassword:
			if len(req.Password) > utils.MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateSignIn validates a sign-in request. Only presence is checked.
func (v *RequestValidator) validateSignIn(req models.SignInRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if req.Email == "" || req.Password == "" {
				return ErrAllFieldsRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdateUser validates a partial profile update. Absent or empty
// fields are not checked.
//
// Default validated fields: password, username.
func (v *RequestValidator) validateUpdateUser(req models.UpdateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPassword, FieldUsername}
	}

	for _, f := range fields {
		switch f {
		case FieldPassword:
			if req.Password == nil || *req.Password == "" {
				continue
			}
			if len(*req.Password) < minPasswordLength {
				return ErrPasswordTooShort
			}
			if len(*req.Password) > utils.MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		case FieldUsername:
			if req.Username == nil || *req.Username == "" {
				continue
			}
			if err := ValidateUsername(*req.Username); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCreatePost requires a title and content.
func (v *RequestValidator) validateCreatePost(req models.CreatePostRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if req.Title == "" || req.Content == "" {
				return ErrPostFieldsRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCreateComment requires content, userId and postId.
func (v *RequestValidator) validateCreateComment(req models.CreateCommentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if req.Content == "" || req.UserID == "" || req.PostID == "" {
				return ErrAllFieldsRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateEditComment(req models.EditCommentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if req.Content == "" {
				return ErrContentRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
