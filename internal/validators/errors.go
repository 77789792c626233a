package validators

import (
	"errors"

	"github.com/MKhiriev/go-blog/internal/utils"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrAllFieldsRequired = errors.New("All fields are required")

	ErrUsernameLength  = errors.New("Username must be between 7 and 20 characters")
	ErrUsernameSpace   = errors.New("Username should not have space in it")
	ErrUsernameCase    = errors.New("Username should only be lowercase")
	ErrUsernameCharset = errors.New("Username should only contain letters and numbers")

	ErrPasswordTooShort = errors.New("Password must be at least 6 characters")
	ErrPasswordTooLong  = utils.ErrPasswordTooLong

	ErrPostFieldsRequired = errors.New("Provide value for all the fields")

	ErrContentRequired   = errors.New("Content is required")
	ErrPostIDRequired    = errors.New("postId Is required")
	ErrCommentIDRequired = errors.New("Comment ID is required")
)
