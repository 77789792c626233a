package models

// SignUpRequest is the body of POST /api/auth/signup.
type SignUpRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// SignInRequest is the body of POST /api/auth/signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleAuthRequest is the body of POST /api/auth/google.
//
// IDToken is only consulted when Google verification is configured; the
// identity fields then come from the verified token instead of the body.
type GoogleAuthRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	GooglePhotoURL string `json:"googlePhotoUrl"`
	IDToken        string `json:"idToken,omitempty"`
}

// GoogleIdentity is an identity asserted by Google for a verified ID token.
type GoogleIdentity struct {
	Email   string
	Name    string
	Picture string
}

// UpdateUserRequest is the body of PUT /api/user/update/{userId}.
// Absent fields are left unchanged.
type UpdateUserRequest struct {
	Username       *string `json:"username,omitempty"`
	Password       *string `json:"password,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}

// CreatePostRequest is the body of POST /api/post/create.
type CreatePostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

// CreateCommentRequest is the body of POST /api/comment/create.
type CreateCommentRequest struct {
	Content string `json:"content"`
	UserID  string `json:"userId"`
	PostID  string `json:"postId"`
}

// EditCommentRequest is the body of PATCH /api/comment/editComment/{commentId}.
type EditCommentRequest struct {
	Content string `json:"content"`
}

// ListParams controls offset pagination and sort direction of listings.
type ListParams struct {
	StartIndex uint64
	Limit      uint64
	Ascending  bool
}
