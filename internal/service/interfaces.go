package service

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService signs users up and in and issues and verifies their session
// tokens.
type AuthService interface {
	SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error)
	SignIn(ctx context.Context, req models.SignInRequest) (models.User, error)
	// GoogleSignIn signs in the user owning the Google identity, creating the
	// account on first use.
	GoogleSignIn(ctx context.Context, req models.GoogleAuthRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Claims, error)
}

// UserService manages user accounts on behalf of an authenticated caller.
type UserService interface {
	UpdateUser(ctx context.Context, caller models.Claims, userID string, req models.UpdateUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, caller models.Claims, userID string) error
	ListUsers(ctx context.Context, caller models.Claims, params models.ListParams) (models.UsersPage, error)
}

// PostService manages blog posts. Listing is public; every other operation
// takes the authenticated caller.
type PostService interface {
	CreatePost(ctx context.Context, caller models.Claims, req models.CreatePostRequest) (models.Post, error)
	ListPosts(ctx context.Context, filter models.PostFilter) (models.PostsPage, error)
	UpdatePost(ctx context.Context, caller models.Claims, postID string, update models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, caller models.Claims, postID string) error
}

// CommentService manages comments, their likes and the per-post comment feed.
type CommentService interface {
	CreateComment(ctx context.Context, caller models.Claims, req models.CreateCommentRequest) (models.Comment, error)
	GetPostComments(ctx context.Context, caller models.Claims, postID string) ([]models.CommentView, error)
	ToggleLike(ctx context.Context, caller models.Claims, commentID, userID string) (models.Comment, error)
	EditComment(ctx context.Context, caller models.Claims, commentID string, req models.EditCommentRequest) (models.Comment, error)
	DeleteComment(ctx context.Context, caller models.Claims, commentID string) error
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
