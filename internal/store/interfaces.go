package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts in the "users" table.
//
// Lookups by a malformed id report [ErrUserNotFound].
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	UpdateUser(ctx context.Context, userID string, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, userID string) error
	ListUsers(ctx context.Context, params models.ListParams) ([]models.User, error)
	// CountUsers counts users created at or after since; a zero since counts all.
	CountUsers(ctx context.Context, since time.Time) (int64, error)
}

// PostRepository persists blog posts in the "posts" table.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	FindPostByID(ctx context.Context, postID string) (models.Post, error)
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	// CountPosts counts posts created at or after since; a zero since counts all.
	CountPosts(ctx context.Context, since time.Time) (int64, error)
	UpdatePost(ctx context.Context, postID string, update models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, postID string) error
}

// CommentRepository persists comments and their likes in the "comments" table.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	FindCommentByID(ctx context.Context, commentID string) (models.Comment, error)
	// ListPostComments returns the comment feed of a post as seen by viewerID.
	ListPostComments(ctx context.Context, postID, viewerID string) ([]models.CommentView, error)
	// ToggleLike atomically adds userID to the comment's likes or removes it,
	// keeping number_of_likes equal to the set size.
	ToggleLike(ctx context.Context, commentID, userID string) (models.Comment, error)
	UpdateCommentContent(ctx context.Context, commentID, content string) (models.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
}
