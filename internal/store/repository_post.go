package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by db.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	err := row.Scan(&post.PostID, &post.UserID, &post.Title, &post.Content,
		&post.Category, &post.Image, &post.Slug, &post.CreatedAt, &post.UpdatedAt)
	return post, err
}

// CreatePost inserts post and returns the stored row.
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	created, err := scanPost(r.db.QueryRowContext(ctx, createPost,
		post.PostID, post.UserID, post.Title, post.Content, post.Category, post.Image, post.Slug))
	if err != nil {
		return models.Post{}, r.db.dbError(ctx, postErrors, "*postRepository.CreatePost", ErrExecutingStatement, err)
	}

	return created, nil
}

// FindPostByID returns the post with the given id, or [ErrPostNotFound].
func (r *postRepository) FindPostByID(ctx context.Context, postID string) (models.Post, error) {
	if !utils.IsValidID(postID) {
		return models.Post{}, ErrPostNotFound
	}

	post, err := scanPost(r.db.QueryRowContext(ctx, findPostByID, postID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		return models.Post{}, r.db.dbError(ctx, postErrors, "*postRepository.FindPostByID", ErrExecutingQuery, err)
	}

	return post, nil
}

// ListPosts returns one page of posts matching filter, newest update first
// unless filter.Ascending is set. A malformed userId or postId filter
// matches nothing.
func (r *postRepository) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	posts := make([]models.Post, 0)

	if (filter.UserID != "" && !utils.IsValidID(filter.UserID)) ||
		(filter.PostID != "" && !utils.IsValidID(filter.PostID)) {
		return posts, nil
	}

	query, args, err := buildListPostsQuery(filter)
	if err != nil {
		return nil, r.db.dbError(ctx, postErrors, "*postRepository.ListPosts", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.dbError(ctx, postErrors, "*postRepository.ListPosts", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, r.db.dbError(ctx, postErrors, "*postRepository.ListPosts", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, r.db.dbError(ctx, postErrors, "*postRepository.ListPosts", ErrScanningRows, err)
	}

	return posts, nil
}

// CountPosts counts posts created at or after since. A zero since counts
// every post.
func (r *postRepository) CountPosts(ctx context.Context, since time.Time) (int64, error) {
	return count(ctx, r.db, postErrors, "*postRepository.CountPosts", models.Post{}.TableName(), since)
}

// UpdatePost applies the non-nil fields of update and returns the updated
// post. The slug is left as derived at creation.
func (r *postRepository) UpdatePost(ctx context.Context, postID string, update models.PostUpdate) (models.Post, error) {
	if !utils.IsValidID(postID) {
		return models.Post{}, ErrPostNotFound
	}

	query, args, err := buildUpdatePostQuery(postID, update)
	if err != nil {
		return models.Post{}, r.db.dbError(ctx, postErrors, "*postRepository.UpdatePost", ErrBuildingSQLQuery, err)
	}

	post, err := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		return models.Post{}, r.db.dbError(ctx, postErrors, "*postRepository.UpdatePost", ErrExecutingStatement, err)
	}

	return post, nil
}

// DeletePost removes the post with the given id. Its comments are kept.
func (r *postRepository) DeletePost(ctx context.Context, postID string) error {
	if !utils.IsValidID(postID) {
		return ErrPostNotFound
	}

	result, err := r.db.ExecContext(ctx, deletePost, postID)
	if err != nil {
		return r.db.dbError(ctx, postErrors, "*postRepository.DeletePost", ErrExecutingStatement, err)
	}

	return affectedOrNotFound(result, ErrPostNotFound)
}
