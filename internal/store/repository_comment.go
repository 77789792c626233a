package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// commentRepository is the PostgreSQL-backed implementation of
// [CommentRepository]. Likes live in a uuid[] column next to the cached
// number_of_likes; both only change together.
type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommentRepository constructs a [CommentRepository] backed by db.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// scanComment reads a comment row whose likes column was selected as
// to_json(likes).
func scanComment(row rowScanner) (models.Comment, error) {
	var (
		comment models.Comment
		likes   []byte
	)

	err := row.Scan(&comment.CommentID, &comment.Content, &comment.PostID, &comment.UserID,
		&likes, &comment.NumberOfLikes, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return models.Comment{}, err
	}

	comment.Likes = make([]string, 0)
	if len(likes) > 0 {
		if err := json.Unmarshal(likes, &comment.Likes); err != nil {
			return models.Comment{}, fmt.Errorf("error decoding likes: %w", err)
		}
	}

	return comment, nil
}

// CreateComment inserts comment with an empty likes set.
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	created, err := scanComment(r.db.QueryRowContext(ctx, createComment,
		comment.CommentID, comment.Content, comment.PostID, comment.UserID))
	if err != nil {
		return models.Comment{}, r.db.dbError(ctx, commentErrors, "*commentRepository.CreateComment", ErrExecutingStatement, err)
	}

	return created, nil
}

// FindCommentByID returns the comment with the given id, or [ErrCommentNotFound].
func (r *commentRepository) FindCommentByID(ctx context.Context, commentID string) (models.Comment, error) {
	if !utils.IsValidID(commentID) {
		return models.Comment{}, ErrCommentNotFound
	}

	comment, err := scanComment(r.db.QueryRowContext(ctx, findCommentByID, commentID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Comment{}, ErrCommentNotFound
	}
	if err != nil {
		return models.Comment{}, r.db.dbError(ctx, commentErrors, "*commentRepository.FindCommentByID", ErrExecutingQuery, err)
	}

	return comment, nil
}

// ListPostComments returns every comment on postID, oldest first, joined
// with its author's username and profile picture. IsLiked reports whether
// viewerID is in the comment's likes. A malformed postID yields an empty
// feed.
func (r *commentRepository) ListPostComments(ctx context.Context, postID, viewerID string) ([]models.CommentView, error) {
	views := make([]models.CommentView, 0)
	if !utils.IsValidID(postID) {
		return views, nil
	}

	viewer := sql.NullString{String: viewerID, Valid: utils.IsValidID(viewerID)}

	rows, err := r.db.QueryContext(ctx, listPostComments, postID, viewer)
	if err != nil {
		return nil, r.db.dbError(ctx, commentErrors, "*commentRepository.ListPostComments", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var view models.CommentView
		if err := rows.Scan(&view.CommentID, &view.UserID, &view.PostID, &view.Content, &view.NumberOfLikes,
			&view.CreatedAt, &view.Username, &view.ImgURL, &view.IsLiked); err != nil {
			return nil, r.db.dbError(ctx, commentErrors, "*commentRepository.ListPostComments", ErrScanningRows, err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, r.db.dbError(ctx, commentErrors, "*commentRepository.ListPostComments", ErrScanningRows, err)
	}

	return views, nil
}

// ToggleLike flips userID's like on commentID in one UPDATE statement and
// returns the resulting comment.
//
// Error handling:
//   - malformed commentID or no such row → [ErrCommentNotFound].
//   - the updated row cannot be read back → wrapped [ErrScanningRow].
func (r *commentRepository) ToggleLike(ctx context.Context, commentID, userID string) (models.Comment, error) {
	if !utils.IsValidID(commentID) {
		return models.Comment{}, ErrCommentNotFound
	}

	row := r.db.QueryRowContext(ctx, toggleCommentLike, commentID, userID)
	if err := row.Err(); err != nil {
		return models.Comment{}, r.db.dbError(ctx, commentErrors, "*commentRepository.ToggleLike", ErrExecutingStatement, err)
	}

	comment, err := scanComment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Comment{}, ErrCommentNotFound
	}
	if err != nil {
		return models.Comment{}, r.db.dbError(ctx, commentErrors, "*commentRepository.ToggleLike", ErrScanningRow, err)
	}

	return comment, nil
}

// UpdateCommentContent replaces the content of commentID.
func (r *commentRepository) UpdateCommentContent(ctx context.Context, commentID, content string) (models.Comment, error) {
	if !utils.IsValidID(commentID) {
		return models.Comment{}, ErrCommentNotFound
	}

	comment, err := scanComment(r.db.QueryRowContext(ctx, updateCommentContent, commentID, content))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Comment{}, ErrCommentNotFound
	}
	if err != nil {
		return models.Comment{}, r.db.dbError(ctx, commentErrors, "*commentRepository.UpdateCommentContent", ErrExecutingStatement, err)
	}

	return comment, nil
}

// DeleteComment removes commentID, or reports [ErrCommentNotFound].
func (r *commentRepository) DeleteComment(ctx context.Context, commentID string) error {
	if !utils.IsValidID(commentID) {
		return ErrCommentNotFound
	}

	result, err := r.db.ExecContext(ctx, deleteComment, commentID)
	if err != nil {
		return r.db.dbError(ctx, commentErrors, "*commentRepository.DeleteComment", ErrExecutingStatement, err)
	}

	return affectedOrNotFound(result, ErrCommentNotFound)
}
