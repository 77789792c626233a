package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

type commentService struct {
	commentRepository store.CommentRepository
	postRepository    store.PostRepository
	userRepository    store.UserRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewCommentService(
	commentRepository store.CommentRepository,
	postRepository store.PostRepository,
	userRepository store.UserRepository,
	validator validators.Validator,
	logger *logger.Logger,
) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		postRepository:    postRepository,
		userRepository:    userRepository,
		validator:         validator,
		logger:            logger,
	}
}

// CreateComment stores a comment on an existing post. The caller may only
// comment as themselves unless they are an admin.
func (s *commentService) CreateComment(ctx context.Context, caller models.Claims, req models.CreateCommentRequest) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Comment{}, err
	}

	if err := requireSelfOrAdmin(caller, req.UserID, ErrActOnBehalfForbidden); err != nil {
		log.Warn().Str("caller", caller.UserID).Str("userId", req.UserID).Msg("comment creation denied")
		return models.Comment{}, err
	}

	if _, err := s.postRepository.FindPostByID(ctx, req.PostID); err != nil {
		return models.Comment{}, fmt.Errorf("post search failed: %w", err)
	}

	comment, err := s.commentRepository.CreateComment(ctx, models.Comment{
		CommentID: utils.NewID(),
		Content:   req.Content,
		PostID:    req.PostID,
		UserID:    req.UserID,
		Likes:     []string{},
	})
	if err != nil {
		log.Err(err).Str("postId", req.PostID).Msg("comment creation failed")
		return models.Comment{}, fmt.Errorf("comment creation failed: %w", err)
	}

	return comment, nil
}

// GetPostComments returns the comment feed of postID, oldest first. IsLiked
// of every entry is computed for the caller.
func (s *commentService) GetPostComments(ctx context.Context, caller models.Claims, postID string) ([]models.CommentView, error) {
	if postID == "" {
		return nil, validators.ErrPostIDRequired
	}

	comments, err := s.commentRepository.ListPostComments(ctx, postID, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("comment feed failed: %w", err)
	}

	return comments, nil
}

// ToggleLike likes commentID on behalf of userID, or takes the like back if
// userID already liked it.
func (s *commentService) ToggleLike(ctx context.Context, caller models.Claims, commentID, userID string) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if commentID == "" || userID == "" {
		return models.Comment{}, validators.ErrAllFieldsRequired
	}

	if err := requireSelfOrAdmin(caller, userID, ErrActOnBehalfForbidden); err != nil {
		log.Warn().Str("caller", caller.UserID).Str("userId", userID).Msg("like toggle denied")
		return models.Comment{}, err
	}

	if _, err := s.userRepository.FindUserByID(ctx, userID); err != nil {
		return models.Comment{}, fmt.Errorf("user search failed: %w", err)
	}

	comment, err := s.commentRepository.ToggleLike(ctx, commentID, userID)
	switch {
	case err == nil:
		return comment, nil
	case errors.Is(err, store.ErrCommentNotFound):
		return models.Comment{}, err
	case errors.Is(err, store.ErrScanningRow):
		log.Err(err).Str("commentId", commentID).Msg("toggled comment could not be read back")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrSomethingWentWrong, err)
	default:
		log.Err(err).Str("commentId", commentID).Msg("like toggle failed")
		return models.Comment{}, fmt.Errorf("like toggle failed: %w", err)
	}
}

// EditComment replaces the content of commentID. Only the comment's author or
// an admin may do it.
func (s *commentService) EditComment(ctx context.Context, caller models.Claims, commentID string, req models.EditCommentRequest) (models.Comment, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Comment{}, err
	}

	if err := s.authorizeCommentChange(ctx, caller, commentID); err != nil {
		return models.Comment{}, err
	}

	comment, err := s.commentRepository.UpdateCommentContent(ctx, commentID, req.Content)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("commentId", commentID).Msg("comment edit failed")
		return models.Comment{}, fmt.Errorf("comment edit failed: %w", err)
	}

	return comment, nil
}

// DeleteComment removes commentID. Only the comment's author or an admin may
// do it.
func (s *commentService) DeleteComment(ctx context.Context, caller models.Claims, commentID string) error {
	if err := s.authorizeCommentChange(ctx, caller, commentID); err != nil {
		return err
	}

	if err := s.commentRepository.DeleteComment(ctx, commentID); err != nil {
		logger.FromContext(ctx).Err(err).Str("commentId", commentID).Msg("comment deletion failed")
		return fmt.Errorf("comment deletion failed: %w", err)
	}

	return nil
}

func (s *commentService) authorizeCommentChange(ctx context.Context, caller models.Claims, commentID string) error {
	if commentID == "" {
		return validators.ErrCommentIDRequired
	}

	comment, err := s.commentRepository.FindCommentByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("comment search failed: %w", err)
	}

	if err = requireSelfOrAdmin(caller, comment.UserID, ErrActOnBehalfForbidden); err != nil {
		logger.FromContext(ctx).Warn().
			Str("caller", caller.UserID).
			Str("commentId", commentID).
			Str("author", comment.UserID).
			Msg("comment change denied")
		return err
	}

	return nil
}
