package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

type postService struct {
	postRepository store.PostRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, validator validators.Validator, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		validator:      validator,
		logger:         logger,
	}
}

// CreatePost stores a new post authored by the caller. Admin only. The slug
// is derived from the title once and never changes afterwards.
func (s *postService) CreatePost(ctx context.Context, caller models.Claims, req models.CreatePostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := requireAdmin(caller, ErrCreatePostForbidden); err != nil {
		log.Warn().Str("caller", caller.UserID).Msg("post creation denied")
		return models.Post{}, err
	}

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Post{}, err
	}

	category := req.Category
	if category == "" {
		category = models.DefaultPostCategory
	}

	post, err := s.postRepository.CreatePost(ctx, models.Post{
		PostID:   utils.NewID(),
		UserID:   caller.UserID,
		Title:    req.Title,
		Content:  req.Content,
		Category: category,
		Image:    req.Image,
		Slug:     utils.NewSlug(req.Title),
	})
	if err != nil {
		log.Err(err).Str("title", req.Title).Msg("post creation failed")
		return models.Post{}, fmt.Errorf("post creation failed: %w", err)
	}

	return post, nil
}

// ListPosts returns one page of posts matching filter with the total count
// and the count of posts created during the last month.
func (s *postService) ListPosts(ctx context.Context, filter models.PostFilter) (models.PostsPage, error) {
	filter.ListParams = withDefaultLimit(filter.ListParams)

	posts, err := s.postRepository.ListPosts(ctx, filter)
	if err != nil {
		return models.PostsPage{}, fmt.Errorf("post listing failed: %w", err)
	}

	total, err := s.postRepository.CountPosts(ctx, zeroTime)
	if err != nil {
		return models.PostsPage{}, fmt.Errorf("post counting failed: %w", err)
	}

	lastMonth, err := s.postRepository.CountPosts(ctx, oneMonthAgo(timeNow()))
	if err != nil {
		return models.PostsPage{}, fmt.Errorf("last month post counting failed: %w", err)
	}

	return models.PostsPage{
		Posts:           posts,
		TotalPostsCount: total,
		LastMonthPosts:  lastMonth,
	}, nil
}

// UpdatePost applies a partial update to postID. Only the post's author or an
// admin may do it.
func (s *postService) UpdatePost(ctx context.Context, caller models.Claims, postID string, update models.PostUpdate) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := s.authorizePostChange(ctx, caller, postID); err != nil {
		return models.Post{}, err
	}

	post, err := s.postRepository.UpdatePost(ctx, postID, update)
	if err != nil {
		log.Err(err).Str("postId", postID).Msg("post update failed")
		return models.Post{}, fmt.Errorf("post update failed: %w", err)
	}

	return post, nil
}

// DeletePost removes postID. Only the post's author or an admin may do it.
// Comments of the post are kept.
func (s *postService) DeletePost(ctx context.Context, caller models.Claims, postID string) error {
	log := logger.FromContext(ctx)

	if err := s.authorizePostChange(ctx, caller, postID); err != nil {
		return err
	}

	if err := s.postRepository.DeletePost(ctx, postID); err != nil {
		log.Err(err).Str("postId", postID).Msg("post deletion failed")
		return fmt.Errorf("post deletion failed: %w", err)
	}

	return nil
}

// authorizePostChange loads postID and checks the caller against its stored
// author.
func (s *postService) authorizePostChange(ctx context.Context, caller models.Claims, postID string) error {
	post, err := s.postRepository.FindPostByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("post search failed: %w", err)
	}

	if err = requireSelfOrAdmin(caller, post.UserID, ErrPostChangeForbidden); err != nil {
		logger.FromContext(ctx).Warn().
			Str("caller", caller.UserID).
			Str("postId", postID).
			Str("author", post.UserID).
			Msg("post change denied")
		return err
	}

	return nil
}
