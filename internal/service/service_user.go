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

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

// UpdateUser applies a partial update to userID. Only the user or an admin
// may do it. A new password is stored as a digest; empty username and
// password values are ignored.
func (s *userService) UpdateUser(ctx context.Context, caller models.Claims, userID string, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := requireSelfOrAdmin(caller, userID, ErrUserUpdateForbidden); err != nil {
		log.Warn().Str("caller", caller.UserID).Str("userId", userID).Msg("user update denied")
		return models.User{}, err
	}

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	var update models.UserUpdate
	if req.Username != nil && *req.Username != "" {
		update.Username = req.Username
	}
	if req.Password != nil && *req.Password != "" {
		digest, err := utils.HashPassword(*req.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		update.Password = &digest
	}
	update.ProfilePicture = req.ProfilePicture

	user, err := s.userRepository.UpdateUser(ctx, userID, update)
	if err != nil {
		log.Err(err).Str("userId", userID).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return user, nil
}

// DeleteUser removes userID. Only the user or an admin may do it. Posts and
// comments of the user are kept.
func (s *userService) DeleteUser(ctx context.Context, caller models.Claims, userID string) error {
	log := logger.FromContext(ctx)

	if err := requireSelfOrAdmin(caller, userID, ErrUserDeleteForbidden); err != nil {
		log.Warn().Str("caller", caller.UserID).Str("userId", userID).Msg("user deletion denied")
		return err
	}

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Str("userId", userID).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}

// ListUsers returns one page of users with the total count and the count of
// users created during the last month. Admin only.
func (s *userService) ListUsers(ctx context.Context, caller models.Claims, params models.ListParams) (models.UsersPage, error) {
	log := logger.FromContext(ctx)

	if err := requireAdmin(caller, ErrListUsersForbidden); err != nil {
		log.Warn().Str("caller", caller.UserID).Msg("user listing denied")
		return models.UsersPage{}, err
	}

	users, err := s.userRepository.ListUsers(ctx, withDefaultLimit(params))
	if err != nil {
		return models.UsersPage{}, fmt.Errorf("user listing failed: %w", err)
	}

	total, err := s.userRepository.CountUsers(ctx, zeroTime)
	if err != nil {
		return models.UsersPage{}, fmt.Errorf("user counting failed: %w", err)
	}

	lastMonth, err := s.userRepository.CountUsers(ctx, oneMonthAgo(timeNow()))
	if err != nil {
		return models.UsersPage{}, fmt.Errorf("last month user counting failed: %w", err)
	}

	return models.UsersPage{
		Users:               users,
		TotalUsersCount:     total,
		LastMonthUsersCount: lastMonth,
	}, nil
}
