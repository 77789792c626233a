package service

import (
	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	PostService    PostService
	CommentService CommentService
	AppInfoService AppInfoService
}

// NewServices wires every service to its repositories. googleVerifier may be
// nil, in which case Google sign-in trusts the identity sent by the client.
func NewServices(storages *store.Storages, googleVerifier adapter.GoogleVerifier, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	validator := validators.NewRequestValidator()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, googleVerifier, validator, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, validator, logger),
		PostService:    NewPostService(storages.PostRepository, validator, logger),
		CommentService: NewCommentService(storages.CommentRepository, storages.PostRepository, storages.UserRepository, validator, logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
