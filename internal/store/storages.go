package store

import "github.com/MKhiriev/go-blog/internal/logger"

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository    UserRepository
	PostRepository    PostRepository
	CommentRepository CommentRepository
}

// NewStorages builds the PostgreSQL repositories on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		PostRepository:    NewPostRepository(db, log),
		CommentRepository: NewCommentRepository(db, log),
	}
}
