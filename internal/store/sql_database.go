package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/migrations"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassificator maps a driver error to its domain meaning.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps the shared *sql.DB handle together with the error classifier and
// logger used by every repository.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// dbError turns a driver-level failure into a repository error. A failure
// the classifier maps onto one of entity's sentinels is wrapped with that
// sentinel; anything else is logged and wrapped as kind. The driver error
// stays in the chain, so SQLState keeps working on the result.
func (db *DB) dbError(ctx context.Context, entity entityErrors, fn string, kind, err error) error {
	class := Unclassified
	if db.errorClassificator != nil {
		class = db.errorClassificator.Classify(err)
	}

	if domainErr := entity.domainError(class); domainErr != nil {
		logger.FromContext(ctx).Warn().
			Str("func", fn).
			Str("sqlstate", SQLState(err)).
			Stringer("class", class).
			Msg(domainErr.Error())
		return fmt.Errorf("%w: %w", domainErr, err)
	}

	logger.FromContext(ctx).Err(err).
		Str("func", fn).
		Str("sqlstate", SQLState(err)).
		Stringer("class", class).
		Msg(kind.Error())

	return fmt.Errorf("%w: %w", kind, err)
}

// SQLState returns the PostgreSQL error code carried by err, or an empty
// string when err did not come from the server.
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
