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

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.Username, &user.Email, &user.Password,
		&user.ProfilePicture, &user.IsAdmin, &user.CreatedAt, &user.UpdatedAt)
	return user, err
}

// CreateUser persists a new user record and returns it with the
// server-assigned timestamps.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on username or email → wrapped [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	row := r.db.QueryRowContext(ctx, createUser,
		user.UserID, user.Username, user.Email, user.Password, user.ProfilePicture, user.IsAdmin)

	if err := row.Err(); err != nil {
		return models.User{}, r.db.dbError(ctx, userErrors, "*userRepository.CreateUser", ErrExecutingStatement, err)
	}

	created, err := scanUser(row)
	if err != nil {
		return models.User{}, r.db.dbError(ctx, userErrors, "*userRepository.CreateUser", ErrScanningRow, err)
	}

	return created, nil
}

// FindUserByEmail retrieves the user registered with email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByID retrieves the user with the given id. A malformed id is
// reported as [ErrUserNotFound] without querying the database.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	if !utils.IsValidID(userID) {
		return models.User{}, ErrUserNotFound
	}
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

func (r *userRepository) findOne(ctx context.Context, fn, query string, arg any) (models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, r.db.dbError(ctx, userErrors, fn, ErrExecutingQuery, err)
	}

	return user, nil
}

// UpdateUser applies the non-nil fields of update and returns the updated
// record.
//
// Error handling:
//   - malformed id or no such row → [ErrUserNotFound].
//   - unique_violation on the new username → wrapped [ErrUserAlreadyExists].
func (r *userRepository) UpdateUser(ctx context.Context, userID string, update models.UserUpdate) (models.User, error) {
	if !utils.IsValidID(userID) {
		return models.User{}, ErrUserNotFound
	}

	query, args, err := buildUpdateUserQuery(userID, update)
	if err != nil {
		return models.User{}, r.db.dbError(ctx, userErrors, "*userRepository.UpdateUser", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		return models.User{}, r.db.dbError(ctx, userErrors, "*userRepository.UpdateUser", ErrExecutingStatement, err)
	}

	return user, nil
}

// DeleteUser removes the user with the given id. Posts and comments written
// by the user are kept.
func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	if !utils.IsValidID(userID) {
		return ErrUserNotFound
	}

	result, err := r.db.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		return r.db.dbError(ctx, userErrors, "*userRepository.DeleteUser", ErrExecutingStatement, err)
	}

	return affectedOrNotFound(result, ErrUserNotFound)
}

// ListUsers returns one page of users ordered by creation time.
func (r *userRepository) ListUsers(ctx context.Context, params models.ListParams) ([]models.User, error) {
	query, args, err := buildListUsersQuery(params)
	if err != nil {
		return nil, r.db.dbError(ctx, userErrors, "*userRepository.ListUsers", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.dbError(ctx, userErrors, "*userRepository.ListUsers", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, r.db.dbError(ctx, userErrors, "*userRepository.ListUsers", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, r.db.dbError(ctx, userErrors, "*userRepository.ListUsers", ErrScanningRows, err)
	}

	return users, nil
}

// CountUsers counts users created at or after since. A zero since counts
// every user.
func (r *userRepository) CountUsers(ctx context.Context, since time.Time) (int64, error) {
	return count(ctx, r.db, userErrors, "*userRepository.CountUsers", models.User{}.TableName(), since)
}

// count runs a COUNT(*) over table, optionally restricted by creation time.
func count(ctx context.Context, db *DB, entity entityErrors, fn, table string, since time.Time) (int64, error) {
	query, args, err := buildCountQuery(table, since)
	if err != nil {
		return 0, db.dbError(ctx, entity, fn, ErrBuildingSQLQuery, err)
	}

	var n int64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, db.dbError(ctx, entity, fn, ErrExecutingQuery, err)
	}

	return n, nil
}

// affectedOrNotFound returns notFound when a DML statement touched no rows.
func affectedOrNotFound(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
