package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an INSERT or UPDATE of a user
	// violates the unique username or email constraint.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when a lookup, update or delete targets a
	// user id or email that does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrPostNotFound is returned when a lookup, update or delete targets a
	// post that does not exist.
	ErrPostNotFound = errors.New("post not found")

	// ErrCommentNotFound is returned when a lookup, update, delete or like
	// toggle targets a comment that does not exist.
	ErrCommentNotFound = errors.New("comment not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a dynamic SQL query
	// with squirrel fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
