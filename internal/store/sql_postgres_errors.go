package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the domain meaning of a failed database call.
type ErrorClassification int

const (
	// Unclassified covers everything without a domain meaning: connection
	// loss, query bugs and non-driver errors.
	Unclassified ErrorClassification = iota

	// Conflict is a unique_violation (23505).
	Conflict

	// MalformedInput is invalid_text_representation (22P02), raised when an
	// id does not parse as a uuid. No row can match it.
	MalformedInput

	// InvariantViolation is a check_violation (23514). The only check in the
	// schema ties number_of_likes to the size of likes.
	InvariantViolation
)

// String names the classification for log fields.
func (c ErrorClassification) String() string {
	switch c {
	case Conflict:
		return "conflict"
	case MalformedInput:
		return "malformed_input"
	case InvariantViolation:
		return "invariant_violation"
	default:
		return "unclassified"
	}
}

// PostgresErrorClassifier implements [ErrorClassificator] on top of the
// SQLSTATE carried by *pgconn.PgError.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError and maps its code. Anything
// else is [Unclassified].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Unclassified
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return Conflict
	case pgerrcode.InvalidTextRepresentation:
		return MalformedInput
	case pgerrcode.CheckViolation:
		return InvariantViolation
	}

	return Unclassified
}

// entityErrors are the sentinels a repository reports for classified
// failures. A nil field leaves that classification to the generic kind.
type entityErrors struct {
	notFound error
	conflict error
}

var (
	userErrors    = entityErrors{notFound: ErrUserNotFound, conflict: ErrUserAlreadyExists}
	postErrors    = entityErrors{notFound: ErrPostNotFound}
	commentErrors = entityErrors{notFound: ErrCommentNotFound}
)

// domainError returns the sentinel that class maps to for entity, or nil
// when the failure has no domain meaning.
func (e entityErrors) domainError(class ErrorClassification) error {
	switch class {
	case Conflict:
		return e.conflict
	case MalformedInput:
		return e.notFound
	}
	return nil
}
