package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, Unclassified},
		{"plain error", errors.New("boom"), Unclassified},
		{"unique violation", pgError(pgerrcode.UniqueViolation), Conflict},
		{"unique violation wrapped", fmt.Errorf("%w: %w", ErrExecutingStatement, pgError(pgerrcode.UniqueViolation)), Conflict},
		{"invalid uuid text", pgError(pgerrcode.InvalidTextRepresentation), MalformedInput},
		{"likes count check", pgError(pgerrcode.CheckViolation), InvariantViolation},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Unclassified},
		{"unknown code", &pgconn.PgError{Code: "XX999"}, Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestErrorClassification_String(t *testing.T) {
	assert.Equal(t, "conflict", Conflict.String())
	assert.Equal(t, "malformed_input", MalformedInput.String())
	assert.Equal(t, "invariant_violation", InvariantViolation.String())
	assert.Equal(t, "unclassified", Unclassified.String())
}

func TestDBError(t *testing.T) {
	db, _ := newTestDB(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		entity  entityErrors
		err     error
		want    error
		notWant error
	}{
		{"duplicate user", userErrors, pgError(pgerrcode.UniqueViolation), ErrUserAlreadyExists, ErrExecutingStatement},
		{"malformed user id", userErrors, pgError(pgerrcode.InvalidTextRepresentation), ErrUserNotFound, ErrExecutingStatement},
		{"malformed post id", postErrors, pgError(pgerrcode.InvalidTextRepresentation), ErrPostNotFound, ErrExecutingStatement},
		{"malformed comment id", commentErrors, pgError(pgerrcode.InvalidTextRepresentation), ErrCommentNotFound, ErrExecutingStatement},
		{"post has no unique constraint", postErrors, pgError(pgerrcode.UniqueViolation), ErrExecutingStatement, ErrUserAlreadyExists},
		{"likes invariant stays internal", commentErrors, pgError(pgerrcode.CheckViolation), ErrExecutingStatement, ErrCommentNotFound},
		{"connection loss stays internal", userErrors, pgError(pgerrcode.ConnectionFailure), ErrExecutingStatement, ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := db.dbError(ctx, tt.entity, "TestDBError", ErrExecutingStatement, tt.err)
			assert.ErrorIs(t, err, tt.want)
			assert.NotErrorIs(t, err, tt.notWant)
			assert.Equal(t, SQLState(tt.err), SQLState(err))
		})
	}
}

func TestDBError_WithoutClassifier(t *testing.T) {
	db := &DB{}

	err := db.dbError(context.Background(), userErrors, "TestDBError", ErrExecutingQuery, pgError(pgerrcode.UniqueViolation))
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrUserAlreadyExists)
}

func TestSQLState(t *testing.T) {
	assert.Equal(t, "", SQLState(nil))
	assert.Equal(t, "", SQLState(errors.New("x")))
	assert.Equal(t, pgerrcode.UniqueViolation, SQLState(fmt.Errorf("wrapped: %w", pgError(pgerrcode.UniqueViolation))))
}
