package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/go-blog-api/internal/domain/repository"
)

const (
	pgInvalidTextRepresentation = "22P02"
	pgUniqueViolation           = "23505"
	pgForeignKeyViolation       = "23503"
)

// mapPgError translates constraint violations into the repository sentinels.
// A malformed uuid in a lookup is indistinguishable from an absent row to the
// caller, so 22P02 maps to ErrNotFound rather than leaking a database error.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgInvalidTextRepresentation:
			return repository.ErrNotFound
		case pgUniqueViolation:
			return repository.ErrDuplicateEmail
		case pgForeignKeyViolation:
			return repository.ErrPostMissing
		}
	}
	return err
}

// mapCommentInsertError is mapPgError for the comment insert path, where a
// malformed post_id means the referenced post cannot exist.
func mapCommentInsertError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRepresentation {
		return repository.ErrPostMissing
	}
	return mapPgError(err)
}
