package dbx

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound         = errors.New("resource not found")
	ErrConflict         = errors.New("resource already exists")
	ErrInvalidReference = errors.New("referenced resource does not exist")
)

const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

// Classify maps driver errors onto the sentinel errors above while keeping the
// original error in the chain. Unknown errors are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return errors.Join(ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeForeignKeyViolation:
			return errors.Join(ErrInvalidReference, err)
		case codeUniqueViolation:
			return errors.Join(ErrConflict, err)
		}
	}
	return err
}
