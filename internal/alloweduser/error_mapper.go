package alloweduser

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	alloweduserrors "go-chms/internal/alloweduser/errors"
)

const uniqueViolationCode = "23505"

// mapStorageError translates a unique-index violation on email into the
// domain conflict error. The pre-insert existence check races with
// concurrent adds; the index is what actually settles it.
func mapStorageError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return alloweduserrors.ErrUserExists
	}
	return err
}
