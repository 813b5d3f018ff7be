package pgdb

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// translateUniqueViolation подменяет нарушение уникального ограничения
// на доменную ошибку. Страховка от гонки между проверкой слага и INSERT.
func translateUniqueViolation(err error, constraint string, sentinel error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == constraint {
		return sentinel
	}

	return err
}
