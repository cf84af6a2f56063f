package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrUserNotFound возвращается, если пользователь не найден в БД.
	ErrUserNotFound = errors.New("user not found")

	// ErrTxConflict возвращается, если БД отменила транзакцию из-за конкурентной записи.
	ErrTxConflict = errors.New("transaction conflict")
)

// SQLSTATE serialization_failure
const pgSerializationFailure = "40001"

// mapTxError превращает отказ сериализации PostgreSQL в ErrTxConflict.
func mapTxError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgSerializationFailure {
		return ErrTxConflict
	}
	return err
}
