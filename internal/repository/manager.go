package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type txKey struct{}

// TransactionManager управляет транзакциями.
type TransactionManager struct {
	db   *Postgres
	opts pgx.TxOptions
}

// NewTransactionManager создаёт менеджер, открывающий транзакции с уровнем SERIALIZABLE.
// На READ COMMITTED две параллельные вставки одинакового имени могут перечитать
// таблицу до коммита друг друга, и проверка дубликатов пропустит обе.
func NewTransactionManager(db *Postgres) *TransactionManager {
	return &TransactionManager{
		db:   db,
		opts: pgx.TxOptions{IsoLevel: pgx.Serializable},
	}
}

// RunInTransaction выполняет функцию fn внутри транзакции.
// Любая ошибка fn откатывает транзакцию и возвращается вызывающему как есть.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := tm.db.Pool.BeginTx(ctx, tm.opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	// Кладём транзакцию в контекст
	ctx = context.WithValue(ctx, txKey{}, tx)

	if err := fn(ctx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", mapTxError(err))
	}
	return nil
}

// DBTX описывает общий интерфейс для *pgxpool.Pool и pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

// GetQueryExecutor возвращает транзакцию из контекста, если она есть,
// или пул соединений, если транзакции нет.
func (p *Postgres) GetQueryExecutor(ctx context.Context) DBTX {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return p.Pool
}
