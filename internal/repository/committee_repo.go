package repository

import (
	"context"
	"fmt"

	"committee-service/internal/model"
)

// CommitteeRepo реализует хранилище комитетов на базе PostgreSQL.
// Все методы работают через транзакцию из контекста, если она открыта.
type CommitteeRepo struct {
	db *Postgres
}

// NewCommitteeRepo создаёт новый экземпляр CommitteeRepo.
func NewCommitteeRepo(db *Postgres) *CommitteeRepo {
	return &CommitteeRepo{db: db}
}

// ListActive возвращает все неудалённые комитеты.
func (r *CommitteeRepo) ListActive(ctx context.Context) ([]model.Committee, error) {
	q := r.db.GetQueryExecutor(ctx)

	rows, err := q.Query(ctx, `
SELECT id, full_name, short_name
FROM committee
WHERE deleted IS NULL
ORDER BY id
`)
	if err != nil {
		return nil, fmt.Errorf("query committees: %w", mapTxError(err))
	}
	defer rows.Close()

	res := make([]model.Committee, 0)
	for rows.Next() {
		var c model.Committee
		if err := rows.Scan(&c.ID, &c.FullName, &c.ShortName); err != nil {
			return nil, fmt.Errorf("scan committee: %w", err)
		}
		res = append(res, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", mapTxError(err))
	}
	return res, nil
}

// Insert добавляет активный комитет. id назначает БД.
func (r *CommitteeRepo) Insert(ctx context.Context, fullName, shortName string) error {
	q := r.db.GetQueryExecutor(ctx)

	_, err := q.Exec(ctx, `
INSERT INTO committee (full_name, short_name)
VALUES ($1, $2)
`, fullName, shortName)
	if err != nil {
		return fmt.Errorf("insert committee: %w", mapTxError(err))
	}
	return nil
}

// UpdateNames меняет оба названия комитета по id, в том числе у удалённых записей.
// Возвращает число затронутых строк.
func (r *CommitteeRepo) UpdateNames(ctx context.Context, id int64, fullName, shortName string) (int64, error) {
	q := r.db.GetQueryExecutor(ctx)

	tag, err := q.Exec(ctx, `
UPDATE committee
SET full_name = $2,
    short_name = $3
WHERE id = $1
`, id, fullName, shortName)
	if err != nil {
		return 0, fmt.Errorf("update committee: %w", mapTxError(err))
	}
	return tag.RowsAffected(), nil
}

// SoftDelete помечает активный комитет удалённым.
// Для отсутствующего или уже удалённого id возвращает 0.
func (r *CommitteeRepo) SoftDelete(ctx context.Context, id int64) (int64, error) {
	q := r.db.GetQueryExecutor(ctx)

	tag, err := q.Exec(ctx, `
UPDATE committee
SET deleted = now()
WHERE id = $1 AND deleted IS NULL
`, id)
	if err != nil {
		return 0, fmt.Errorf("delete committee: %w", mapTxError(err))
	}
	return tag.RowsAffected(), nil
}
