package sqlite

import (
	"context"
	"fmt"
	"time"

	"committee-service/internal/model"
)

// CommitteeRepo реализует хранилище комитетов поверх Store.
type CommitteeRepo struct {
	store *Store
	now   func() time.Time
}

// NewCommitteeRepo создаёт репозиторий комитетов.
func NewCommitteeRepo(store *Store) *CommitteeRepo {
	return &CommitteeRepo{store: store, now: time.Now}
}

// ListActive возвращает все неудалённые комитеты в порядке id.
func (r *CommitteeRepo) ListActive(ctx context.Context) ([]model.Committee, error) {
	q := r.store.executor(ctx)

	rows, err := q.QueryContext(ctx, `
SELECT id, full_name, short_name
FROM committee
WHERE deleted IS NULL
ORDER BY id
`)
	if err != nil {
		return nil, fmt.Errorf("query committees: %w", mapBusy(err))
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
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}

// Insert добавляет активный комитет.
func (r *CommitteeRepo) Insert(ctx context.Context, fullName, shortName string) error {
	q := r.store.executor(ctx)

	_, err := q.ExecContext(ctx, `
INSERT INTO committee (full_name, short_name)
VALUES (?, ?)
`, fullName, shortName)
	if err != nil {
		return fmt.Errorf("insert committee: %w", mapBusy(err))
	}
	return nil
}

// UpdateNames меняет названия по id независимо от признака удаления.
func (r *CommitteeRepo) UpdateNames(ctx context.Context, id int64, fullName, shortName string) (int64, error) {
	q := r.store.executor(ctx)

	res, err := q.ExecContext(ctx, `
UPDATE committee
SET full_name = ?,
    short_name = ?
WHERE id = ?
`, fullName, shortName, id)
	if err != nil {
		return 0, fmt.Errorf("update committee: %w", mapBusy(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

// SoftDelete проставляет время удаления активному комитету (миллисекунды UTC).
func (r *CommitteeRepo) SoftDelete(ctx context.Context, id int64) (int64, error) {
	q := r.store.executor(ctx)

	res, err := q.ExecContext(ctx, `
UPDATE committee
SET deleted = ?
WHERE id = ? AND deleted IS NULL
`, r.now().UTC().UnixMilli(), id)
	if err != nil {
		return 0, fmt.Errorf("delete committee: %w", mapBusy(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

