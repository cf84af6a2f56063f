package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"committee-service/internal/model"
	"committee-service/internal/repository"
)

// UserRepo читает пользователей из SQLite.
type UserRepo struct {
	store *Store
}

// NewUserRepo создаёт репозиторий пользователей.
func NewUserRepo(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

// GetByID возвращает пользователя или repository.ErrUserNotFound.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (model.User, error) {
	row := r.store.executor(ctx).QueryRowContext(ctx, `
SELECT id, username, display_name, email
FROM "user"
WHERE id = ?
`, id)

	var u model.User
	if err := row.Scan(&u.ID, &u.Username, &u.DisplayName, &u.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Upsert сохраняет профиль пользователя. Используется для начального наполнения локальной базы.
func (r *UserRepo) Upsert(ctx context.Context, u model.User) error {
	_, err := r.store.executor(ctx).ExecContext(ctx, `
INSERT INTO "user" (id, username, display_name, email)
VALUES (?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE
SET username = excluded.username,
    display_name = excluded.display_name,
    email = excluded.email
`, u.ID, u.Username, u.DisplayName, u.Email)
	if err != nil {
		return fmt.Errorf("upsert user %d: %w", u.ID, mapBusy(err))
	}
	return nil
}
