package repository

import (
	"context"
	"errors"
	"fmt"

	"committee-service/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepo реализует репозиторий пользователей на базе PostgreSQL.
type UserRepo struct {
	db *Postgres
}

// NewUserRepo создаёт новый экземпляр UserRepo c переданным подключением к PostgreSQL.
func NewUserRepo(db *Postgres) *UserRepo {
	return &UserRepo{db: db}
}

// GetByID возвращает пользователя по id.
// Если пользователь не найден, возвращает ErrUserNotFound.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (model.User, error) {
	q := r.db.GetQueryExecutor(ctx)

	row := q.QueryRow(ctx, `
SELECT id, username, display_name, email
FROM "user"
WHERE id = $1
`, id)

	var u model.User
	if err := row.Scan(&u.ID, &u.Username, &u.DisplayName, &u.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
