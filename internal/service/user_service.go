package service

import (
	"context"
	"errors"

	"committee-service/internal/model"
	"committee-service/internal/repository"
)

// UserRepository описывает контракт репозитория пользователей для бизнес-слоя.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (model.User, error)
}

// UserService отдаёт профили пользователей.
type UserService struct {
	repo UserRepository
}

// NewUserService создаёт новый сервис для операций над пользователями.
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// GetUser возвращает пользователя по id.
func (s *UserService) GetUser(ctx context.Context, id int64) (model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.User{}, ErrUserNotFound()
		}
		return model.User{}, internal("failed to get user", err)
	}
	return user, nil
}
