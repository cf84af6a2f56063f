// Package mocks содержит testify-моки контрактов сервисного слоя.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"committee-service/internal/model"
)

// TransactionManager мок менеджера транзакций.
// В Return можно передать func(ctx, fn) error, тогда он будет вызван вместо фиксированной ошибки.
type TransactionManager struct {
	mock.Mock
}

func (m *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	ret := m.Called(ctx, fn)
	if rf, ok := ret.Get(0).(func(context.Context, func(context.Context) error) error); ok {
		return rf(ctx, fn)
	}
	return ret.Error(0)
}

// CommitteeRepository мок хранилища комитетов.
type CommitteeRepository struct {
	mock.Mock
}

func (m *CommitteeRepository) ListActive(ctx context.Context) ([]model.Committee, error) {
	ret := m.Called(ctx)
	committees, _ := ret.Get(0).([]model.Committee)
	return committees, ret.Error(1)
}

func (m *CommitteeRepository) Insert(ctx context.Context, fullName, shortName string) error {
	ret := m.Called(ctx, fullName, shortName)
	return ret.Error(0)
}

func (m *CommitteeRepository) UpdateNames(ctx context.Context, id int64, fullName, shortName string) (int64, error) {
	ret := m.Called(ctx, id, fullName, shortName)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *CommitteeRepository) SoftDelete(ctx context.Context, id int64) (int64, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(int64), ret.Error(1)
}

// UserRepository мок репозитория пользователей.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(model.User), ret.Error(1)
}
