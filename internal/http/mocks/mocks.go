// Package mocks содержит testify-моки сервисов, от которых зависят HTTP-обработчики.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"committee-service/internal/model"
)

// CommitteeService мок сервиса комитетов.
type CommitteeService struct {
	mock.Mock
}

func (m *CommitteeService) List(ctx context.Context) ([]model.Committee, error) {
	ret := m.Called(ctx)
	committees, _ := ret.Get(0).([]model.Committee)
	return committees, ret.Error(1)
}

func (m *CommitteeService) Add(ctx context.Context, fullName, shortName string) ([]model.Committee, error) {
	ret := m.Called(ctx, fullName, shortName)
	committees, _ := ret.Get(0).([]model.Committee)
	return committees, ret.Error(1)
}

func (m *CommitteeService) Rename(ctx context.Context, id int64, fullName, shortName string) ([]model.Committee, error) {
	ret := m.Called(ctx, id, fullName, shortName)
	committees, _ := ret.Get(0).([]model.Committee)
	return committees, ret.Error(1)
}

func (m *CommitteeService) Delete(ctx context.Context, id int64) ([]model.Committee, error) {
	ret := m.Called(ctx, id)
	committees, _ := ret.Get(0).([]model.Committee)
	return committees, ret.Error(1)
}

// UserService мок сервиса пользователей.
type UserService struct {
	mock.Mock
}

func (m *UserService) GetUser(ctx context.Context, id int64) (model.User, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(model.User), ret.Error(1)
}
