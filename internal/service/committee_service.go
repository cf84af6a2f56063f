// Package service содержит бизнес-логику комитетов и пользователей.
package service

import (
	"context"
	"errors"

	"committee-service/internal/model"
	"committee-service/internal/repository"
)

// TransactionManager описывает интерфейс для управления транзакциями (чтобы можно было мокать).
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CommitteeRepository описывает контракт хранилища комитетов.
// Методы обязаны использовать транзакцию из контекста, если она есть.
type CommitteeRepository interface {
	ListActive(ctx context.Context) ([]model.Committee, error)
	Insert(ctx context.Context, fullName, shortName string) error
	UpdateNames(ctx context.Context, id int64, fullName, shortName string) (int64, error)
	SoftDelete(ctx context.Context, id int64) (int64, error)
}

// CommitteeService выполняет изменения комитетов по схеме
// "изменить, перечитать активные, проверить уникальность, зафиксировать или откатить".
// Уникальность названий проверяется в приложении, а не ограничением БД.
type CommitteeService struct {
	repo      CommitteeRepository
	txManager TransactionManager
}

// NewCommitteeService создаёт сервис комитетов.
func NewCommitteeService(repo CommitteeRepository, txManager TransactionManager) *CommitteeService {
	return &CommitteeService{
		repo:      repo,
		txManager: txManager,
	}
}

// List возвращает активные комитеты.
func (s *CommitteeService) List(ctx context.Context) ([]model.Committee, error) {
	committees, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, internal("failed to list committees", err)
	}
	return committees, nil
}

// Add добавляет комитет и возвращает актуальный список активных.
// Если полное или краткое название уже занято активным комитетом, транзакция откатывается с KindDuplicate.
func (s *CommitteeService) Add(ctx context.Context, fullName, shortName string) ([]model.Committee, error) {
	var committees []model.Committee

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Insert(ctx, fullName, shortName); err != nil {
			return err
		}

		var errTx error
		committees, errTx = s.listUnique(ctx)
		return errTx
	})
	if err != nil {
		return nil, s.txError("failed to add committee", err)
	}
	return committees, nil
}

// Rename меняет оба названия комитета.
// Обновление идёт по id без учёта удаления, поэтому переименование удалённого комитета
// проходит успешно, а сам комитет в ответ не попадает.
func (s *CommitteeService) Rename(ctx context.Context, id int64, fullName, shortName string) ([]model.Committee, error) {
	var committees []model.Committee

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		affected, err := s.repo.UpdateNames(ctx, id, fullName, shortName)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrCommitteeNotFound()
		}

		var errTx error
		committees, errTx = s.listUnique(ctx)
		return errTx
	})
	if err != nil {
		return nil, s.txError("failed to rename committee", err)
	}
	return committees, nil
}

// Delete мягко удаляет активный комитет и возвращает оставшиеся.
// Удаление не может породить дубликат, поэтому проверки нет.
func (s *CommitteeService) Delete(ctx context.Context, id int64) ([]model.Committee, error) {
	var committees []model.Committee

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		affected, err := s.repo.SoftDelete(ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrCommitteeNotFound()
		}

		var errTx error
		committees, errTx = s.repo.ListActive(ctx)
		return errTx
	})
	if err != nil {
		return nil, s.txError("failed to delete committee", err)
	}
	return committees, nil
}

// listUnique перечитывает активные комитеты и возвращает ErrDuplicate,
// если среди них повторяется полное или краткое название.
func (s *CommitteeService) listUnique(ctx context.Context) ([]model.Committee, error) {
	committees, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if hasDuplicateNames(committees) {
		return nil, ErrDuplicate()
	}
	return committees, nil
}

// txError отдаёт доменные ошибки как есть, остальное оборачивает в KindInternal.
func (s *CommitteeService) txError(msg string, err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, repository.ErrTxConflict) {
		return internal("concurrent committee update", err)
	}
	return internal(msg, err)
}

// hasDuplicateNames проверяет полные и краткие названия как независимые пространства имён.
// Сравнение точное, с учётом регистра.
func hasDuplicateNames(committees []model.Committee) bool {
	fullNames := make([]string, 0, len(committees))
	shortNames := make([]string, 0, len(committees))
	for _, c := range committees {
		fullNames = append(fullNames, c.FullName)
		shortNames = append(shortNames, c.ShortName)
	}
	return containsDuplicates(fullNames) || containsDuplicates(shortNames)
}

func containsDuplicates[T comparable](values []T) bool {
	seen := make(map[T]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}
	return false
}
