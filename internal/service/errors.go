package service

import (
	"errors"
	"fmt"
)

// Kind - закрытый перечень видов ошибок сервисного слоя.
// HTTP-статусы и коды для клиента назначаются только в пакете http.
type Kind int

const (
	// KindInternal - сбой хранилища или любая неклассифицированная ошибка.
	KindInternal Kind = iota
	// KindSerialization - не удалось сериализовать ответ.
	KindSerialization
	// KindDuplicate - после изменения среди активных комитетов повторяется полное или краткое название.
	KindDuplicate
	// KindCommitteeNotFound - комитета с таким id нет (или он уже удалён).
	KindCommitteeNotFound
	// KindUserNotFound - пользователя с таким id нет.
	KindUserNotFound
	// KindBadRequest - тело или параметры запроса не разбираются.
	KindBadRequest
)

func (k Kind) String() string {
	switch k {
	case KindSerialization:
		return "serialization"
	case KindDuplicate:
		return "duplicate"
	case KindCommitteeNotFound:
		return "committee_not_found"
	case KindUserNotFound:
		return "user_not_found"
	case KindBadRequest:
		return "bad_request"
	default:
		return "internal"
	}
}

// Error описывает прикладную ошибку сервиса: вид, сообщение и вложенную ошибку.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error реализует интерфейс error.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrBadRequest конструирует ошибку для некорректного запроса клиента.
func ErrBadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Message: msg}
}

// ErrDuplicate конструирует ошибку конфликта названий.
func ErrDuplicate() *Error {
	return &Error{Kind: KindDuplicate, Message: "duplicate committee name"}
}

// ErrCommitteeNotFound конструирует ошибку отсутствующего комитета.
func ErrCommitteeNotFound() *Error {
	return &Error{Kind: KindCommitteeNotFound, Message: "committee not found"}
}

// ErrUserNotFound конструирует ошибку отсутствующего пользователя.
func ErrUserNotFound() *Error {
	return &Error{Kind: KindUserNotFound, Message: "user not found"}
}

// ErrSerialization конструирует ошибку сериализации ответа.
func ErrSerialization(err error) *Error {
	return &Error{Kind: KindSerialization, Message: "failed to encode response", Err: err}
}

func internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf возвращает вид ошибки. Всё, что не *Error, считается KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
