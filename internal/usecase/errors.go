package usecase

import "errors"

// Ошибки валидации при создании сущностей. Проверяются до любой записи,
// транспорт отображает их в 409.
var (
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already exists")
	ErrSKUExists      = errors.New("sku already exists")
)

// ErrBadMessage — неразбираемое событие из внешней системы.
// Для консьюмера это перманентная ошибка: сообщение пропускается, не ретраится.
var ErrBadMessage = errors.New("malformed message")
