package repository

import "errors"

var (
	// ErrUserNotFound возвращается, если пользователь не найден.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists возвращается при конфликте идентификатора пользователя.
	ErrUserExists = errors.New("user already exists")
)
