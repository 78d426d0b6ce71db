// Package model содержит доменные структуры каталога пользователей.
package model

import (
	"context"
	"regexp"
	"time"

	"user-directory/internal/result"
)

// User описывает пользователя в том виде, в каком его показывает интерфейс.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// UserRepository — единственная возможность, на которую опирается сценарий:
// получить всех пользователей. Ошибка возвращается значением, а не паникой.
type UserRepository interface {
	FetchAll(ctx context.Context) result.Result[[]User]
}

// Допустимый id: uuid, число или короткий slug.
var reUserID = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)

// ValidUserID сообщает, годится ли id для пути /users/{id}.
func ValidUserID(id string) bool {
	return reUserID.MatchString(id)
}

// UserRecord описывает пользователя, как его хранит и отдаёт API (вместе с датой создания).
type UserRecord struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Avatar    string    `json:"avatar" yaml:"avatar"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// UserPatch задаёт частичное обновление пользователя; nil-поля не меняются.
type UserPatch struct {
	Name   *string `json:"name,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}
