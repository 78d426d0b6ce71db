// Package usecase содержит прикладные сценарии, которые запускает интерфейс.
package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"user-directory/internal/model"
	"user-directory/internal/result"
)

// ErrFetchUsers — единственная ошибка, которую видит вызывающий код.
// Причина исходной ошибки дальше этого слоя не передаётся.
var ErrFetchUsers = errors.New("failed to fetch users")

// GetUsers — сценарий получения списка пользователей.
type GetUsers struct {
	repo model.UserRepository
	log  *slog.Logger
}

// NewGetUsers создаёт сценарий поверх репозитория. log может быть nil.
func NewGetUsers(repo model.UserRepository, log *slog.Logger) *GetUsers {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &GetUsers{repo: repo, log: log}
}

// Execute возвращает список как есть при успехе и ErrFetchUsers при любой ошибке.
func (uc *GetUsers) Execute(ctx context.Context) result.Result[[]model.User] {
	res := uc.repo.FetchAll(ctx)
	if res.IsOk() {
		return res
	}

	uc.log.Debug("get users failed", slog.Any("cause", res.Err()))
	return result.Err[[]model.User](ErrFetchUsers)
}
