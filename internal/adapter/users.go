// Package adapter реализует репозиторий пользователей поверх драйвера:
// переводит записи провода в доменные и превращает ошибки в значения.
package adapter

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"user-directory/internal/driver"
	"user-directory/internal/model"
	"user-directory/internal/result"
)

// Compile-time interface check.
var _ model.UserRepository = (*Users)(nil)

// Users реализует model.UserRepository.
type Users struct {
	driver driver.UsersFetcher
	log    *slog.Logger
}

// NewUsers создаёт адаптер поверх явно переданного драйвера. log может быть nil.
func NewUsers(d driver.UsersFetcher, log *slog.Logger) *Users {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Users{driver: d, log: log}
}

// FetchAll никогда не паникует и не возвращает ошибку отдельно:
// любая ошибка драйвера оказывается внутри result.Err без изменений.
func (a *Users) FetchAll(ctx context.Context) (res result.Result[[]model.User]) {
	defer func() {
		if p := recover(); p != nil {
			err, ok := p.(error)
			if !ok {
				err = fmt.Errorf("driver panic: %v", p)
			}
			a.log.Error("driver panicked", slog.Any("err", err))
			res = result.Err[[]model.User](err)
		}
	}()

	records, err := a.driver.FetchAll(ctx)
	if err != nil {
		a.log.Warn("fetch users failed", slog.Any("err", err))
		return result.Err[[]model.User](err)
	}

	users := make([]model.User, 0, len(records))
	for _, r := range records {
		users = append(users, ToUser(r))
	}
	return result.Ok(users)
}
