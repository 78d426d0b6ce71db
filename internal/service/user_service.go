// Package service содержит бизнес-логику users-api.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"user-directory/internal/model"
	"user-directory/internal/repository"
)

// UserStore описывает контракт хранилища пользователей для бизнес-слоя.
type UserStore interface {
	List(ctx context.Context) ([]model.UserRecord, error)
	Get(ctx context.Context, id string) (model.UserRecord, error)
	Create(ctx context.Context, u model.UserRecord) (model.UserRecord, error)
	Update(ctx context.Context, id string, p model.UserPatch) (model.UserRecord, error)
	Delete(ctx context.Context, id string) error
}

// UserService содержит операции каталога пользователей.
type UserService struct {
	store UserStore
	now   func() time.Time
	newID func() string
}

// NewUserService создаёт новый сервис поверх хранилища.
func NewUserService(store UserStore) *UserService {
	return &UserService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// ListUsers возвращает всех пользователей.
func (s *UserService) ListUsers(ctx context.Context) ([]model.UserRecord, error) {
	users, err := s.store.List(ctx)
	if err != nil {
		return nil, ErrInternal("failed to list users", err)
	}
	return users, nil
}

// GetUser возвращает пользователя по id.
func (s *UserService) GetUser(ctx context.Context, id string) (model.UserRecord, error) {
	if id == "" {
		return model.UserRecord{}, ErrBadRequest("id is required")
	}
	u, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserRecord{}, ErrNotFound("user not found")
		}
		return model.UserRecord{}, ErrInternal("failed to get user", err)
	}
	return u, nil
}

// CreateUser создаёт пользователя со сгенерированным id и текущим временем создания.
func (s *UserService) CreateUser(ctx context.Context, name, avatar string) (model.UserRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.UserRecord{}, ErrBadRequest("name is required")
	}

	u, err := s.store.Create(ctx, model.UserRecord{
		ID:        s.newID(),
		Name:      name,
		Avatar:    strings.TrimSpace(avatar),
		CreatedAt: s.now(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return model.UserRecord{}, ErrDomain("USER_EXISTS", "user id already exists")
		}
		return model.UserRecord{}, ErrInternal("failed to create user", err)
	}
	return u, nil
}

// UpdateUser применяет частичное обновление.
func (s *UserService) UpdateUser(ctx context.Context, id string, p model.UserPatch) (model.UserRecord, error) {
	if id == "" {
		return model.UserRecord{}, ErrBadRequest("id is required")
	}
	if p.Name == nil && p.Avatar == nil {
		return model.UserRecord{}, ErrBadRequest("nothing to update")
	}
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return model.UserRecord{}, ErrBadRequest("name must not be empty")
		}
		p.Name = &name
	}
	if p.Avatar != nil {
		avatar := strings.TrimSpace(*p.Avatar)
		p.Avatar = &avatar
	}

	u, err := s.store.Update(ctx, id, p)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserRecord{}, ErrNotFound("user not found")
		}
		return model.UserRecord{}, ErrInternal("failed to update user", err)
	}
	return u, nil
}

// DeleteUser удаляет пользователя.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return ErrBadRequest("id is required")
	}
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrNotFound("user not found")
		}
		return ErrInternal("failed to delete user", err)
	}
	return nil
}
