package repository

import (
	"context"
	"sort"
	"sync"

	"user-directory/internal/model"
)

// MemoryRepo — хранилище пользователей в памяти процесса.
// Используется, когда DB_DSN не задан, и в тестах.
type MemoryRepo struct {
	mu    sync.RWMutex
	users map[string]model.UserRecord
}

// NewMemoryRepo создаёт пустое хранилище.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{users: make(map[string]model.UserRecord)}
}

// List возвращает пользователей в порядке создания (при равенстве по id).
func (r *MemoryRepo) List(_ context.Context) ([]model.UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.UserRecord, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].ID < users[j].ID
		}
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (r *MemoryRepo) Get(_ context.Context, id string) (model.UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return model.UserRecord{}, ErrUserNotFound
	}
	return u, nil
}

func (r *MemoryRepo) Create(_ context.Context, u model.UserRecord) (model.UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[u.ID]; exists {
		return model.UserRecord{}, ErrUserExists
	}
	r.users[u.ID] = u
	return u, nil
}

func (r *MemoryRepo) Update(_ context.Context, id string, p model.UserPatch) (model.UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return model.UserRecord{}, ErrUserNotFound
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	r.users[id] = u
	return u, nil
}

func (r *MemoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// Seed добавляет пользователей, пропуская уже существующие id.
func (r *MemoryRepo) Seed(_ context.Context, users []model.UserRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range users {
		if _, exists := r.users[u.ID]; !exists {
			r.users[u.ID] = u
		}
	}
	return nil
}
