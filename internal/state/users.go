// Package state хранит состояние экрана списка пользователей:
// один запрос на монтирование и флаги загрузки, ошибки и данных.
package state

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"user-directory/internal/model"
	"user-directory/internal/result"
)

// Phase — фаза конечного автомата Idle → Loading → {Success, Failure}.
type Phase string

const (
	PhaseIdle    Phase = "IDLE"
	PhaseLoading Phase = "LOADING"
	PhaseSuccess Phase = "SUCCESS"
	PhaseFailure Phase = "FAILURE"
)

// State описывает снимок, который потребляет представление.
type State struct {
	Users     []model.User
	IsLoading bool
	IsError   bool
	Phase     Phase
}

// Fetcher описывает сценарий, который запускает состояние.
type Fetcher interface {
	Execute(ctx context.Context) result.Result[[]model.User]
}

// Option настраивает Users.
type Option func(*Users)

// WithOnChange регистрирует колбэк, вызываемый после каждого перехода.
func WithOnChange(fn func(State)) Option {
	return func(u *Users) {
		u.onChange = fn
	}
}

// WithLogger задаёт логгер.
func WithLogger(log *slog.Logger) Option {
	return func(u *Users) {
		u.log = log
	}
}

// Users — состояние одного экземпляра экрана.
type Users struct {
	fetcher  Fetcher
	onChange func(State)
	log      *slog.Logger

	mu    sync.Mutex
	state State
	done  chan struct{}
}

// New создаёт состояние. Как и в исходном экране, IsLoading изначально true.
func New(fetcher Fetcher, opts ...Option) *Users {
	u := &Users{
		fetcher: fetcher,
		log:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
		state: State{
			Users:     []model.User{},
			IsLoading: true,
			Phase:     PhaseIdle,
		},
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Mount запускает ровно один запрос и возвращает канал, закрываемый по его завершении.
// Повторные вызовы возвращают тот же канал и ничего не перезапрашивают.
func (u *Users) Mount(ctx context.Context) <-chan struct{} {
	u.mu.Lock()
	if u.done != nil {
		done := u.done
		u.mu.Unlock()
		return done
	}
	u.done = make(chan struct{})
	done := u.done
	u.state.IsLoading = true
	u.state.Phase = PhaseLoading
	snapshot := u.snapshotLocked()
	u.mu.Unlock()

	u.notify(snapshot)

	go u.load(ctx, done)
	return done
}

func (u *Users) load(ctx context.Context, done chan struct{}) {
	defer close(done)

	res := u.fetcher.Execute(ctx)

	u.mu.Lock()
	res.Match(
		func(users []model.User) {
			u.state.Users = users
			u.state.Phase = PhaseSuccess
		},
		func(err error) {
			// Users не трогаем: ошибка и данные взаимоисключающие исходы.
			u.state.IsError = true
			u.state.Phase = PhaseFailure
			u.log.Info("users screen failed", slog.Any("err", err))
		},
	)
	u.state.IsLoading = false
	snapshot := u.snapshotLocked()
	u.mu.Unlock()

	u.notify(snapshot)
}

// Snapshot возвращает копию текущего состояния.
func (u *Users) Snapshot() State {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.snapshotLocked()
}

func (u *Users) snapshotLocked() State {
	s := u.state
	s.Users = append([]model.User(nil), u.state.Users...)
	if s.Users == nil {
		s.Users = []model.User{}
	}
	return s
}

func (u *Users) notify(s State) {
	if u.onChange != nil {
		u.onChange(s)
	}
}
