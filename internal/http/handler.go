package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"user-directory/internal/model"
	"user-directory/internal/service"
)

// UserService описывает операции каталога, которые нужны обработчикам.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.UserRecord, error)
	GetUser(ctx context.Context, id string) (model.UserRecord, error)
	CreateUser(ctx context.Context, name, avatar string) (model.UserRecord, error)
	UpdateUser(ctx context.Context, id string, p model.UserPatch) (model.UserRecord, error)
	DeleteUser(ctx context.Context, id string) error
}

// Options содержит настройки маршрутизатора.
type Options struct {
	// CORSOrigins перечисляет разрешённые источники браузерных запросов.
	CORSOrigins []string
	// RateLimitRPS — лимит запросов в секунду на весь сервер; 0 отключает лимит.
	RateLimitRPS float64
}

type Handler struct {
	Users UserService
	Log   *slog.Logger
	opts  Options
}

func NewHandler(users UserService, log *slog.Logger, opts Options) *Handler {
	return &Handler{
		Users: users,
		Log:   log,
		opts:  opts,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	if h.opts.RateLimitRPS > 0 {
		burst := int(h.opts.RateLimitRPS)
		if burst < 1 {
			burst = 1
		}
		r.Use(h.rateLimit(rate.NewLimiter(rate.Limit(h.opts.RateLimitRPS), burst)))
	}

	r.Get("/health", h.handleHealth)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.handleUsersList)
		r.Post("/", h.handleUserCreate)
		r.Get("/{id}", h.handleUserGet)
		r.Patch("/{id}", h.handleUserUpdate)
		r.Delete("/{id}", h.handleUserDelete)
	})

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	var appErr *service.AppError
	if !errors.As(err, &appErr) {
		appErr = &service.AppError{
			Code:    "INTERNAL",
			Message: "internal error",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	h.Log.Error("handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
