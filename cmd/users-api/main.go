// Package main запускает users-api, REST-бэкенд каталога пользователей.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"user-directory/internal/config"
	httpapi "user-directory/internal/http"
	"user-directory/internal/model"
	"user-directory/internal/repository"
	"user-directory/internal/service"
)

// store описывает хранилище, которое умеет и CRUD, и начальное заполнение.
type store interface {
	service.UserStore
	Seed(ctx context.Context, users []model.UserRecord) error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.Level(cfg.LogLevel)}))

	// Хранилище: PostgreSQL при заданном DB_DSN, иначе память
	var users store
	if cfg.DSN != "" {
		db, err := repository.NewPostgres(ctx, cfg.DSN)
		if err != nil {
			log.Fatalf("failed to init postgres: %v", err)
		}
		defer db.Pool.Close()

		if err := db.Migrate(ctx); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
		users = repository.NewUserRepo(db)
		logger.Info("using postgres storage")
	} else {
		users = repository.NewMemoryRepo()
		logger.Info("using in-memory storage")
	}

	if cfg.SeedFile != "" {
		seed, err := repository.LoadSeed(cfg.SeedFile, time.Now().UTC())
		if err != nil {
			log.Fatalf("failed to load seed: %v", err)
		}
		if err := users.Seed(ctx, seed); err != nil {
			log.Fatalf("failed to seed users: %v", err)
		}
		logger.Info("seeded users", slog.Int("count", len(seed)), slog.String("file", cfg.SeedFile))
	}

	userService := service.NewUserService(users)
	handler := httpapi.NewHandler(userService, logger, httpapi.Options{
		CORSOrigins:  cfg.CORSOrigins,
		RateLimitRPS: cfg.RateLimitRPS,
	})

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful Shutdown
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelShutdown()

		return server.Shutdown(ctxShutdown)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", slog.Any("err", err))
		os.Exit(1)
	}

	logger.Info("server stopped")
}
