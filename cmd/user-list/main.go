// Package main реализует консольный экран списка пользователей поверх users-api.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"user-directory/internal/adapter"
	"user-directory/internal/config"
	"user-directory/internal/driver"
	"user-directory/internal/state"
	"user-directory/internal/transport"
	"user-directory/internal/usecase"
	"user-directory/internal/view"
)

// CLI flags parsed from command line.
type cliFlags struct {
	ConfigPath string
	Verbose    bool
}

var errUsersUnavailable = errors.New("users unavailable")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var flags cliFlags

	fs := flag.NewFlagSet("user-list", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&flags.ConfigPath, "config", "", "path to a YAML config file")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log requests to stderr")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadClient(flags.ConfigPath)
	if err != nil {
		return err
	}

	level := config.Level(cfg.LogLevel)
	if flags.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: level}))

	client := transport.NewClient(cfg.BaseURL,
		transport.WithTimeout(cfg.Timeout),
		transport.WithLogger(logger),
	)
	users := driver.NewUsers(client)

	rest := fs.Args()
	if len(rest) > 0 && rest[0] == "add" {
		return runAdd(ctx, users, rest[1:], stdout, stderr)
	}
	if len(rest) > 0 && rest[0] != "list" {
		return fmt.Errorf("unknown command %q", rest[0])
	}

	return runList(ctx, users, logger, stdout)
}

// runList собирает цепочку драйвер → адаптер → сценарий → состояние и
// рисует экран при каждом переходе.
func runList(ctx context.Context, d driver.UsersFetcher, logger *slog.Logger, stdout io.Writer) error {
	repo := adapter.NewUsers(d, logger)
	getUsers := usecase.NewGetUsers(repo, logger)

	screen := state.New(getUsers,
		state.WithLogger(logger),
		state.WithOnChange(func(s state.State) {
			if s.Phase == state.PhaseLoading {
				_ = view.RenderUserList(stdout, s)
			}
		}),
	)

	<-screen.Mount(ctx)

	final := screen.Snapshot()
	if err := view.RenderUserList(stdout, final); err != nil {
		return err
	}
	if final.IsError {
		return errUsersUnavailable
	}
	return nil
}

func runAdd(ctx context.Context, users *driver.Users, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("user-list add", flag.ContinueOnError)
	fs.SetOutput(stderr)
	name := fs.String("name", "", "user name")
	avatar := fs.String("avatar", "", "avatar URL")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return errors.New("-name is required")
	}

	created, err := users.Create(ctx, driver.NewUser{Name: *name, Avatar: *avatar})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout, "created #%s %s\n", created.ID, created.Name)
	return err
}
