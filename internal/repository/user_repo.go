package repository

import (
	"context"
	"errors"
	"fmt"

	"user-directory/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// UserRepo реализует хранилище пользователей на базе PostgreSQL.
type UserRepo struct {
	db *Postgres
	tm *TransactionManager
}

// NewUserRepo создаёт новый экземпляр UserRepo c переданным подключением к PostgreSQL.
func NewUserRepo(db *Postgres) *UserRepo {
	return &UserRepo{db: db, tm: NewTransactionManager(db)}
}

// List возвращает всех пользователей в порядке создания.
func (r *UserRepo) List(ctx context.Context) ([]model.UserRecord, error) {
	rows, err := r.db.GetQueryExecutor(ctx).Query(ctx, `
SELECT id, name, avatar, created_at
FROM users
ORDER BY created_at, id
`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := make([]model.UserRecord, 0)
	for rows.Next() {
		var u model.UserRecord
		if err := rows.Scan(&u.ID, &u.Name, &u.Avatar, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return users, nil
}

// Get возвращает пользователя по id. Если его нет, возвращает ErrUserNotFound.
func (r *UserRepo) Get(ctx context.Context, id string) (model.UserRecord, error) {
	row := r.db.GetQueryExecutor(ctx).QueryRow(ctx, `
SELECT id, name, avatar, created_at
FROM users
WHERE id = $1
`, id)

	return scanUser(row, "get user")
}

// Create добавляет пользователя. При конфликте id возвращает ErrUserExists.
func (r *UserRepo) Create(ctx context.Context, u model.UserRecord) (model.UserRecord, error) {
	row := r.db.GetQueryExecutor(ctx).QueryRow(ctx, `
INSERT INTO users (id, name, avatar, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id, name, avatar, created_at
`, u.ID, u.Name, u.Avatar, u.CreatedAt)

	var created model.UserRecord
	if err := row.Scan(&created.ID, &created.Name, &created.Avatar, &created.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.UserRecord{}, ErrUserExists
		}
		return model.UserRecord{}, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

// Update применяет частичное обновление и возвращает обновлённую запись.
func (r *UserRepo) Update(ctx context.Context, id string, p model.UserPatch) (model.UserRecord, error) {
	row := r.db.GetQueryExecutor(ctx).QueryRow(ctx, `
UPDATE users
SET name   = COALESCE($2, name),
    avatar = COALESCE($3, avatar)
WHERE id = $1
RETURNING id, name, avatar, created_at
`, id, p.Name, p.Avatar)

	return scanUser(row, "update user")
}

// Delete удаляет пользователя. Если его нет, возвращает ErrUserNotFound.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.GetQueryExecutor(ctx).Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Seed вставляет пользователей одной транзакцией; существующие id пропускаются.
func (r *UserRepo) Seed(ctx context.Context, users []model.UserRecord) error {
	if len(users) == 0 {
		return nil
	}

	return r.tm.RunInTransaction(ctx, func(ctx context.Context) error {
		batch := &pgx.Batch{}
		for _, u := range users {
			batch.Queue(`
INSERT INTO users (id, name, avatar, created_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO NOTHING
`, u.ID, u.Name, u.Avatar, u.CreatedAt)
		}

		br := r.db.GetQueryExecutor(ctx).SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		return nil
	})
}

func scanUser(row pgx.Row, op string) (model.UserRecord, error) {
	var u model.UserRecord
	if err := row.Scan(&u.ID, &u.Name, &u.Avatar, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.UserRecord{}, ErrUserNotFound
		}
		return model.UserRecord{}, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}
