// Package driver привязывает транспортный клиент к ресурсу /users
// и описывает формат записей на проводе.
package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"user-directory/internal/transport"
)

const usersPath = "/users"

// WireID — идентификатор пользователя на проводе. Бэкенд может прислать
// его строкой или числом; внутри он всегда непрозрачная строка.
type WireID string

// UnmarshalJSON принимает JSON-строку или JSON-число.
func (id *WireID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = WireID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("driver: id must be a string or a number: %w", err)
	}
	*id = WireID(n.String())
	return nil
}

// UserAPIResponse — запись пользователя в том виде, в каком её отдаёт API.
// Не покидает границу адаптера.
type UserAPIResponse struct {
	ID        WireID `json:"id"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	CreatedAt string `json:"createdAt"`
}

// NewUser описывает тело запроса на создание пользователя.
type NewUser struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// UsersFetcher — единственная возможность, которую драйвер предоставляет адаптеру.
type UsersFetcher interface {
	FetchAll(ctx context.Context) ([]UserAPIResponse, error)
}

// HTTPClient описывает методы транспортного клиента, которые нужны драйверу.
type HTTPClient interface {
	Get(ctx context.Context, path string, out any) (*transport.Response, error)
	Post(ctx context.Context, path string, data, out any) (*transport.Response, error)
}

// Compile-time interface check.
var _ HTTPClient = (*transport.Client)(nil)

// Users реализует драйвер ресурса /users.
type Users struct {
	client HTTPClient
}

// NewUsers создаёт драйвер поверх транспортного клиента.
func NewUsers(client HTTPClient) *Users {
	return &Users{client: client}
}

// FetchAll запрашивает GET /users и возвращает записи без преобразований.
// Ошибки транспорта (сеть, некорректный JSON) пробрасываются вызывающему.
// Тело null, элементы null и записи без id считаются ошибкой декодирования.
func (d *Users) FetchAll(ctx context.Context) ([]UserAPIResponse, error) {
	var body *[]*UserAPIResponse
	if _, err := d.client.Get(ctx, usersPath, &body); err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	if body == nil {
		return nil, fmt.Errorf("fetch users: %w: collection is null", transport.ErrDecode)
	}

	records := make([]UserAPIResponse, 0, len(*body))
	for i, rec := range *body {
		if rec == nil {
			return nil, fmt.Errorf("fetch users: %w: users[%d] is null", transport.ErrDecode, i)
		}
		if rec.ID == "" {
			return nil, fmt.Errorf("fetch users: %w: users[%d].id is empty", transport.ErrDecode, i)
		}
		records = append(records, *rec)
	}
	return records, nil
}

// Create отправляет POST /users и возвращает созданную запись.
func (d *Users) Create(ctx context.Context, in NewUser) (UserAPIResponse, error) {
	var created UserAPIResponse
	resp, err := d.client.Post(ctx, usersPath, in, &created)
	if err != nil {
		return UserAPIResponse{}, fmt.Errorf("create user: %w", err)
	}
	if resp.StatusCode != http.StatusCreated {
		return UserAPIResponse{}, fmt.Errorf("create user: unexpected status %d", resp.StatusCode)
	}
	return created, nil
}
