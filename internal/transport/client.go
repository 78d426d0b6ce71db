// Package transport реализует HTTP-клиент поверх базового URL:
// сериализует JSON-тело запроса и всегда разбирает ответ как JSON.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// ErrDecode возвращается, если тело ответа не является корректным JSON.
var ErrDecode = errors.New("transport: decode response body")

// Response описывает ответ сервера. Статус не проверяется:
// ответ 4xx/5xx возвращается так же, как 2xx.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client выполняет запросы относительно базового URL.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// Option настраивает Client.
type Option func(*Client)

// WithHTTPClient подменяет *http.Client целиком (например, в тестах).
// nil оставляет клиента по умолчанию.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout задаёт таймаут запроса. По умолчанию таймаута нет.
// Таймаут ставится на копию клиента, переданный через WithHTTPClient не меняется.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

// WithLogger задаёт логгер для отладочных записей о запросах.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient создаёт клиента. URL запроса получается склейкой baseURL и path как есть.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		log:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL возвращает настроенный базовый URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request выполняет запрос. Если data не nil, оно кодируется в JSON.
// Тело ответа разбирается в out; при out == nil проверяется только корректность JSON.
func (c *Client) Request(ctx context.Context, method, path string, data, out any) (*Response, error) {
	url := c.baseURL + path

	var body io.Reader
	if data != nil {
		payload, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("transport: marshal body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("transport: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transport: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("transport: read response: %w", err)
	}

	c.log.Debug("http request",
		slog.String("method", method),
		slog.String("url", url),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(started)),
	)

	if out == nil {
		if !json.Valid(raw) {
			return nil, fmt.Errorf("%w: %s %s: invalid JSON", ErrDecode, method, path)
		}
	} else if err := json.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrDecode, method, path, err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       raw,
	}, nil
}

// Get выполняет GET-запрос.
func (c *Client) Get(ctx context.Context, path string, out any) (*Response, error) {
	return c.Request(ctx, http.MethodGet, path, nil, out)
}

// Post выполняет POST-запрос с JSON-телом.
func (c *Client) Post(ctx context.Context, path string, data, out any) (*Response, error) {
	return c.Request(ctx, http.MethodPost, path, data, out)
}

// Put выполняет PUT-запрос с JSON-телом.
func (c *Client) Put(ctx context.Context, path string, data, out any) (*Response, error) {
	return c.Request(ctx, http.MethodPut, path, data, out)
}

// Patch выполняет PATCH-запрос с JSON-телом.
func (c *Client) Patch(ctx context.Context, path string, data, out any) (*Response, error) {
	return c.Request(ctx, http.MethodPatch, path, data, out)
}

// Delete выполняет DELETE-запрос.
func (c *Client) Delete(ctx context.Context, path string, out any) (*Response, error) {
	return c.Request(ctx, http.MethodDelete, path, nil, out)
}
