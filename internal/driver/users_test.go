package driver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-directory/internal/driver"
	"user-directory/internal/transport"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestUsers_FetchAll(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    []driver.UserAPIResponse
		wantErr error
	}{
		{
			name:   "Success: records returned verbatim",
			status: http.StatusOK,
			body:   `[{"id":"1","name":"Alice","avatar":"a.png","createdAt":"2024-01-01"}]`,
			want: []driver.UserAPIResponse{
				{ID: "1", Name: "Alice", Avatar: "a.png", CreatedAt: "2024-01-01"},
			},
		},
		{
			name:   "Success: numeric id normalized",
			status: http.StatusOK,
			body:   `[{"id":42,"name":"Bob","avatar":"b.png","createdAt":"2024-02-02"}]`,
			want: []driver.UserAPIResponse{
				{ID: "42", Name: "Bob", Avatar: "b.png", CreatedAt: "2024-02-02"},
			},
		},
		{
			name:   "Success: empty collection",
			status: http.StatusOK,
			body:   `[]`,
			want:   []driver.UserAPIResponse{},
		},
		{
			name:    "Fail: body is not JSON",
			status:  http.StatusOK,
			body:    `oops`,
			wantErr: transport.ErrDecode,
		},
		{
			name:    "Fail: null collection",
			status:  http.StatusOK,
			body:    `null`,
			wantErr: transport.ErrDecode,
		},
		{
			name:    "Fail: null element",
			status:  http.StatusOK,
			body:    `[null]`,
			wantErr: transport.ErrDecode,
		},
		{
			name:    "Fail: record without id",
			status:  http.StatusOK,
			body:    `[{"id":"1","name":"Alice"},{"name":"x"}]`,
			wantErr: transport.ErrDecode,
		},
		{
			name:    "Fail: record with null id",
			status:  http.StatusOK,
			body:    `[{"id":null,"name":"x"}]`,
			wantErr: transport.ErrDecode,
		},
		{
			name:    "Fail: error envelope does not fit the collection",
			status:  http.StatusInternalServerError,
			body:    `{"error":{"code":"INTERNAL","message":"boom"}}`,
			wantErr: transport.ErrDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newServer(t, tt.status, tt.body)
			d := driver.NewUsers(transport.NewClient(ts.URL))

			got, err := d.FetchAll(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUsers_Create(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var in driver.NewUser
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "Alice", in.Name)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"u-1","name":"Alice","avatar":"a.png","createdAt":"2024-01-01T00:00:00Z"}`))
	}))
	defer ts.Close()

	d := driver.NewUsers(transport.NewClient(ts.URL))

	got, err := d.Create(context.Background(), driver.NewUser{Name: "Alice", Avatar: "a.png"})

	require.NoError(t, err)
	assert.Equal(t, driver.WireID("u-1"), got.ID)
}

func TestUsers_CreateUnexpectedStatus(t *testing.T) {
	ts := newServer(t, http.StatusBadRequest, `{"error":{"code":"BAD_REQUEST","message":"name is required"}}`)
	d := driver.NewUsers(transport.NewClient(ts.URL))

	_, err := d.Create(context.Background(), driver.NewUser{})

	assert.ErrorContains(t, err, "unexpected status 400")
}

func TestWireID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    driver.WireID
		wantErr bool
	}{
		{in: `"abc"`, want: "abc"},
		{in: `7`, want: "7"},
		{in: `1.5`, want: "1.5"},
		{in: `null`, want: ""},
		{in: `true`, wantErr: true},
		{in: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var id driver.WireID
			err := json.Unmarshal([]byte(tt.in), &id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}
