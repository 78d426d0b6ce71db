package repository

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"user-directory/internal/model"
)

type seedFile struct {
	Users []model.UserRecord `yaml:"users"`
}

// LoadSeed читает YAML-файл со списком пользователей:
//
//	users:
//	  - id: "1"
//	    name: Alice
//	    avatar: https://example.com/a.png
//	    createdAt: 2024-01-01T00:00:00Z
//
// id проверяется тем же правилом, что и путь /users/{id}.
// Пустой createdAt заменяется на now.
func LoadSeed(path string, now time.Time) ([]model.UserRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed %s: %w", path, err)
	}

	for i := range f.Users {
		id := f.Users[i].ID
		if id == "" {
			return nil, fmt.Errorf("seed %s: users[%d].id is required", path, i)
		}
		if !model.ValidUserID(id) {
			return nil, fmt.Errorf("seed %s: users[%d].id %q must be 1-64 characters of letters, digits, '-' or '_'", path, i, id)
		}
		if f.Users[i].CreatedAt.IsZero() {
			f.Users[i].CreatedAt = now
		}
	}
	return f.Users, nil
}
