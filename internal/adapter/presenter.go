package adapter

import (
	"user-directory/internal/driver"
	"user-directory/internal/model"
)

// ToUser переносит id, name и avatar; createdAt остаётся на стороне драйвера.
func ToUser(r driver.UserAPIResponse) model.User {
	return model.User{
		ID:     string(r.ID),
		Name:   r.Name,
		Avatar: r.Avatar,
	}
}
