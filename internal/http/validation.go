package http

import (
	"net/http"

	"user-directory/internal/model"
	"user-directory/internal/service"
)

const maxAvatarLen = 2048

// ValidateUserID проверяет path-параметр id.
func ValidateUserID(id string) error {
	if id == "" {
		return service.ErrBadRequest("id is required")
	}
	if !model.ValidUserID(id) {
		return service.ErrBadRequest("id must be 1-64 characters of letters, digits, '-' or '_'")
	}
	return nil
}

// ValidateCreateUserRequest /users POST — тело запроса
func ValidateCreateUserRequest(req createUserRequest) error {
	if req.Name == "" {
		return service.ErrBadRequest("name is required")
	}
	if len(req.Avatar) > maxAvatarLen {
		return service.ErrBadRequest("avatar is too long")
	}
	return nil
}

// ValidateUpdateUserRequest /users/{id} PATCH — тело запроса
func ValidateUpdateUserRequest(req updateUserRequest) error {
	if req.Name == nil && req.Avatar == nil {
		return service.ErrBadRequest("name or avatar is required")
	}
	if req.Avatar != nil && len(*req.Avatar) > maxAvatarLen {
		return service.ErrBadRequest("avatar is too long")
	}
	return nil
}

func errRateLimited() *service.AppError {
	return &service.AppError{
		Code:    "RATE_LIMITED",
		Message: "too many requests",
		Status:  http.StatusTooManyRequests,
	}
}
