// Package http реализует HTTP-обработчики и DTO поверх доменных сервисов.
package http

import "user-directory/internal/model"

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type createUserRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type updateUserRequest = model.UserPatch
