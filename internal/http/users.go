package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"user-directory/internal/service"
)

func (h *Handler) handleUsersList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "users_list"

	users, err := h.Users.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, users)
}

func (h *Handler) handleUserGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_get"

	id := chi.URLParam(r, "id")
	if err := ValidateUserID(id); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	user, err := h.Users.GetUser(r.Context(), id)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, user)
}

func (h *Handler) handleUserCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_create"

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateCreateUserRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	user, err := h.Users.CreateUser(r.Context(), req.Name, req.Avatar)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) handleUserUpdate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_update"

	id := chi.URLParam(r, "id")
	if err := ValidateUserID(id); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateUpdateUserRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	user, err := h.Users.UpdateUser(r.Context(), id, req)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, user)
}

func (h *Handler) handleUserDelete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_delete"

	id := chi.URLParam(r, "id")
	if err := ValidateUserID(id); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	if err := h.Users.DeleteUser(r.Context(), id); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	// Тело всегда JSON: клиент разбирает ответ без учёта статуса.
	h.writeJSON(w, http.StatusOK, map[string]string{"id": id, "status": "deleted"})
}
