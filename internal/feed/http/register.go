package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"microfeed/internal/feed/service"
	"microfeed/pkg/httpx"
	"microfeed/pkg/slogx"
)

type RegisterHandler struct {
	UserService *service.UserService
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Empty passwords are tolerated; an empty username would make the
	// record unreachable, so that one is rejected.
	if req.Username == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "username is required")
		return
	}

	if _, err := h.UserService.Register(ctx, req.Username, req.Password); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			httpx.WriteMessage(w, http.StatusBadRequest, "username already taken")
			return
		}
		log.Error("failed to register user", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	log.Info("user registered", "username", req.Username)
	httpx.WriteMessage(w, http.StatusCreated, "user registered")
}
