package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"microfeed/internal/feed/service"
	"microfeed/pkg/httpx"
	"microfeed/pkg/slogx"
)

type LoginHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	identity, err := h.UserService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteMessage(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		log.Error("failed to authenticate user", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	token, err := h.TokenService.Issue(identity)
	if err != nil {
		log.Error("failed to issue token", "username", identity, "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	log.Info("user logged in", "username", identity)
	httpx.WriteJSON(w, http.StatusOK, loginResponse{Token: token})
}
