package http

import (
	"net/http"

	"microfeed/internal/feed/service"
	"microfeed/pkg/httpx"
	"microfeed/pkg/slogx"
)

// AccountsHandler lists every registered account. Password hashes never
// appear in the response; the service layer strips them before they reach
// this handler.
type AccountsHandler struct {
	UserService *service.UserService
}

func (h *AccountsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accounts, err := h.UserService.List(ctx)
	if err != nil {
		log.Error("failed to list accounts", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accounts)
}
