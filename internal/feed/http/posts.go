package http

import (
	"encoding/json"
	"net/http"

	"microfeed/internal/feed/service"
	"microfeed/pkg/httpx"
	"microfeed/pkg/slogx"
)

type PostsHandler struct {
	PostService *service.PostService
}

type createPostRequest struct {
	Content string `json:"content"`
}

type removePostRequest struct {
	PostID int `json:"postId"`
}

// HandleCreate stores a new post owned by the authenticated identity.
func (h *PostsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username, ok := httpx.UsernameFromContext(ctx)
	if !ok {
		httpx.WriteMessage(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.PostService.Create(ctx, username, req.Content)
	if err != nil {
		log.Error("failed to create post", "username", username, "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	log.Info("post created", "username", username, "post_id", post.ID)
	httpx.WriteJSON(w, http.StatusCreated, post)
}

// HandleList returns the full public feed.
func (h *PostsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	posts, err := h.PostService.List(ctx)
	if err != nil {
		log.Error("failed to list posts", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, posts)
}

// HandleListOwn returns the authenticated user's posts only.
func (h *PostsHandler) HandleListOwn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username, ok := httpx.UsernameFromContext(ctx)
	if !ok {
		httpx.WriteMessage(w, http.StatusUnauthorized, "missing identity")
		return
	}

	posts, err := h.PostService.ListByOwner(ctx, username)
	if err != nil {
		log.Error("failed to list user posts", "username", username, "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, posts)
}

// HandleRemove deletes a post by id. A miss still reports success; the
// post is gone either way.
func (h *PostsHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req removePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.PostService.Remove(ctx, req.PostID); err != nil {
		log.Error("failed to remove post", "post_id", req.PostID, "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	log.Info("post removed", "post_id", req.PostID)
	httpx.WriteText(w, http.StatusOK, "post removed")
}
