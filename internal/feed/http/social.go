package http

import (
	"net/http"

	"microfeed/pkg/httpx"
)

// placeholderHandler backs the social-graph endpoints that exist in the
// route table but have no behavior yet. Authentication is still enforced
// by the middleware chain in front of them.
func placeholderHandler(feature string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteText(w, http.StatusOK, feature+" is not available yet")
	}
}
