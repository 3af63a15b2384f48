package http

import (
	"log/slog"
	"net/http"
	"time"

	"microfeed/internal/feed/service"
	"microfeed/internal/feed/store"
	"microfeed/pkg/httpx"
	"microfeed/pkg/jwtx"
	"microfeed/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	TokenService *service.TokenService
	UserService  *service.UserService
	PostService  *service.PostService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

// ApplyRoutes registers every endpoint. Route paths are part of the wire
// contract and must not be renamed.
func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerPosts()
	r.registerSocial()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAccounts() {
	// POST /register - strict rate limit by IP (public signup endpoint)
	registerHandler := &RegisterHandler{UserService: r.UserService}
	r.Mux.Handle("POST /register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login - strict rate limit by IP (brute force prevention)
	loginHandler := &LoginHandler{
		UserService:  r.UserService,
		TokenService: r.TokenService,
	}
	r.Mux.Handle("POST /login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /accounts - authenticated, lenient rate limit by user
	accountsHandler := &AccountsHandler{UserService: r.UserService}
	r.Mux.Handle("GET /accounts",
		httpx.Chain(accountsHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerPosts() {
	h := &PostsHandler{PostService: r.PostService}

	// POST /createPost - authenticated write, moderate limit
	r.Mux.Handle("POST /createPost",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /posts - public feed, high limit
	r.Mux.Handle("GET /posts",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// GET /userPosts - authenticated, owner-filtered
	r.Mux.Handle("GET /userPosts",
		httpx.Chain(http.HandlerFunc(h.HandleListOwn),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// POST /removePost - authenticated write, moderate limit
	r.Mux.Handle("POST /removePost",
		httpx.Chain(http.HandlerFunc(h.HandleRemove),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

// registerSocial wires the placeholder social-graph endpoints. They enforce
// authentication like any other protected route but have no behavior yet.
func (r *Router) registerSocial() {
	placeholders := map[string]string{
		"/request":               "friend requests",
		"/acceptRequest":         "accepting friend requests",
		"/pendingRequests":       "pending friend requests",
		"/updatePrivacySettings": "privacy settings",
		"/likePost":              "liking posts",
		"/addComment":            "commenting",
	}

	for path, feature := range placeholders {
		r.Mux.Handle("POST "+path,
			httpx.Chain(placeholderHandler(feature),
				httpx.AuthnMiddleware(r.verifier),
				httpx.RateLimitByUser(httpx.ModerateLimit),
			),
		)
	}
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
