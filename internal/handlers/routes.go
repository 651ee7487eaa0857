package handlers

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Admin    *AdminHandler
	Products *ProductHandler
	Social   *SocialHandler
	Orders   *OrderHandler
	// LoginLimiter throttles POST /login; nil disables it.
	LoginLimiter *RateLimiter
	Static       fs.FS
}

func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	// Static Files
	if h.Static != nil {
		mux.Handle("GET /static/", http.StripPrefix("/static", http.FileServerFS(h.Static)))
	}

	loginPost := h.Admin.LoginPost
	if h.LoginLimiter != nil {
		loginPost = h.LoginLimiter.Middleware(loginPost)
	}
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	})
	mux.HandleFunc("GET /login", h.Admin.LoginGet)
	mux.HandleFunc("POST /login", loginPost)
	mux.HandleFunc("/logout", h.Admin.Logout)

	// Protected Routes
	auth := h.Admin.AuthMiddleware
	mux.HandleFunc("GET /admin", auth(h.Admin.Dashboard))
	mux.HandleFunc("GET /admin/products", auth(h.Products.List))
	mux.HandleFunc("POST /admin/products", auth(h.Products.Create))
	mux.HandleFunc("GET /admin/social", auth(h.Social.Show))
	mux.HandleFunc("POST /admin/social", auth(h.Social.Save))
	mux.HandleFunc("GET /admin/orders", auth(h.Orders.List))
	mux.HandleFunc("POST /admin/orders/status", auth(h.Orders.UpdateStatus))
	mux.HandleFunc("POST /admin/orders/cancel", auth(h.Orders.Cancel))

	return mux
}

// Chain wraps the router in the server's middleware, outermost first:
// request id, logging, panic recovery, security headers, body limit,
// then protect (CSRF in production; nil skips it). Logging sits outside
// recovery so a panicking request is still logged with its 500.
func Chain(mux http.Handler, protect func(http.Handler) http.Handler) http.Handler {
	var h http.Handler = mux
	if protect != nil {
		h = protect(h)
	}
	h = LimitRequestBody(MaxUploadSize)(h)
	h = SecurityHeadersMiddleware(h)
	h = middleware.Recoverer(h)
	h = LoggingMiddleware(h)
	return middleware.RequestID(h)
}
