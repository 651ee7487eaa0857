package handlers

import (
	"log/slog"
	"net/http"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/Pranav-019/spices-admin-panel/internal/models"
	"github.com/Pranav-019/spices-admin-panel/internal/orders"
	"github.com/Pranav-019/spices-admin-panel/internal/store"
)

// recentChanges is how many audit rows the dashboard lists.
const recentChanges = 10

type AdminHandler struct {
	Base
	Store   *store.Store
	Catalog Catalog
	Orders  *orders.Manager
}

func (h *AdminHandler) LoginGet(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "login.html", map[string]interface{}{
		"Title": "Admin Login",
	})
}

func (h *AdminHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, sessionName)

	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.Store.GetUserByUsername(r.Context(), username)
	if err != nil {
		slog.Error("Failed to look up user", "error", err)
		h.flash(w, r, "error", "Internal Server Error")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		h.flash(w, r, "error", "Invalid username or password")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	// Set authenticated session
	session.Values["authenticated"] = true
	session.Values["user_id"] = user.ID
	session.Options.Path = "/"
	session.AddFlash(FlashMessage{Type: "success", Message: "Welcome, " + user.Username + "!"})

	if err := session.Save(r, w); err != nil {
		slog.Error("Failed to save session", "error", err)
		http.Error(w, "Failed to save session", http.StatusInternalServerError)
		return
	}

	slog.Info("Login successful, redirecting to /admin", "user_id", user.ID)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, sessionName)
	session.Values["authenticated"] = false
	delete(session.Values, "user_id")
	session.AddFlash(FlashMessage{Type: "success", Message: "Logged out successfully!"})
	session.Save(r, w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// AuthMiddleware ensures the user is logged in
func (h *AdminHandler) AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := h.SessionStore.Get(r, sessionName)
		if auth, ok := session.Values["authenticated"].(bool); !ok || !auth {
			slog.Debug("AuthMiddleware: User not authenticated, redirecting to /login", "path", r.URL.Path)
			h.flash(w, r, "error", "You must be logged in to access this page.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

// Dashboard shows catalog and order counts from the backend next to the
// local audit trail. The product list and both order collections are
// fetched concurrently; any of them may fail without hiding the others.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		wg          sync.WaitGroup
		board       *orders.Board
		products    []models.Product
		productsErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		board = h.Orders.Load(ctx)
	}()
	go func() {
		defer wg.Done()
		products, productsErr = h.Catalog.ListProducts(ctx)
	}()
	wg.Wait()
	if productsErr != nil {
		slog.Warn("Failed to fetch products for dashboard", "error", productsErr)
	}

	stats, err := h.Store.GetDashboardStats(ctx)
	if err != nil {
		slog.Error("Failed to load dashboard stats", "error", err)
		http.Error(w, "Error fetching stats", http.StatusInternalServerError)
		return
	}
	recent, err := h.Store.RecentStatusChanges(ctx, recentChanges)
	if err != nil {
		slog.Error("Failed to load recent status changes", "error", err)
		http.Error(w, "Error fetching stats", http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, "dashboard.html", map[string]interface{}{
		"Title":         "Dashboard",
		"Board":         board,
		"CustomLabel":   board.Collection(models.KindCustom).Label,
		"ProductCount":  len(products),
		"ProductsError": productsErr != nil,
		"Stats":         stats,
		"Recent":        recent,
	})
}
