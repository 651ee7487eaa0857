package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/Pranav-019/spices-admin-panel/internal/nav"
)

const sessionName = "admin-session"

// Base is shared by every page handler.
type Base struct {
	SessionStore *sessions.CookieStore
	Templates    *TemplateCache
	Nav          *nav.Tree
}

type navView struct {
	Brand  string
	Groups []nav.ActiveGroup
}

// render executes the named page with the common fields added: CSRF field,
// pending flashes (after any already in data), the sidebar and the mobile
// breakpoint. The session is saved before anything is written.
func (b *Base) render(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]interface{}) {
	tmpl := b.Templates.Get(name)
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	if data == nil {
		data = make(map[string]interface{})
	}

	session, _ := b.SessionStore.Get(r, sessionName)
	flashes, _ := data["Flashes"].([]FlashMessage)
	data["Flashes"] = append(GetFlash(session), flashes...)
	data["CsrfField"] = csrf.TemplateField(r)
	data["Breakpoint"] = nav.MobileBreakpoint
	tree := b.Nav
	if tree == nil {
		tree = nav.Default()
	}
	data["Nav"] = navView{Brand: tree.Brand, Groups: tree.Active(r.URL.Path)}
	if err := session.Save(r, w); err != nil {
		slog.Error("Failed to save session", "error", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		slog.Error("Failed to render template", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// flash queues a message for the next rendered page.
func (b *Base) flash(w http.ResponseWriter, r *http.Request, typ, message string) {
	session, _ := b.SessionStore.Get(r, sessionName)
	session.AddFlash(FlashMessage{Type: typ, Message: message})
	if err := session.Save(r, w); err != nil {
		slog.Error("Failed to save session", "error", err)
	}
}

func (b *Base) userID(r *http.Request) int {
	session, _ := b.SessionStore.Get(r, sessionName)
	id, _ := session.Values["user_id"].(int)
	return id
}
