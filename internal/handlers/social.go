package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/Pranav-019/spices-admin-panel/internal/backend"
	"github.com/Pranav-019/spices-admin-panel/internal/models"
	"github.com/Pranav-019/spices-admin-panel/internal/validation"
)

// SuccessBannerTTL is how long the save confirmation stays on screen.
const SuccessBannerTTL = 3 * time.Second

const (
	socialAddedMessage   = "Links added successfully!"
	socialUpdatedMessage = "Links updated successfully!"
)

// SocialSource is the social-links side of the backend client.
type SocialSource interface {
	GetSocialLinks(ctx context.Context) (*models.SocialLinks, error)
	CreateSocialLinks(ctx context.Context, links models.SocialLinks) (*models.SocialLinks, error)
	UpdateSocialLinks(ctx context.Context, id string, links models.SocialLinks) (*models.SocialLinks, error)
}

type SocialHandler struct {
	Base
	Social   SocialSource
	Validate *validatorv10.Validate
}

// Show renders the single social-links record, in edit mode with ?edit=1.
func (h *SocialHandler) Show(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Title":   "Social Links",
		"Editing": r.URL.Query().Get("edit") == "1",
		"Links":   models.SocialLinks{},
	}
	links, err := h.Social.GetSocialLinks(r.Context())
	if err != nil {
		slog.Error("Failed to fetch social links", "error", err)
		data["LoadError"] = backend.Message(err, "Failed to fetch social links")
	} else if links != nil {
		data["Links"] = *links
	}
	h.render(w, r, http.StatusOK, "social.html", data)
}

// Save updates the loaded record when it has an id and creates one
// otherwise, then shows the saved record in view mode.
func (h *SocialHandler) Save(w http.ResponseWriter, r *http.Request) {
	form := validation.SocialForm{
		ID:        r.FormValue("id"),
		WhatsApp:  r.FormValue("whatsapp"),
		Twitter:   r.FormValue("twitter"),
		Instagram: r.FormValue("instagram"),
		LinkedIn:  r.FormValue("linkedin"),
		Facebook:  r.FormValue("facebook"),
	}
	links, err := form.Resolve(h.Validate)
	if err != nil {
		h.renderEdit(w, r, http.StatusUnprocessableEntity, form, validation.Messages(err))
		return
	}

	var (
		saved  *models.SocialLinks
		banner string
	)
	if links.HasID() {
		saved, err = h.Social.UpdateSocialLinks(r.Context(), links.ID, links)
		banner = socialUpdatedMessage
	} else {
		saved, err = h.Social.CreateSocialLinks(r.Context(), links)
		banner = socialAddedMessage
	}
	if err != nil {
		slog.Error("Failed to save social links", "id", links.ID, "error", err)
		h.renderEdit(w, r, http.StatusBadGateway, form, []string{backend.Message(err, "Failed to save social links")})
		return
	}

	slog.Info("Social links saved", "id", saved.ID)
	h.render(w, r, http.StatusOK, "social.html", map[string]interface{}{
		"Title":   "Social Links",
		"Links":   *saved,
		"Flashes": []FlashMessage{{
			Type:         "success",
			Message:      banner,
			DismissAfter: int(SuccessBannerTTL / time.Millisecond),
		}},
	})
}

func (h *SocialHandler) renderEdit(w http.ResponseWriter, r *http.Request, status int, form validation.SocialForm, formErrors []string) {
	h.render(w, r, status, "social.html", map[string]interface{}{
		"Title":   "Social Links",
		"Editing": true,
		"Links":   models.SocialLinks{
			ID:        strings.TrimSpace(form.ID),
			WhatsApp:  form.WhatsApp,
			Twitter:   form.Twitter,
			Instagram: form.Instagram,
			LinkedIn:  form.LinkedIn,
			Facebook:  form.Facebook,
		},
		"FormErrors": formErrors,
	})
}
