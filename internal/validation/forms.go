package validation

import (
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/Pranav-019/spices-admin-panel/internal/models"
)

// OtherCategory is the select value that switches to the free-text category.
const OtherCategory = "other"

// ProductForm is the catalog editor's add-product form.
type ProductForm struct {
	Category       string `form:"category"`
	CustomCategory string `form:"custom_category"`
	Name           string `form:"name" validate:"required"`
	Price          string `form:"price" validate:"required"`
	Description    string `form:"description" validate:"required"`
}

// category resolves the submitted category: the selection itself, or the
// custom text when "other" is selected.
func (f ProductForm) category() string {
	if f.Category == OtherCategory {
		return strings.TrimSpace(f.CustomCategory)
	}
	return strings.TrimSpace(f.Category)
}

// Resolve validates the form and returns the product to submit. It never
// touches the network, so a form that fails here is never sent.
func (f ProductForm) Resolve(v *validatorv10.Validate) (models.NewProduct, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	if err := v.Struct(f); err != nil {
		return models.NewProduct{}, err
	}
	price, err := decimal.NewFromString(strings.TrimSpace(f.Price))
	if err != nil {
		return models.NewProduct{}, err
	}
	return models.NewProduct{
		Category:    f.category(),
		Name:        f.Name,
		Price:       price,
		Description: f.Description,
	}, nil
}

// SocialForm is the edit-mode form of the social-links editor. ID is the
// loaded record's identifier, empty when none exists yet.
type SocialForm struct {
	ID        string `form:"id"`
	WhatsApp  string `form:"whatsapp" validate:"omitempty,url"`
	Twitter   string `form:"twitter" validate:"omitempty,url"`
	Instagram string `form:"instagram" validate:"omitempty,url"`
	LinkedIn  string `form:"linkedin" validate:"omitempty,url"`
	Facebook  string `form:"facebook" validate:"omitempty,url"`
}

func (f SocialForm) Resolve(v *validatorv10.Validate) (models.SocialLinks, error) {
	links := models.SocialLinks{
		ID:        strings.TrimSpace(f.ID),
		WhatsApp:  strings.TrimSpace(f.WhatsApp),
		Twitter:   strings.TrimSpace(f.Twitter),
		Instagram: strings.TrimSpace(f.Instagram),
		LinkedIn:  strings.TrimSpace(f.LinkedIn),
		Facebook:  strings.TrimSpace(f.Facebook),
	}
	trimmed := SocialForm{
		ID:        links.ID,
		WhatsApp:  links.WhatsApp,
		Twitter:   links.Twitter,
		Instagram: links.Instagram,
		LinkedIn:  links.LinkedIn,
		Facebook:  links.Facebook,
	}
	if err := v.Struct(trimmed); err != nil {
		return models.SocialLinks{}, err
	}
	return links, nil
}
