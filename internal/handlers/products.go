package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/Pranav-019/spices-admin-panel/internal/backend"
	"github.com/Pranav-019/spices-admin-panel/internal/imaging"
	"github.com/Pranav-019/spices-admin-panel/internal/models"
	"github.com/Pranav-019/spices-admin-panel/internal/validation"
)

// MaxUploadSize bounds the whole request body, image included.
const MaxUploadSize = 10 << 20 // 10MB

// Catalog is the product side of the backend client.
type Catalog interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	CreateProduct(ctx context.Context, p models.NewProduct) (*models.Product, error)
}

type ProductHandler struct {
	Base
	Catalog  Catalog
	Validate *validatorv10.Validate
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, http.StatusOK, validation.ProductForm{}, nil)
}

// Create validates the form, optimizes the optional image and submits the
// product. Invalid forms never reach the backend.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		slog.Warn("Failed to parse product form", "error", err)
		msg := "Invalid form submission."
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			msg = "File too large. Max 10MB."
		}
		h.renderList(w, r, http.StatusBadRequest, validation.ProductForm{}, []string{msg})
		return
	}

	form := validation.ProductForm{
		Category:       r.FormValue("category"),
		CustomCategory: r.FormValue("custom_category"),
		Name:           r.FormValue("name"),
		Price:          r.FormValue("price"),
		Description:    r.FormValue("description"),
	}
	product, err := form.Resolve(h.Validate)
	if err != nil {
		h.renderList(w, r, http.StatusUnprocessableEntity, form, validation.Messages(err))
		return
	}

	upload, err := readImage(r)
	if err != nil {
		slog.Warn("Failed to read product image", "error", err)
		h.renderList(w, r, http.StatusBadRequest, form, []string{"Could not read the image file."})
		return
	}
	product.Image = upload

	created, err := h.Catalog.CreateProduct(r.Context(), product)
	if err != nil {
		slog.Error("Failed to create product", "name", product.Name, "error", err)
		h.renderList(w, r, http.StatusBadGateway, form, []string{backend.Message(err, "Failed to add product")})
		return
	}

	slog.Info("Product created", "id", created.ID, "name", created.Name)
	h.flash(w, r, "success", "Product \""+created.Name+"\" added successfully!")
	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

// readImage returns the optimized upload, or nil when no file was sent.
func readImage(r *http.Request) (*models.Upload, error) {
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	up, err := imaging.Optimize(header.Filename, data)
	if err != nil {
		return nil, err
	}
	return &up, nil
}

func (h *ProductHandler) renderList(w http.ResponseWriter, r *http.Request, status int, form validation.ProductForm, formErrors []string) {
	ctx := r.Context()
	data := map[string]interface{}{
		"Title":         "Products",
		"Form":          form,
		"FormErrors":    formErrors,
		"OtherCategory": validation.OtherCategory,
	}

	products, err := h.Catalog.ListProducts(ctx)
	if err != nil {
		slog.Error("Failed to fetch products", "error", err)
		data["Error"] = backend.Message(err, "Failed to fetch products")
		products = nil
	}
	data["Products"] = products
	data["Categories"] = h.categories(ctx)

	h.render(w, r, status, "products.html", data)
}

// categories degrades to an empty list, which switches the form to a
// free-text category input.
func (h *ProductHandler) categories(ctx context.Context) []string {
	cats, err := h.Catalog.ListCategories(ctx)
	if errors.Is(err, backend.ErrUnsupported) {
		return nil
	}
	if err != nil {
		slog.Warn("Failed to fetch categories", "error", err)
		return nil
	}
	return cats
}
