package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/Pranav-019/spices-admin-panel/internal/models"
)

// ListProducts fetches the whole catalog. The backend does not paginate.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.baseURL, "/api/products", nil)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := c.do(req, &raw); err != nil {
		return nil, err
	}
	products, err := decodeList[models.Product](raw, "products")
	if err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}
	return products, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	if !c.revision.HasCategories() {
		return nil, ErrUnsupported
	}
	req, err := c.newRequest(ctx, http.MethodGet, c.baseURL, "/api/products/categories", nil)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := c.do(req, &raw); err != nil {
		return nil, err
	}
	categories, err := decodeList[string](raw, "categories")
	if err != nil {
		return nil, fmt.Errorf("decoding categories: %w", err)
	}
	return categories, nil
}

// CreateProduct posts the product as multipart/form-data. The image part is
// only written when p.Image is set.
func (c *Client) CreateProduct(ctx context.Context, p models.NewProduct) (*models.Product, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fields := []struct{ name, value string }{
		{"category", p.Category},
		{"name", p.Name},
		{"price", p.Price.String()},
		{"description", p.Description},
	}
	for _, f := range fields {
		if err := mw.WriteField(f.name, f.value); err != nil {
			return nil, fmt.Errorf("writing %s field: %w", f.name, err)
		}
	}
	if p.Image != nil {
		if err := writeFilePart(mw, "image", p.Image); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.baseURL, "/api/products/add", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var raw json.RawMessage
	if err := c.do(req, &raw); err != nil {
		return nil, err
	}
	var env struct {
		Product *models.Product `json:"product"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && env.Product != nil {
		return env.Product, nil
	}
	var created models.Product
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, fmt.Errorf("decoding created product: %w", err)
	}
	return &created, nil
}

func writeFilePart(mw *multipart.Writer, field string, up *models.Upload) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, up.Filename))
	contentType := up.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("creating %s part: %w", field, err)
	}
	if _, err := part.Write(up.Data); err != nil {
		return fmt.Errorf("writing %s part: %w", field, err)
	}
	return nil
}
