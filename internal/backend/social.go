package backend

import (
	"context"
	"net/http"

	"github.com/Pranav-019/spices-admin-panel/internal/models"
)

type socialEnvelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Links   *models.SocialLinks `json:"links"`
}

// GetSocialLinks returns the single social-links record. A backend that
// has none yet yields an empty record without an id.
func (c *Client) GetSocialLinks(ctx context.Context) (*models.SocialLinks, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.socialURL, "/api/social/get", nil)
	if err != nil {
		return nil, err
	}
	var env socialEnvelope
	if err := c.do(req, &env); err != nil {
		return nil, err
	}
	if !env.Success || env.Links == nil {
		return &models.SocialLinks{}, nil
	}
	return env.Links, nil
}

// CreateSocialLinks adds the record and returns it as stored, id included.
func (c *Client) CreateSocialLinks(ctx context.Context, links models.SocialLinks) (*models.SocialLinks, error) {
	links.ID = ""
	req, err := c.newJSONRequest(ctx, http.MethodPost, c.socialURL, "/api/social/add", links)
	if err != nil {
		return nil, err
	}
	return c.doSocial(req, links)
}

func (c *Client) UpdateSocialLinks(ctx context.Context, id string, links models.SocialLinks) (*models.SocialLinks, error) {
	links.ID = id
	req, err := c.newJSONRequest(ctx, http.MethodPut, c.socialURL, "/api/social/update/"+id, links)
	if err != nil {
		return nil, err
	}
	return c.doSocial(req, links)
}

func (c *Client) doSocial(req *http.Request, sent models.SocialLinks) (*models.SocialLinks, error) {
	var env socialEnvelope
	if err := c.do(req, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &APIError{Method: req.Method, Path: req.URL.Path, Status: http.StatusOK, Message: env.Message}
	}
	if env.Links == nil {
		return &sent, nil
	}
	return env.Links, nil
}
