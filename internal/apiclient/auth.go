package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/c14220110/clinic-portal/internal/common/models"
)

// Login POST /auth/login sebagai form OAuth2 (username = email).
func (c *Client) Login(ctx context.Context, email, password string) (*models.Token, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login", nil, strings.NewReader(form.Encode()), mimeForm)
	if err != nil {
		return nil, err
	}
	var token models.Token
	if err := c.do(req, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

func (c *Client) Register(ctx context.Context, in models.UserCreate) (*models.User, error) {
	var user models.User
	if err := c.post(ctx, "/users/", in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetMe profil pengguna pemilik token.
func (c *Client) GetMe(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/users/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
