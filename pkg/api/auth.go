package api

import (
	"context"
	"errors"

	"github.com/modaboutique/storefront/pkg/models"
)

// ErrInvalidCredentials is returned for rejected logins. The backend
// does not distinguish unknown users from wrong passwords and neither
// do we.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Login exchanges credentials for an access/refresh token pair.
func (c *Client) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	body := map[string]string{"username": username, "password": password}
	var resp models.LoginResponse
	if err := c.post(ctx, "/auth/login", body, &resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && (apiErr.Status == 401 || apiErr.Status == 403) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return &resp, nil
}
