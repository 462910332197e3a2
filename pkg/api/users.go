package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/modaboutique/storefront/pkg/models"
)

func (c *Client) Users(ctx context.Context, page int) (*models.Page[models.User], error) {
	q := url.Values{"page": {strconv.Itoa(page)}}
	var out models.Page[models.User]
	if err := c.get(ctx, "/usuarios", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) User(ctx context.Context, id string) (*models.User, error) {
	var out models.User
	if err := c.get(ctx, "/usuarios/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateUser(ctx context.Context, user models.CreateUser) (*models.User, error) {
	var out models.User
	if err := c.post(ctx, "/usuarios", user, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, user models.CreateUser) (*models.User, error) {
	var out models.User
	if err := c.put(ctx, "/usuarios/"+id, user, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser deactivates the account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.delete(ctx, "/usuarios/"+id)
}
