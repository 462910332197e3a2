package api

import (
	"context"

	"github.com/modaboutique/storefront/pkg/models"
)

// Branches lists every store location.
func (c *Client) Branches(ctx context.Context) ([]models.Branch, error) {
	var out []models.Branch
	if err := c.get(ctx, "/sucursales", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
