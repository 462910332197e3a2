package api

import (
	"context"

	"github.com/modaboutique/storefront/pkg/models"
)

// CreditPlans lists every financing plan, active or not. Callers
// filter on Active when offering plans at checkout.
func (c *Client) CreditPlans(ctx context.Context) ([]models.CreditPlan, error) {
	var out []models.CreditPlan
	if err := c.get(ctx, "/planes-credito", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
