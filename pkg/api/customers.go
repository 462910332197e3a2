package api

import (
	"context"

	"github.com/modaboutique/storefront/pkg/models"
)

// CustomerByCI looks up a customer by identity-card number.
func (c *Client) CustomerByCI(ctx context.Context, ci string) (*models.Customer, error) {
	var out models.Customer
	if err := c.get(ctx, "api/clientes/"+ci, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCustomer registers a new customer.
func (c *Client) CreateCustomer(ctx context.Context, customer models.Customer) (*models.Customer, error) {
	var out models.Customer
	if err := c.post(ctx, "api/clientes", customer, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
