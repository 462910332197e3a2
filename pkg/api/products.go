package api

import (
	"context"
	"fmt"
)

// ProductName looks up a product's display name by id.
func (c *Client) ProductName(ctx context.Context, productID int) (string, error) {
	var name string
	if err := c.get(ctx, fmt.Sprintf("/productos/obtener-nombre/%d", productID), nil, &name); err != nil {
		return "", err
	}
	return name, nil
}

// ProductPrice looks up a product's current unit price by id.
func (c *Client) ProductPrice(ctx context.Context, productID int) (float64, error) {
	var price float64
	if err := c.get(ctx, fmt.Sprintf("/productos/obtener-precio/%d", productID), nil, &price); err != nil {
		return 0, err
	}
	return price, nil
}
