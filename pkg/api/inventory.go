package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/modaboutique/storefront/pkg/models"
)

func (c *Client) Inventories(ctx context.Context, page int) (*models.Page[models.Inventory], error) {
	q := url.Values{"page": {strconv.Itoa(page)}}
	var out models.Page[models.Inventory]
	if err := c.get(ctx, "/inventarios", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) InventoriesByBranch(ctx context.Context, branchID, page int) (*models.Page[models.Inventory], error) {
	q := url.Values{"page": {strconv.Itoa(page)}}
	var out models.Page[models.Inventory]
	if err := c.get(ctx, fmt.Sprintf("/inventarios/sucursal/%d", branchID), q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Inventory(ctx context.Context, id int) (*models.Inventory, error) {
	var out models.Inventory
	if err := c.get(ctx, fmt.Sprintf("/inventarios/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateInventory(ctx context.Context, inv models.Inventory) (*models.Inventory, error) {
	var out models.Inventory
	if err := c.post(ctx, "/inventarios", inv, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateInventory(ctx context.Context, id int, inv models.Inventory) (*models.Inventory, error) {
	var out models.Inventory
	if err := c.put(ctx, fmt.Sprintf("/inventarios/%d", id), inv, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteInventory(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/inventarios/%d", id))
}
