package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/modaboutique/storefront/pkg/models"
)

// The sale listings are partitioned by lifecycle status, one endpoint
// per status, all sharing the same page/branch query shape.

func (c *Client) salesPage(ctx context.Context, status string, page int, branchID *int) (*models.Page[models.Sale], error) {
	q := url.Values{"page": {strconv.Itoa(page)}}
	if branchID != nil {
		q.Set("idSucursal", strconv.Itoa(*branchID))
	} else {
		q.Set("idSucursal", "")
	}
	var out models.Page[models.Sale]
	if err := c.get(ctx, "/ventas/"+status, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CompletedSales(ctx context.Context, page int, branchID *int) (*models.Page[models.Sale], error) {
	return c.salesPage(ctx, "completadas", page, branchID)
}

func (c *Client) PendingSales(ctx context.Context, page int, branchID *int) (*models.Page[models.Sale], error) {
	return c.salesPage(ctx, "pendientes", page, branchID)
}

func (c *Client) InProcessSales(ctx context.Context, page int, branchID *int) (*models.Page[models.Sale], error) {
	return c.salesPage(ctx, "en-proceso", page, branchID)
}

func (c *Client) PayingCreditSales(ctx context.Context, page int, branchID *int) (*models.Page[models.Sale], error) {
	return c.salesPage(ctx, "pagando-credito", page, branchID)
}

func (c *Client) CanceledSales(ctx context.Context, page int, branchID *int) (*models.Page[models.Sale], error) {
	return c.salesPage(ctx, "canceladas", page, branchID)
}

// Sale fetches the expanded detail view, including nested credit and
// installment data for credit sales.
func (c *Client) Sale(ctx context.Context, id int) (*models.SaleDetail, error) {
	var out models.SaleDetail
	if err := c.get(ctx, fmt.Sprintf("/ventas/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSale places a new sale with its line items.
func (c *Client) CreateSale(ctx context.Context, sale models.SaleDetail) (*models.SaleDetail, error) {
	var out models.SaleDetail
	if err := c.post(ctx, "/ventas", sale, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelSale cancels the sale. The backend models cancellation as
// deletion of the resource.
func (c *Client) CancelSale(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/ventas/%d", id))
}
