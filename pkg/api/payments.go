package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/modaboutique/storefront/pkg/models"
)

// CreatePayment registers a payment against a sale or an installment.
func (c *Client) CreatePayment(ctx context.Context, payment models.Payment) (*models.Payment, error) {
	var out models.Payment
	if err := c.post(ctx, "/pagos/pago-venta", payment, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Payments returns one page of registered payments.
func (c *Client) Payments(ctx context.Context, page int) (*models.Page[models.Payment], error) {
	q := url.Values{"page": {strconv.Itoa(page)}}
	var out models.Page[models.Payment]
	if err := c.get(ctx, "/pagos", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Payment fetches one payment with its parent sale or installment
// expanded.
func (c *Client) Payment(ctx context.Context, id int) (*models.PaymentDetail, error) {
	var out models.PaymentDetail
	if err := c.get(ctx, fmt.Sprintf("/pagos/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
