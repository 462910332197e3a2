package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/modaboutique/storefront/pkg/models"
)

// PredictionQuery narrows a demand prediction run. Nil fields are
// omitted; TopN caps the number of ranked results.
type PredictionQuery struct {
	StartDate *string
	EndDate   *string
	Gender    *string
	Brand     *string
	Garment   *string
	TopN      *int
}

// Prediction queries the demand-prediction service.
func (c *Client) Prediction(ctx context.Context, query PredictionQuery) (*models.PredictionResponse, error) {
	q := url.Values{}
	if query.StartDate != nil {
		q.Set("fecha_inicio", *query.StartDate)
	}
	if query.EndDate != nil {
		q.Set("fecha_fin", *query.EndDate)
	}
	if query.Gender != nil {
		q.Set("genero", *query.Gender)
	}
	if query.Brand != nil {
		q.Set("marca", *query.Brand)
	}
	if query.Garment != nil {
		q.Set("tipoPrenda", *query.Garment)
	}
	if query.TopN != nil {
		q.Set("top_n", strconv.Itoa(*query.TopN))
	}

	var out models.PredictionResponse
	if err := c.get(ctx, "ia/prediccion", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
