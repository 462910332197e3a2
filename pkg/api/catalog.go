package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/modaboutique/storefront/pkg/models"
)

// CatalogFilter is the faceted search input. Nil fields are omitted
// from the query.
type CatalogFilter struct {
	Brand   *models.Brand
	Gender  *models.Gender
	Garment *models.GarmentType
	Size    *models.Size
	Season  *models.Season
	Use     *models.Use
	Page    int
}

// Catalog returns one page of the public product catalog.
func (c *Client) Catalog(ctx context.Context, page int) (*models.Page[models.Product], error) {
	q := url.Values{"page": {strconv.Itoa(page)}}
	var out models.Page[models.Product]
	if err := c.get(ctx, "api/catalogo", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchCatalog returns one page of the catalog filtered by facets.
func (c *Client) SearchCatalog(ctx context.Context, filter CatalogFilter) (*models.Page[models.Product], error) {
	q := url.Values{}
	if filter.Brand != nil {
		q.Set("marca", string(*filter.Brand))
	}
	if filter.Gender != nil {
		q.Set("genero", string(*filter.Gender))
	}
	if filter.Garment != nil {
		q.Set("tipoPrenda", string(*filter.Garment))
	}
	if filter.Size != nil {
		q.Set("talla", string(*filter.Size))
	}
	if filter.Season != nil {
		q.Set("temporada", string(*filter.Season))
	}
	if filter.Use != nil {
		q.Set("uso", string(*filter.Use))
	}
	q.Set("page", strconv.Itoa(filter.Page))

	var out models.Page[models.Product]
	if err := c.get(ctx, "api/catalogo/buscar", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stock returns the available quantity of one product at one branch.
// The backend answers with a bare integer.
func (c *Client) Stock(ctx context.Context, branchID, productID int) (int, error) {
	q := url.Values{
		"idSucursal": {strconv.Itoa(branchID)},
		"idProducto": {strconv.Itoa(productID)},
	}
	var stock int
	if err := c.get(ctx, "api/inventarios/stock-sucursal-producto", q, &stock); err != nil {
		return 0, err
	}
	return stock, nil
}
