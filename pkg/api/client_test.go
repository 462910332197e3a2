package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modaboutique/storefront/pkg/models"
)

func staticToken(token string) TokenSource {
	return func() string { return token }
}

func TestBearerHeaderInjection(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(models.Page[models.Product]{})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticToken("tok-123"))
	_, err := client.Catalog(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestAnonymousRequestHasNoAuthHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(models.Page[models.Product]{})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticToken(""))
	_, err := client.Catalog(context.Background(), 0)

	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestUnauthorizedFiresCallbackFromAnyEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Token expirado"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticToken("stale"))
	fired := 0
	client.SetOnUnauthorized(func() { fired++ })

	_, err := client.Catalog(context.Background(), 0)
	assert.Error(t, err)
	_, err = client.CompletedSales(context.Background(), 0, nil)
	assert.Error(t, err)

	assert.Equal(t, 2, fired)
}

func TestForbiddenDoesNotFireUnauthorizedCallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticToken("tok"))
	fired := 0
	client.SetOnUnauthorized(func() { fired++ })

	_, err := client.Catalog(context.Background(), 0)

	assert.Error(t, err)
	assert.Zero(t, fired)
}

func TestErrorBodyMessageVariants(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"message field", `{"message":"Stock insuficiente"}`, "Stock insuficiente"},
		{"detail field", `{"detail":"fecha_inicio invalida"}`, "fecha_inicio invalida"},
		{"empty body", ``, ""},
		{"not json", `<html>oops</html>`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, nil)
			_, err := client.Catalog(context.Background(), 0)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusBadRequest, apiErr.Status)
			assert.Equal(t, tc.want, apiErr.Message)
		})
	}
}

func TestLoginMapsRejectionsToInvalidCredentials(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]string{"message": "Credenciales incorrectas"})
		}))

		client := NewClient(srv.URL, nil)
		_, err := client.Login(context.Background(), "nobody", "wrong")
		srv.Close()

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}
}

func TestLoginPassesServerErrorsThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.Login(context.Background(), "admin", "admin123")

	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestCatalogDecodesPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/catalogo", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		json.NewEncoder(w).Encode(map[string]any{
			"content":       []map[string]any{{"id": 1, "nombre": "Camiseta", "precio": 120.0}},
			"number":        2,
			"totalPages":    5,
			"totalElements": 42,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	page, err := client.Catalog(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, 2, page.Number)
	assert.Equal(t, 5, page.TotalPages)
	assert.Equal(t, 42, page.TotalElements)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Camiseta", page.Content[0].Name)
	assert.InDelta(t, 120, page.Content[0].Price, 1e-9)
}

func TestSearchCatalogOmitsNilFacets(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(models.Page[models.Product]{})
	}))
	defer srv.Close()

	brand := models.Brand("NIKE")
	gender := models.Gender("HOMBRE")
	client := NewClient(srv.URL, nil)
	_, err := client.SearchCatalog(context.Background(), CatalogFilter{Brand: &brand, Gender: &gender, Page: 1})

	require.NoError(t, err)
	assert.Equal(t, []string{"NIKE"}, gotQuery["marca"])
	assert.Equal(t, []string{"HOMBRE"}, gotQuery["genero"])
	assert.Equal(t, []string{"1"}, gotQuery["page"])
	assert.NotContains(t, gotQuery, "talla")
	assert.NotContains(t, gotQuery, "temporada")
}

func TestStockDecodesBareInteger(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/inventarios/stock-sucursal-producto", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("idSucursal"))
		assert.Equal(t, "7", r.URL.Query().Get("idProducto"))
		w.Write([]byte("14"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	stock, err := client.Stock(context.Background(), 2, 7)

	require.NoError(t, err)
	assert.Equal(t, 14, stock)
}

func TestSalesPageBranchParam(t *testing.T) {
	var gotRaw string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ventas/completadas", r.URL.Path)
		gotRaw = r.URL.RawQuery
		json.NewEncoder(w).Encode(models.Page[models.Sale]{})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)

	branch := 3
	_, err := client.CompletedSales(context.Background(), 0, &branch)
	require.NoError(t, err)
	assert.Contains(t, gotRaw, "idSucursal=3")

	// Without a branch the parameter is still sent, empty.
	_, err = client.CompletedSales(context.Background(), 0, nil)
	require.NoError(t, err)
	assert.Contains(t, gotRaw, "idSucursal=")
}

func TestCancelSaleUsesDelete(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	require.NoError(t, client.CancelSale(context.Background(), 42))

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/ventas/42", gotPath)
}

func TestPredictionQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ia/prediccion", r.URL.Path)
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(models.PredictionResponse{})
	}))
	defer srv.Close()

	start := "2026-01-01"
	topN := 5
	client := NewClient(srv.URL, nil)
	_, err := client.Prediction(context.Background(), PredictionQuery{StartDate: &start, TopN: &topN})

	require.NoError(t, err)
	assert.Equal(t, []string{"2026-01-01"}, gotQuery["fecha_inicio"])
	assert.Equal(t, []string{"5"}, gotQuery["top_n"])
	assert.NotContains(t, gotQuery, "fecha_fin")
	assert.NotContains(t, gotQuery, "genero")
}
