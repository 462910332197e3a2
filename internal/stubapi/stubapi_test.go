package stubapi

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modaboutique/storefront/pkg/api"
	"github.com/modaboutique/storefront/pkg/cart"
	"github.com/modaboutique/storefront/pkg/checkout"
	"github.com/modaboutique/storefront/pkg/credit"
	"github.com/modaboutique/storefront/pkg/models"
	"github.com/modaboutique/storefront/pkg/session"
)

type memStore struct {
	m map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{m: make(map[string][]byte)}
}

func (s *memStore) Get(key string) ([]byte, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *memStore) Set(key string, value []byte) error {
	s.m[key] = value
	return nil
}

func (s *memStore) Delete(key string) error {
	delete(s.m, key)
	return nil
}

// newStack spins up the stub backend and wires a real client, session
// and cart against it, the same way the storefront command does.
func newStack(t *testing.T) (*api.Client, *session.Session, *cart.Cart) {
	t.Helper()
	srv := httptest.NewServer(NewRouter(NewServer()))
	t.Cleanup(srv.Close)

	store := newMemStore()
	var sess *session.Session
	client := api.NewClient(srv.URL, func() string {
		if sess == nil {
			return ""
		}
		return sess.AccessToken()
	})
	sess = session.New(store, client)
	client.SetOnUnauthorized(sess.Logout)
	return client, sess, cart.New(store)
}

func login(t *testing.T, sess *session.Session, username, password string) *models.Identity {
	t.Helper()
	identity, err := sess.Login(context.Background(), username, password)
	require.NoError(t, err)
	return identity
}

func TestLoginIssuesDecodableToken(t *testing.T) {
	_, sess, _ := newStack(t)

	identity := login(t, sess, "cajero1", "cajero123")

	assert.Equal(t, 2, identity.ID)
	assert.Equal(t, models.RoleCashier, identity.Role)
	require.NotNil(t, identity.BranchID)
	assert.Equal(t, 1, *identity.BranchID)
	assert.True(t, sess.LoggedIn())
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	client, sess, _ := newStack(t)

	_, err := sess.Login(context.Background(), "cajero1", "wrong")
	assert.ErrorIs(t, err, api.ErrInvalidCredentials)

	_, err = client.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, api.ErrInvalidCredentials)
}

func TestCatalogIsPublic(t *testing.T) {
	client, _, _ := newStack(t)

	page, err := client.Catalog(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, 4, page.TotalElements)
	assert.Len(t, page.Content, 4)
}

func TestSearchCatalogFilters(t *testing.T) {
	client, _, _ := newStack(t)

	brand := models.BrandLevis
	page, err := client.SearchCatalog(context.Background(), api.CatalogFilter{Brand: &brand})

	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Jeans 501", page.Content[0].Name)
}

func TestStockLookup(t *testing.T) {
	client, _, _ := newStack(t)

	qty, err := client.Stock(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 8, qty)

	// Unknown branch/product pair answers zero, not an error.
	qty, err = client.Stock(context.Background(), 9, 9)
	require.NoError(t, err)
	assert.Zero(t, qty)
}

func TestProtectedEndpointForcesLogout(t *testing.T) {
	client, sess, _ := newStack(t)
	login(t, sess, "cliente1", "cliente123")

	// Sabotage the stored token; the next protected call must come back
	// 401 and clear the whole session.
	sess.Logout()
	_, err := client.CompletedSales(context.Background(), 0, nil)

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
	assert.False(t, sess.LoggedIn())
}

func TestCreditPlansListing(t *testing.T) {
	client, sess, _ := newStack(t)
	login(t, sess, "cliente1", "cliente123")

	plans, err := client.CreditPlans(context.Background())

	require.NoError(t, err)
	assert.Len(t, plans, 3)
}

func TestCashCheckoutEndToEnd(t *testing.T) {
	client, sess, basket := newStack(t)
	login(t, sess, "cliente1", "cliente123")

	basket.Add(models.Product{ID: 1, Name: "Camiseta Essential", Price: 120})
	basket.Add(models.Product{ID: 2, Name: "Jeans 501", Price: 380})
	basket.SetQuantity(1, 2)

	flow := checkout.New(basket, sess, client, client)
	require.NoError(t, flow.LoadPlans(context.Background()))
	assert.Len(t, flow.Plans(), 2, "inactive plans are filtered out")

	require.NoError(t, flow.Next())
	flow.SetCard(checkout.Card{Number: "4111111111111111", Holder: "Cliente Uno", Expiry: "11/28", CVV: "321"})
	require.NoError(t, flow.Next())
	require.NoError(t, flow.Submit(context.Background()))

	assert.True(t, flow.Success())
	assert.Empty(t, basket.Items())

	page, err := client.CompletedSales(context.Background(), 0, nil)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	sale := page.Content[0]
	assert.Equal(t, models.SaleStatusCompleted, sale.Status)
	assert.Equal(t, models.SaleTypeOnline, sale.Type)
	assert.InDelta(t, 2*120+380, sale.Total, 1e-9)
}

func TestCreditSaleBuildsSchedule(t *testing.T) {
	client, sess, _ := newStack(t)
	login(t, sess, "cliente1", "cliente123")

	plan := models.CreditPlan{ID: 2, Term: 6, Frequency: models.FrequencyMonthly, AnnualRate: 18}
	created, err := client.CreateSale(context.Background(), models.SaleDetail{
		Date:         "2026-08-30",
		Time:         "10:00:00",
		Total:        600,
		Type:         models.SaleTypeOnline,
		PaymentType:  models.PaymentTypeCredit,
		CustomerID:   3,
		BranchID:     1,
		CreditPlanID: &plan.ID,
		Lines: []models.SaleLine{
			{Quantity: 1, UnitPrice: 600, Subtotal: 600, ProductID: 4},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, created.Status)
	assert.Equal(t, models.SaleStatusPayingCredit, *created.Status)
	require.NotNil(t, created.Credit)
	assert.Equal(t, 6, created.Credit.Installments)
	require.Len(t, created.Credit.Schedule, 6)
	assert.InDelta(t, credit.PlanInstallment(600, plan), created.Credit.InstallmentAmount, 1e-9)
	assert.Equal(t, 1, created.Credit.Schedule[0].Number)

	// The detail endpoint returns the same nested credit.
	require.NotNil(t, created.ID)
	fetched, err := client.Sale(context.Background(), *created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Credit)
	assert.Len(t, fetched.Credit.Schedule, 6)
}

func TestCreditSaleWithoutPlanRejected(t *testing.T) {
	client, sess, _ := newStack(t)
	login(t, sess, "cliente1", "cliente123")

	_, err := client.CreateSale(context.Background(), models.SaleDetail{
		Total:       100,
		Type:        models.SaleTypeOnline,
		PaymentType: models.PaymentTypeCredit,
		CustomerID:  3,
		BranchID:    1,
		Lines:       []models.SaleLine{{Quantity: 1, UnitPrice: 100, Subtotal: 100, ProductID: 1}},
	})

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "credit sales require a plan", apiErr.Message)
}

func TestCancelSaleMovesToCanceled(t *testing.T) {
	client, sess, _ := newStack(t)
	login(t, sess, "admin", "admin123")

	created, err := client.CreateSale(context.Background(), models.SaleDetail{
		Total:       120,
		Type:        models.SaleTypePhysical,
		PaymentType: models.PaymentTypeCash,
		CustomerID:  1,
		BranchID:    1,
		Lines:       []models.SaleLine{{Quantity: 1, UnitPrice: 120, Subtotal: 120, ProductID: 1}},
	})
	require.NoError(t, err)
	require.NotNil(t, created.ID)

	require.NoError(t, client.CancelSale(context.Background(), *created.ID))

	page, err := client.CanceledSales(context.Background(), 0, nil)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, *created.ID, page.Content[0].ID)
}

func TestReportDownload(t *testing.T) {
	client, sess, _ := newStack(t)
	login(t, sess, "admin", "admin123")

	report, err := client.ProductReport(context.Background(), "productos mas vendidos")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(report.Filename, "reporte_productos_"))
	assert.True(t, strings.HasSuffix(report.Filename, ".xlsx"))
	assert.NotEmpty(t, report.Data)
}

func TestReportRequiresInstruction(t *testing.T) {
	client, sess, _ := newStack(t)
	login(t, sess, "admin", "admin123")

	_, err := client.SalesReport(context.Background(), "")

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "text instruction is required", apiErr.Message)
}

func TestPredictionTopN(t *testing.T) {
	client, sess, _ := newStack(t)
	login(t, sess, "admin", "admin123")

	topN := 2
	resp, err := client.Prediction(context.Background(), api.PredictionQuery{TopN: &topN})

	require.NoError(t, err)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, 1, resp.Results[0].Ranking)
	assert.Equal(t, 2, resp.Summary.TotalProducts)
	assert.NotEmpty(t, resp.Summary.Message)
}

func TestProductNameAndPrice(t *testing.T) {
	client, sess, _ := newStack(t)
	login(t, sess, "cajero1", "cajero123")

	name, err := client.ProductName(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Zapatillas Court", name)

	price, err := client.ProductPrice(context.Background(), 3)
	require.NoError(t, err)
	assert.InDelta(t, 560, price, 1e-9)
}
