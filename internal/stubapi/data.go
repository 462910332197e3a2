package stubapi

import (
	"log"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/modaboutique/storefront/pkg/global"
	"github.com/modaboutique/storefront/pkg/models"
)

// Server is an in-memory stand-in for the production backend, used for
// local development and the client's end-to-end tests. Data lives in
// memory behind one mutex and resets on restart.
type Server struct {
	mu     sync.Mutex
	secret []byte

	products    []models.Product
	users       []seedUser
	plans       []models.CreditPlan
	branches    []models.Branch
	inventories []models.Inventory
	customers   []models.Customer
	sales       []models.SaleDetail
	payments    []models.Payment

	nextSaleID     int
	nextPaymentID  int
	nextInvID      int
	nextCustomerID int
	nextUserID     int
}

type seedUser struct {
	id           int
	username     string
	passwordHash []byte
	role         models.Role
	branchID     *int
}

func NewServer() *Server {
	s := &Server{
		secret:         []byte(global.GetEnvOrDefault("STUB_JWT_SECRET", "dev-secret")),
		nextSaleID:     1,
		nextPaymentID:  1,
		nextInvID:      100,
		nextCustomerID: 10,
		nextUserID:     10,
	}
	s.seed()
	return s
}

func ptr[T any](v T) *T { return &v }

func (s *Server) seed() {
	s.products = []models.Product{
		{ID: 1, Name: "Camiseta Essential", Price: 120, ImageURL: "https://img.example/1.jpg",
			Brand: ptr(models.BrandNike), Gender: ptr(models.GenderMen),
			Garment: ptr(models.GarmentTShirt), Size: ptr(models.SizeM),
			Season: ptr(models.SeasonSummer), Use: ptr(models.UseDaily)},
		{ID: 2, Name: "Jeans 501", Price: 380, ImageURL: "https://img.example/2.jpg",
			Brand: ptr(models.BrandLevis), Gender: ptr(models.GenderWomen),
			Garment: ptr(models.GarmentJeans), Size: ptr(models.SizeS),
			Season: ptr(models.SeasonWinter), Use: ptr(models.UseDaily)},
		{ID: 3, Name: "Zapatillas Court", Price: 560, ImageURL: "https://img.example/3.jpg",
			Brand: ptr(models.BrandAdidas), Gender: ptr(models.GenderUnisex),
			Garment: ptr(models.GarmentSneakers), Size: ptr(models.Size("8")),
			Season: ptr(models.SeasonSpring), Use: ptr(models.UseSport)},
		{ID: 4, Name: "Chaqueta Urbana", Price: 750, ImageURL: "https://img.example/4.jpg",
			Brand: ptr(models.BrandPuma), Gender: ptr(models.GenderMen),
			Garment: ptr(models.GarmentJacket), Size: ptr(models.SizeL),
			Season: ptr(models.SeasonFall), Use: ptr(models.UseOccasional)},
	}

	s.users = []seedUser{
		s.newSeedUser(1, "admin", "admin123", models.RoleAdmin, nil),
		s.newSeedUser(2, "cajero1", "cajero123", models.RoleCashier, ptr(1)),
		s.newSeedUser(3, "cliente1", "cliente123", models.RoleCustomer, nil),
	}

	s.plans = []models.CreditPlan{
		{ID: 1, Name: "Plan 3 meses", Description: "Tres cuotas mensuales", Term: 3,
			Frequency: models.FrequencyMonthly, AnnualRate: 12, Active: true},
		{ID: 2, Name: "Plan 6 meses", Description: "Seis cuotas mensuales", Term: 6,
			Frequency: models.FrequencyMonthly, AnnualRate: 18, Active: true},
		{ID: 3, Name: "Plan semanal", Description: "Doce cuotas semanales", Term: 12,
			Frequency: models.FrequencyWeekly, AnnualRate: 24, Active: false},
	}

	s.branches = []models.Branch{
		{ID: 1, Name: "Central", Address: "Av. Principal 100"},
		{ID: 2, Name: "Norte", Address: "Calle Comercio 45"},
	}

	s.inventories = []models.Inventory{
		{ID: ptr(1), Quantity: 25, BranchID: 1, ProductID: 1, BranchName: ptr("Central"), ProductName: ptr("Camiseta Essential")},
		{ID: ptr(2), Quantity: 8, BranchID: 1, ProductID: 2, BranchName: ptr("Central"), ProductName: ptr("Jeans 501")},
		{ID: ptr(3), Quantity: 14, BranchID: 2, ProductID: 3, BranchName: ptr("Norte"), ProductName: ptr("Zapatillas Court")},
	}

	s.customers = []models.Customer{
		{ID: ptr(1), CI: "1234567", FirstName: "Maria", LastName: "Quispe",
			Phone: ptr("70000001"), Email: ptr("maria@example.com")},
	}
}

func (s *Server) newSeedUser(id int, username, password string, role models.Role, branchID *int) seedUser {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}
	return seedUser{id: id, username: username, passwordHash: hash, role: role, branchID: branchID}
}
