package stubapi

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/modaboutique/storefront/pkg/credit"
	"github.com/modaboutique/storefront/pkg/models"
)

const pageSize = 10

// pageOf slices items into the backend's page wrapper.
func pageOf[T any](items []T, page int) models.Page[T] {
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	start := page * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return models.Page[T]{
		Content:       append([]T{}, items[start:end]...),
		Number:        page,
		TotalPages:    totalPages,
		TotalElements: total,
	}
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 0 {
		return 0
	}
	return page
}

// Login verifies credentials and issues an HS256 token pair. Unknown
// user and wrong password answer identically.
func (s *Server) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username and password are required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.username != req.Username {
			continue
		}
		if bcrypt.CompareHashAndPassword(u.passwordHash, []byte(req.Password)) != nil {
			break
		}
		access, err := s.signToken(u, 24*time.Hour)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to sign token"})
			return
		}
		refresh, err := s.signToken(u, 7*24*time.Hour)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to sign token"})
			return
		}
		c.JSON(http.StatusOK, models.LoginResponse{AccessToken: access, RefreshToken: refresh})
		return
	}
	c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
}

func (s *Server) signToken(u seedUser, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"id":  u.id,
		"rol": string(u.role),
		"exp": time.Now().Add(ttl).Unix(),
	}
	if u.branchID != nil {
		claims["id_sucursal"] = *u.branchID
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Server) Catalog(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, pageOf(s.products, pageParam(c)))
}

func (s *Server) SearchCatalog(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var filtered []models.Product
	for _, p := range s.products {
		if v := c.Query("marca"); v != "" && (p.Brand == nil || string(*p.Brand) != v) {
			continue
		}
		if v := c.Query("genero"); v != "" && (p.Gender == nil || string(*p.Gender) != v) {
			continue
		}
		if v := c.Query("tipoPrenda"); v != "" && (p.Garment == nil || string(*p.Garment) != v) {
			continue
		}
		if v := c.Query("talla"); v != "" && (p.Size == nil || string(*p.Size) != v) {
			continue
		}
		if v := c.Query("temporada"); v != "" && (p.Season == nil || string(*p.Season) != v) {
			continue
		}
		if v := c.Query("uso"); v != "" && (p.Use == nil || string(*p.Use) != v) {
			continue
		}
		filtered = append(filtered, p)
	}
	c.JSON(http.StatusOK, pageOf(filtered, pageParam(c)))
}

// Stock answers with a bare integer, like the production endpoint.
func (s *Server) Stock(c *gin.Context) {
	branchID, _ := strconv.Atoi(c.Query("idSucursal"))
	productID, _ := strconv.Atoi(c.Query("idProducto"))

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inv := range s.inventories {
		if inv.BranchID == branchID && inv.ProductID == productID {
			c.JSON(http.StatusOK, inv.Quantity)
			return
		}
	}
	c.JSON(http.StatusOK, 0)
}

func (s *Server) ProductName(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			c.JSON(http.StatusOK, p.Name)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
}

func (s *Server) ProductPrice(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			c.JSON(http.StatusOK, p.Price)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
}

func (s *Server) SalesByStatus(status models.SaleStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		branchFilter := c.Query("idSucursal")

		s.mu.Lock()
		defer s.mu.Unlock()
		var rows []models.Sale
		for _, sale := range s.sales {
			if sale.Status == nil || *sale.Status != status {
				continue
			}
			if branchFilter != "" {
				if branchID, err := strconv.Atoi(branchFilter); err == nil && sale.BranchID != branchID {
					continue
				}
			}
			rows = append(rows, saleRow(sale))
		}
		c.JSON(http.StatusOK, pageOf(rows, pageParam(c)))
	}
}

func saleRow(sale models.SaleDetail) models.Sale {
	row := models.Sale{
		Date:        sale.Date,
		Time:        sale.Time,
		Total:       sale.Total,
		Type:        sale.Type,
		PaymentType: sale.PaymentType,
	}
	if sale.ID != nil {
		row.ID = *sale.ID
	}
	if sale.Status != nil {
		row.Status = *sale.Status
	}
	if sale.CustomerName != nil {
		row.CustomerName = *sale.CustomerName
	}
	return row
}

func (s *Server) Sale(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sale := range s.sales {
		if sale.ID != nil && *sale.ID == id {
			c.JSON(http.StatusOK, sale)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "sale not found"})
}

// CreateSale books the sale. Cash sales complete immediately; credit
// sales get an amortized schedule attached and start paying off.
func (s *Server) CreateSale(c *gin.Context) {
	var sale models.SaleDetail
	if err := c.ShouldBindJSON(&sale); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid sale payload"})
		return
	}
	if len(sale.Lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "sale requires at least one line"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSaleID
	s.nextSaleID++
	sale.ID = &id

	if sale.PaymentType == models.PaymentTypeCredit {
		if sale.CreditPlanID == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "credit sales require a plan"})
			return
		}
		plan, ok := s.planByID(*sale.CreditPlanID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "unknown credit plan"})
			return
		}
		status := models.SaleStatusPayingCredit
		sale.Status = &status
		sale.Credit = s.buildCredit(id, sale.Total, plan)
	} else {
		status := models.SaleStatusCompleted
		sale.Status = &status
	}

	s.sales = append(s.sales, sale)
	c.JSON(http.StatusCreated, sale)
}

func (s *Server) planByID(id int) (models.CreditPlan, bool) {
	for _, p := range s.plans {
		if p.ID == id {
			return p, true
		}
	}
	return models.CreditPlan{}, false
}

func (s *Server) buildCredit(saleID int, total float64, plan models.CreditPlan) *models.Credit {
	amount := credit.PlanInstallment(total, plan)
	start := time.Now()
	dates := credit.DueDates(start, plan.Frequency, plan.Term)

	schedule := make([]models.Installment, 0, plan.Term)
	for i, due := range dates {
		schedule = append(schedule, models.Installment{
			ID:       saleID*100 + i + 1,
			Number:   i + 1,
			Amount:   amount,
			DueDate:  due.Format("2006-01-02"),
			CreditID: saleID,
		})
	}
	return &models.Credit{
		ID:                saleID,
		TotalAmount:       total,
		InstallmentAmount: amount,
		Installments:      plan.Term,
		StartDate:         start.Format("2006-01-02"),
		Balance:           amount * float64(plan.Term),
		SaleID:            saleID,
		Plan:              plan,
		Schedule:          schedule,
	}
}

func (s *Server) CancelSale(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sales {
		if s.sales[i].ID != nil && *s.sales[i].ID == id {
			status := models.SaleStatusCanceled
			s.sales[i].Status = &status
			c.Status(http.StatusNoContent)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "sale not found"})
}

func (s *Server) CreatePayment(c *gin.Context) {
	var p models.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payment payload"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextPaymentID
	s.nextPaymentID++
	p.ID = &id
	status := models.PaymentStatusCompleted
	p.Status = &status
	s.payments = append(s.payments, p)
	c.JSON(http.StatusCreated, p)
}

func (s *Server) Payments(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, pageOf(s.payments, pageParam(c)))
}

func (s *Server) Payment(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payments {
		if p.ID == nil || *p.ID != id {
			continue
		}
		detail := models.PaymentDetail{
			ID:     *p.ID,
			Date:   p.Date,
			Time:   p.Time,
			Method: p.Method,
			Amount: p.Amount,
		}
		if p.PayingOff != nil {
			detail.PayingOff = *p.PayingOff
		}
		if p.Status != nil {
			detail.Status = *p.Status
		}
		// A payment belongs to either a sale or an installment,
		// never both.
		if p.SaleID != nil {
			for _, sale := range s.sales {
				if sale.ID != nil && *sale.ID == *p.SaleID {
					row := saleRow(sale)
					detail.Sale = &row
					break
				}
			}
		}
		c.JSON(http.StatusOK, detail)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "payment not found"})
}

func (s *Server) Inventories(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, pageOf(s.inventories, pageParam(c)))
}

func (s *Server) InventoriesByBranch(c *gin.Context) {
	branchID, _ := strconv.Atoi(c.Param("id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []models.Inventory
	for _, inv := range s.inventories {
		if inv.BranchID == branchID {
			rows = append(rows, inv)
		}
	}
	c.JSON(http.StatusOK, pageOf(rows, pageParam(c)))
}

func (s *Server) Inventory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inv := range s.inventories {
		if inv.ID != nil && *inv.ID == id {
			c.JSON(http.StatusOK, inv)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "inventory not found"})
}

func (s *Server) CreateInventory(c *gin.Context) {
	var inv models.Inventory
	if err := c.ShouldBindJSON(&inv); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid inventory payload"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextInvID
	s.nextInvID++
	inv.ID = &id
	s.inventories = append(s.inventories, inv)
	c.JSON(http.StatusCreated, inv)
}

func (s *Server) UpdateInventory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var inv models.Inventory
	if err := c.ShouldBindJSON(&inv); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid inventory payload"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.inventories {
		if s.inventories[i].ID != nil && *s.inventories[i].ID == id {
			inv.ID = &id
			s.inventories[i] = inv
			c.JSON(http.StatusOK, inv)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "inventory not found"})
}

func (s *Server) DeleteInventory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.inventories {
		if s.inventories[i].ID != nil && *s.inventories[i].ID == id {
			s.inventories = append(s.inventories[:i], s.inventories[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "inventory not found"})
}

func (s *Server) Users(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		rows = append(rows, models.User{ID: strconv.Itoa(u.id), Username: u.username, Role: u.role})
	}
	c.JSON(http.StatusOK, pageOf(rows, pageParam(c)))
}

func (s *Server) User(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strconv.Itoa(u.id) == c.Param("id") {
			c.JSON(http.StatusOK, models.User{ID: strconv.Itoa(u.id), Username: u.username, Role: u.role})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
}

func (s *Server) CreateUser(c *gin.Context) {
	var req models.CreateUser
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username, password and role are required"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextUserID
	s.nextUserID++
	s.users = append(s.users, s.newSeedUser(id, req.Username, req.Password, req.Role, nil))
	c.JSON(http.StatusCreated, models.User{ID: strconv.Itoa(id), Username: req.Username, Role: req.Role})
}

func (s *Server) UpdateUser(c *gin.Context) {
	var req models.CreateUser
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user payload"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if strconv.Itoa(s.users[i].id) != c.Param("id") {
			continue
		}
		if req.Username != "" {
			s.users[i].username = req.Username
		}
		if req.Role != "" {
			s.users[i].role = req.Role
		}
		if req.Password != "" {
			s.users[i] = s.newSeedUser(s.users[i].id, s.users[i].username, req.Password, s.users[i].role, s.users[i].branchID)
		}
		c.JSON(http.StatusOK, models.User{ID: c.Param("id"), Username: s.users[i].username, Role: s.users[i].role})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
}

func (s *Server) DeleteUser(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if strconv.Itoa(s.users[i].id) == c.Param("id") {
			s.users = append(s.users[:i], s.users[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
}

func (s *Server) Branches(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.branches)
}

func (s *Server) CreditPlans(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.plans)
}

func (s *Server) CustomerByCI(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cust := range s.customers {
		if cust.CI == c.Param("ci") {
			c.JSON(http.StatusOK, cust)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "customer not found"})
}

func (s *Server) CreateCustomer(c *gin.Context) {
	var cust models.Customer
	if err := c.ShouldBindJSON(&cust); err != nil || cust.CI == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ci is required"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextCustomerID
	s.nextCustomerID++
	cust.ID = &id
	s.customers = append(s.customers, cust)
	c.JSON(http.StatusCreated, cust)
}

func (s *Server) ProductReport(c *gin.Context) {
	s.report(c, "reporte_productos")
}

func (s *Server) SalesReport(c *gin.Context) {
	s.report(c, "reporte_ventas")
}

// report emits a small CSV payload with the filename advertised via
// Content-Disposition, which is all the client cares about.
func (s *Server) report(c *gin.Context, prefix string) {
	var req models.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "text instruction is required"})
		return
	}

	var buf bytes.Buffer
	buf.WriteString("instruccion,generado\n")
	fmt.Fprintf(&buf, "%q,%s\n", req.Text, time.Now().Format(time.RFC3339))

	filename := fmt.Sprintf("%s_%s.xlsx", prefix, time.Now().Format("20060102_1504"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// Prediction answers with a deterministic ranking derived from the
// seeded catalog, enough for the client to render something real.
func (s *Server) Prediction(c *gin.Context) {
	topN := len(s.products)
	if v := c.Query("top_n"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			topN = n
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var results []models.PredictedProduct
	totalUnits := 0
	totalRevenue := 0.0
	for i, p := range s.products {
		if len(results) >= topN {
			break
		}
		qty := 30 - i*5
		r := models.PredictedProduct{
			ProductID:       p.ID,
			ProductName:     p.Name,
			Price:           p.Price,
			PredictedQty:    qty,
			Confidence:      0.9 - float64(i)*0.1,
			HistoricalSales: qty * 2,
			Ranking:         i + 1,
		}
		if p.Brand != nil {
			brand := string(*p.Brand)
			r.Brand = &brand
		}
		if v := c.Query("marca"); v != "" && (r.Brand == nil || *r.Brand != v) {
			continue
		}
		results = append(results, r)
		totalUnits += qty
		totalRevenue += float64(qty) * p.Price
	}

	start := c.DefaultQuery("fecha_inicio", time.Now().Format("2006-01-02"))
	end := c.DefaultQuery("fecha_fin", time.Now().AddDate(0, 1, 0).Format("2006-01-02"))
	c.JSON(http.StatusOK, models.PredictionResponse{
		Summary: models.PredictionSummary{
			Message:       "Predicción generada",
			Period:        models.PredictionPeriod{Start: start, End: end},
			TotalUnits:    totalUnits,
			TotalRevenue:  totalRevenue,
			TotalProducts: len(results),
		},
		Results: results,
	})
}
