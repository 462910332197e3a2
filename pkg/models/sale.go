package models

type SaleType string

const (
	SaleTypePhysical SaleType = "FISICA"
	SaleTypeOnline   SaleType = "ONLINE"
)

type PaymentType string

const (
	PaymentTypeCash   PaymentType = "CONTADO"
	PaymentTypeCredit PaymentType = "CREDITO"
)

type SaleStatus string

const (
	SaleStatusPending      SaleStatus = "PENDIENTE"
	SaleStatusCompleted    SaleStatus = "COMPLETADA"
	SaleStatusCanceled     SaleStatus = "CANCELADA"
	SaleStatusInProcess    SaleStatus = "EN_PROCESO"
	SaleStatusPayingCredit SaleStatus = "PAGANDO_CREDITO"
)

// Sale is the row shape returned by the paginated sale listings.
type Sale struct {
	ID           int         `json:"id"`
	Date         string      `json:"fecha"`
	Time         string      `json:"hora"`
	Total        float64     `json:"total"`
	Type         SaleType    `json:"tipoVenta"`
	PaymentType  PaymentType `json:"tipoPago"`
	Status       SaleStatus  `json:"estado"`
	CustomerName string      `json:"clienteNombre"`
}

// SaleLine is one line item of a sale.
type SaleLine struct {
	ID          *int    `json:"id"`
	Quantity    int     `json:"cantidad"`
	UnitPrice   float64 `json:"precioUnitario"`
	Subtotal    float64 `json:"subTotal"`
	SaleID      *int    `json:"idVenta"`
	ProductID   int     `json:"idProducto"`
	ProductName *string `json:"nombreProducto"`
	ImageURL    *string `json:"imagenUrl"`
}

// SaleDetail is the expanded single-sale view, and doubles as the
// creation payload (nil ID, nil status).
type SaleDetail struct {
	ID           *int        `json:"id"`
	Date         string      `json:"fecha"`
	Time         string      `json:"hora"`
	Total        float64     `json:"total"`
	Type         SaleType    `json:"tipoVenta"`
	PaymentType  PaymentType `json:"tipoPago"`
	Status       *SaleStatus `json:"estado"`
	Notes        *string     `json:"observaciones"`
	CustomerID   int         `json:"idCliente"`
	CustomerName *string     `json:"clienteNombre"`
	BranchID     int         `json:"idSucursal"`
	BranchName   *string     `json:"sucursalNombre"`
	Lines        []SaleLine  `json:"detalles"`
	Credit       *Credit     `json:"credito"`
	CreditPlanID *int        `json:"idPlanCredito"`
}
