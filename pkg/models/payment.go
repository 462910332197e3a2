package models

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "EFECTIVO"
	PaymentMethodCard PaymentMethod = "TARJETA"
	PaymentMethodQR   PaymentMethod = "QR"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDIENTE"
	PaymentStatusCompleted PaymentStatus = "COMPLETADO"
	PaymentStatusFailed    PaymentStatus = "FALLIDO"
)

// Payment is the row shape for listings and the creation payload.
type Payment struct {
	ID            *int           `json:"id"`
	Date          string         `json:"fecha"`
	Time          string         `json:"hora"`
	Method        PaymentMethod  `json:"metodoPago"`
	Amount        float64        `json:"monto"`
	PayingOff     *string        `json:"pagoDe"`
	Status        *PaymentStatus `json:"estado"`
	SaleID        *int           `json:"idVenta"`
	InstallmentID *int           `json:"idCuota"`
}

// PaymentDetail expands either the parent sale or the parent
// installment; the backend never populates both.
type PaymentDetail struct {
	ID          int           `json:"id"`
	Date        string        `json:"fecha"`
	Time        string        `json:"hora"`
	Method      PaymentMethod `json:"metodoPago"`
	Amount      float64       `json:"monto"`
	PayingOff   string        `json:"pagoDe"`
	Status      PaymentStatus `json:"estado"`
	Sale        *Sale         `json:"venta"`
	Installment *Installment  `json:"cuota"`
}
