package models

// Frequency is how often a credit installment falls due.
type Frequency string

const (
	FrequencyWeekly   Frequency = "SEMANAL"
	FrequencyBiweekly Frequency = "QUINCENAL"
	FrequencyMonthly  Frequency = "MENSUAL"
)

// CreditPlan is backend-defined financing reference data.
type CreditPlan struct {
	ID          int       `json:"id"`
	Name        string    `json:"nombre"`
	Description string    `json:"descripcion"`
	Term        int       `json:"plazo"`
	Frequency   Frequency `json:"frecuencia"`
	AnnualRate  float64   `json:"interesAnual"`
	Active      bool      `json:"activo"`
}

// Installment is one scheduled partial payment of a credit.
type Installment struct {
	ID       int     `json:"id"`
	Number   int     `json:"numero"`
	Amount   float64 `json:"monto"`
	DueDate  string  `json:"fechaVencimiento"`
	PaidDate *string `json:"fechaPago"`
	Paid     bool    `json:"pagada"`
	CreditID int     `json:"idCredito"`
}

// Credit is the financing attached to a credit sale.
type Credit struct {
	ID                int           `json:"id"`
	TotalAmount       float64       `json:"montoTotal"`
	InstallmentAmount float64       `json:"montoCuota"`
	Installments      int           `json:"numeroCuotas"`
	PaidInstallments  int           `json:"cuotasPagadas"`
	StartDate         string        `json:"fechaInicio"`
	Balance           float64       `json:"saldoPendiente"`
	SaleID            int           `json:"idVenta"`
	Plan              CreditPlan    `json:"planCredito"`
	Schedule          []Installment `json:"cuotas"`
}
