package models

type PredictionPeriod struct {
	Start string `json:"inicio"`
	End   string `json:"fin"`
}

// PredictionSummary aggregates a demand prediction run. The misspelled
// period key is what the service actually emits.
type PredictionSummary struct {
	Message       string           `json:"mensaje"`
	Period        PredictionPeriod `json:"peridodoPrediccion"`
	TotalUnits    int              `json:"totalUnidadesPredichas"`
	TotalRevenue  float64          `json:"totalIngresoPredicho"`
	TotalProducts int              `json:"totalProductosPredichos"`
}

// PredictedProduct is one ranked line of a demand prediction.
type PredictedProduct struct {
	ProductID       int     `json:"productoId"`
	ProductName     string  `json:"productoNombre"`
	Brand           *string `json:"marca"`
	Price           float64 `json:"precio"`
	PredictedQty    int     `json:"cantidadPredicha"`
	Confidence      float64 `json:"confianza"`
	HistoricalSales int     `json:"ventasHistoricas"`
	Ranking         int     `json:"ranking"`
	Gender          *string `json:"genero"`
	Garment         *string `json:"tipoPrenda"`
	Season          *string `json:"temporada"`
}

type PredictionResponse struct {
	Summary PredictionSummary  `json:"resumen"`
	Results []PredictedProduct `json:"resultados"`
}
