package models

// Inventory is the stock of one product at one branch.
type Inventory struct {
	ID          *int    `json:"id"`
	Quantity    int     `json:"cantidad"`
	BranchID    int     `json:"idSucursal"`
	ProductID   int     `json:"idProducto"`
	BranchName  *string `json:"nombreSucursal"`
	ProductName *string `json:"nombreProducto"`
	ImageURL    *string `json:"imagenUrl"`
}
