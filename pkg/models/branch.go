package models

// Branch is a store location (sucursal).
type Branch struct {
	ID      int    `json:"id"`
	Name    string `json:"nombre"`
	Address string `json:"direccion"`
}
