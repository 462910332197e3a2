package models

// Customer is a registered buyer, looked up by identity-card number.
type Customer struct {
	ID        *int    `json:"id"`
	CI        string  `json:"ci"`
	FirstName string  `json:"nombre"`
	LastName  string  `json:"apellido"`
	BirthDate *string `json:"fechaNacimiento"`
	Phone     *string `json:"telefono"`
	Email     *string `json:"correo"`
	Address   *string `json:"direccion"`
}
