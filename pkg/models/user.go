package models

type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleCustomer    Role = "CLIENTE"
	RoleManager     Role = "GERENTE"
	RoleSeller      Role = "VENDEDOR"
	RoleCashier     Role = "CAJERO"
	RoleStockKeeper Role = "INVENTARISTA"
)

// User is a back-office account as listed by the users endpoint.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"rol"`
}

// CreateUser is the payload for creating or updating an account.
type CreateUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"rol"`
}

// Identity is what the client knows about the logged-in user, decoded
// from the access token's claims.
type Identity struct {
	ID       int    `json:"id"`
	Username string `json:"username,omitempty"`
	Role     Role   `json:"rol"`
	BranchID *int   `json:"id_sucursal,omitempty"`
}

// LoginResponse is the auth endpoint's success body.
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
