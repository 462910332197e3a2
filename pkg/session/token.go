package session

import (
	"github.com/dgrijalva/jwt-go"

	"github.com/modaboutique/storefront/pkg/models"
)

// identityFromToken decodes the access token's payload without
// verifying the signature; verification is the backend's job, the
// client only reads claims. Anything malformed (wrong structure, bad
// base64, bad JSON, missing claims) yields no identity instead of an
// error, so a corrupted stored token degrades to logged-out at
// startup.
func identityFromToken(token string) *models.Identity {
	if token == "" {
		return nil
	}
	parsed, _, err := new(jwt.Parser).ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return nil
	}
	role, ok := claims["rol"].(string)
	if !ok || role == "" {
		return nil
	}

	identity := &models.Identity{ID: int(id), Role: models.Role(role)}
	if branch, ok := claims["id_sucursal"].(float64); ok {
		branchID := int(branch)
		identity.BranchID = &branchID
	}
	return identity
}
