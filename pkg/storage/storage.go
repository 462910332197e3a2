// Package storage is the client-side persistence layer: a small
// key-value contract standing in for the web client's localStorage, so
// carts and tokens survive a restart.
package storage

// Keys shared with the web client. Changing them orphans saved state.
const (
	KeyCart         = "carrito-compras"
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
)

// Store is a durable string-keyed byte store. Implementations must be
// safe for use from multiple goroutines.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string) error
}
