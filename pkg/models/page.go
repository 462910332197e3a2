package models

// Page mirrors the backend's paginated wrapper.
type Page[T any] struct {
	Content       []T `json:"content"`
	Number        int `json:"number"`
	TotalPages    int `json:"totalPages"`
	TotalElements int `json:"totalElements"`
}
