package models

// Role is a named role. Names are unique; creation uses get-or-create
// semantics at the storage layer.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
