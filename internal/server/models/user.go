// Package models contains plain row types shared by repositories and
// services. Password material never leaves this layer in serialized form:
// PasswordHash carries `json:"-"`.
package models

import "time"

// User is an identity record. Email is globally unique and stored in
// normalized (lower-case) form.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	DateJoined   time.Time `json:"date_joined"`
	IsActive     bool      `json:"-"`
}
