package models

// User is a single record in the users collection.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"` // "admin" | "user"; defaults to "user" on create
}
