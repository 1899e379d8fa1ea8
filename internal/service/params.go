package service

import "errors"

// Lookup misses; handlers map these to 404 responses.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
)

// UserFilter narrows a users listing. Zero values mean "no constraint".
type UserFilter struct {
	Role  string // exact match, case-sensitive
	Limit *int   // keep first N records; nil means no cap
}

// ProductFilter narrows a products listing. Nil bounds mean "no constraint";
// unparsable query values never reach this struct (treated as absent).
type ProductFilter struct {
	Category string   // exact match, case-insensitive
	MinPrice *float64 // inclusive lower bound
	MaxPrice *float64 // inclusive upper bound
	Limit    *int
}

// UserInput carries the creatable user fields. Role falls back to "user".
type UserInput struct {
	Name  string
	Email string
	Role  string
}

// ProductInput carries the creatable product fields. Stock defaults to 0.
type ProductInput struct {
	Name     string
	Price    float64
	Category string
	Stock    int
}

// UserPatch is a partial update. Empty strings leave the field untouched.
type UserPatch struct {
	Name  string
	Email string
	Role  string
}

// ProductPatch is a partial update. Name/Category apply when non-empty and
// Price when non-zero; Stock applies whenever the pointer is set, including
// an explicit 0. The asymmetry is deliberate and mirrors the API contract.
type ProductPatch struct {
	Name     string
	Price    float64
	Category string
	Stock    *int
}
