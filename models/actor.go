package models

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// Actor is the caller-asserted identity attached to a mutating request.
// It arrives either in the request body or in a bearer token; the role is
// trusted as claimed, which is a documented weakness of this API.
type Actor struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
