package model

// Role controls access to user management and bulk import.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// User is an application account. PasswordHash is a bcrypt hash; the
// plaintext password never reaches storage. Deleting a user deactivates
// it rather than removing the row.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	Role         Role   `json:"role"`
	Active       bool   `json:"active"`
}
