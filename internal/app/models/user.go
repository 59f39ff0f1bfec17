package models

// Role values stored in users.role
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
	RoleParent  = "parent"
)

// User defines a login-capable account based on the 'users' table.
// Student accounts carry the same hall ticket number as their students row.
type User struct {
	ID               int64  `json:"id" db:"id" example:"1"`
	Name             string `json:"name" db:"name" example:"Rajesh Kumar"`
	Username         string `json:"username" db:"username" example:"rajesh"`
	Email            string `json:"email" db:"email" example:"rajesh@example.com"`
	Phone            string `json:"phone" db:"phone" example:"9876543210"`
	Branch           string `json:"branch" db:"branch" example:"CSE"`
	HallTicketNumber string `json:"hallticketnumber" db:"hallticketnumber" example:"19BD1A05J1"`
	Password         string `json:"-" db:"password"`
	Role             string `json:"role" db:"role" example:"student"`
	Semester         int    `json:"semester" db:"semester" example:"8"`
}
