package models

// Student defines the student model based on the 'students' table.
// HallTicketNumber is the academic identifier used to join attendance,
// marks and fees; the numeric id only links parents.
type Student struct {
	ID               int64  `json:"id" db:"id" example:"1"`
	Name             string `json:"name" db:"name" example:"Rajesh Kumar"`
	Email            string `json:"email" db:"email" example:"rajesh@example.com"`
	HallTicketNumber string `json:"hallticketnumber" db:"hallticketnumber" example:"19BD1A05J1"`
	Branch           string `json:"branch" db:"branch" example:"CSE"`

	// Populated from the users table when a joined view is requested
	Semester *int `json:"semester,omitempty"`
}
