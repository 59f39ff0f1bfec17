package models

// Parent defines the parent model based on the 'parents' table.
// Each parent is linked to exactly one student.
type Parent struct {
	ID        int64  `json:"id" db:"id" example:"1"`
	Name      string `json:"name" db:"name" example:"Ramesh Kumar"`
	Email     string `json:"email" db:"email" example:"ramesh@example.com"`
	Phone     string `json:"phone" db:"phone" example:"9876543211"`
	Password  string `json:"-" db:"password"`
	StudentID int64  `json:"studentId" db:"student_id" example:"1"`
	Relation  string `json:"relation" db:"relation" example:"Father"`
}
