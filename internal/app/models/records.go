package models

// Attendance is a per-student per-month attendance summary. StudentID holds
// the hall ticket number, not the users.id. Percentage is computed once at
// write time and never re-derived.
type Attendance struct {
	ID         int64   `json:"id" db:"id"`
	StudentID  string  `json:"student_id" db:"student_id" example:"19BD1A05J1"`
	Total      int     `json:"total" db:"total" example:"100"`
	Present    int     `json:"present" db:"present" example:"88"`
	Absent     int     `json:"absent" db:"absent" example:"12"`
	Month      string  `json:"month" db:"month" example:"January 2025"`
	Percentage float64 `json:"percentage" db:"percentage" example:"88"`
}

// Mark is a single exam result for a student and subject.
type Mark struct {
	ID        int64  `json:"id" db:"id"`
	StudentID string `json:"student_id" db:"student_id" example:"19BD1A05J1"`
	Subject   string `json:"subject" db:"subject" example:"Machine Learning"`
	Marks     int    `json:"marks" db:"marks" example:"25"`
	MaxMarks  int    `json:"max_marks" db:"max_marks" example:"30"`
	ExamType  string `json:"exam_type" db:"exam_type" example:"Mid Term 1"`
	Semester  int    `json:"semester" db:"semester" example:"8"`
}

// Fee is a fee demand for a student. It transitions to paid exactly once;
// PaidDate and TransactionID are set by that transition.
type Fee struct {
	ID            int64   `json:"id" db:"id"`
	StudentID     string  `json:"student_id" db:"student_id" example:"19BD1A05J1"`
	FeeType       string  `json:"fee_type" db:"fee_type" example:"Tuition Fee"`
	Amount        float64 `json:"amount" db:"amount" example:"45000"`
	DueDate       string  `json:"due_date" db:"due_date" example:"2025-01-31"`
	Paid          bool    `json:"paid" db:"paid"`
	PaidDate      *string `json:"paid_date" db:"paid_date" example:"2025-01-15"`
	TransactionID *string `json:"transaction_id" db:"transaction_id" example:"TXN483920"`
}

// Notification is a global broadcast notice with an audience filter.
type Notification struct {
	ID       int64  `json:"id" db:"id"`
	Message  string `json:"message" db:"message"`
	Date     string `json:"date" db:"date" example:"2025-01-10"`
	Category string `json:"category" db:"category" example:"academic"`
	Target   string `json:"target" db:"target" example:"all"`
}

// TimetableSlot maps (day, period) to a class for a branch and semester.
type TimetableSlot struct {
	ID       int64  `json:"id" db:"id"`
	Day      string `json:"day" db:"day" example:"Monday"`
	Period   int    `json:"period" db:"period" example:"1"`
	Subject  string `json:"subject" db:"subject" example:"Cloud Computing"`
	Teacher  string `json:"teacher" db:"teacher" example:"Dr. Ramakrishna"`
	Room     string `json:"room" db:"room" example:"A101"`
	Branch   string `json:"branch" db:"branch" example:"CSE"`
	Semester int    `json:"semester" db:"semester" example:"8"`
}

// ParentMessage is a parent-initiated message with an optional staff reply.
type ParentMessage struct {
	ID             int64   `json:"id" db:"id"`
	ParentID       int64   `json:"parent_id" db:"parent_id"`
	TeacherID      *int64  `json:"teacher_id" db:"teacher_id"`
	Message        string  `json:"message" db:"message"`
	Timestamp      string  `json:"timestamp" db:"timestamp"`
	IsRead         bool    `json:"is_read" db:"is_read"`
	Reply          *string `json:"reply" db:"reply"`
	ReplyTimestamp *string `json:"reply_timestamp" db:"reply_timestamp"`
}

// ParentNotification is a per-parent notice with its own read flag,
// distinct from the global notifications table.
type ParentNotification struct {
	ID       int64  `json:"id" db:"id"`
	ParentID int64  `json:"parent_id" db:"parent_id"`
	Message  string `json:"message" db:"message"`
	Date     string `json:"date" db:"date" example:"2025-01-12"`
	IsRead   bool   `json:"is_read" db:"is_read"`
}
