package apiclient

// Student is a student row as returned by the API.
type Student struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	HallTicketNumber string `json:"hallticketnumber"`
	Branch           string `json:"branch"`
	Semester         *int   `json:"semester,omitempty"`
}

// User is a student or admin account.
type User struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Branch           string `json:"branch"`
	HallTicketNumber string `json:"hallticketnumber"`
	Role             string `json:"role"`
	Semester         int    `json:"semester"`
}

// Parent is a parent account enriched with the linked student on login
// payloads.
type Parent struct {
	ID                  int64    `json:"id"`
	Name                string   `json:"name"`
	Email               string   `json:"email"`
	Phone               string   `json:"phone"`
	StudentID           int64    `json:"studentId"`
	Relation            string   `json:"relation"`
	Role                string   `json:"role,omitempty"`
	Student             *Student `json:"student,omitempty"`
	UnreadNotifications int      `json:"unreadNotifications,omitempty"`
}

// Attendance is one month's attendance for a student. StudentID holds the
// hall ticket number.
type Attendance struct {
	ID         int64   `json:"id"`
	StudentID  string  `json:"student_id"`
	Total      int     `json:"total"`
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Month      string  `json:"month"`
	Percentage float64 `json:"percentage"`
}

// Mark is one exam result.
type Mark struct {
	ID        int64  `json:"id"`
	StudentID string `json:"student_id"`
	Subject   string `json:"subject"`
	Marks     int    `json:"marks"`
	MaxMarks  int    `json:"max_marks"`
	ExamType  string `json:"exam_type"`
	Semester  int    `json:"semester"`
}

// Fee is one fee record.
type Fee struct {
	ID            int64   `json:"id"`
	StudentID     string  `json:"student_id"`
	FeeType       string  `json:"fee_type"`
	Amount        float64 `json:"amount"`
	DueDate       string  `json:"due_date"`
	Paid          bool    `json:"paid"`
	PaidDate      *string `json:"paid_date"`
	TransactionID *string `json:"transaction_id"`
}

// Notification is a college-wide announcement.
type Notification struct {
	ID       int64  `json:"id"`
	Message  string `json:"message"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Target   string `json:"target"`
}

// CreateNotificationRequest publishes a college notification. Date defaults
// to today and target to 'all' when omitted.
type CreateNotificationRequest struct {
	Message  string `json:"message"`
	Date     string `json:"date,omitempty"`
	Category string `json:"category"`
	Target   string `json:"target,omitempty"`
}

// TimetableSlot is one period in a branch's weekly timetable.
type TimetableSlot struct {
	ID       int64  `json:"id"`
	Day      string `json:"day"`
	Period   int    `json:"period"`
	Subject  string `json:"subject"`
	Teacher  string `json:"teacher"`
	Room     string `json:"room"`
	Branch   string `json:"branch"`
	Semester int    `json:"semester"`
}

// ParentMessage is a message from a parent to staff, with the reply once one
// is given.
type ParentMessage struct {
	ID             int64   `json:"id"`
	ParentID       int64   `json:"parent_id"`
	TeacherID      *int64  `json:"teacher_id"`
	Message        string  `json:"message"`
	Timestamp      string  `json:"timestamp"`
	IsRead         bool    `json:"is_read"`
	Reply          *string `json:"reply"`
	ReplyTimestamp *string `json:"reply_timestamp"`
}

// ParentNotification is a per-parent notice.
type ParentNotification struct {
	ID       int64  `json:"id"`
	ParentID int64  `json:"parent_id"`
	Message  string `json:"message"`
	Date     string `json:"date"`
	IsRead   bool   `json:"is_read"`
}

// SubjectMark is a per-subject best-marks summary entry.
type SubjectMark struct {
	Subject  string `json:"subject"`
	Marks    int    `json:"marks"`
	MaxMarks int    `json:"max_marks"`
}

// ParentDashboard is the aggregate payload behind the parent home screen.
type ParentDashboard struct {
	Student          *Student      `json:"student"`
	LatestAttendance *Attendance   `json:"latestAttendance"`
	UnpaidFeesCount  int           `json:"unpaidFeesCount"`
	SubjectMarks     []SubjectMark `json:"subjectMarks"`
}

// AttendancePoint is one month of the attendance trend series.
type AttendancePoint struct {
	Month      string  `json:"month"`
	Percentage float64 `json:"percentage"`
}

// MarkWithPercentage is a mark row with the computed percentage.
type MarkWithPercentage struct {
	Subject    string  `json:"subject"`
	ExamType   string  `json:"exam_type"`
	Marks      int     `json:"marks"`
	MaxMarks   int     `json:"max_marks"`
	Percentage float64 `json:"percentage"`
}

// StudentPerformance is the aggregate payload behind the performance view.
type StudentPerformance struct {
	Attendance         []AttendancePoint    `json:"attendance"`
	Marks              []MarkWithPercentage `json:"marks"`
	SubjectPerformance map[string]float64   `json:"subjectPerformance"`
}

// RegisterRequest registers a student or admin account.
type RegisterRequest struct {
	Name             string `json:"name"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Branch           string `json:"branch,omitempty"`
	HallTicketNumber string `json:"hallticketnumber,omitempty"`
	Password         string `json:"password"`
	Role             string `json:"role,omitempty"`
}

// RegisterParentRequest registers a parent against an existing student.
type RegisterParentRequest struct {
	Name                    string `json:"name"`
	Email                   string `json:"email"`
	Phone                   string `json:"phone"`
	Password                string `json:"password"`
	StudentHallTicketNumber string `json:"student_hallticketnumber"`
	Relation                string `json:"relation,omitempty"`
}

// RegisterResult is the payload of a successful registration.
type RegisterResult struct {
	UserID    int64  `json:"userId"`
	Token     string `json:"token,omitempty"`
	ExpiresIn int    `json:"expiresIn,omitempty"`
}

// RegisterParentResult is the payload of a successful parent registration.
type RegisterParentResult struct {
	ParentID int64 `json:"parentId"`
}

// LoginResult is the payload of the unified login endpoint. User is set for
// student/admin logins, Parent for the email fallback.
type LoginResult struct {
	User      *User   `json:"user,omitempty"`
	Parent    *Parent `json:"parent,omitempty"`
	Token     string  `json:"token,omitempty"`
	ExpiresIn int     `json:"expiresIn,omitempty"`
}

// ParentLoginResult is the payload of the parent-only login endpoint.
type ParentLoginResult struct {
	Parent    *Parent  `json:"parent"`
	Student   *Student `json:"student"`
	Token     string   `json:"token,omitempty"`
	ExpiresIn int      `json:"expiresIn,omitempty"`
}

// SendMessageResult carries the id of a stored parent message.
type SendMessageResult struct {
	MessageID int64 `json:"messageId"`
}
