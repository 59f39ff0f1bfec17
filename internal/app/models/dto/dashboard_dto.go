package dto

import "github.com/karthikv/parentportal/internal/app/models"

// SubjectMark is the per-subject best-result summary shown on the parent
// dashboard: the maximum marks and max_marks seen across all exam rows.
type SubjectMark struct {
	Subject  string `json:"subject" example:"Machine Learning"`
	Marks    int    `json:"marks" example:"27"`
	MaxMarks int    `json:"max_marks" example:"70"`
}

// ParentDashboardData aggregates one student's portal summary. Everything
// except Student degrades to a zero value when its lookup fails.
type ParentDashboardData struct {
	Student          *models.Student    `json:"student"`
	LatestAttendance *models.Attendance `json:"latestAttendance"`
	UnpaidFeesCount  int                `json:"unpaidFeesCount" example:"2"`
	SubjectMarks     []SubjectMark      `json:"subjectMarks"`
}

// AttendancePoint is one month of the attendance time series.
type AttendancePoint struct {
	Month      string  `json:"month" example:"January 2025"`
	Percentage float64 `json:"percentage" example:"88"`
}

// MarkWithPercentage is a mark row with its computed percentage
// (marks*100/max_marks, rounded to 2 decimals).
type MarkWithPercentage struct {
	Subject    string  `json:"subject" example:"Machine Learning"`
	ExamType   string  `json:"exam_type" example:"Mid Term 1"`
	Marks      int     `json:"marks" example:"25"`
	MaxMarks   int     `json:"max_marks" example:"30"`
	Percentage float64 `json:"percentage" example:"83.33"`
}

// StudentPerformanceData carries the full attendance and marks series plus
// the per-subject average percentage.
type StudentPerformanceData struct {
	Attendance         []AttendancePoint    `json:"attendance"`
	Marks              []MarkWithPercentage `json:"marks"`
	SubjectPerformance map[string]float64   `json:"subjectPerformance"`
}

// SendMessageRequest carries a parent-to-staff message.
type SendMessageRequest struct {
	ParentID  int64  `json:"parentId" binding:"required" example:"1"`
	TeacherID *int64 `json:"teacherId"`
	Message   string `json:"message" binding:"required" example:"When can we schedule a meeting?"`
}

// SendMessageData is the payload returned when a message is stored.
type SendMessageData struct {
	MessageID int64 `json:"messageId" example:"6"`
}

// PayFeeRequest records a fee payment against a fee row.
type PayFeeRequest struct {
	TransactionID string `json:"transactionId" binding:"required" example:"TXN483920"`
}

// CreateNotificationRequest publishes a college-wide notification. Date
// defaults to today and target to 'all' when omitted.
type CreateNotificationRequest struct {
	Message  string `json:"message" binding:"required" example:"Campus closed on Feb 14, 2025"`
	Date     string `json:"date" example:"2025-02-01"`
	Category string `json:"category" binding:"required" example:"academic"`
	Target   string `json:"target" example:"all"`
}
