package apiclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Register creates a student or admin account. The returned token, when
// present, is stored on the client for subsequent calls.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	var result RegisterResult
	if err := c.postJSON(ctx, "/auth/register", req, &result); err != nil {
		return nil, err
	}
	if result.Token != "" {
		c.SetToken(result.Token)
	}
	return &result, nil
}

// RegisterParent creates a parent account linked to a student.
func (c *Client) RegisterParent(ctx context.Context, req RegisterParentRequest) (*RegisterParentResult, error) {
	var result RegisterParentResult
	if err := c.postJSON(ctx, "/auth/register/parent", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Login authenticates with a username, email or hall ticket number. The
// issued token is stored on the client.
func (c *Client) Login(ctx context.Context, identifier, password, role string) (*LoginResult, error) {
	body := map[string]string{"username": identifier, "password": password}
	if role != "" {
		body["role"] = role
	}

	var result LoginResult
	if err := c.postJSON(ctx, "/auth/login", body, &result); err != nil {
		return nil, err
	}
	if result.Token != "" {
		c.SetToken(result.Token)
	}
	return &result, nil
}

// LoginParent authenticates against the parents table only.
func (c *Client) LoginParent(ctx context.Context, email, password string) (*ParentLoginResult, error) {
	body := map[string]string{"email": email, "password": password}

	var result ParentLoginResult
	if err := c.postJSON(ctx, "/auth/login/parent", body, &result); err != nil {
		return nil, err
	}
	if result.Token != "" {
		c.SetToken(result.Token)
	}
	return &result, nil
}

// UpdatePassword changes a password after verifying the old one.
func (c *Client) UpdatePassword(ctx context.Context, identifier, oldPassword, newPassword, role string) error {
	body := map[string]string{
		"identifier":  identifier,
		"oldPassword": oldPassword,
		"newPassword": newPassword,
	}
	if role != "" {
		body["role"] = role
	}
	return c.putJSON(ctx, "/auth/update-password", body, nil)
}

// ForgotPassword resets a password without the old-password check.
func (c *Client) ForgotPassword(ctx context.Context, identifier, newPassword, role string) error {
	body := map[string]string{
		"identifier":  identifier,
		"newPassword": newPassword,
	}
	if role != "" {
		body["role"] = role
	}
	return c.postJSON(ctx, "/auth/forgot-password", body, nil)
}

// Profile returns the account behind the client's token.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := c.getJSON(ctx, "/auth/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Notifications lists college notifications, optionally filtered by category
// and target audience.
func (c *Client) Notifications(ctx context.Context, category, target string) ([]Notification, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	if target != "" {
		query.Set("target", target)
	}

	var notifications []Notification
	if err := c.getJSON(ctx, "/notifications", query, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// CreateNotification publishes a college notification. Requires an admin
// bearer token.
func (c *Client) CreateNotification(ctx context.Context, req CreateNotificationRequest) (*Notification, error) {
	var notification Notification
	if err := c.postJSON(ctx, "/notifications", req, &notification); err != nil {
		return nil, err
	}
	return &notification, nil
}

// Timetable lists timetable slots, optionally filtered by branch, day and
// semester. A zero semester is not applied.
func (c *Client) Timetable(ctx context.Context, branch, day string, semester int) ([]TimetableSlot, error) {
	query := url.Values{}
	if branch != "" {
		query.Set("branch", branch)
	}
	if day != "" {
		query.Set("day", day)
	}
	if semester != 0 {
		query.Set("semester", strconv.Itoa(semester))
	}

	var slots []TimetableSlot
	if err := c.getJSON(ctx, "/timetable", query, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// Attendance lists a student's attendance records by hall ticket number,
// optionally restricted to one month.
func (c *Client) Attendance(ctx context.Context, studentID, month string) ([]Attendance, error) {
	query := url.Values{}
	if month != "" {
		query.Set("month", month)
	}

	var records []Attendance
	if err := c.getJSON(ctx, "/attendance/"+url.PathEscape(studentID), query, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// MarksFilter narrows a Marks call. Zero-value fields are not applied.
type MarksFilter struct {
	Subject  string
	ExamType string
	Semester int
}

// Marks lists a student's marks by hall ticket number.
func (c *Client) Marks(ctx context.Context, studentID string, filter MarksFilter) ([]Mark, error) {
	query := url.Values{}
	if filter.Subject != "" {
		query.Set("subject", filter.Subject)
	}
	if filter.ExamType != "" {
		query.Set("examType", filter.ExamType)
	}
	if filter.Semester != 0 {
		query.Set("semester", strconv.Itoa(filter.Semester))
	}

	var marks []Mark
	if err := c.getJSON(ctx, "/marks/"+url.PathEscape(studentID), query, &marks); err != nil {
		return nil, err
	}
	return marks, nil
}

// Fees lists a student's fee records by hall ticket number. paid filters by
// payment status when non-nil.
func (c *Client) Fees(ctx context.Context, studentID, feeType string, paid *bool) ([]Fee, error) {
	query := url.Values{}
	if feeType != "" {
		query.Set("feeType", feeType)
	}
	if paid != nil {
		query.Set("paid", strconv.FormatBool(*paid))
	}

	var fees []Fee
	if err := c.getJSON(ctx, "/fees/"+url.PathEscape(studentID), query, &fees); err != nil {
		return nil, err
	}
	return fees, nil
}

// PayFee records a payment against a fee row.
func (c *Client) PayFee(ctx context.Context, feeID int64, transactionID string) error {
	body := map[string]string{"transactionId": transactionID}
	return c.postJSON(ctx, fmt.Sprintf("/pay-fee/%d", feeID), body, nil)
}

// ParentNotifications lists a parent's notifications. isRead filters by read
// status when non-nil.
func (c *Client) ParentNotifications(ctx context.Context, parentID int64, isRead *bool) ([]ParentNotification, error) {
	query := url.Values{}
	if isRead != nil {
		query.Set("isRead", strconv.FormatBool(*isRead))
	}

	var notifications []ParentNotification
	if err := c.getJSON(ctx, fmt.Sprintf("/parent-notifications/%d", parentID), query, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationRead marks one parent notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID int64) error {
	return c.putJSON(ctx, fmt.Sprintf("/parent-notifications/%d/read", notificationID), nil, nil)
}

// ParentMessages lists a parent's messages to staff, newest first.
func (c *Client) ParentMessages(ctx context.Context, parentID int64) ([]ParentMessage, error) {
	var messages []ParentMessage
	if err := c.getJSON(ctx, fmt.Sprintf("/parent-messages/%d", parentID), nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SendParentMessage stores a new message from a parent to staff. teacherID is
// optional.
func (c *Client) SendParentMessage(ctx context.Context, parentID int64, teacherID *int64, message string) (*SendMessageResult, error) {
	body := map[string]any{"parentId": parentID, "message": message}
	if teacherID != nil {
		body["teacherId"] = *teacherID
	}

	var result SendMessageResult
	if err := c.postJSON(ctx, "/parent-messages", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ParentDashboard fetches the aggregate summary for one student.
func (c *Client) ParentDashboard(ctx context.Context, studentID string) (*ParentDashboard, error) {
	var dashboard ParentDashboard
	if err := c.getJSON(ctx, "/parent-dashboard/"+url.PathEscape(studentID), nil, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

// StudentPerformance fetches the attendance and marks trends for one student.
func (c *Client) StudentPerformance(ctx context.Context, studentID string) (*StudentPerformance, error) {
	var performance StudentPerformance
	if err := c.getJSON(ctx, "/student-performance/"+url.PathEscape(studentID), nil, &performance); err != nil {
		return nil, err
	}
	return &performance, nil
}

// Subjects lists the distinct subjects taught to a branch and semester.
func (c *Client) Subjects(ctx context.Context, branch string, semester int) ([]string, error) {
	path := "/subjects/" + url.PathEscape(branch) + "/" + strconv.Itoa(semester)

	var subjects []string
	if err := c.getJSON(ctx, path, nil, &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

// Teachers lists the distinct teachers of a branch.
func (c *Client) Teachers(ctx context.Context, branch string) ([]string, error) {
	var teachers []string
	if err := c.getJSON(ctx, "/teachers/"+url.PathEscape(branch), nil, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}
