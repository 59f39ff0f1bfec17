package services

import (
	"context"
	"strings"

	"github.com/karthikv/parentportal/internal/app/models"
	"github.com/karthikv/parentportal/internal/app/repositories"
	"github.com/karthikv/parentportal/internal/pkg/apperrors"
)

// In-memory store fakes backing the service tests.

type fakeUserStore struct {
	users []*models.User
}

func (f *fakeUserStore) GetByIdentifier(_ context.Context, identifier, role string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username != identifier && u.Email != identifier && u.HallTicketNumber != identifier {
			continue
		}
		if role != "" && u.Role != role {
			continue
		}
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	for _, u := range f.users {
		if u.ID == id {
			u.Password = passwordHash
			return nil
		}
	}
	return apperrors.ErrUserNotFound
}

type fakeStudentStore struct {
	students []*models.Student
}

func (f *fakeStudentStore) GetByHallTicket(_ context.Context, hallTicket string) (*models.Student, error) {
	for _, s := range f.students {
		if s.HallTicketNumber == hallTicket {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) GetOverviewByHallTicket(ctx context.Context, hallTicket string) (*models.Student, error) {
	return f.GetByHallTicket(ctx, hallTicket)
}

func (f *fakeStudentStore) GetOverviewByID(_ context.Context, id int64) (*models.Student, error) {
	for _, s := range f.students {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

type fakeParentStore struct {
	parents []*models.Parent
	nextID  int64
}

func (f *fakeParentStore) Create(_ context.Context, parent *models.Parent) (int64, error) {
	for _, p := range f.parents {
		if p.Email == parent.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	parent.ID = f.nextID
	f.parents = append(f.parents, parent)
	return parent.ID, nil
}

func (f *fakeParentStore) GetByEmail(_ context.Context, email string) (*models.Parent, error) {
	for _, p := range f.parents {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, apperrors.ErrParentNotFound
}

func (f *fakeParentStore) UpdatePassword(_ context.Context, email, passwordHash string) error {
	for _, p := range f.parents {
		if p.Email == email {
			p.Password = passwordHash
			return nil
		}
	}
	return apperrors.ErrParentNotFound
}

// fakeAccountCreator stores the user and student rows like the transactional
// account store, enforcing the unique identifier constraints.
type fakeAccountCreator struct {
	users    *fakeUserStore
	students *fakeStudentStore
	nextID   int64
}

func (f *fakeAccountCreator) CreateAccount(_ context.Context, user *models.User, student *models.Student) (int64, error) {
	for _, u := range f.users.users {
		if u.Username == user.Username || u.Email == user.Email ||
			(user.HallTicketNumber != "" && u.HallTicketNumber == user.HallTicketNumber) {
			return 0, apperrors.ErrIdentifierExists
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users.users = append(f.users.users, user)

	if student != nil {
		f.nextID++
		student.ID = f.nextID
		f.students.students = append(f.students.students, student)
	}
	return user.ID, nil
}

type fakeAttendanceStore struct {
	records []*models.Attendance
	listErr error
}

func (f *fakeAttendanceStore) ListByStudent(_ context.Context, studentID, month string) ([]*models.Attendance, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Attendance
	for _, a := range f.records {
		if a.StudentID == studentID && (month == "" || a.Month == month) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttendanceStore) GetLatest(_ context.Context, studentID string) (*models.Attendance, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var latest *models.Attendance
	for _, a := range f.records {
		if a.StudentID != studentID {
			continue
		}
		if latest == nil || strings.Compare(a.Month, latest.Month) > 0 {
			latest = a
		}
	}
	return latest, nil
}

func (f *fakeAttendanceStore) ListSeries(ctx context.Context, studentID string) ([]*models.Attendance, error) {
	return f.ListByStudent(ctx, studentID, "")
}

type fakeMarkStore struct {
	marks   []*models.Mark
	bestErr error
}

func (f *fakeMarkStore) ListByStudent(_ context.Context, studentID string, filter repositories.MarksFilter) ([]*models.Mark, error) {
	var out []*models.Mark
	for _, m := range f.marks {
		if m.StudentID != studentID {
			continue
		}
		if filter.Subject != "" && m.Subject != filter.Subject {
			continue
		}
		if filter.ExamType != "" && m.ExamType != filter.ExamType {
			continue
		}
		if filter.Semester != 0 && m.Semester != filter.Semester {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMarkStore) BestBySubject(_ context.Context, studentID string) ([]repositories.SubjectBest, error) {
	if f.bestErr != nil {
		return nil, f.bestErr
	}
	best := map[string]repositories.SubjectBest{}
	var order []string
	for _, m := range f.marks {
		if m.StudentID != studentID {
			continue
		}
		entry, seen := best[m.Subject]
		if !seen {
			order = append(order, m.Subject)
			entry.Subject = m.Subject
		}
		if m.Marks > entry.Marks {
			entry.Marks = m.Marks
		}
		if m.MaxMarks > entry.MaxMarks {
			entry.MaxMarks = m.MaxMarks
		}
		best[m.Subject] = entry
	}
	out := make([]repositories.SubjectBest, 0, len(order))
	for _, subject := range order {
		out = append(out, best[subject])
	}
	return out, nil
}

type fakeFeeStore struct {
	fees     []*models.Fee
	countErr error
}

func (f *fakeFeeStore) ListByStudent(_ context.Context, studentID string, filter repositories.FeesFilter) ([]*models.Fee, error) {
	var out []*models.Fee
	for _, fee := range f.fees {
		if fee.StudentID != studentID {
			continue
		}
		if filter.FeeType != "" && fee.FeeType != filter.FeeType {
			continue
		}
		if filter.Paid != nil && fee.Paid != *filter.Paid {
			continue
		}
		out = append(out, fee)
	}
	return out, nil
}

func (f *fakeFeeStore) CountUnpaid(_ context.Context, studentID string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	count := 0
	for _, fee := range f.fees {
		if fee.StudentID == studentID && !fee.Paid {
			count++
		}
	}
	return count, nil
}

func (f *fakeFeeStore) MarkPaid(_ context.Context, feeID int64, paidDate, transactionID string) error {
	for _, fee := range f.fees {
		if fee.ID == feeID {
			fee.Paid = true
			fee.PaidDate = &paidDate
			fee.TransactionID = &transactionID
			return nil
		}
	}
	return apperrors.ErrFeeNotFound
}

type fakeNotificationStore struct {
	notifications []*models.Notification
	createErr     error
}

func (f *fakeNotificationStore) Create(_ context.Context, notification *models.Notification) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	notification.ID = int64(len(f.notifications) + 1)
	f.notifications = append(f.notifications, notification)
	return notification.ID, nil
}

func (f *fakeNotificationStore) List(_ context.Context, category, target string) ([]*models.Notification, error) {
	var out []*models.Notification
	for _, n := range f.notifications {
		if category != "" && n.Category != category {
			continue
		}
		if target != "" && n.Target != target && n.Target != "all" {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

type fakeTimetableStore struct {
	slots []*models.TimetableSlot
}

func (f *fakeTimetableStore) List(_ context.Context, filter repositories.TimetableFilter) ([]*models.TimetableSlot, error) {
	var out []*models.TimetableSlot
	for _, s := range f.slots {
		if filter.Branch != "" && s.Branch != filter.Branch {
			continue
		}
		if filter.Day != "" && s.Day != filter.Day {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeTimetableStore) DistinctSubjects(_ context.Context, branch string, _ int) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, s := range f.slots {
		if s.Branch == branch && !seen[s.Subject] {
			seen[s.Subject] = true
			out = append(out, s.Subject)
		}
	}
	return out, nil
}

func (f *fakeTimetableStore) DistinctTeachers(_ context.Context, branch string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, s := range f.slots {
		if s.Branch == branch && !seen[s.Teacher] {
			seen[s.Teacher] = true
			out = append(out, s.Teacher)
		}
	}
	return out, nil
}

type fakeParentMessageStore struct {
	messages []*models.ParentMessage
	nextID   int64
}

func (f *fakeParentMessageStore) ListByParent(_ context.Context, parentID int64) ([]*models.ParentMessage, error) {
	var out []*models.ParentMessage
	for _, m := range f.messages {
		if m.ParentID == parentID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeParentMessageStore) Create(_ context.Context, message *models.ParentMessage) (int64, error) {
	f.nextID++
	message.ID = f.nextID
	f.messages = append(f.messages, message)
	return message.ID, nil
}

type fakeParentNotificationStore struct {
	notifications []*models.ParentNotification
	countErr      error
	markedRead    []int64
}

func (f *fakeParentNotificationStore) ListByParent(_ context.Context, parentID int64, isRead *bool) ([]*models.ParentNotification, error) {
	var out []*models.ParentNotification
	for _, n := range f.notifications {
		if n.ParentID != parentID {
			continue
		}
		if isRead != nil && n.IsRead != *isRead {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (f *fakeParentNotificationStore) CountUnread(_ context.Context, parentID int64) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	count := 0
	for _, n := range f.notifications {
		if n.ParentID == parentID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeParentNotificationStore) MarkRead(_ context.Context, id int64) error {
	f.markedRead = append(f.markedRead, id)
	for _, n := range f.notifications {
		if n.ID == id {
			n.IsRead = true
		}
	}
	return nil
}
