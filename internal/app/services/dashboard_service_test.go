package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthikv/parentportal/internal/app/models"
	"github.com/karthikv/parentportal/internal/pkg/apperrors"
)

const hallTicket = "19BD1A05J1"

func newDashboardFixture() (*fakeStudentStore, *fakeAttendanceStore, *fakeMarkStore, *fakeFeeStore, *DashboardService) {
	students := &fakeStudentStore{students: []*models.Student{
		{ID: 1, Name: "Rajesh Kumar", Email: "rajesh@example.com", HallTicketNumber: hallTicket, Branch: "CSE"},
	}}
	attendance := &fakeAttendanceStore{records: []*models.Attendance{
		{ID: 1, StudentID: hallTicket, Total: 100, Present: 85, Absent: 15, Month: "2025-01", Percentage: 85},
		{ID: 2, StudentID: hallTicket, Total: 100, Present: 90, Absent: 10, Month: "2025-02", Percentage: 90},
	}}
	marks := &fakeMarkStore{marks: []*models.Mark{
		{ID: 1, StudentID: hallTicket, Subject: "Machine Learning", Marks: 25, MaxMarks: 30, ExamType: "Mid Term 1", Semester: 8},
		{ID: 2, StudentID: hallTicket, Subject: "Machine Learning", Marks: 27, MaxMarks: 30, ExamType: "Mid Term 2", Semester: 8},
		{ID: 3, StudentID: hallTicket, Subject: "Cloud Computing", Marks: 60, MaxMarks: 70, ExamType: "External", Semester: 8},
	}}
	fees := &fakeFeeStore{fees: []*models.Fee{
		{ID: 1, StudentID: hallTicket, FeeType: "Tuition Fee", Amount: 45000, DueDate: "2025-01-31", Paid: true},
		{ID: 2, StudentID: hallTicket, FeeType: "Lab Fee", Amount: 7000, DueDate: "2025-01-31", Paid: false},
		{ID: 3, StudentID: hallTicket, FeeType: "Hostel Fee", Amount: 35000, DueDate: "2025-01-31", Paid: false},
	}}

	service := NewDashboardService(students, attendance, marks, fees, zerolog.Nop())
	return students, attendance, marks, fees, service
}

func TestGetParentDashboard(t *testing.T) {
	_, _, _, _, service := newDashboardFixture()

	data, err := service.GetParentDashboard(context.Background(), hallTicket)
	require.NoError(t, err)

	require.NotNil(t, data.Student)
	assert.Equal(t, "Rajesh Kumar", data.Student.Name)

	require.NotNil(t, data.LatestAttendance)
	assert.Equal(t, "2025-02", data.LatestAttendance.Month)

	assert.Equal(t, 2, data.UnpaidFeesCount)

	require.Len(t, data.SubjectMarks, 2)
	byName := map[string][2]int{}
	for _, m := range data.SubjectMarks {
		byName[m.Subject] = [2]int{m.Marks, m.MaxMarks}
	}
	assert.Equal(t, [2]int{27, 30}, byName["Machine Learning"])
	assert.Equal(t, [2]int{60, 70}, byName["Cloud Computing"])
}

func TestGetParentDashboardUnknownStudent(t *testing.T) {
	_, _, _, _, service := newDashboardFixture()

	_, err := service.GetParentDashboard(context.Background(), "UNKNOWN")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestGetParentDashboardDegradesOnSubLookupFailures(t *testing.T) {
	_, attendance, marks, fees, service := newDashboardFixture()
	attendance.listErr = errors.New("attendance query failed")
	marks.bestErr = errors.New("marks query failed")
	fees.countErr = errors.New("fees query failed")

	data, err := service.GetParentDashboard(context.Background(), hallTicket)
	require.NoError(t, err, "sub-lookup failures must not fail the dashboard")

	assert.NotNil(t, data.Student)
	assert.Nil(t, data.LatestAttendance)
	assert.Equal(t, 0, data.UnpaidFeesCount)
	assert.Empty(t, data.SubjectMarks)
	assert.NotNil(t, data.SubjectMarks, "subjectMarks serializes as [], not null")
}

func TestGetStudentPerformance(t *testing.T) {
	_, _, _, _, service := newDashboardFixture()

	data, err := service.GetStudentPerformance(context.Background(), hallTicket)
	require.NoError(t, err)

	require.Len(t, data.Attendance, 2)
	assert.Equal(t, "2025-01", data.Attendance[0].Month)
	assert.InDelta(t, 85, data.Attendance[0].Percentage, 0.001)

	require.Len(t, data.Marks, 3)
	for _, m := range data.Marks {
		if m.Subject == "Machine Learning" && m.ExamType == "Mid Term 1" {
			assert.InDelta(t, 83.33, m.Percentage, 0.001)
		}
	}

	// (83.33 + 90.00) / 2 = 86.67 for ML; 85.71 for Cloud Computing.
	assert.InDelta(t, 86.67, data.SubjectPerformance["Machine Learning"], 0.02)
	assert.InDelta(t, 85.71, data.SubjectPerformance["Cloud Computing"], 0.01)
}

func TestGetStudentPerformanceEmpty(t *testing.T) {
	_, _, _, _, service := newDashboardFixture()

	data, err := service.GetStudentPerformance(context.Background(), "NO-RECORDS")
	require.NoError(t, err)
	assert.Empty(t, data.Attendance)
	assert.Empty(t, data.Marks)
	assert.Empty(t, data.SubjectPerformance)
}
