package services

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/karthikv/parentportal/internal/app/models/dto"
	"github.com/karthikv/parentportal/internal/app/repositories"
)

// DashboardService assembles the aggregate views served to the two
// dashboards. The parent summary is built from sequential dependent lookups;
// only the initial student existence check is fatal, every later step
// degrades to a zero value on failure.
type DashboardService struct {
	students   StudentStore
	attendance AttendanceStore
	marks      MarkStore
	fees       FeeStore
	logger     zerolog.Logger
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	students StudentStore,
	attendance AttendanceStore,
	marks MarkStore,
	fees FeeStore,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		students:   students,
		attendance: attendance,
		marks:      marks,
		fees:       fees,
		logger:     logger,
	}
}

// GetParentDashboard returns the summary for one student, keyed by hall
// ticket number.
func (s *DashboardService) GetParentDashboard(ctx context.Context, studentID string) (*dto.ParentDashboardData, error) {
	student, err := s.students.GetOverviewByHallTicket(ctx, studentID)
	if err != nil {
		return nil, err
	}

	data := &dto.ParentDashboardData{
		Student:      student,
		SubjectMarks: []dto.SubjectMark{},
	}

	attendance, err := s.attendance.GetLatest(ctx, studentID)
	if err != nil {
		s.logger.Error().Err(err).Str("studentID", studentID).Msg("Error fetching attendance")
	} else {
		data.LatestAttendance = attendance
	}

	unpaid, err := s.fees.CountUnpaid(ctx, studentID)
	if err != nil {
		s.logger.Error().Err(err).Str("studentID", studentID).Msg("Error fetching unpaid fees")
	} else {
		data.UnpaidFeesCount = unpaid
	}

	best, err := s.marks.BestBySubject(ctx, studentID)
	if err != nil {
		s.logger.Error().Err(err).Str("studentID", studentID).Msg("Error fetching marks")
	} else {
		for _, b := range best {
			data.SubjectMarks = append(data.SubjectMarks, dto.SubjectMark{
				Subject:  b.Subject,
				Marks:    b.Marks,
				MaxMarks: b.MaxMarks,
			})
		}
	}

	return data, nil
}

// GetStudentPerformance returns the attendance time series, the full marks
// series with per-row percentages and the per-subject average percentage.
func (s *DashboardService) GetStudentPerformance(ctx context.Context, studentID string) (*dto.StudentPerformanceData, error) {
	series, err := s.attendance.ListSeries(ctx, studentID)
	if err != nil {
		return nil, err
	}

	marks, err := s.marks.ListByStudent(ctx, studentID, repositories.MarksFilter{})
	if err != nil {
		return nil, err
	}

	data := &dto.StudentPerformanceData{
		Attendance:         make([]dto.AttendancePoint, 0, len(series)),
		Marks:              make([]dto.MarkWithPercentage, 0, len(marks)),
		SubjectPerformance: make(map[string]float64),
	}

	for _, a := range series {
		data.Attendance = append(data.Attendance, dto.AttendancePoint{
			Month:      a.Month,
			Percentage: a.Percentage,
		})
	}

	subjectTotals := make(map[string]float64)
	subjectCounts := make(map[string]int)

	for _, m := range marks {
		percentage := round2(float64(m.Marks) * 100.0 / float64(m.MaxMarks))
		data.Marks = append(data.Marks, dto.MarkWithPercentage{
			Subject:    m.Subject,
			ExamType:   m.ExamType,
			Marks:      m.Marks,
			MaxMarks:   m.MaxMarks,
			Percentage: percentage,
		})
		subjectTotals[m.Subject] += percentage
		subjectCounts[m.Subject]++
	}

	for subject, total := range subjectTotals {
		data.SubjectPerformance[subject] = round2(total / float64(subjectCounts[subject]))
	}

	return data, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
