package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karthikv/parentportal/internal/app/models"
)

// MarksFilter narrows a marks listing. Zero values mean no restriction.
type MarksFilter struct {
	Subject  string
	ExamType string
	Semester int
}

// SubjectBest is the per-subject maximum marks summary used by the dashboard.
type SubjectBest struct {
	Subject  string
	Marks    int
	MaxMarks int
}

// MarkRepository handles database operations for marks
type MarkRepository struct {
	db *pgxpool.Pool
}

// NewMarkRepository creates a new mark repository
func NewMarkRepository(db *pgxpool.Pool) *MarkRepository {
	return &MarkRepository{
		db: db,
	}
}

// ListByStudent retrieves marks for a hall ticket number with optional
// AND-combined filters, ordered by subject then exam type.
func (r *MarkRepository) ListByStudent(ctx context.Context, studentID string, filter MarksFilter) ([]*models.Mark, error) {
	query := `
		SELECT id, student_id, subject, marks, max_marks, exam_type, semester
		FROM marks
		WHERE student_id = $1
	`
	args := []interface{}{studentID}

	if filter.Subject != "" {
		args = append(args, filter.Subject)
		query += fmt.Sprintf(" AND subject = $%d", len(args))
	}

	if filter.ExamType != "" {
		args = append(args, filter.ExamType)
		query += fmt.Sprintf(" AND exam_type = $%d", len(args))
	}

	if filter.Semester != 0 {
		args = append(args, filter.Semester)
		query += fmt.Sprintf(" AND semester = $%d", len(args))
	}

	query += ` ORDER BY subject, exam_type`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving marks: %w", err)
	}
	defer rows.Close()

	var marks []*models.Mark
	for rows.Next() {
		var m models.Mark
		if err := rows.Scan(&m.ID, &m.StudentID, &m.Subject, &m.Marks, &m.MaxMarks, &m.ExamType, &m.Semester); err != nil {
			return nil, err
		}
		marks = append(marks, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return marks, nil
}

// BestBySubject retrieves the maximum marks and max_marks per subject across
// all exam rows for a student.
func (r *MarkRepository) BestBySubject(ctx context.Context, studentID string) ([]SubjectBest, error) {
	query := `
		SELECT subject, MAX(marks) as marks, MAX(max_marks) as max_marks
		FROM marks
		WHERE student_id = $1
		GROUP BY subject
		ORDER BY subject
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subject marks: %w", err)
	}
	defer rows.Close()

	var results []SubjectBest
	for rows.Next() {
		var b SubjectBest
		if err := rows.Scan(&b.Subject, &b.Marks, &b.MaxMarks); err != nil {
			return nil, err
		}
		results = append(results, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
