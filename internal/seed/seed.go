// Package seed loads the demo college dataset on first startup.
package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/karthikv/parentportal/internal/pkg/auth"
	"github.com/karthikv/parentportal/internal/pkg/helpers"
)

type seedStudent struct {
	name       string
	username   string
	email      string
	phone      string
	hallTicket string
	branch     string
}

var seedStudents = []seedStudent{
	{"Rajesh Kumar", "rajesh", "rajesh@example.com", "9876543210", "19BD1A05J1", "CSE"},
	{"Priya Sharma", "priya", "priya@example.com", "8765432109", "19BD1A05K2", "ECE"},
	{"Venkat Reddy", "venkat", "venkat@example.com", "7654321098", "19BD1A05L3", "MECH"},
	{"Ananya Devi", "ananya", "ananya@example.com", "6543210987", "19BD1A05M4", "IT"},
	{"Suresh Babu", "suresh", "suresh@example.com", "5432109876", "19BD1A05N5", "CIVIL"},
}

type seedParent struct {
	name     string
	email    string
	phone    string
	relation string
}

// Indexed in step with seedStudents; parent i belongs to student i.
var seedParents = []seedParent{
	{"Ramesh Kumar", "ramesh@example.com", "9876543211", "Father"},
	{"Sunita Sharma", "sunita@example.com", "8765432119", "Mother"},
	{"Prakash Reddy", "prakash@example.com", "7654321099", "Father"},
	{"Lakshmi Devi", "lakshmi@example.com", "6543210988", "Mother"},
	{"Venkatesh Babu", "venkatesh@example.com", "5432109877", "Father"},
}

// Final-semester subjects per branch. The sixth entry (Project Work) is
// excluded from the timetable.
var branchSubjects = map[string][]string{
	"CSE":   {"Machine Learning", "Cloud Computing", "Data Analytics", "Information Security", "Internet of Things", "Project Work"},
	"ECE":   {"VLSI Design", "Wireless Communication", "Embedded Systems", "Optical Communication", "Satellite Communication", "Project Work"},
	"MECH":  {"Advanced Manufacturing", "Robotics", "Automobile Engineering", "Industrial Engineering", "CAD/CAM", "Project Work"},
	"IT":    {"Big Data Analytics", "Artificial Intelligence", "Mobile Computing", "Blockchain Technology", "Software Testing", "Project Work"},
	"CIVIL": {"Advanced Structural Design", "Environmental Engineering", "Transportation Engineering", "Construction Management", "Remote Sensing and GIS", "Project Work"},
}

var branchTeachers = map[string][]string{
	"CSE":   {"Dr. Ramakrishna", "Prof. Lakshmi Narayana", "Dr. Padma Priya", "Prof. Venkatesh", "Dr. Subramaniam"},
	"ECE":   {"Dr. Nageshwar Rao", "Prof. Indira Devi", "Dr. Vijay Kumar", "Prof. Radha Krishna", "Dr. Murali Mohan"},
	"MECH":  {"Dr. Prasad Rao", "Prof. Harish Chandra", "Dr. Vijaya Lakshmi", "Prof. Srinivasa Rao", "Dr. Gopal Krishna"},
	"IT":    {"Dr. Sundaresh", "Prof. Priya Darshini", "Dr. Ravi Kiran", "Prof. Sai Krishna", "Dr. Lakshmi Prasad"},
	"CIVIL": {"Dr. Narayana Murthy", "Prof. Shankar Rao", "Dr. Lalitha Kumari", "Prof. Satya Narayana", "Dr. Durga Prasad"},
}

// CreateDefaultData loads the sample college dataset when the students table
// is empty. Individual insert failures are collected rather than aborting the
// run, so a partial previous seed does not block startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var count int
	if err := dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return fmt.Errorf("failed to check students table: %w", err)
	}
	if count > 0 {
		lgr.Info().Msg("Students table already contains data, skipping seed")
		return nil
	}

	lgr.Info().Msg("Seeding sample college data...")

	studentPass, err := auth.HashPassword("password123")
	if err != nil {
		return err
	}
	adminPass, err := auth.HashPassword("admin123")
	if err != nil {
		return err
	}
	parentPass, err := auth.HashPassword("parent123")
	if err != nil {
		return err
	}

	var finalErr error

	studentIDs := make([]int64, len(seedStudents))
	for i, s := range seedStudents {
		err := dbPool.QueryRow(ctx,
			`INSERT INTO students (name, email, hallticketnumber, branch) VALUES ($1, $2, $3, $4) RETURNING id`,
			s.name, s.email, s.hallTicket, s.branch,
		).Scan(&studentIDs[i])
		if err != nil {
			lgr.Error().Err(err).Str("student", s.name).Msg("Error seeding student")
			finalErr = errors.Join(finalErr, err)
		}

		_, err = dbPool.Exec(ctx,
			`INSERT INTO users (name, username, email, phone, branch, hallticketnumber, password, role, semester)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, 'student', 8)`,
			s.name, s.username, s.email, s.phone, s.branch, s.hallTicket, studentPass,
		)
		if err != nil {
			lgr.Error().Err(err).Str("student", s.name).Msg("Error seeding student user")
			finalErr = errors.Join(finalErr, err)
		}
	}

	_, err = dbPool.Exec(ctx,
		`INSERT INTO users (name, username, email, phone, branch, hallticketnumber, password, role, semester)
		 VALUES ('Admin User', 'admin', 'admin@college.edu', '9999999999', 'ADMIN', 'ADMIN001', $1, 'admin', 0)`,
		adminPass,
	)
	if err != nil {
		lgr.Error().Err(err).Msg("Error seeding admin user")
		finalErr = errors.Join(finalErr, err)
	}

	parentIDs := make([]int64, len(seedParents))
	for i, p := range seedParents {
		err := dbPool.QueryRow(ctx,
			`INSERT INTO parents (name, email, phone, password, student_id, relation)
			 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			p.name, p.email, p.phone, parentPass, studentIDs[i], p.relation,
		).Scan(&parentIDs[i])
		if err != nil {
			lgr.Error().Err(err).Str("parent", p.name).Msg("Error seeding parent")
			finalErr = errors.Join(finalErr, err)
		}
	}

	finalErr = errors.Join(finalErr, seedAttendance(ctx, dbPool, lgr))
	finalErr = errors.Join(finalErr, seedMarks(ctx, dbPool, lgr))
	finalErr = errors.Join(finalErr, seedFees(ctx, dbPool, lgr))
	finalErr = errors.Join(finalErr, seedNotifications(ctx, dbPool, lgr))
	finalErr = errors.Join(finalErr, seedTimetable(ctx, dbPool, lgr))
	finalErr = errors.Join(finalErr, seedParentMessages(ctx, dbPool, parentIDs, lgr))
	finalErr = errors.Join(finalErr, seedParentNotifications(ctx, dbPool, parentIDs, lgr))

	if finalErr == nil {
		lgr.Info().Msg("Sample college data inserted successfully")
	}
	return finalErr
}

// attendanceCounts draws one month of working-day counts: out of 100 days
// the student was present between 80 and 94, and absent the remainder.
func attendanceCounts() (total, present, absent int, percentage float64) {
	total = 100
	present = rand.Intn(15) + 80
	absent = total - present
	percentage = float64(present) / float64(total) * 100
	return total, present, absent, percentage
}

func seedAttendance(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	months := []string{"January 2025", "February 2025"}
	var finalErr error

	for _, s := range seedStudents {
		for _, month := range months {
			total, present, absent, percentage := attendanceCounts()

			_, err := dbPool.Exec(ctx,
				`INSERT INTO attendance (student_id, total, present, absent, month, percentage)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				s.hallTicket, total, present, absent, month, percentage,
			)
			if err != nil {
				lgr.Error().Err(err).Str("student", s.hallTicket).Msg("Error seeding attendance")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}
	return finalErr
}

func seedMarks(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	examTypes := []string{"Mid Term 1", "Mid Term 2", "External"}
	var finalErr error

	for _, s := range seedStudents {
		for _, subject := range branchSubjects[s.branch] {
			for _, examType := range examTypes {
				maxMarks := 30
				if examType == "External" {
					maxMarks = 70
				}
				marks := rand.Intn(11) + maxMarks - 15

				_, err := dbPool.Exec(ctx,
					`INSERT INTO marks (student_id, subject, marks, max_marks, exam_type, semester)
					 VALUES ($1, $2, $3, $4, $5, 8)`,
					s.hallTicket, subject, marks, maxMarks, examType,
				)
				if err != nil {
					lgr.Error().Err(err).Str("student", s.hallTicket).Msg("Error seeding marks")
					finalErr = errors.Join(finalErr, err)
				}
			}
		}
	}
	return finalErr
}

func seedFees(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	feeTypes := []string{"Tuition Fee", "Exam Fee", "Library Fee", "Lab Fee", "Hostel Fee"}
	amounts := []float64{45000, 5000, 3000, 7000, 35000}
	var finalErr error

	for _, s := range seedStudents {
		for i, feeType := range feeTypes {
			// The first three fee types start out paid.
			paid := i < 3
			var paidDate, transactionID string
			if paid {
				paidDate = "2025-01-15"
				transactionID = fmt.Sprintf("TXN%06d", rand.Intn(1000000))
			}

			_, err := dbPool.Exec(ctx,
				`INSERT INTO fees (student_id, fee_type, amount, due_date, paid, paid_date, transaction_id)
				 VALUES ($1, $2, $3, '2025-01-31', $4, $5, $6)`,
				s.hallTicket, feeType, amounts[i], paid,
				helpers.NullStringValue(paidDate), helpers.NullStringValue(transactionID),
			)
			if err != nil {
				lgr.Error().Err(err).Str("student", s.hallTicket).Msg("Error seeding fees")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}
	return finalErr
}

func seedNotifications(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	_, err := dbPool.Exec(ctx,
		`INSERT INTO notifications (message, date, category, target) VALUES
		 ('Final semester project presentations scheduled for Feb 15-20, 2025', '2025-01-10', 'academic', 'all'),
		 ('Fee payment deadline extended to Jan 31, 2025', '2025-01-05', 'fee', 'all'),
		 ('Campus recruitment drive by TCS on Feb 5, 2025', '2025-01-15', 'placement', 'students'),
		 ('Parent-Teacher Meeting scheduled for Feb 10, 2025', '2025-02-01', 'meeting', 'parents'),
		 ('Special workshop on React JS on Jan 25, 2025', '2025-01-12', 'workshop', 'students')`,
	)
	if err != nil {
		lgr.Error().Err(err).Msg("Error seeding notifications")
	}
	return err
}

func seedTimetable(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	rooms := []string{"A101", "A102", "A103", "A104", "A105", "B201", "B202", "B203", "B204", "B205"}
	var finalErr error

	for branch, teachers := range branchTeachers {
		subjects := branchSubjects[branch][:5]

		for dayIndex, day := range days {
			for period := 1; period <= 5; period++ {
				subject := subjects[(dayIndex+period-1)%len(subjects)]
				teacher := teachers[(dayIndex+period-1)%len(teachers)]
				room := rooms[(dayIndex*5+period-1)%len(rooms)]

				_, err := dbPool.Exec(ctx,
					`INSERT INTO timetable (day, period, subject, teacher, room, branch, semester)
					 VALUES ($1, $2, $3, $4, $5, $6, 8)`,
					day, period, subject, teacher, room, branch,
				)
				if err != nil {
					lgr.Error().Err(err).Str("branch", branch).Msg("Error seeding timetable")
					finalErr = errors.Join(finalErr, err)
				}
			}
		}
	}
	return finalErr
}

func seedParentMessages(ctx context.Context, dbPool *pgxpool.Pool, parentIDs []int64, lgr zerolog.Logger) error {
	if len(parentIDs) < 5 {
		return nil
	}

	type message struct {
		parentID       int64
		text           string
		timestamp      string
		isRead         bool
		reply          *string
		replyTimestamp *string
	}

	str := func(s string) *string { return &s }
	messages := []message{
		{parentIDs[0], "I would like to discuss Rajesh's progress in Machine Learning. When can we schedule a meeting?", "2025-01-05 10:30:00", false, nil, nil},
		{parentIDs[1], "Priya has been sick this week, please excuse her absence for the VLSI Design class.", "2025-01-07 09:15:00", true, str("Thank you for informing. I will make a note of it. - Dr. Nageshwar Rao"), str("2025-01-07 14:25:00")},
		{parentIDs[2], "Is there any additional preparation Venkat should do for the upcoming Robotics exam?", "2025-01-10 11:45:00", true, str("Please advise him to review the lab assignments and chapter 5. - Prof. Harish Chandra"), str("2025-01-10 16:30:00")},
		{parentIDs[3], "Requesting information about Ananya's project work status.", "2025-01-12 13:20:00", false, nil, nil},
		{parentIDs[4], "When is the last date for paying the remaining fees?", "2025-01-15 10:10:00", true, str("The deadline is January 31, 2025. - Admin"), str("2025-01-15 12:45:00")},
	}

	var finalErr error
	for _, m := range messages {
		_, err := dbPool.Exec(ctx,
			`INSERT INTO parent_messages (parent_id, teacher_id, message, timestamp, is_read, reply, reply_timestamp)
			 VALUES ($1, NULL, $2, $3, $4, $5, $6)`,
			m.parentID, m.text, m.timestamp, m.isRead, m.reply, m.replyTimestamp,
		)
		if err != nil {
			lgr.Error().Err(err).Int64("parentID", m.parentID).Msg("Error seeding parent messages")
			finalErr = errors.Join(finalErr, err)
		}
	}
	return finalErr
}

func seedParentNotifications(ctx context.Context, dbPool *pgxpool.Pool, parentIDs []int64, lgr zerolog.Logger) error {
	if len(parentIDs) < 5 {
		return nil
	}

	type notification struct {
		parentID int64
		message  string
		date     string
		isRead   bool
	}

	notifications := []notification{
		{parentIDs[0], "Rajesh scored 85% in Machine Learning mid-term exam", "2025-01-12", false},
		{parentIDs[1], "Priya has less than 75% attendance in Wireless Communication", "2025-01-15", true},
		{parentIDs[2], "Venkat has been selected for internship at L&T", "2025-01-18", false},
		{parentIDs[3], "Ananya's project has been shortlisted for state-level competition", "2025-01-20", true},
		{parentIDs[4], "Reminder: Complete the pending fee payment by Jan 31", "2025-01-25", false},
	}

	var finalErr error
	for _, n := range notifications {
		_, err := dbPool.Exec(ctx,
			`INSERT INTO parent_notifications (parent_id, message, date, is_read)
			 VALUES ($1, $2, $3, $4)`,
			n.parentID, n.message, n.date, n.isRead,
		)
		if err != nil {
			lgr.Error().Err(err).Int64("parentID", n.parentID).Msg("Error seeding parent notifications")
			finalErr = errors.Join(finalErr, err)
		}
	}
	return finalErr
}
