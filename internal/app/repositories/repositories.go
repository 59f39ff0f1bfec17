package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository               *UserRepository
	StudentRepository            *StudentRepository
	ParentRepository             *ParentRepository
	AttendanceRepository         *AttendanceRepository
	MarkRepository               *MarkRepository
	FeeRepository                *FeeRepository
	NotificationRepository       *NotificationRepository
	TimetableRepository          *TimetableRepository
	ParentMessageRepository      *ParentMessageRepository
	ParentNotificationRepository *ParentNotificationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:               NewUserRepository(db),
		StudentRepository:            NewStudentRepository(db),
		ParentRepository:             NewParentRepository(db),
		AttendanceRepository:         NewAttendanceRepository(db),
		MarkRepository:               NewMarkRepository(db),
		FeeRepository:                NewFeeRepository(db),
		NotificationRepository:       NewNotificationRepository(db),
		TimetableRepository:          NewTimetableRepository(db),
		ParentMessageRepository:      NewParentMessageRepository(db),
		ParentNotificationRepository: NewParentNotificationRepository(db),
	}
}
