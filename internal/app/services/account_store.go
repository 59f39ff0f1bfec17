package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karthikv/parentportal/internal/app/models"
	"github.com/karthikv/parentportal/internal/app/repositories"
	"github.com/karthikv/parentportal/internal/db"
)

// AccountStore implements AccountCreator on top of the connection pool.
// The user insert and the students-table insert commit or roll back together,
// so a failed student insert never leaves an orphaned login account.
type AccountStore struct {
	pool        *pgxpool.Pool
	userRepo    *repositories.UserRepository
	studentRepo *repositories.StudentRepository
}

// NewAccountStore creates an AccountStore.
func NewAccountStore(pool *pgxpool.Pool, userRepo *repositories.UserRepository, studentRepo *repositories.StudentRepository) *AccountStore {
	return &AccountStore{
		pool:        pool,
		userRepo:    userRepo,
		studentRepo: studentRepo,
	}
}

// CreateAccount inserts the user and, when student is non-nil, the linked
// students row in one transaction. Returns the new users.id.
func (s *AccountStore) CreateAccount(ctx context.Context, user *models.User, student *models.Student) (int64, error) {
	var userID int64

	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		id, err := s.userRepo.CreateUserTx(ctx, tx, user)
		if err != nil {
			return err
		}
		userID = id

		if student != nil {
			if _, err := s.studentRepo.CreateStudentTx(ctx, tx, student); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return userID, nil
}
