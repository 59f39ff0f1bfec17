package db

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/karthikv/parentportal/internal/pkg/apperrors"
)

func TestRollbackErrorKeepsOriginalMatchable(t *testing.T) {
	rbErr := errors.New("conn closed")

	err := rollbackError(apperrors.ErrFeeNotFound, rbErr)

	assert.True(t, errors.Is(err, apperrors.ErrFeeNotFound))
	assert.True(t, errors.Is(err, rbErr))
	assert.Contains(t, err.Error(), "rollback failed")
}
