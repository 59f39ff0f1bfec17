package helpers

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNullStringValue(t *testing.T) {
	assert.Equal(t, sql.NullString{}, NullStringValue(""))
	assert.Equal(t, sql.NullString{String: "TXN000123", Valid: true}, NullStringValue("TXN000123"))
}

func TestNullInt64(t *testing.T) {
	assert.Equal(t, sql.NullInt64{}, NullInt64(nil))

	id := int64(7)
	assert.Equal(t, sql.NullInt64{Int64: 7, Valid: true}, NullInt64(&id))
}

func TestStringOrNil(t *testing.T) {
	assert.Nil(t, StringOrNil(sql.NullString{}))

	got := StringOrNil(sql.NullString{String: "2025-01-15", Valid: true})
	if assert.NotNil(t, got) {
		assert.Equal(t, "2025-01-15", *got)
	}
}

func TestInt64OrNil(t *testing.T) {
	assert.Nil(t, Int64OrNil(sql.NullInt64{}))

	got := Int64OrNil(sql.NullInt64{Int64: 42, Valid: true})
	if assert.NotNil(t, got) {
		assert.Equal(t, int64(42), *got)
	}
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 30*time.Minute, ParseDuration("30m", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("not-a-duration", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("", time.Hour))
}
