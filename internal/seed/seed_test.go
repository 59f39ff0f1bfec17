package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttendanceCountsInvariants(t *testing.T) {
	for i := 0; i < 1000; i++ {
		total, present, absent, percentage := attendanceCounts()

		assert.Equal(t, 100, total)
		assert.GreaterOrEqual(t, present, 80)
		assert.LessOrEqual(t, present, 94)
		assert.Equal(t, total, present+absent)
		assert.InDelta(t, float64(present), percentage, 1e-9)
	}
}
