package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDaysInclusive(t *testing.T) {
	t.Run("same day is one day", func(t *testing.T) {
		assert.Equal(t, 1, DaysInclusive(date("2024-12-15"), date("2024-12-15")))
	})

	t.Run("both endpoints count", func(t *testing.T) {
		assert.Equal(t, 2, DaysInclusive(date("2024-12-15"), date("2024-12-16")))
		assert.Equal(t, 3, DaysInclusive(date("2024-12-15"), date("2024-12-17")))
		assert.Equal(t, 31, DaysInclusive(date("2024-12-01"), date("2024-12-31")))
	})

	t.Run("reversed input is normalized", func(t *testing.T) {
		assert.Equal(t, 3, DaysInclusive(date("2024-12-17"), date("2024-12-15")))
	})

	t.Run("partial day rounds up", func(t *testing.T) {
		start := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 12, 16, 10, 0, 0, 0, time.UTC)
		assert.Equal(t, 3, DaysInclusive(start, end))
	})

	t.Run("year boundary", func(t *testing.T) {
		assert.Equal(t, 2, DaysInclusive(date("2024-12-31"), date("2025-01-01")))
	})
}

func TestRangesOverlap(t *testing.T) {
	t.Run("identical ranges overlap", func(t *testing.T) {
		assert.True(t, RangesOverlap(date("2024-12-15"), date("2024-12-17"), date("2024-12-15"), date("2024-12-17")))
	})

	t.Run("sharing one endpoint day overlaps", func(t *testing.T) {
		assert.True(t, RangesOverlap(date("2024-12-15"), date("2024-12-17"), date("2024-12-17"), date("2024-12-20")))
	})

	t.Run("containment overlaps", func(t *testing.T) {
		assert.True(t, RangesOverlap(date("2024-12-10"), date("2024-12-20"), date("2024-12-12"), date("2024-12-13")))
	})

	t.Run("adjacent ranges do not overlap", func(t *testing.T) {
		// One ends on the 16th, the other starts on the 17th.
		assert.False(t, RangesOverlap(date("2024-12-15"), date("2024-12-16"), date("2024-12-17"), date("2024-12-20")))
	})

	t.Run("disjoint ranges do not overlap", func(t *testing.T) {
		assert.False(t, RangesOverlap(date("2024-12-01"), date("2024-12-05"), date("2024-12-20"), date("2024-12-25")))
	})

	t.Run("reversed inputs are normalized", func(t *testing.T) {
		assert.True(t, RangesOverlap(date("2024-12-17"), date("2024-12-15"), date("2024-12-20"), date("2024-12-16")))
	})
}
