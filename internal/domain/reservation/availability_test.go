//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"renthub/internal/domain/reservation"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustRange(t *testing.T, from, to string) reservation.DateRange {
	t.Helper()
	r, err := reservation.NewDateRange(day(from), day(to))
	require.NoError(t, err)
	return r
}

func TestIsActiveHold(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		status    reservation.Status
		createdAt time.Time
		expected  bool
	}{
		{
			name:      "fresh pending hold is active",
			status:    reservation.StatusPending,
			createdAt: now.Add(-5 * time.Minute),
			expected:  true,
		},
		{
			name:      "exactly at TTL boundary is still active",
			status:    reservation.StatusPending,
			createdAt: now.Add(-reservation.HoldTTL),
			expected:  true,
		},
		{
			name:      "one second past TTL is expired",
			status:    reservation.StatusPending,
			createdAt: now.Add(-reservation.HoldTTL - time.Second),
			expected:  false,
		},
		{
			name:      "confirmed is not a hold",
			status:    reservation.StatusConfirmed,
			createdAt: now,
			expected:  false,
		},
		{
			name:      "cancelled is not a hold",
			status:    reservation.StatusCancelled,
			createdAt: now,
			expected:  false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, reservation.IsActiveHold(tc.status, tc.createdAt, now))
		})
	}
}

func TestBlockedRanges(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	confirmed := reservation.Snapshot{
		ID:        1,
		Status:    reservation.StatusConfirmed,
		Range:     mustRange(t, "2024-06-10", "2024-06-15"),
		CreatedAt: now.Add(-72 * time.Hour), // age is irrelevant for confirmed
	}
	freshHold := reservation.Snapshot{
		ID:        2,
		Status:    reservation.StatusPending,
		Range:     mustRange(t, "2024-06-20", "2024-06-22"),
		CreatedAt: now.Add(-10 * time.Minute),
	}
	staleHold := reservation.Snapshot{
		ID:        3,
		Status:    reservation.StatusPending,
		Range:     mustRange(t, "2024-06-25", "2024-06-26"),
		CreatedAt: now.Add(-16 * time.Minute),
	}
	cancelled := reservation.Snapshot{
		ID:        4,
		Status:    reservation.StatusCancelled,
		Range:     mustRange(t, "2024-06-05", "2024-06-08"),
		CreatedAt: now.Add(-time.Minute),
	}

	t.Run("confirmed and fresh pending block, stale and cancelled do not", func(t *testing.T) {
		got := reservation.BlockedRanges([]reservation.Snapshot{confirmed, freshHold, staleHold, cancelled}, now)
		want := []reservation.DateRange{confirmed.Range, freshHold.Range}

		if diff := cmp.Diff(want, got, cmp.AllowUnexported(reservation.DateRange{})); diff != "" {
			t.Errorf("blocked ranges mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("cancelled reservation never appears regardless of recency", func(t *testing.T) {
		got := reservation.BlockedRanges([]reservation.Snapshot{cancelled}, now)
		assert.Empty(t, got)
	})

	t.Run("empty input yields no blocked ranges", func(t *testing.T) {
		assert.Empty(t, reservation.BlockedRanges(nil, now))
	})
}

func TestDateRangeOverlaps(t *testing.T) {
	testCases := []struct {
		name     string
		a        [2]string
		b        [2]string
		expected bool
	}{
		{"disjoint before", [2]string{"2024-06-01", "2024-06-03"}, [2]string{"2024-06-04", "2024-06-06"}, false},
		{"adjacent days touch", [2]string{"2024-06-01", "2024-06-03"}, [2]string{"2024-06-03", "2024-06-06"}, true},
		{"contained", [2]string{"2024-06-01", "2024-06-10"}, [2]string{"2024-06-04", "2024-06-06"}, true},
		{"partial", [2]string{"2024-06-10", "2024-06-15"}, [2]string{"2024-06-12", "2024-06-20"}, true},
		{"single day equal", [2]string{"2024-06-05", "2024-06-05"}, [2]string{"2024-06-05", "2024-06-05"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := mustRange(t, tc.a[0], tc.a[1])
			b := mustRange(t, tc.b[0], tc.b[1])

			assert.Equal(t, tc.expected, a.Overlaps(b))
			assert.Equal(t, a.Overlaps(b), b.Overlaps(a), "overlap must be symmetric")
		})
	}

	t.Run("a range overlaps itself", func(t *testing.T) {
		r := mustRange(t, "2024-06-10", "2024-06-15")
		assert.True(t, r.Overlaps(r))
	})
}

func TestNewDateRange(t *testing.T) {
	t.Run("rejects from after to", func(t *testing.T) {
		_, err := reservation.NewDateRange(day("2024-06-10"), day("2024-06-09"))
		require.ErrorIs(t, err, reservation.ErrInvalidDateRange)
	})

	t.Run("single day range is valid", func(t *testing.T) {
		r, err := reservation.NewDateRange(day("2024-06-10"), day("2024-06-10"))
		require.NoError(t, err)
		assert.Equal(t, 1, r.Days())
	})

	t.Run("day count is endpoint-inclusive", func(t *testing.T) {
		r := mustRange(t, "2024-06-10", "2024-06-15")
		assert.Equal(t, 6, r.Days())
	})

	t.Run("daterange literal matches the exclusion constraint expression", func(t *testing.T) {
		r := mustRange(t, "2024-06-10", "2024-06-15")
		assert.Equal(t, "[2024-06-10,2024-06-15]", r.ToDaterange())
	})
}
