//go:build unit

package dispute_test

import (
	"testing"
	"time"

	"renthub/internal/domain/dispute"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTime() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestNewDispute(t *testing.T) {
	renterID := uuid.New()
	ownerID := uuid.New()

	t.Run("opens in open status", func(t *testing.T) {
		d, err := dispute.NewDispute(1, 2, renterID, ownerID, "Damaged item", nil)
		require.NoError(t, err)
		assert.Equal(t, dispute.StatusOpen, d.Status())
	})

	t.Run("reason is trimmed and required", func(t *testing.T) {
		_, err := dispute.NewDispute(1, 2, renterID, ownerID, "   ", nil)
		require.ErrorIs(t, err, dispute.ErrEmptyReason)
	})
}

func TestDisputeTransitions(t *testing.T) {
	testCases := []struct {
		name    string
		from    dispute.Status
		to      dispute.Status
		allowed bool
	}{
		{"open to in_review", dispute.StatusOpen, dispute.StatusInReview, true},
		{"open to rejected", dispute.StatusOpen, dispute.StatusRejected, true},
		{"open straight to resolved", dispute.StatusOpen, dispute.StatusResolved, false},
		{"in_review to resolved", dispute.StatusInReview, dispute.StatusResolved, true},
		{"in_review to rejected", dispute.StatusInReview, dispute.StatusRejected, true},
		{"in_review back to open", dispute.StatusInReview, dispute.StatusOpen, false},
		{"resolved is terminal", dispute.StatusResolved, dispute.StatusInReview, false},
		{"rejected is terminal", dispute.StatusRejected, dispute.StatusInReview, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := dispute.Reconstruct(1, 2, 3, uuid.New(), uuid.New(), "Other", nil, tc.from, testTime())

			err := d.Advance(tc.to)
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, d.Status())
			} else {
				require.ErrorIs(t, err, dispute.ErrInvalidTransition)
				assert.Equal(t, tc.from, d.Status())
			}
		})
	}
}
