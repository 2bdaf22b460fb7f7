//go:build unit

package review_test

import (
	"strings"
	"testing"

	"renthub/internal/domain/review"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRating(t *testing.T) {
	testCases := []struct {
		name  string
		value int
		errIs error
	}{
		{name: "minimum valid rating", value: 1},
		{name: "maximum valid rating", value: 5},
		{name: "below minimum", value: 0, errIs: review.ErrInvalidRating},
		{name: "above maximum", value: 6, errIs: review.ErrInvalidRating},
		{name: "negative", value: -1, errIs: review.ErrInvalidRating},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := review.NewRating(tc.value)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.value, r.Value())
		})
	}
}

func TestNewComment(t *testing.T) {
	t.Run("empty comment is allowed", func(t *testing.T) {
		c, err := review.NewComment("")
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})

	t.Run("whitespace-only comment trims to empty", func(t *testing.T) {
		c, err := review.NewComment("   ")
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})

	t.Run("comment is trimmed", func(t *testing.T) {
		c, err := review.NewComment("  great tent  ")
		require.NoError(t, err)
		assert.Equal(t, "great tent", c.String())
	})

	t.Run("maximum length accepted", func(t *testing.T) {
		_, err := review.NewComment(strings.Repeat("a", review.MaxCommentLength))
		require.NoError(t, err)
	})

	t.Run("over maximum length rejected", func(t *testing.T) {
		_, err := review.NewComment(strings.Repeat("a", review.MaxCommentLength+1))
		require.ErrorIs(t, err, review.ErrCommentTooLong)
	})
}

func TestAverageRating(t *testing.T) {
	t.Run("empty set has no rating", func(t *testing.T) {
		assert.Nil(t, review.AverageRating(nil))
		assert.Nil(t, review.AverageRating([]int{}))
	})

	t.Run("mean of 5 3 4 is 4.0", func(t *testing.T) {
		avg := review.AverageRating([]int{5, 3, 4})
		require.NotNil(t, avg)
		assert.InDelta(t, 4.0, *avg, 1e-9)
	})

	t.Run("single rating", func(t *testing.T) {
		avg := review.AverageRating([]int{2})
		require.NotNil(t, avg)
		assert.InDelta(t, 2.0, *avg, 1e-9)
	})
}
