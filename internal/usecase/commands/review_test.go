//go:build unit

package commands_test

import (
	"context"
	"testing"

	"renthub/internal/domain/item"
	"renthub/internal/domain/review"
	"renthub/internal/infra"
	"renthub/internal/pkg/clock"
	"renthub/internal/pkg/errs"
	"renthub/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewRepo struct {
	// confirmed maps (renter, item) to the reservation a review would cite.
	confirmed map[uuid.UUID]int64
	created   []*review.Review
	createErr error
}

func (f *fakeReviewRepo) Create(_ context.Context, rev *review.Review) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, rev)
	return int64(len(f.created)), nil
}

func (f *fakeReviewRepo) LatestConfirmedReservation(_ context.Context, renterID uuid.UUID, _ int64) (int64, error) {
	id, ok := f.confirmed[renterID]
	if !ok {
		return 0, infra.WrapRepoErr("no confirmed reservation", nil, infra.KindNotFound)
	}
	return id, nil
}

type reviewFixture struct {
	cmds       commands.ReviewCommands
	repo       *fakeReviewRepo
	ownerID    uuid.UUID
	reviewerID uuid.UUID
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()

	f := &reviewFixture{
		repo:       &fakeReviewRepo{confirmed: map[uuid.UUID]int64{}},
		ownerID:    uuid.New(),
		reviewerID: uuid.New(),
	}
	items := &fakeItemFinder{items: map[int64]*item.Item{
		42: item.Reconstruct(42, f.ownerID, "Cargo bike", nil, 25, nil, true, testNow),
	}}
	f.repo.confirmed[f.reviewerID] = 7
	f.cmds = commands.NewReviewCommands(f.repo, items, clock.NewMockClock(testNow))
	return f
}

func validReviewInput() commands.CreateReviewInput {
	return commands.CreateReviewInput{ItemID: 42, Rating: 5, Comment: "great bike", RevieweeType: "item"}
}

func TestReviewCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("renter with a confirmed reservation leaves a review", func(t *testing.T) {
		f := newReviewFixture(t)

		id, err := f.cmds.Create(ctx, f.reviewerID, validReviewInput())
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)

		require.Len(t, f.repo.created, 1)
		rev := f.repo.created[0]
		assert.Equal(t, int64(7), rev.ReservationID())
		assert.Equal(t, 5, rev.Rating().Value())
		assert.Equal(t, f.ownerID, rev.RevieweeID(), "item reviews attribute to the owner")
		assert.Equal(t, testNow, rev.CreatedAt())
	})

	t.Run("no confirmed reservation means no review", func(t *testing.T) {
		f := newReviewFixture(t)

		_, err := f.cmds.Create(ctx, uuid.New(), validReviewInput())
		require.ErrorIs(t, err, errs.ErrReviewNotAllowed)
		assert.Empty(t, f.repo.created)
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newReviewFixture(t)
		input := validReviewInput()
		input.ItemID = 99

		_, err := f.cmds.Create(ctx, f.reviewerID, input)
		require.ErrorIs(t, err, errs.ErrItemNotFound)
	})

	t.Run("invalid input fails domain validation", func(t *testing.T) {
		testCases := []struct {
			name   string
			mutate func(in *commands.CreateReviewInput)
		}{
			{name: "rating below range", mutate: func(in *commands.CreateReviewInput) { in.Rating = 0 }},
			{name: "rating above range", mutate: func(in *commands.CreateReviewInput) { in.Rating = 6 }},
			{name: "unknown reviewee type", mutate: func(in *commands.CreateReviewInput) { in.RevieweeType = "platform" }},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				f := newReviewFixture(t)
				input := validReviewInput()
				tc.mutate(&input)

				_, err := f.cmds.Create(ctx, f.reviewerID, input)
				require.ErrorIs(t, err, errs.ErrDomainValidation)
			})
		}
	})

	t.Run("second review for the same reservation is a duplicate", func(t *testing.T) {
		f := newReviewFixture(t)
		f.repo.createErr = infra.WrapRepoErr("insert review", nil, infra.KindDuplicateKey)

		_, err := f.cmds.Create(ctx, f.reviewerID, validReviewInput())
		require.ErrorIs(t, err, errs.ErrDuplicateReview)
	})
}

func TestReviewCommands_CanReview(t *testing.T) {
	ctx := context.Background()

	t.Run("eligible renter gets the reservation id", func(t *testing.T) {
		f := newReviewFixture(t)

		reservationID, ok, err := f.cmds.CanReview(ctx, f.reviewerID, 42)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(7), reservationID)
	})

	t.Run("stranger is not eligible", func(t *testing.T) {
		f := newReviewFixture(t)

		_, ok, err := f.cmds.CanReview(ctx, uuid.New(), 42)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
