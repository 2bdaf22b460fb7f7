package queries

import (
	"context"
	"time"

	"renthub/internal/infra"
	"renthub/internal/pkg/errs"

	"github.com/google/uuid"
)

type DisputeView struct {
	ID            int64     `json:"id"`
	ReservationID int64     `json:"reservation_id"`
	ItemID        int64     `json:"item_id"`
	ItemTitle     string    `json:"item_title"`
	RenterID      uuid.UUID `json:"renter_id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	Reason        string    `json:"reason"`
	Details       *string   `json:"details,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type DisputeReadStore interface {
	FindByID(ctx context.Context, id int64) (*DisputeView, error)
	FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*DisputeView, error)
	FindAll(ctx context.Context) ([]*DisputeView, error)
}

type DisputeQueries interface {
	GetByID(ctx context.Context, id int64, userID uuid.UUID, role string) (*DisputeView, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*DisputeView, error)
	ListAll(ctx context.Context) ([]*DisputeView, error)
}

type disputeQueriesImpl struct {
	store DisputeReadStore
}

func NewDisputeQueries(store DisputeReadStore) DisputeQueries {
	return &disputeQueriesImpl{store: store}
}

func (q *disputeQueriesImpl) GetByID(ctx context.Context, id int64, userID uuid.UUID, role string) (*DisputeView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrDisputeNotFound
		}
		return nil, err
	}
	if role != RoleAdmin && view.OwnerID != userID && view.RenterID != userID {
		return nil, ErrAccessDenied
	}
	return view, nil
}

func (q *disputeQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*DisputeView, error) {
	return q.store.FindByParticipant(ctx, userID)
}

func (q *disputeQueriesImpl) ListAll(ctx context.Context) ([]*DisputeView, error) {
	return q.store.FindAll(ctx)
}
