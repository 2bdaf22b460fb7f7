package queries

import (
	"context"
	"time"

	"renthub/internal/infra"
	"renthub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrItemNotFound = errs.New("item not found")

type ItemListItem struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	PricePerDay float64   `json:"price_per_day"`
	City        *string   `json:"city,omitempty"`
	CoverImage  *string   `json:"cover_image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type OwnerCard struct {
	ID           uuid.UUID `json:"id"`
	FullName     *string   `json:"full_name,omitempty"`
	City         *string   `json:"city,omitempty"`
	AvatarURL    *string   `json:"avatar_url,omitempty"`
	InstagramURL *string   `json:"instagram_url,omitempty"`
	FacebookURL  *string   `json:"facebook_url,omitempty"`
	LinkedinURL  *string   `json:"linkedin_url,omitempty"`
	WebsiteURL   *string   `json:"website_url,omitempty"`
}

type ItemDetail struct {
	ID          int64     `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	PricePerDay float64   `json:"price_per_day"`
	City        *string   `json:"city,omitempty"`
	IsActive    bool      `json:"is_active"`
	ImageURLs   []string  `json:"image_urls"`
	Owner       *OwnerCard `json:"owner,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ImageURLResolver turns stored object paths into public URLs. Object
// storage itself is an external collaborator.
type ImageURLResolver interface {
	ItemImageURL(path string) string
	AvatarURL(path string) string
}

type ItemReadStore interface {
	FindActive(ctx context.Context, city *string) ([]*ItemListItem, error)
	FindAllForAdmin(ctx context.Context) ([]*ItemListItem, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemListItem, error)
	FindDetail(ctx context.Context, id int64) (*ItemDetail, error)
	ImagePaths(ctx context.Context, itemID int64) ([]string, error)
}

type ItemQueries interface {
	ListActive(ctx context.Context, city *string) ([]*ItemListItem, error)
	ListAll(ctx context.Context) ([]*ItemListItem, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemListItem, error)
	GetDetail(ctx context.Context, id int64) (*ItemDetail, error)
}

type itemQueriesImpl struct {
	store  ItemReadStore
	images ImageURLResolver
}

func NewItemQueries(store ItemReadStore, images ImageURLResolver) ItemQueries {
	return &itemQueriesImpl{store: store, images: images}
}

func (q *itemQueriesImpl) ListActive(ctx context.Context, city *string) ([]*ItemListItem, error) {
	items, err := q.store.FindActive(ctx, city)
	if err != nil {
		return nil, err
	}
	q.resolveCovers(items)
	return items, nil
}

func (q *itemQueriesImpl) ListAll(ctx context.Context) ([]*ItemListItem, error) {
	items, err := q.store.FindAllForAdmin(ctx)
	if err != nil {
		return nil, err
	}
	q.resolveCovers(items)
	return items, nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemListItem, error) {
	items, err := q.store.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	q.resolveCovers(items)
	return items, nil
}

func (q *itemQueriesImpl) GetDetail(ctx context.Context, id int64) (*ItemDetail, error) {
	detail, err := q.store.FindDetail(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	paths, err := q.store.ImagePaths(ctx, id)
	if err != nil {
		return nil, err
	}
	urls := make([]string, len(paths))
	for i, p := range paths {
		urls[i] = q.images.ItemImageURL(p)
	}
	detail.ImageURLs = urls

	if detail.Owner != nil && detail.Owner.AvatarURL != nil {
		resolved := q.images.AvatarURL(*detail.Owner.AvatarURL)
		detail.Owner.AvatarURL = &resolved
	}
	return detail, nil
}

// CoverImage comes from the store as a raw path; swap it for a URL.
func (q *itemQueriesImpl) resolveCovers(items []*ItemListItem) {
	for _, it := range items {
		if it.CoverImage != nil {
			resolved := q.images.ItemImageURL(*it.CoverImage)
			it.CoverImage = &resolved
		}
	}
}
