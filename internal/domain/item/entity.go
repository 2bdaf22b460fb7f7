package item

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle    = errors.New("title is required")
	ErrNegativePrice = errors.New("price per day cannot be negative")
	ErrItemNotActive = errors.New("item is not active")
)

// Item is a rentable listing. Items are soft-disabled via the active flag,
// never deleted, so reservations and reviews keep valid references.
type Item struct {
	id          int64
	ownerID     uuid.UUID
	title       string
	description *string
	pricePerDay float64
	city        *string
	isActive    bool
	createdAt   time.Time
}

func NewItem(ownerID uuid.UUID, title string, description *string, pricePerDay float64, city *string) (*Item, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if pricePerDay < 0 {
		return nil, ErrNegativePrice
	}

	return &Item{
		ownerID:     ownerID,
		title:       title,
		description: description,
		pricePerDay: pricePerDay,
		city:        city,
		isActive:    true,
	}, nil
}

func Reconstruct(
	id int64,
	ownerID uuid.UUID,
	title string,
	description *string,
	pricePerDay float64,
	city *string,
	isActive bool,
	createdAt time.Time,
) *Item {
	return &Item{
		id:          id,
		ownerID:     ownerID,
		title:       title,
		description: description,
		pricePerDay: pricePerDay,
		city:        city,
		isActive:    isActive,
		createdAt:   createdAt,
	}
}

func (i *Item) IsOwnedBy(userID uuid.UUID) bool {
	return i.ownerID == userID
}

// EstimateTotal prices a rental of the given number of days.
func (i *Item) EstimateTotal(days int) float64 {
	if days <= 0 {
		return 0
	}
	return float64(days) * i.pricePerDay
}

func (i *Item) Deactivate() { i.isActive = false }
func (i *Item) Activate()   { i.isActive = true }

func (i *Item) ID() int64             { return i.id }
func (i *Item) OwnerID() uuid.UUID    { return i.ownerID }
func (i *Item) Title() string         { return i.title }
func (i *Item) Description() *string  { return i.description }
func (i *Item) PricePerDay() float64  { return i.pricePerDay }
func (i *Item) City() *string         { return i.city }
func (i *Item) IsActive() bool        { return i.isActive }
func (i *Item) CreatedAt() time.Time  { return i.createdAt }
