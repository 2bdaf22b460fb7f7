package commands

import (
	"context"

	"renthub/internal/domain/item"
	"renthub/internal/infra"
	"renthub/internal/infra/db"
	"renthub/internal/pkg/errs"
	"renthub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ItemRepository interface {
	Create(ctx context.Context, tx db.DBTX, it *item.Item) (int64, error)
	AddImage(ctx context.Context, tx db.DBTX, itemID int64, ownerID uuid.UUID, path string) error
	Update(ctx context.Context, it *item.Item) error
	SetActive(ctx context.Context, id int64, active bool) error
	FindByID(ctx context.Context, id int64) (*item.Item, error)
}

type CreateItemInput struct {
	Title       string
	Description *string
	PricePerDay float64
	City        *string
	ImagePaths  []string
}

type UpdateItemInput struct {
	Title       string
	Description *string
	PricePerDay float64
	City        *string
}

type ItemCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, req CreateItemInput) (int64, error)
	Update(ctx context.Context, itemID int64, actorID uuid.UUID, isAdmin bool, req UpdateItemInput) error
	SetActive(ctx context.Context, itemID int64, actorID uuid.UUID, isAdmin bool, active bool) error
	AddImages(ctx context.Context, itemID int64, actorID uuid.UUID, paths []string) error
}

type itemCommandsImpl struct {
	items ItemRepository
	pool  *pgxpool.Pool
}

func NewItemCommands(items ItemRepository, pool *pgxpool.Pool) ItemCommands {
	return &itemCommandsImpl{items: items, pool: pool}
}

// Create inserts the listing and its initial images in one transaction, so a
// half-created listing never shows up without its photos.
func (c *itemCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, req CreateItemInput) (int64, error) {
	it, err := item.NewItem(ownerID, req.Title, req.Description, req.PricePerDay, req.City)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (int64, error) {
		itemID, err := c.items.Create(ctx, tx, it)
		if err != nil {
			return 0, err
		}
		for _, path := range req.ImagePaths {
			if err := c.items.AddImage(ctx, tx, itemID, ownerID, path); err != nil {
				return 0, err
			}
		}
		return itemID, nil
	})
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (c *itemCommandsImpl) Update(ctx context.Context, itemID int64, actorID uuid.UUID, isAdmin bool, req UpdateItemInput) error {
	existing, err := c.findOwned(ctx, itemID, actorID, isAdmin)
	if err != nil {
		return err
	}

	updated, err := item.NewItem(existing.OwnerID(), req.Title, req.Description, req.PricePerDay, req.City)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	replacement := item.Reconstruct(
		existing.ID(), existing.OwnerID(),
		updated.Title(), updated.Description(), updated.PricePerDay(), updated.City(),
		existing.IsActive(), existing.CreatedAt(),
	)

	if err := c.items.Update(ctx, replacement); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrItemNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *itemCommandsImpl) SetActive(ctx context.Context, itemID int64, actorID uuid.UUID, isAdmin bool, active bool) error {
	if _, err := c.findOwned(ctx, itemID, actorID, isAdmin); err != nil {
		return err
	}
	if err := c.items.SetActive(ctx, itemID, active); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *itemCommandsImpl) AddImages(ctx context.Context, itemID int64, actorID uuid.UUID, paths []string) error {
	it, err := c.findOwned(ctx, itemID, actorID, false)
	if err != nil {
		return err
	}

	_, err = shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		for _, path := range paths {
			if err := c.items.AddImage(ctx, tx, itemID, it.OwnerID(), path); err != nil {
				return struct{}{}, err
			}
		}
		return struct{}{}, nil
	})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *itemCommandsImpl) findOwned(ctx context.Context, itemID int64, actorID uuid.UUID, isAdmin bool) (*item.Item, error) {
	it, err := c.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrItemNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !isAdmin && !it.IsOwnedBy(actorID) {
		return nil, errs.ErrForbidden
	}
	return it, nil
}
