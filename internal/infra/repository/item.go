package repository

import (
	"context"

	"renthub/internal/domain/item"
	"renthub/internal/infra"
	"renthub/internal/infra/db"
	"renthub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ItemRepository struct {
	db db.DBTX
}

func NewItemRepository(db db.DBTX) *ItemRepository {
	return &ItemRepository{db: db}
}

// Create inserts a listing. It takes an explicit tx so the create-with-images
// command can insert the item and its images atomically.
func (r *ItemRepository) Create(ctx context.Context, tx db.DBTX, it *item.Item) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, `
		INSERT INTO items (owner_id, title, description, price_per_day, city, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		it.OwnerID(), it.Title(),
		pgconv.StringPtrToPgtype(it.Description()),
		it.PricePerDay(),
		pgconv.StringPtrToPgtype(it.City()),
		it.IsActive(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create item", err)
	}
	return id, nil
}

func (r *ItemRepository) AddImage(ctx context.Context, tx db.DBTX, itemID int64, ownerID uuid.UUID, path string) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO item_images (item_id, owner_id, path)
		VALUES ($1, $2, $3)`, itemID, ownerID, path)
	if err != nil {
		return infra.WrapRepoErr("failed to add item image", err)
	}
	return nil
}

func (r *ItemRepository) Update(ctx context.Context, it *item.Item) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE items SET
			title = $2, description = $3, price_per_day = $4, city = $5, is_active = $6
		WHERE id = $1`,
		it.ID(), it.Title(),
		pgconv.StringPtrToPgtype(it.Description()),
		it.PricePerDay(),
		pgconv.StringPtrToPgtype(it.City()),
		it.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) SetActive(ctx context.Context, id int64, active bool) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE items SET is_active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return infra.WrapRepoErr("failed to set item active flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id int64) (*item.Item, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, owner_id, title, description, price_per_day, city, is_active, created_at
		FROM items WHERE id = $1`, id)

	var (
		itemID      int64
		ownerID     uuid.UUID
		title       string
		description pgtype.Text
		price       float64
		city        pgtype.Text
		isActive    bool
		createdAt   pgtype.Timestamptz
	)
	err := row.Scan(&itemID, &ownerID, &title, &description, &price, &city, &isActive, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item", err)
	}

	return item.Reconstruct(
		itemID, ownerID, title,
		pgconv.StringPtrFromPgtype(description),
		price,
		pgconv.StringPtrFromPgtype(city),
		isActive,
		pgconv.TimeFromPgtype(createdAt),
	), nil
}
