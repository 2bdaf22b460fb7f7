package readstore

import (
	"context"

	"renthub/internal/infra"
	"renthub/internal/infra/db"
	"renthub/internal/pkg/pgconv"
	"renthub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ItemReadStore struct {
	db db.DBTX
}

func NewItemReadStore(db db.DBTX) *ItemReadStore {
	return &ItemReadStore{db: db}
}

// Listings carry the first uploaded image as cover. The LATERAL join keeps
// the query a single round trip.
const itemListSelect = `
	SELECT i.id, i.title, i.description, i.price_per_day, i.city,
	       img.path, i.created_at
	FROM items i
	LEFT JOIN LATERAL (
		SELECT path FROM item_images
		WHERE item_id = i.id
		ORDER BY id
		LIMIT 1
	) img ON true
`

func (r *ItemReadStore) FindActive(ctx context.Context, city *string) ([]*queries.ItemListItem, error) {
	query := itemListSelect + ` WHERE i.is_active`
	args := []any{}
	if city != nil {
		query += ` AND i.city ILIKE $1`
		args = append(args, *city)
	}
	query += ` ORDER BY i.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find active items", err)
	}
	defer rows.Close()

	return collectItemListItems(rows)
}

func (r *ItemReadStore) FindAllForAdmin(ctx context.Context) ([]*queries.ItemListItem, error) {
	rows, err := r.db.Query(ctx, itemListSelect+` ORDER BY i.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find all items", err)
	}
	defer rows.Close()

	return collectItemListItems(rows)
}

func (r *ItemReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ItemListItem, error) {
	rows, err := r.db.Query(ctx, itemListSelect+` WHERE i.owner_id = $1 ORDER BY i.created_at DESC`, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find items by owner", err)
	}
	defer rows.Close()

	return collectItemListItems(rows)
}

func (r *ItemReadStore) FindDetail(ctx context.Context, id int64) (*queries.ItemDetail, error) {
	row := r.db.QueryRow(ctx, `
		SELECT i.id, i.owner_id, i.title, i.description, i.price_per_day,
		       i.city, i.is_active, i.created_at,
		       p.full_name, p.city, p.avatar_path,
		       p.instagram_url, p.facebook_url, p.linkedin_url, p.website_url
		FROM items i
		JOIN profiles p ON p.id = i.owner_id
		WHERE i.id = $1`, id)

	var (
		detail    queries.ItemDetail
		owner     queries.OwnerCard
		desc      pgtype.Text
		city      pgtype.Text
		createdAt pgtype.Timestamptz

		ownerName, ownerCity, avatarPath    pgtype.Text
		instagram, facebook, linkedin, site pgtype.Text
	)
	err := row.Scan(
		&detail.ID, &detail.OwnerID, &detail.Title, &desc, &detail.PricePerDay,
		&city, &detail.IsActive, &createdAt,
		&ownerName, &ownerCity, &avatarPath,
		&instagram, &facebook, &linkedin, &site,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item detail", err)
	}

	detail.Description = pgconv.StringPtrFromPgtype(desc)
	detail.City = pgconv.StringPtrFromPgtype(city)
	detail.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	owner.ID = detail.OwnerID
	owner.FullName = pgconv.StringPtrFromPgtype(ownerName)
	owner.City = pgconv.StringPtrFromPgtype(ownerCity)
	owner.AvatarURL = pgconv.StringPtrFromPgtype(avatarPath)
	owner.InstagramURL = pgconv.StringPtrFromPgtype(instagram)
	owner.FacebookURL = pgconv.StringPtrFromPgtype(facebook)
	owner.LinkedinURL = pgconv.StringPtrFromPgtype(linkedin)
	owner.WebsiteURL = pgconv.StringPtrFromPgtype(site)
	detail.Owner = &owner

	return &detail, nil
}

func (r *ItemReadStore) ImagePaths(ctx context.Context, itemID int64) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT path FROM item_images WHERE item_id = $1 ORDER BY id`, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find item images", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item image", err)
		}
		paths = append(paths, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate item images", err)
	}
	return paths, nil
}

func collectItemListItems(rows pgx.Rows) ([]*queries.ItemListItem, error) {
	var result []*queries.ItemListItem
	for rows.Next() {
		var (
			item       queries.ItemListItem
			desc       pgtype.Text
			city       pgtype.Text
			coverImage pgtype.Text
			createdAt  pgtype.Timestamptz
		)
		err := rows.Scan(&item.ID, &item.Title, &desc, &item.PricePerDay, &city, &coverImage, &createdAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item list row", err)
		}
		item.Description = pgconv.StringPtrFromPgtype(desc)
		item.City = pgconv.StringPtrFromPgtype(city)
		item.CoverImage = pgconv.StringPtrFromPgtype(coverImage)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate item list rows", err)
	}
	return result, nil
}
