package repository

import (
	"context"

	"renthub/internal/domain/user"
	"renthub/internal/infra"
	"renthub/internal/infra/db"
	"renthub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProfileRepository struct {
	db db.DBTX
}

func NewProfileRepository(db db.DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, p *user.Profile) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO profiles (id, email, password_hash, role)
		VALUES ($1, $2, $3, $4)`,
		p.ID(), p.Email().Value(), p.PasswordHash(), p.Role().String())
	if err != nil {
		return infra.WrapRepoErr("failed to create profile", err)
	}
	return nil
}

func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*user.Profile, error) {
	return r.findOne(ctx, `WHERE email = $1`, email)
}

func (r *ProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.Profile, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

func (r *ProfileRepository) findOne(ctx context.Context, where string, arg any) (*user.Profile, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, role,
		       full_name, city, avatar_path,
		       instagram_url, facebook_url, linkedin_url, website_url,
		       created_at, updated_at
		FROM profiles `+where, arg)

	var (
		id                  uuid.UUID
		email, hash, role   string
		fullName, city      pgtype.Text
		avatarPath          pgtype.Text
		instagram, facebook pgtype.Text
		linkedin, website   pgtype.Text
		createdAt           pgtype.Timestamptz
		updatedAt           pgtype.Timestamptz
	)
	err := row.Scan(
		&id, &email, &hash, &role,
		&fullName, &city, &avatarPath,
		&instagram, &facebook, &linkedin, &website,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find profile", err)
	}

	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored email", err)
	}
	roleVO, err := user.NewRole(role)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored role", err)
	}

	return user.ReconstructProfile(
		id, emailVO, hash, roleVO,
		pgconv.StringPtrFromPgtype(fullName),
		pgconv.StringPtrFromPgtype(city),
		pgconv.StringPtrFromPgtype(avatarPath),
		pgconv.StringPtrFromPgtype(instagram),
		pgconv.StringPtrFromPgtype(facebook),
		pgconv.StringPtrFromPgtype(linkedin),
		pgconv.StringPtrFromPgtype(website),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

// ProfileUpdate carries the self-service display fields. Nil clears the
// column; the profile form submits every field on each save.
type ProfileUpdate struct {
	FullName     *string
	City         *string
	AvatarPath   *string
	InstagramURL *string
	FacebookURL  *string
	LinkedinURL  *string
	WebsiteURL   *string
}

func (r *ProfileRepository) UpdateDisplay(ctx context.Context, id uuid.UUID, upd ProfileUpdate) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE profiles SET
			full_name = $2, city = $3, avatar_path = $4,
			instagram_url = $5, facebook_url = $6, linkedin_url = $7, website_url = $8,
			updated_at = now()
		WHERE id = $1`,
		id,
		pgconv.StringPtrToPgtype(upd.FullName),
		pgconv.StringPtrToPgtype(upd.City),
		pgconv.StringPtrToPgtype(upd.AvatarPath),
		pgconv.StringPtrToPgtype(upd.InstagramURL),
		pgconv.StringPtrToPgtype(upd.FacebookURL),
		pgconv.StringPtrToPgtype(upd.LinkedinURL),
		pgconv.StringPtrToPgtype(upd.WebsiteURL),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("profile not found", nil, infra.KindNotFound)
	}
	return nil
}
