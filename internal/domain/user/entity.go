package user

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the identity record for every marketplace participant.
// It doubles as the auth entity (email + password hash) and the public
// display card shown next to listings.
type Profile struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	fullName     *string
	city         *string
	avatarPath   *string
	instagramURL *string
	facebookURL  *string
	linkedinURL  *string
	websiteURL   *string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewProfile(email Email, passwordHash string, role Role) *Profile {
	return &Profile{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
	}
}

func ReconstructProfile(
	id uuid.UUID,
	email Email,
	passwordHash string,
	role Role,
	fullName, city, avatarPath *string,
	instagramURL, facebookURL, linkedinURL, websiteURL *string,
	createdAt, updatedAt time.Time,
) *Profile {
	return &Profile{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		fullName:     fullName,
		city:         city,
		avatarPath:   avatarPath,
		instagramURL: instagramURL,
		facebookURL:  facebookURL,
		linkedinURL:  linkedinURL,
		websiteURL:   websiteURL,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (p *Profile) IsAdmin() bool {
	return p.role == RoleAdmin
}

func (p *Profile) ID() uuid.UUID        { return p.id }
func (p *Profile) Email() Email         { return p.email }
func (p *Profile) PasswordHash() string { return p.passwordHash }
func (p *Profile) Role() Role           { return p.role }
func (p *Profile) FullName() *string    { return p.fullName }
func (p *Profile) City() *string        { return p.city }
func (p *Profile) AvatarPath() *string  { return p.avatarPath }
func (p *Profile) InstagramURL() *string { return p.instagramURL }
func (p *Profile) FacebookURL() *string  { return p.facebookURL }
func (p *Profile) LinkedinURL() *string  { return p.linkedinURL }
func (p *Profile) WebsiteURL() *string   { return p.websiteURL }
func (p *Profile) CreatedAt() time.Time  { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time  { return p.updatedAt }
