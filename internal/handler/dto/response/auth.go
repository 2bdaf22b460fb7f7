package response

import (
	"time"

	"renthub/internal/domain/user"

	"github.com/google/uuid"
)

type AuthResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}

type ProfileResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	FullName     *string   `json:"full_name,omitempty"`
	City         *string   `json:"city,omitempty"`
	AvatarPath   *string   `json:"avatar_path,omitempty"`
	InstagramURL *string   `json:"instagram_url,omitempty"`
	FacebookURL  *string   `json:"facebook_url,omitempty"`
	LinkedinURL  *string   `json:"linkedin_url,omitempty"`
	WebsiteURL   *string   `json:"website_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromProfile(p *user.Profile) ProfileResponse {
	return ProfileResponse{
		ID:           p.ID(),
		Email:        p.Email().Value(),
		Role:         p.Role().String(),
		FullName:     p.FullName(),
		City:         p.City(),
		AvatarPath:   p.AvatarPath(),
		InstagramURL: p.InstagramURL(),
		FacebookURL:  p.FacebookURL(),
		LinkedinURL:  p.LinkedinURL(),
		WebsiteURL:   p.WebsiteURL(),
		CreatedAt:    p.CreatedAt(),
	}
}
