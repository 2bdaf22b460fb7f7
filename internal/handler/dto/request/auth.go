package request

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries the whole display profile; the client always
// submits the full form, so absent fields clear their columns.
type UpdateProfileRequest struct {
	FullName     *string `json:"full_name"`
	City         *string `json:"city"`
	AvatarPath   *string `json:"avatar_path"`
	InstagramURL *string `json:"instagram_url"`
	FacebookURL  *string `json:"facebook_url"`
	LinkedinURL  *string `json:"linkedin_url"`
	WebsiteURL   *string `json:"website_url"`
}
