package request

type CreateItemRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description *string  `json:"description"`
	PricePerDay float64  `json:"price_per_day" binding:"min=0"`
	City        *string  `json:"city"`
	ImagePaths  []string `json:"image_paths"`
}

type UpdateItemRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	PricePerDay float64 `json:"price_per_day" binding:"min=0"`
	City        *string `json:"city"`
}

type SetItemActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type AddItemImagesRequest struct {
	Paths []string `json:"paths" binding:"required,min=1"`
}
