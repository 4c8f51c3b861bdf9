package dto

type CreateProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Available   *bool   `json:"available"`

	// Prices come as numbers or numeric strings from the admin form.
	NewPrice interface{} `json:"new_price"`
	OldPrice interface{} `json:"old_price"`
}

type RemoveProductInput struct {
	ID interface{} `json:"id"`
}

// A missing category matches every product.
type RelatedProductsInput struct {
	Category *string `json:"category"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type UploadResponse struct {
	Success  int    `json:"success"`
	ImageURL string `json:"image_url"`
}
