package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateListingRequest struct {
	Title              string   `json:"title"`
	Image              string   `json:"image"`
	Images             []string `json:"images,omitempty"`
	PricePerDay        float64  `json:"price_per_day"`
	Currency           string   `json:"currency,omitempty"`
	Location           string   `json:"location"`
	OwnerName          string   `json:"owner_name"`
	OwnerAvatar        string   `json:"owner_avatar,omitempty"`
	Description        string   `json:"description,omitempty"`
	Category           string   `json:"category,omitempty"`
	CancellationPolicy string   `json:"cancellation_policy,omitempty"`
}

type UpdateListingRequest struct {
	Title              *string   `json:"title,omitempty"`
	Image              *string   `json:"image,omitempty"`
	Images             *[]string `json:"images,omitempty"`
	PricePerDay        *float64  `json:"price_per_day,omitempty"`
	Location           *string   `json:"location,omitempty"`
	Description        *string   `json:"description,omitempty"`
	Category           *string   `json:"category,omitempty"`
	CancellationPolicy *string   `json:"cancellation_policy,omitempty"`
	IsPopular          *bool     `json:"is_popular,omitempty"`
}

type ListingResponse struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Image              string   `json:"image"`
	Images             []string `json:"images,omitempty"`
	PricePerDay        float64  `json:"price_per_day"`
	Currency           string   `json:"currency"`
	Location           string   `json:"location"`
	OwnerName          string   `json:"owner_name"`
	OwnerAvatar        string   `json:"owner_avatar,omitempty"`
	IsPopular          bool     `json:"is_popular"`
	Description        string   `json:"description,omitempty"`
	Category           string   `json:"category,omitempty"`
	CancellationPolicy string   `json:"cancellation_policy,omitempty"`
	CreatedAt          string   `json:"created_at,omitempty"`
}

type ListingsResponse struct {
	Items []ListingResponse `json:"items"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CategoriesResponse struct {
	Items []CategoryResponse `json:"items"`
}
