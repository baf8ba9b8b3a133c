package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type AddItemRequest struct {
	ListingID   string  `json:"listing_id"`
	Title       string  `json:"title"`
	Image       string  `json:"image,omitempty"`
	PricePerDay float64 `json:"price_per_day"`
	Currency    string  `json:"currency,omitempty"`
	Location    string  `json:"location,omitempty"`
	OwnerName   string  `json:"owner_name,omitempty"`
	StartDate   string  `json:"start_date"`
	Days        int     `json:"days"`
}

type CartItemResponse struct {
	ID          string  `json:"id"`
	ListingID   string  `json:"listing_id"`
	Title       string  `json:"title"`
	Image       string  `json:"image,omitempty"`
	PricePerDay float64 `json:"price_per_day"`
	Currency    string  `json:"currency,omitempty"`
	Location    string  `json:"location,omitempty"`
	OwnerName   string  `json:"owner_name,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Days        int     `json:"days"`
	Total       float64 `json:"total"`
}

type CartResponse struct {
	Items    []CartItemResponse `json:"items"`
	Subtotal float64            `json:"subtotal"`
}

type CartCountResponse struct {
	Count int `json:"count"`
}
