package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type WishlistResponse struct {
	ListingIDs []string `json:"listing_ids"`
}

type ToggleResponse struct {
	ListingID string `json:"listing_id"`
	Saved     bool   `json:"saved"`
}
