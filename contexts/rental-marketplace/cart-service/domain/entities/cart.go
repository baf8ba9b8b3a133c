package entities

import "time"

// CartItem is one booking line. The listing fields are copied at add time;
// the cart never re-reads the catalog.
type CartItem struct {
	ID          string
	ListingID   string
	Title       string
	Image       string
	PricePerDay float64
	Currency    string
	Location    string
	OwnerName   string
	StartDate   time.Time
	EndDate     time.Time
	Days        int
	Total       float64
	AddedAt     time.Time
}
