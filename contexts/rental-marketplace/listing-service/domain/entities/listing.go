package entities

import "time"

type CancellationPolicy string

const (
	CancellationFlexible CancellationPolicy = "flexible"
	CancellationMedium   CancellationPolicy = "medium"
	CancellationStrict   CancellationPolicy = "strict"
)

// Listing is one rentable item in the catalog.
type Listing struct {
	ID                 string
	Title              string
	Image              string
	Images             []string
	PricePerDay        float64
	Currency           string
	Location           string
	OwnerName          string
	OwnerAvatar        string
	IsPopular          bool
	Description        string
	Category           string
	CancellationPolicy CancellationPolicy
	CreatedAt          time.Time
}

// Category is a browsable catalog bucket addressed by slug.
type Category struct {
	ID   string
	Name string
	Slug string
}
