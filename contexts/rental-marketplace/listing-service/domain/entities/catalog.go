package entities

// DefaultCategories is the fixed category catalog shown on the storefront.
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Carpet & Upholstery Cleaners", Slug: "carpet-cleaners"},
		{ID: "2", Name: "Smoke Machine", Slug: "smoke-machine"},
		{ID: "3", Name: "Projector", Slug: "projector"},
		{ID: "4", Name: "Power Station", Slug: "power-station"},
		{ID: "5", Name: "Party Lights", Slug: "party-lights"},
		{ID: "6", Name: "Laptops", Slug: "laptops"},
		{ID: "7", Name: "Keyboard", Slug: "keyboard"},
		{ID: "8", Name: "Drums", Slug: "drums"},
		{ID: "9", Name: "Mobile Phones", Slug: "mobile-phones"},
		{ID: "10", Name: "Amplifier", Slug: "amplifier"},
		{ID: "11", Name: "Trestle tables", Slug: "trestle-tables"},
		{ID: "12", Name: "Electric Bike", Slug: "electric-bike"},
		{ID: "13", Name: "Pressure Washer", Slug: "pressure-washer"},
		{ID: "14", Name: "Rotary Hammer", Slug: "rotary-hammer"},
		{ID: "15", Name: "Cameras", Slug: "cameras"},
		{ID: "16", Name: "Drones", Slug: "drones"},
	}
}

// SeedListings is the catalog a fresh install starts with, before any
// operator-created listings exist.
func SeedListings() []Listing {
	return []Listing{
		{
			ID:          "1",
			Title:       "Golden brass trumpet",
			Image:       "https://images.unsplash.com/photo-1573871666457-7c7329118cf9?auto=format&fit=crop&q=80&w=800",
			PricePerDay: 400,
			Currency:    "₹",
			Location:    "Mumbai",
			OwnerName:   "Sarah",
			OwnerAvatar: "https://i.pravatar.cc/150?u=a042581f4e29026024d",
			IsPopular:   true,
			Category:    "drums",
		},
		{
			ID:          "2",
			Title:       "Pronstoor teleprompter kit",
			Image:       "https://images.unsplash.com/photo-1527011046414-4781f1f94f8c?auto=format&fit=crop&q=80&w=800",
			PricePerDay: 500,
			Currency:    "₹",
			Location:    "Bangalore",
			OwnerName:   "Mike",
			OwnerAvatar: "https://i.pravatar.cc/150?u=a042581f4e29026704d",
			Category:    "projector",
		},
		{
			ID:          "3",
			Title:       "Affordable white chair cover for hire",
			Image:       "https://images.unsplash.com/photo-1519167758481-83f550bb49b3?auto=format&fit=crop&q=80&w=800",
			PricePerDay: 150,
			Currency:    "₹",
			Location:    "Delhi",
			OwnerName:   "Events Co",
			OwnerAvatar: "https://i.pravatar.cc/150?u=a04258114e29026702d",
			Category:    "trestle-tables",
		},
		{
			ID:          "4",
			Title:       "Neewer 12\" aluminum teleprompter",
			Image:       "https://images.unsplash.com/photo-1486704155675-e4c07f8ad160?auto=format&fit=crop&q=80&w=800",
			PricePerDay: 1500,
			Currency:    "₹",
			Location:    "Pune",
			OwnerName:   "John",
			OwnerAvatar: "https://i.pravatar.cc/150?u=a042581f4e29026024d",
			Category:    "projector",
		},
		{
			ID:          "5",
			Title:       "Karcher K4 Pressure Washer",
			Image:       "https://images.unsplash.com/photo-1621905252507-b35492cc74b4?auto=format&fit=crop&q=80&w=800",
			PricePerDay: 1200,
			Currency:    "₹",
			Location:    "Bangalore",
			OwnerName:   "David",
			OwnerAvatar: "https://i.pravatar.cc/150?u=a042581f4e29026011d",
			IsPopular:   true,
			Category:    "pressure-washer",
		},
		{
			ID:          "6",
			Title:       "DJI Mini 3 Pro drone",
			Image:       "https://images.unsplash.com/photo-1473968512647-3e447244af8f?auto=format&fit=crop&q=80&w=800",
			PricePerDay: 2000,
			Currency:    "₹",
			Location:    "Mumbai",
			OwnerName:   "Priya",
			OwnerAvatar: "https://i.pravatar.cc/150?u=a042581f4e29026708c",
			IsPopular:   true,
			Category:    "drones",
		},
	}
}
