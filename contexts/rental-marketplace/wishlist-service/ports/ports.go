package ports

import "context"

// WishlistRepository stores saved listing ids in save order.
type WishlistRepository interface {
	ListSaved(ctx context.Context) ([]string, error)
	Save(ctx context.Context, listingID string) error
	Unsave(ctx context.Context, listingID string) error
}
