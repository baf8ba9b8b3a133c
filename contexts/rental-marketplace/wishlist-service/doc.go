// Package wishlistservice tracks the listings the renter has saved for
// later. The wishlist is a set of listing ids; saving twice is a no-op.
package wishlistservice
