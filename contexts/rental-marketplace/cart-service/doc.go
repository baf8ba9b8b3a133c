// Package cartservice holds the renter's in-progress booking basket. Each
// cart line snapshots the listing it was added from, so later catalog edits
// do not change an already-priced booking.
package cartservice
