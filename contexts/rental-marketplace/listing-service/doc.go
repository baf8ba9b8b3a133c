// Package listingservice owns the rental catalog inside the
// rental-marketplace context: listing CRUD, category browsing, and text
// search. Listings persist as a whole-collection local snapshot; a fresh
// install is seeded with the default catalog.
package listingservice
