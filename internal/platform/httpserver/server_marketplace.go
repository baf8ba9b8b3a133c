package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	listingerrors "rentloo/contexts/rental-marketplace/listing-service/domain/errors"
	listinghttp "rentloo/contexts/rental-marketplace/listing-service/transport/http"
	wishlisterrors "rentloo/contexts/rental-marketplace/wishlist-service/domain/errors"
	wishlisthttp "rentloo/contexts/rental-marketplace/wishlist-service/transport/http"
)

func (s *Server) registerMarketplaceRoutes() {
	s.mux.HandleFunc("GET /api/marketplace/v1/listings", s.handleListListings)
	s.mux.HandleFunc("POST /api/marketplace/v1/listings", s.handleCreateListing)
	s.mux.HandleFunc("GET /api/marketplace/v1/listings/popular", s.handlePopularListings)
	s.mux.HandleFunc("GET /api/marketplace/v1/listings/{listing_id}", s.handleGetListing)
	s.mux.HandleFunc("PATCH /api/marketplace/v1/listings/{listing_id}", s.handleUpdateListing)
	s.mux.HandleFunc("DELETE /api/marketplace/v1/listings/{listing_id}", s.handleDeleteListing)
	s.mux.HandleFunc("GET /api/marketplace/v1/categories", s.handleCategories)

	s.mux.HandleFunc("GET /api/marketplace/v1/wishlist", s.handleWishlist)
	s.mux.HandleFunc("PUT /api/marketplace/v1/wishlist/{listing_id}", s.handleWishlistSave)
	s.mux.HandleFunc("DELETE /api/marketplace/v1/wishlist/{listing_id}", s.handleWishlistUnsave)
	s.mux.HandleFunc("POST /api/marketplace/v1/wishlist/{listing_id}/toggle", s.handleWishlistToggle)
}

// handleListListings serves both the full catalog and filtered searches;
// q and category query parameters narrow the result.
func (s *Server) handleListListings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := query.Get("q")
	category := query.Get("category")

	var (
		resp listinghttp.ListingsResponse
		err  error
	)
	if q == "" && category == "" {
		resp, err = s.listings.Handler.ListListingsHandler(r.Context())
	} else {
		resp, err = s.listings.Handler.SearchListingsHandler(r.Context(), q, category)
	}
	if err != nil {
		writeListingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateListing(w http.ResponseWriter, r *http.Request) {
	var req listinghttp.CreateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeListingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.listings.Handler.CreateListingHandler(r.Context(), req)
	if err != nil {
		writeListingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handlePopularListings(w http.ResponseWriter, r *http.Request) {
	resp, err := s.listings.Handler.PopularListingsHandler(r.Context())
	if err != nil {
		writeListingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetListing(w http.ResponseWriter, r *http.Request) {
	resp, err := s.listings.Handler.GetListingHandler(r.Context(), r.PathValue("listing_id"))
	if err != nil {
		writeListingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateListing(w http.ResponseWriter, r *http.Request) {
	var req listinghttp.UpdateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeListingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.listings.Handler.UpdateListingHandler(r.Context(), r.PathValue("listing_id"), req)
	if err != nil {
		writeListingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteListing(w http.ResponseWriter, r *http.Request) {
	if err := s.listings.Handler.DeleteListingHandler(r.Context(), r.PathValue("listing_id")); err != nil {
		writeListingDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.listings.Handler.CategoriesHandler(r.Context()))
}

func (s *Server) handleWishlist(w http.ResponseWriter, r *http.Request) {
	resp, err := s.wishlist.Handler.ListSavedHandler(r.Context())
	if err != nil {
		writeWishlistDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleWishlistSave(w http.ResponseWriter, r *http.Request) {
	if err := s.wishlist.Handler.SaveHandler(r.Context(), r.PathValue("listing_id")); err != nil {
		writeWishlistDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleWishlistUnsave(w http.ResponseWriter, r *http.Request) {
	if err := s.wishlist.Handler.UnsaveHandler(r.Context(), r.PathValue("listing_id")); err != nil {
		writeWishlistDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleWishlistToggle(w http.ResponseWriter, r *http.Request) {
	resp, err := s.wishlist.Handler.ToggleHandler(r.Context(), r.PathValue("listing_id"))
	if err != nil {
		writeWishlistDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeListingDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, listingerrors.ErrInvalidRequest):
		writeListingError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, listingerrors.ErrListingNotFound):
		writeListingError(w, http.StatusNotFound, "listing_not_found", err.Error())
	default:
		writeListingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeWishlistDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, wishlisterrors.ErrInvalidRequest):
		writeWishlistError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeWishlistError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeListingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, listinghttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeWishlistError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, wishlisthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
