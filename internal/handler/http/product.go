package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-gift-catalog/internal/logger"
	"github.com/MKhiriev/go-gift-catalog/internal/utils"
	"github.com/MKhiriev/go-gift-catalog/models"
	"github.com/go-chi/chi/v5"
)

// createProduct runs behind requireRole(models.RoleAdmin).
func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var dto models.ProductDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.Err(err).Str("func", "*Handler.createProduct").Msg("Invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	created, err := h.services.ProductService.Create(r.Context(), dto)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.services.ProductService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	utils.WriteJSON(w, products, http.StatusOK)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	product, found, err := h.services.ProductService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, product, http.StatusOK)
}

// updateProduct always stores the product under the path id; an "id" field
// in the body is not part of the payload and is dropped while decoding.
func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := productIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var dto models.ProductDTO
	if err = json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.Err(err).Str("func", "*Handler.updateProduct").Msg("Invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	updated, found, err := h.services.ProductService.Update(r.Context(), id, dto)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	affected, err := h.services.ProductService.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if affected != 1 {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func productIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, productIDParam)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidProductID, raw, err)
	}
	return id, nil
}
