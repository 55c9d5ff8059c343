package handler

import (
	"errors"
	"net/http"

	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/model"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/service"

	"github.com/rs/zerolog"
)

// ShopHandler handles shop-related HTTP requests.
type ShopHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewShopHandler creates a new shop handler.
func NewShopHandler(service service.CatalogService, logger zerolog.Logger) *ShopHandler {
	return &ShopHandler{
		service: service,
		logger:  logger.With().Str("handler", "shop").Logger(),
	}
}

// List handles GET /api/shops requests.
func (h *ShopHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	shops, err := h.service.ListShops(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve shops", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, shops)
}

// Get handles GET /api/shops/{id} requests.
func (h *ShopHandler) Get(w http.ResponseWriter, r *http.Request, shopID string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	shop, err := h.service.GetShop(r.Context(), shopID)
	if err != nil {
		if errors.Is(err, model.ErrShopNotFound) {
			writeError(w, http.StatusNotFound, "shop not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to retrieve shop", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, shop)
}

// Categories handles GET /api/shops/{id}/categories requests.
func (h *ShopHandler) Categories(w http.ResponseWriter, r *http.Request, shopID string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	categories, err := h.service.Categories(r.Context(), shopID)
	if err != nil {
		if errors.Is(err, model.ErrShopNotFound) {
			writeError(w, http.StatusNotFound, "shop not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to retrieve categories", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}
