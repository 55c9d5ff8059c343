package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/filter"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/model"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product and filtering HTTP requests.
type ProductHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.CatalogService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// ListByShop handles GET /api/shops/{id}/products requests. Universal
// filters may be supplied as query parameters; vertical criteria require
// the POST filter endpoint.
func (h *ProductHandler) ListByShop(w http.ResponseWriter, r *http.Request, shopID string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	criteria, ok := h.criteriaFromQuery(w, r)
	if !ok {
		return
	}

	result, err := h.service.FilterProducts(r.Context(), shopID, criteria, false)
	if err != nil {
		if errors.Is(err, model.ErrShopNotFound) {
			writeError(w, http.StatusNotFound, "shop not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to retrieve products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Filter handles POST /api/shops/{id}/products/filter requests. The
// criteria set travels in the request body; the authoritative flag as a
// query parameter.
func (h *ProductHandler) Filter(w http.ResponseWriter, r *http.Request, shopID string) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var criteria filter.Criteria
	if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
		writeError(w, http.StatusBadRequest, "invalid filter criteria", h.logger)
		return
	}

	if criteria.StockStatus != "" && !criteria.StockStatus.Valid() {
		writeError(w, http.StatusBadRequest, model.ErrInvalidStockStatus.Message, h.logger)
		return
	}

	authoritative := false
	if v := r.URL.Query().Get("authoritative"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid authoritative parameter", h.logger)
			return
		}
		authoritative = parsed
	}

	result, err := h.service.FilterProducts(r.Context(), shopID, criteria, authoritative)
	if err != nil {
		if errors.Is(err, model.ErrShopNotFound) {
			writeError(w, http.StatusNotFound, "shop not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to filter products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Get handles GET /api/products/{id} requests.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request, productID string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	detail, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to retrieve product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

// criteriaFromQuery builds a universal-only criteria set from query
// parameters. Returns false after writing an error response when a
// parameter cannot be parsed.
func (h *ProductHandler) criteriaFromQuery(w http.ResponseWriter, r *http.Request) (filter.Criteria, bool) {
	q := r.URL.Query()

	criteria := filter.Criteria{
		CategoryID: q.Get("categoryId"),
		Search:     q.Get("search"),
	}

	if v := q.Get("priceMin"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid priceMin parameter", h.logger)
			return filter.Criteria{}, false
		}
		criteria.PriceMin = &parsed
	}

	if v := q.Get("priceMax"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid priceMax parameter", h.logger)
			return filter.Criteria{}, false
		}
		criteria.PriceMax = &parsed
	}

	if v := q.Get("stockStatus"); v != "" {
		status := model.StockStatus(v)
		if !status.Valid() {
			writeError(w, http.StatusBadRequest, model.ErrInvalidStockStatus.Message, h.logger)
			return filter.Criteria{}, false
		}
		criteria.StockStatus = status
	}

	return criteria, true
}
