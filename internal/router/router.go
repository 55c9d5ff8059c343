package router

import (
	"net/http"
	"strings"

	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/handler"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	shopHandler *handler.ShopHandler,
	productHandler *handler.ProductHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Shop routes: /api/shops, /api/shops/{id} and the nested category,
	// product and filter resources.
	shopRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/shops"), "/")
		if rest == "" {
			shopHandler.List(w, r)
			return
		}

		segments := strings.Split(rest, "/")
		shopID := segments[0]

		switch {
		case len(segments) == 1:
			shopHandler.Get(w, r, shopID)
		case len(segments) == 2 && segments[1] == "categories":
			shopHandler.Categories(w, r, shopID)
		case len(segments) == 2 && segments[1] == "products":
			productHandler.ListByShop(w, r, shopID)
		case len(segments) == 3 && segments[1] == "products" && segments[2] == "filter":
			productHandler.Filter(w, r, shopID)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}

	mux.HandleFunc("/api/shops", shopRouteHandler)
	mux.HandleFunc("/api/shops/", shopRouteHandler)

	// Product detail route: /api/products/{id}
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		productID := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/products"), "/")
		if productID == "" || strings.Contains(productID, "/") {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		productHandler.Get(w, r, productID)
	}

	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
