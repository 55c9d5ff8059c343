package filter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPRemote_Filter(t *testing.T) {
	var captured RemoteRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/filter", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(RemoteResponse{
			Products: []model.Product{{ID: "P001", Name: "West Coast IPA"}},
			Total:    1,
			Vertical: model.VerticalBrewery,
			ShopName: "Houblon & Co",
		})
	}))
	defer server.Close()

	remote := NewHTTPRemote(server.URL, 2*time.Second, zerolog.Nop())

	resp, err := remote.Filter(context.Background(), RemoteRequest{
		ShopID:       "SHOP-BREW",
		Criteria:     Criteria{Brewery: &BreweryCriteria{HopVariety: "Cascade"}},
		CategoryName: "IPA",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, model.VerticalBrewery, resp.Vertical)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "P001", resp.Products[0].ID)

	assert.Equal(t, "SHOP-BREW", captured.ShopID)
	assert.Equal(t, "IPA", captured.CategoryName)
	require.NotNil(t, captured.Criteria.Brewery)
	assert.Equal(t, "Cascade", captured.Criteria.Brewery.HopVariety)
}

func TestHTTPRemote_Filter_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	remote := NewHTTPRemote(server.URL, 2*time.Second, zerolog.Nop())

	resp, err := remote.Filter(context.Background(), RemoteRequest{ShopID: "SHOP-BREW"})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "500")
}

func TestHTTPRemote_Filter_ConnectionFailure(t *testing.T) {
	// Grab a URL, then shut the server down so the dial fails.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	remote := NewHTTPRemote(url, time.Second, zerolog.Nop())

	resp, err := remote.Filter(context.Background(), RemoteRequest{ShopID: "SHOP-BREW"})

	require.Error(t, err)
	assert.Nil(t, resp)
}

func TestHTTPRemote_Filter_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products": [`))
	}))
	defer server.Close()

	remote := NewHTTPRemote(server.URL, time.Second, zerolog.Nop())

	resp, err := remote.Filter(context.Background(), RemoteRequest{ShopID: "SHOP-BREW"})

	require.Error(t, err)
	assert.Nil(t, resp)
}
