package filter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/model"

	"github.com/rs/zerolog"
)

// RemoteRequest is the payload sent to the authoritative filter service.
// The category is resolved to its display name before delegation; the
// remote contract keys on names, not ids.
type RemoteRequest struct {
	ShopID       string   `json:"shopId"`
	Criteria     Criteria `json:"criteria"`
	Search       string   `json:"search,omitempty"`
	CategoryName string   `json:"categoryName,omitempty"`
}

// RemoteResponse is the authoritative filter result.
type RemoteResponse struct {
	Products []model.Product `json:"products"`
	Total    int             `json:"total"`
	Vertical model.Vertical  `json:"shopType"`
	ShopName string          `json:"shopName"`
}

// Remote is the external remote-filter collaborator. Any transport or
// non-success failure surfaces as a single uniform error; callers treat
// every error identically and fall back to local evaluation.
type Remote interface {
	Filter(ctx context.Context, req RemoteRequest) (*RemoteResponse, error)
}

// httpRemote implements Remote against the filter service's JSON endpoint.
type httpRemote struct {
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

// NewHTTPRemote creates a remote-filter client. The timeout bounds each
// call in addition to whatever deadline the caller's context carries.
func NewHTTPRemote(baseURL string, timeout time.Duration, logger zerolog.Logger) Remote {
	return &httpRemote{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.With().Str("component", "remote-filter").Logger(),
	}
}

// Filter posts the criteria set to the remote service and decodes the
// authoritative result.
func (r *httpRemote) Filter(ctx context.Context, req RemoteRequest) (*RemoteResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode remote filter request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/filter", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build remote filter request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		r.logger.Warn().
			Err(err).
			Str("shop_id", req.ShopID).
			Msg("remote filter call failed")
		return nil, fmt.Errorf("remote filter call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.logger.Warn().
			Int("status", resp.StatusCode).
			Str("shop_id", req.ShopID).
			Msg("remote filter returned non-success status")
		return nil, fmt.Errorf("remote filter returned status %d", resp.StatusCode)
	}

	var out RemoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode remote filter response: %w", err)
	}

	return &out, nil
}
