package filter

import (
	"context"
	"fmt"

	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/attribute"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/model"

	"github.com/rs/zerolog"
)

// Mode is the evaluation strategy selected for a criteria set.
type Mode int

const (
	// ModeLocal evaluates every predicate over the in-memory batch.
	ModeLocal Mode = iota
	// ModeRemote delegates to the authoritative filter collaborator.
	ModeRemote
)

// Status reports how an Apply call resolved.
type Status int

const (
	// StatusOK: the selected strategy succeeded.
	StatusOK Status = iota
	// StatusDegraded: the remote collaborator failed and the result is the
	// local fallback computation.
	StatusDegraded
	// StatusFailed: even the local fallback failed; the result is the
	// narrowest safe set (category-filtered only, or the raw batch).
	StatusFailed
)

// Source identifies which computation produced the returned product list.
type Source string

const (
	SourceRemote       Source = "remote"
	SourceLocal        Source = "local"
	SourceCategoryOnly Source = "category_only"
	SourceUnfiltered   Source = "unfiltered"
)

// Request is one filtering invocation: a shop, its immutable product
// batch, the criteria snapshot and an optional authoritative flag forcing
// remote evaluation.
type Request struct {
	Shop          model.Shop
	Products      []model.Product
	Criteria      Criteria
	Authoritative bool
}

// Outcome is the result of a pipeline invocation. Products is never
// empty-by-default: a filter failure degrades precision (a superset of the
// intended results), it never blanks the list. Err is the retrievable,
// non-fatal error recorded on degraded and failed outcomes.
type Outcome struct {
	Products []model.Product
	Status   Status
	Source   Source
	Err      error
}

// Pipeline composes the universal and vertical predicate sets into a
// single filtering pass, selects the local or remote strategy, and owns
// the fallback chain on remote failure.
type Pipeline struct {
	parser *attribute.Parser
	remote Remote
	logger zerolog.Logger
}

// NewPipeline creates a filter pipeline. remote may be nil, in which case
// every request is evaluated locally.
func NewPipeline(remote Remote, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		parser: attribute.NewParser(logger),
		remote: remote,
		logger: logger.With().Str("component", "filter-pipeline").Logger(),
	}
}

// Strategy is the pure decision procedure for local versus remote
// evaluation: remote when any vertical-specific field is populated or the
// caller requests authoritative results, local otherwise.
func (pl *Pipeline) Strategy(c Criteria, authoritative bool) Mode {
	if pl.remote == nil {
		return ModeLocal
	}
	if authoritative || c.HasVerticalFields() {
		return ModeRemote
	}
	return ModeLocal
}

// FilterLocally applies, in fixed order, category, search, price,
// stock-status and vertical predicates over the batch. All stages are pure
// AND-composed predicates, so the order only matters for performance
// (cheap structural checks first). Surviving products keep their original
// batch order, which makes repeated invocation with unchanged inputs
// yield an identical ordered result.
func (pl *Pipeline) FilterLocally(products []model.Product, categoryID, search string, c Criteria, vertical model.Vertical) []model.Product {
	// Cheapest path: nothing beyond category membership is constrained.
	if c.CategoryOnly() && blank(search) {
		return pl.filterByCategory(products, categoryID)
	}

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if !matchesCategory(p, categoryID) {
			continue
		}
		if !matchesSearch(p, search) {
			continue
		}
		if !matchesPrice(p, c.PriceMin, c.PriceMax) {
			continue
		}

		rec, _ := pl.parser.Parse(p)
		attrs := attribute.Decode(rec)

		if !matchesStockStatus(attrs.Stock, c.StockStatus) {
			continue
		}
		if !matchesVertical(attrs, c, vertical) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Apply runs one filtering pass. On remote failure it recovers by
// re-running the local computation; if even that fails it returns the
// category-filtered set as last resort. The returned list is always the
// best-effort computation, never an error-shaped empty result.
func (pl *Pipeline) Apply(ctx context.Context, req Request) Outcome {
	categoryID := req.Criteria.CategoryID
	search := req.Criteria.Search

	if pl.Strategy(req.Criteria, req.Authoritative) == ModeRemote {
		resp, err := pl.remote.Filter(ctx, RemoteRequest{
			ShopID:       req.Shop.ID,
			Criteria:     req.Criteria,
			Search:       search,
			CategoryName: req.Shop.CategoryName(categoryID),
		})
		if err == nil {
			return Outcome{Products: resp.Products, Status: StatusOK, Source: SourceRemote}
		}

		pl.logger.Warn().
			Err(err).
			Str("shop_id", req.Shop.ID).
			Msg("remote filtering failed, falling back to local evaluation")

		products, localErr := pl.filterLocallySafe(req.Products, categoryID, search, req.Criteria, req.Shop.Vertical)
		if localErr != nil {
			return pl.lastResort(req, fmt.Errorf("remote filtering failed: %w", err), localErr)
		}
		return Outcome{
			Products: products,
			Status:   StatusDegraded,
			Source:   SourceLocal,
			Err:      model.ErrRemoteFilterFailed,
		}
	}

	products, err := pl.filterLocallySafe(req.Products, categoryID, search, req.Criteria, req.Shop.Vertical)
	if err != nil {
		return pl.lastResort(req, nil, err)
	}
	return Outcome{Products: products, Status: StatusOK, Source: SourceLocal}
}

// filterLocallySafe guards the local pass against panics from a corrupt
// batch so the fallback chain stays intact.
func (pl *Pipeline) filterLocallySafe(products []model.Product, categoryID, search string, c Criteria, vertical model.Vertical) (result []model.Product, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("local filtering panicked: %v", r)
		}
	}()
	return pl.FilterLocally(products, categoryID, search, c, vertical), nil
}

// lastResort returns the narrowest safe result once both the selected
// strategy and the local fallback have failed: the category-filtered set,
// or the unfiltered batch if even that cannot be computed.
func (pl *Pipeline) lastResort(req Request, remoteErr, localErr error) (out Outcome) {
	pl.logger.Error().
		AnErr("remote_error", remoteErr).
		AnErr("local_error", localErr).
		Str("shop_id", req.Shop.ID).
		Msg("local fallback failed, returning category-filtered set")

	out = Outcome{Status: StatusFailed, Source: SourceCategoryOnly, Err: localErr}

	defer func() {
		if r := recover(); r != nil {
			pl.logger.Error().
				Interface("panic", r).
				Str("shop_id", req.Shop.ID).
				Msg("category filtering failed, returning unfiltered batch")
			out.Products = req.Products
			out.Source = SourceUnfiltered
		}
	}()

	out.Products = pl.filterByCategory(req.Products, req.Criteria.CategoryID)
	return out
}

func (pl *Pipeline) filterByCategory(products []model.Product, categoryID string) []model.Product {
	if categoryID == "" {
		out := make([]model.Product, len(products))
		copy(out, products)
		return out
	}
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if matchesCategory(p, categoryID) {
			out = append(out, p)
		}
	}
	return out
}
