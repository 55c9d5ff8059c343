package attribute

import (
	"encoding/json"

	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/model"

	"github.com/rs/zerolog"
)

// Record is the untyped structural map recovered from a raw attribute
// payload. A fresh Record is built on every parse; nothing is cached.
type Record map[string]any

// Parser deserializes raw attribute payloads. Parsing never fails hard: an
// absent or malformed payload yields no record and a diagnostic log entry.
type Parser struct {
	logger zerolog.Logger
}

// NewParser creates a new attribute parser.
func NewParser(logger zerolog.Logger) *Parser {
	return &Parser{
		logger: logger.With().Str("component", "attribute-parser").Logger(),
	}
}

// Parse recovers the structural attribute record of a product. The second
// return value is false when the product has no payload or the payload is
// not well-formed JSON. Field values are returned as decoded, uncoerced.
func (p *Parser) Parse(product model.Product) (Record, bool) {
	if product.Attributes == "" {
		return nil, false
	}

	var rec Record
	if err := json.Unmarshal([]byte(product.Attributes), &rec); err != nil {
		p.logger.Debug().
			Err(err).
			Str("product_id", product.ID).
			Msg("malformed attribute payload, treating as no attributes")
		return nil, false
	}

	if rec == nil {
		// "null" is valid JSON but carries no attributes.
		return nil, false
	}

	return rec, true
}
