package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading JSON catalog files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based dataset loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "dataset-loader").Logger(),
	}
}

// Load reads a JSON catalog file and returns the decoded batch.
func (l *fileLoader) Load(ctx context.Context, filePath string) (*Batch, error) {
	l.logger.Info().Str("file", filePath).Msg("loading catalog dataset")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read dataset file")
		return nil, fmt.Errorf("failed to read dataset file %s: %w", filePath, err)
	}

	var batch Batch
	if err := json.Unmarshal(data, &batch); err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to decode dataset file")
		return nil, fmt.Errorf("failed to decode dataset file %s: %w", filePath, err)
	}

	if err := batch.Validate(); err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("dataset failed validation")
		return nil, fmt.Errorf("invalid dataset %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("shops", len(batch.Shops)).
		Int("products", len(batch.Products)).
		Msg("catalog dataset loaded successfully")

	return &batch, nil
}
