package account

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading gzipped account files from disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based account loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "account-loader").Logger(),
	}
}

// Load reads a gzipped account file and returns an AccountSet.
// The file is expected to contain one account ID per line.
func (l *fileLoader) Load(ctx context.Context, filePath string) (AccountSet, error) {
	l.logger.Info().Str("file", filePath).Msg("loading account file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open account file")
		return nil, fmt.Errorf("failed to open account file %s: %w", filePath, err)
	}
	defer file.Close()

	result, err := readAccounts(ctx, file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read account file")
		return nil, fmt.Errorf("failed to read account file %s: %w", filePath, err)
	}

	if result.skipped > 0 {
		l.logger.Warn().
			Str("file", filePath).
			Int("skipped_lines", result.skipped).
			Msg("skipped malformed account lines")
	}

	l.logger.Info().
		Str("file", filePath).
		Int("accounts_loaded", result.set.Size()).
		Msg("account file loaded successfully")

	return result.set, nil
}
