package account

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// directory implements Directory over a fixed list of account sets.
type directory struct {
	mu       sync.RWMutex
	accounts []AccountSet
	logger   zerolog.Logger
}

// DirectoryConfig holds configuration for the account directory.
type DirectoryConfig struct {
	// FilePaths is the list of account file paths to load.
	FilePaths []string
}

// NewDirectory creates a new account directory.
// All account files are loaded concurrently before it returns; any failure aborts creation.
func NewDirectory(ctx context.Context, cfg *DirectoryConfig, loader Loader, logger zerolog.Logger) (Directory, error) {
	if cfg == nil {
		return nil, fmt.Errorf("account directory config is required")
	}

	logger = logger.With().Str("component", "account-directory").Logger()

	logger.Info().
		Int("file_count", len(cfg.FilePaths)).
		Msg("initialising account directory")

	type loadResult struct {
		index int
		set   AccountSet
		err   error
	}

	resultChan := make(chan loadResult, len(cfg.FilePaths))
	var wg sync.WaitGroup

	for i, filePath := range cfg.FilePaths {
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()

			set, err := loader.Load(ctx, path)
			resultChan <- loadResult{index: index, set: set, err: err}
		}(i, filePath)
	}

	wg.Wait()
	close(resultChan)

	// Keep file order regardless of completion order
	sets := make([]AccountSet, len(cfg.FilePaths))
	for result := range resultChan {
		if result.err != nil {
			logger.Error().
				Err(result.err).
				Str("file", cfg.FilePaths[result.index]).
				Msg("failed to load account file")
			return nil, fmt.Errorf("failed to load account file %s: %w", cfg.FilePaths[result.index], result.err)
		}
		sets[result.index] = result.set
	}

	total := 0
	for _, set := range sets {
		total += set.Size()
	}

	logger.Info().
		Int("total_accounts", total).
		Msg("account directory initialised successfully")

	return &directory{
		accounts: sets,
		logger:   logger,
	}, nil
}

// Contains reports whether any loaded account file lists the account.
func (d *directory) Contains(ctx context.Context, accountID int64) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, set := range d.accounts {
		if ctx.Err() != nil {
			return false
		}
		if set.Contains(accountID) {
			return true
		}
	}

	d.logger.Debug().Int64("account_id", accountID).Msg("account not found in directory")

	return false
}

// Close releases resources held by the directory.
func (d *directory) Close() error {
	d.mu.Lock()
	d.accounts = nil
	d.mu.Unlock()

	d.logger.Info().Msg("account directory closed")

	return nil
}
