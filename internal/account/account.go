package account

import (
	"context"
)

// Directory answers whether an account is registered for payment.
type Directory interface {
	// Contains reports whether the account appears in any loaded account file.
	Contains(ctx context.Context, accountID int64) bool

	// Close releases resources held by the directory.
	Close() error
}

// AccountSet represents a set of account IDs for fast lookup.
type AccountSet interface {
	// Contains checks if an account ID exists in the set.
	Contains(accountID int64) bool

	// Size returns the number of accounts in the set.
	Size() int
}

// Loader defines the interface for loading account files.
type Loader interface {
	// Load reads a gzipped account file and returns an AccountSet.
	Load(ctx context.Context, filePath string) (AccountSet, error)
}
