package account

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// mockLoader is a mock implementation of the Loader interface for testing.
type mockLoader struct {
	loadFunc func(ctx context.Context, filePath string) (AccountSet, error)
}

func (m *mockLoader) Load(ctx context.Context, filePath string) (AccountSet, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, filePath)
	}
	return nil, errors.New("not implemented")
}

func setOf(ids ...int64) AccountSet {
	set := NewMapAccountSet(len(ids)).(*mapAccountSet)
	for _, id := range ids {
		set.Add(id)
	}
	return set
}

func TestFallbackLoader_S3Success(t *testing.T) {
	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, filePath string) (AccountSet, error) {
			assert.Equal(t, "accounts/test.gz", filePath, "S3 key should have prefix")
			return setOf(501), nil
		},
	}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, filePath string) (AccountSet, error) {
			t.Error("file loader should not be called when S3 succeeds")
			return nil, errors.New("should not be called")
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "accounts/", true, zerolog.Nop())

	set, err := fallback.Load(context.Background(), "test.gz")
	assert.NoError(t, err)
	assert.True(t, set.Contains(501))
}

func TestFallbackLoader_S3FailsFallsBackToLocal(t *testing.T) {
	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, filePath string) (AccountSet, error) {
			return nil, errors.New("S3 connection failed")
		},
	}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, filePath string) (AccountSet, error) {
			assert.Equal(t, "test.gz", filePath, "local file path should not have prefix")
			return setOf(7), nil
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "accounts/", true, zerolog.Nop())

	set, err := fallback.Load(context.Background(), "test.gz")
	assert.NoError(t, err)
	assert.True(t, set.Contains(7))
}

func TestFallbackLoader_LocalOnly(t *testing.T) {
	tests := []struct {
		name      string
		s3Loader  Loader
		s3Enabled bool
	}{
		{
			name: "S3 disabled",
			s3Loader: &mockLoader{
				loadFunc: func(ctx context.Context, filePath string) (AccountSet, error) {
					t.Error("S3 loader should not be called when S3 is disabled")
					return nil, errors.New("should not be called")
				},
			},
			s3Enabled: false,
		},
		{
			name:      "S3 loader nil",
			s3Loader:  nil,
			s3Enabled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileLoader := &mockLoader{
				loadFunc: func(ctx context.Context, filePath string) (AccountSet, error) {
					return setOf(9), nil
				},
			}

			fallback := NewFallbackLoader(tt.s3Loader, fileLoader, "accounts/", tt.s3Enabled, zerolog.Nop())

			set, err := fallback.Load(context.Background(), "test.gz")
			assert.NoError(t, err)
			assert.True(t, set.Contains(9))
		})
	}
}

func TestFallbackLoader_BothFail(t *testing.T) {
	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, filePath string) (AccountSet, error) {
			return nil, errors.New("S3 error")
		},
	}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, filePath string) (AccountSet, error) {
			return nil, errors.New("file not found")
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "accounts/", true, zerolog.Nop())

	set, err := fallback.Load(context.Background(), "test.gz")
	assert.Error(t, err)
	assert.Nil(t, set)
	assert.Contains(t, err.Error(), "file not found")
}
