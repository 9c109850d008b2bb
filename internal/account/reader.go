package account

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// initialSetCapacity is the number of entries pre-allocated for each account file.
const initialSetCapacity = 1 << 16

// readResult summarises a parsed account file.
type readResult struct {
	set     *mapAccountSet
	skipped int
}

// readAccounts parses a gzipped stream holding one account ID per line.
// Blank lines are ignored; lines that are not positive integers are skipped and counted.
func readAccounts(ctx context.Context, r io.Reader) (*readResult, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	set := NewMapAccountSet(initialSetCapacity).(*mapAccountSet)
	result := &readResult{set: set}

	scanner := bufio.NewScanner(gzipReader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineCount := 0
	for scanner.Scan() {
		// Check context cancellation periodically
		if lineCount%100_000 == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}
		lineCount++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		id, err := strconv.ParseInt(line, 10, 64)
		if err != nil || id <= 0 {
			result.skipped++
			continue
		}
		set.Add(id)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading account file: %w", err)
	}

	return result, nil
}
