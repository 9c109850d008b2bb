package main

import (
	"compress/gzip"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Generates sample account files for the payment gateway's account directory.
// accounts1.gz holds IDs 1-500 and accounts2.gz holds IDs 1000-1499. A few
// malformed lines are mixed in so the loader's skip path can be seen in the logs.
func main() {
	dataDir := flag.String("dir", "data/accounts", "directory to write the account files to")
	flag.Parse()

	if err := os.MkdirAll(*dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	files := []struct {
		name  string
		first int64
		count int
	}{
		{name: "accounts1.gz", first: 1, count: 500},
		{name: "accounts2.gz", first: 1000, count: 500},
	}

	for _, f := range files {
		filePath := filepath.Join(*dataDir, f.name)

		lines := make([]string, 0, f.count+3)
		for i := 0; i < f.count; i++ {
			lines = append(lines, fmt.Sprintf("%d", f.first+int64(i)))
		}
		// Skipped by the loader
		lines = append(lines, "", "not-an-account", "-7")

		if err := createAccountFile(filePath, lines); err != nil {
			log.Fatalf("Failed to create %s: %v", f.name, err)
		}

		fmt.Printf("Created %s with %d accounts (%d-%d)\n", filePath, f.count, f.first, f.first+int64(f.count)-1)
	}

	fmt.Println("\nSample account files created successfully!")
	fmt.Println("Start the server with ACCOUNTS_ENABLED=true to use them.")
}

func createAccountFile(filePath string, lines []string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	for _, line := range lines {
		if _, err := fmt.Fprintf(gzipWriter, "%s\n", line); err != nil {
			return fmt.Errorf("failed to write account: %w", err)
		}
	}

	return nil
}
