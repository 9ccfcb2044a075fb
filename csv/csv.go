package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"fgexport/models"
)

// WriteToCSV writes headers followed by data to options.Directory/options.Filename,
// truncating any existing file. It returns the file path and its size in bytes.
// On failure the partially written file is removed.
func WriteToCSV(data [][]string, headers []string, options models.WriteOptions) (path string, size int64, err error) {
	// Create directory if it doesn't exist
	if options.Directory != "" {
		if err := os.MkdirAll(options.Directory, 0755); err != nil {
			return "", 0, fmt.Errorf("error creating directory: %w", err)
		}
	}

	filename := options.Filename
	if filepath.Ext(filename) != ".csv" {
		filename = filename + ".csv"
	}
	fullPath := filepath.Join(options.Directory, filename)

	file, err := os.Create(fullPath)
	if err != nil {
		return "", 0, fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing CSV file: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(fullPath)
			path, size = "", 0
		}
	}()

	writer := csv.NewWriter(file)

	if len(headers) > 0 {
		if err := writer.Write(headers); err != nil {
			return "", 0, fmt.Errorf("error writing headers to CSV: %w", err)
		}
	}

	// WriteAll flushes
	if err := writer.WriteAll(data); err != nil {
		return "", 0, fmt.Errorf("error writing data to CSV: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		return "", 0, fmt.Errorf("error reading CSV file size: %w", err)
	}

	return fullPath, info.Size(), nil
}

// ReadCSV reads data from a CSV file
func ReadCSV(filePath string) ([][]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV file: %w", err)
	}

	return records, nil
}
