// Package exporter runs the finished-goods master export: fetch the whole
// table in SKU order and write it to a CSV file.
package exporter

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"gorm.io/gorm"

	"fgexport/csv"
	"fgexport/database"
	"fgexport/logger"
	"fgexport/models"
)

// ErrEmptyTable is returned when the query succeeds but yields no rows
var ErrEmptyTable = errors.New("table is empty")

// ConnectFunc opens the database connection for a run
type ConnectFunc func(database.Config) (*gorm.DB, error)

// Result describes a finished export
type Result struct {
	Records  int
	Filename string
	Path     string // absolute
	Size     int64  // bytes
}

// SizeKB returns the file size in kilobytes
func (r *Result) SizeKB() float64 {
	return float64(r.Size) / 1024
}

// Fetch loads every row of the master table into memory, ordered by SKU
func Fetch(ctx context.Context, db *gorm.DB) ([]models.FGMasterRecord, error) {
	var records []models.FGMasterRecord
	err := db.WithContext(ctx).
		Select(models.FGMasterColumns).
		Order(models.FGMasterOrderBy).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("error querying %s: %w", models.FGMasterTable, err)
	}
	return records, nil
}

// Export fetches the table and writes it to options. An empty table returns
// ErrEmptyTable and leaves any existing output file untouched. The returned
// Result carries the record count whenever the fetch succeeded.
func Export(ctx context.Context, db *gorm.DB, options models.WriteOptions) (*Result, error) {
	log := logger.WithComponent("exporter")

	records, err := Fetch(ctx, db)
	if err != nil {
		return nil, err
	}
	result := &Result{Records: len(records)}
	log.Debug().Int("records", result.Records).Msg("fetched table")

	if len(records) == 0 {
		return result, ErrEmptyTable
	}

	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = rec.CSVRow()
	}

	path, size, err := csv.WriteToCSV(rows, models.FGMasterHeaders, options)
	if err != nil {
		return result, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	result.Filename = filepath.Base(path)
	result.Path = absPath
	result.Size = size

	log.Debug().Str("path", absPath).Int64("bytes", size).Msg("wrote export")
	return result, nil
}

// Run performs one complete export against cfg and reports each step to rep.
// The connection is closed on every path once it has been opened.
func Run(ctx context.Context, cfg database.Config, options models.WriteOptions, connect ConnectFunc, rep *Reporter) (*Result, error) {
	log := logger.WithComponent("exporter")

	rep.Connecting(cfg)
	db, err := connect(cfg)
	if err != nil {
		rep.Failure(err)
		return nil, err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn().Err(err).Msg("error closing database connection")
		}
		rep.Closed()
	}()

	rep.Connected()
	rep.Downloading(models.FGMasterTable)

	result, err := Export(ctx, db, options)
	if result != nil {
		rep.Fetched(result.Records)
	}
	switch {
	case errors.Is(err, ErrEmptyTable):
		rep.Empty()
		return result, err
	case err != nil:
		rep.Failure(err)
		return result, err
	}

	rep.Success(result)
	return result, nil
}
