package models

import (
	"strconv"
	"time"
)

// Source table and export file for the finished-goods master
const (
	FGMasterTable      = "Cleaned_FG_Master_file"
	FGMasterExportFile = "Cleaned_FG_Master_file_export.csv"
	FGMasterOrderBy    = "sku"
)

// CreatedAtLayout renders created_at as ISO-8601 in UTC at full precision
const CreatedAtLayout = time.RFC3339Nano

// FGMasterColumns are the selected columns, in CSV order
var FGMasterColumns = []string{"sku", "description", "uom", "aging_days", "created_at"}

// FGMasterHeaders are the CSV header labels, one per entry in FGMasterColumns
var FGMasterHeaders = []string{"SKU", "Description", "UOM", "Aging Days", "Created At"}

// WriteOptions says where an export file goes
type WriteOptions struct {
	Directory string
	Filename  string
}

// FGMasterRecord is one row of the Cleaned_FG_Master_file table
type FGMasterRecord struct {
	SKU         string     `gorm:"column:sku"`
	Description *string    `gorm:"column:description"`
	UOM         *string    `gorm:"column:uom"`
	AgingDays   *int64     `gorm:"column:aging_days"`
	CreatedAt   *time.Time `gorm:"column:created_at"`
}

// TableName pins the mixed-case table name so GORM does not pluralize or snake-case it
func (FGMasterRecord) TableName() string {
	return FGMasterTable
}

// CSVRow returns the record's cells in FGMasterHeaders order. NULLs become empty cells.
func (r FGMasterRecord) CSVRow() []string {
	row := []string{r.SKU, "", "", "", ""}
	if r.Description != nil {
		row[1] = *r.Description
	}
	if r.UOM != nil {
		row[2] = *r.UOM
	}
	if r.AgingDays != nil {
		row[3] = strconv.FormatInt(*r.AgingDays, 10)
	}
	if r.CreatedAt != nil {
		row[4] = r.CreatedAt.UTC().Format(CreatedAtLayout)
	}
	return row
}
