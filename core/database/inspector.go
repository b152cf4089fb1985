package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Column is one column of a live table, with lower-cased name and type.
type Column struct {
	Field string
	Type  string
	Null  string
	Key   string
	// Default is nil when the column default is NULL.
	Default *string
	Extra   string
}

// TableColumns returns the columns of tableName. A missing table yields no columns on sqlite
// and an error on mysql.
func TableColumns(db *gorm.DB, tableName string) ([]Column, error) {
	if db.Dialector.Name() == DriverSQLite {
		return sqliteColumns(db, tableName)
	}

	var columns []Column
	if err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	for i := range columns {
		columns[i].Field = strings.ToLower(columns[i].Field)
		columns[i].Type = strings.ToLower(columns[i].Type)
	}
	return columns, nil
}

func sqliteColumns(db *gorm.DB, tableName string) ([]Column, error) {
	type pragmaColumn struct {
		Cid       int
		Name      string
		Type      string
		Notnull   int
		DfltValue *string
		Pk        int
	}

	var rows []pragmaColumn
	if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}

	columns := make([]Column, 0, len(rows))
	for _, row := range rows {
		col := Column{
			Field:   strings.ToLower(row.Name),
			Type:    strings.ToLower(row.Type),
			Null:    "YES",
			Default: row.DfltValue,
		}
		if row.Notnull == 1 {
			col.Null = "NO"
		}
		if row.Pk > 0 {
			col.Key = "PRI"
		}
		columns = append(columns, col)
	}
	return columns, nil
}
