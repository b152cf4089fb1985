package checks

import (
	"fmt"
	"sort"
	"sync"

	"feather/core/database"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// SchemaReport compares a live table with the GORM model that writes to it.
type SchemaReport struct {
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	ExtraColumns   []string `json:"extra_columns"`
}

// CheckSchema verifies that every column of model exists in its table.
func CheckSchema(db *gorm.DB, model any) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	s, err := schema.Parse(model, &sync.Map{}, db.NamingStrategy)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model: %w", err)
	}

	report := &SchemaReport{
		Table:          s.Table,
		Matched:        true,
		MissingColumns: []string{},
		ExtraColumns:   []string{},
	}

	columns, err := database.TableColumns(db, s.Table)
	if err != nil {
		return nil, err
	}

	actual := make(map[string]bool, len(columns))
	for _, col := range columns {
		actual[col.Field] = true
	}

	expected := make(map[string]bool, len(s.DBNames))
	for _, name := range s.DBNames {
		expected[name] = true
		if !actual[name] {
			report.MissingColumns = append(report.MissingColumns, name)
			report.Matched = false
		}
	}
	for name := range actual {
		if !expected[name] {
			report.ExtraColumns = append(report.ExtraColumns, name)
		}
	}
	sort.Strings(report.MissingColumns)
	sort.Strings(report.ExtraColumns)

	return report, nil
}
