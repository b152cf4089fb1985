// Package database opens the optional price history database.
//
// Connect wraps GORM with either the MySQL or the SQLite dialector, applies pool settings and
// verifies the connection with a bounded ping. TableColumns inspects a live table so the integrity
// checks can compare it with the GORM model that writes to it.
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("History disabled", zap.Error(err))
//	}
package database
