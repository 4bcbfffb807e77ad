// Package database handles the run-history database connection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL connections based on the application's configuration. The database is
// optional: when it is unreachable, comparison runs still work, they just
// aren't recorded.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Run history disabled", zap.Error(err))
//	}
package database
