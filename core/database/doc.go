// Package database handles connections to the font registry database.
//
// It provides a wrapper around GORM that configures MySQL or SQLite
// connections based on the application's configuration. The registry stores
// previously scanned font metadata and backs both the database enumeration
// provider and the verify feature.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
