package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// InMemoryDSN keeps the whole store inside the process. The shared cache is
// required because gorm pools connections and a plain ":memory:" DSN would
// give every pooled connection its own empty database.
const InMemoryDSN = "file::memory:?cache=shared"

// NewGormConnection opens a gorm handle over the pure-Go SQLite driver.
// An empty dsn selects the in-memory database, which is the normal mode:
// the catalog lives for the lifetime of the process and is discarded at exit.
func NewGormConnection(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = InMemoryDSN
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// A single connection keeps the shared in-memory database alive for the
	// whole process and serializes access the same way the original
	// single-threaded event loop did.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return db, nil
}
