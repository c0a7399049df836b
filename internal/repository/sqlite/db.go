package sqlite

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hjss/swim-school/internal/domain"
)

// Open connects to the sqlite database at dsn and migrates the schema.
// The default DSN is an in-memory database, so the whole entity arena lives
// and dies with the process.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// A single connection is mandatory: a second connection to ":memory:"
	// would open a different, empty database.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := db.AutoMigrate(
		&domain.Coach{},
		&domain.Learner{},
		&domain.Lesson{},
		&domain.Booking{},
		&domain.Review{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
