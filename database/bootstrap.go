package database

import (
	"github.com/glebarez/sqlite" // CGO-free driver
	"github.com/rotisserie/eris"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
)

// Models lists every table the service owns, in seed order.
func Models() []any {
	return []any{
		&entities.CropData{},
		&entities.WeatherData{},
		&entities.SoilData{},
		&entities.PestDisease{},
		&entities.AdvisoryRecommendation{},
	}
}

// OpenSQLite opens (or creates) the database at path and migrates the schema.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, eris.Wrapf(err, "database: open %s", path)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, eris.Wrap(err, "database: sql handle")
	}
	// sqlite allows one writer; a single connection keeps :memory: databases shared too
	sqlDB.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	} {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, eris.Wrapf(err, "database: %s", pragma)
		}
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		return nil, eris.Wrap(err, "database: automigrate")
	}
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return eris.Wrap(err, "database: sql handle")
	}
	return sqlDB.Close()
}
