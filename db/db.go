package db

import (
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"

	"github.com/carlfranklin/AppStateAuto/db/migrations"
	"github.com/carlfranklin/AppStateAuto/logger"
)

func NewDB(uri string, logDBQueries bool) (*gorm.DB, error) {
	// If the URI carries no options, apply defaults suited to a
	// single-writer app: WAL journaling and a generous busy timeout.
	if !strings.Contains(uri, "?") {
		uri = uri + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"
	}

	gormConfig := &gorm.Config{
		TranslateError: true,
	}
	if logDBQueries {
		gormConfig.Logger = gorm_logger.Default.LogMode(gorm_logger.Info)
	}

	gormDB, err := gorm.Open(sqlite.Open(uri), gormConfig)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to open database")
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	err = migrations.Migrate(gormDB)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to migrate database")
		return nil, err
	}

	// AutoMigrate all core models
	err = gormDB.AutoMigrate(
		&StateEntry{},
		&StateChange{},
		&Client{},
	)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to migrate database models")
		return nil, err
	}

	return gormDB, nil
}

func Stop(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
