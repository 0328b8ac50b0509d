package db

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	appstatedb "github.com/carlfranklin/AppStateAuto/db"
	"github.com/carlfranklin/AppStateAuto/logger"
)

// NewDB creates a migrated sqlite database backed by a file in a
// test-scoped temp directory.
func NewDB(t *testing.T) (*gorm.DB, error) {
	return appstatedb.NewDB(filepath.Join(t.TempDir(), "test.db"), false)
}

func CloseDB(d *gorm.DB) {
	if err := appstatedb.Stop(d); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to close test database")
	}
}
