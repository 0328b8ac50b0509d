package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// Migrate runs the versioned migrations. Each migration defines its own table
// structs so schema history stays frozen even when the live models in the db
// package change. AutoMigrate of the current models runs afterwards, in
// db.NewDB.
func Migrate(gormDB *gorm.DB) error {
	m := gormigrate.New(gormDB, gormigrate.DefaultOptions, []*gormigrate.Migration{
		_202508181200_add_state_changes_table,
	})
	return m.Migrate()
}
