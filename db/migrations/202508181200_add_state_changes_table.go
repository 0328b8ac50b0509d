package migrations

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StateChange maps to the state_changes table
type StateChange struct {
	ID        uint
	SessionId string `gorm:"index"`
	Property  string
	Value     datatypes.JSON
	CreatedAt time.Time
}

var _202508181200_add_state_changes_table = &gormigrate.Migration{
	ID: "202508181200_add_state_changes_table",
	Migrate: func(tx *gorm.DB) error {
		return tx.AutoMigrate(&StateChange{})
	},
	Rollback: func(tx *gorm.DB) error {
		return tx.Migrator().DropTable(&StateChange{})
	},
}
