package db

import (
	"time"

	"gorm.io/datatypes"
)

// StateEntry is a generic key/value row. Application state snapshots are
// stored here as serialized JSON under a well-known key.
type StateEntry struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Client struct {
	ID         uint
	SessionId  string `validate:"required" gorm:"unique;not null"`
	Name       string `validate:"required"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	LastSeenAt *time.Time
	Metadata   datatypes.JSON
}

// StateChange is an append-only log of property mutations, one row per
// setter call that went through the event publisher.
type StateChange struct {
	ID        uint
	SessionId string `gorm:"index"`
	Property  string `validate:"required"`
	Value     datatypes.JSON
	CreatedAt time.Time
}
