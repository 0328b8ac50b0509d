package persist

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/carlfranklin/AppStateAuto/db"
)

type GormKVStore struct {
	db *gorm.DB
}

func NewGormKVStore(gormDB *gorm.DB) *GormKVStore {
	return &GormKVStore{db: gormDB}
}

func (s *GormKVStore) Read(key string) ([]byte, error) {
	var entry db.StateEntry
	// Use Find instead of First to avoid "record not found" logs which are annoying for a KV store
	result := s.db.Where("key = ?", key).Find(&entry)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to read key %s: %w", key, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return entry.Value, nil
}

func (s *GormKVStore) Write(key string, data []byte) error {
	entry := db.StateEntry{
		Key:   key,
		Value: data,
	}
	// Upsert
	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry)

	if result.Error != nil {
		return fmt.Errorf("failed to write key %s: %w", key, result.Error)
	}
	return nil
}
