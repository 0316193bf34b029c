package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot is one persisted collection.
type Slot struct {
	Key       string `gorm:"column:slot_key;primaryKey;type:varchar(64)"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

// GORMSlotStore is a GORM implementation of SlotStore.
type GORMSlotStore struct {
	db *gorm.DB
}

// NewGORMSlotStore creates a new instance of GORMSlotStore and migrates the
// slots table.
func NewGORMSlotStore(db *gorm.DB) (*GORMSlotStore, error) {
	if err := db.AutoMigrate(&Slot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate slots table: %w", err)
	}
	return &GORMSlotStore{
		db: db,
	}, nil
}

// Load retrieves the value stored under key from the database.
func (s *GORMSlotStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var slot Slot
	if err := s.db.WithContext(ctx).First(&slot, "slot_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load slot %s: %w", key, err)
	}
	return []byte(slot.Value), true, nil
}

// Save upserts the value stored under key.
func (s *GORMSlotStore) Save(ctx context.Context, key string, value []byte) error {
	slot := Slot{Key: key, Value: string(value), UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&slot).Error
	if err != nil {
		return fmt.Errorf("failed to save slot %s: %w", key, err)
	}
	return nil
}
