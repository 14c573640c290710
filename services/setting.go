package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"resell-dashboard/model"
	"resell-dashboard/utils"
)

var settingColumns = newColumnSet("key", "value", "updated_at")

// SettingService reads and upserts the global key/value settings.
type SettingService struct {
	store
}

// Get returns the value stored under key, or ErrNotFound.
func (s *SettingService) Get(ctx context.Context, key string) (string, error) {
	defer s.observe("get", time.Now())

	var row model.Setting
	// struct conditions keep the reserved "key" column quoted on MySQL
	err := s.db.WithContext(ctx).Where(&model.Setting{Key: key}).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", s.fail("get", err)
	}
	return row.Value, nil
}

// All returns every setting as a map.
func (s *SettingService) All(ctx context.Context) (map[string]string, error) {
	defer s.observe("list", time.Now())

	var rows []model.Setting
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return map[string]string{}, s.fail("list", err)
	}
	settings := make(map[string]string, len(rows))
	for _, r := range rows {
		settings[r.Key] = r.Value
	}
	return settings, nil
}

// Set inserts or replaces the value under key.
func (s *SettingService) Set(ctx context.Context, key, value string) error {
	return s.upsert(s.db.WithContext(ctx), key, value)
}

// SetMany upserts every pair in one transaction.
func (s *SettingService) SetMany(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			if err := s.upsert(tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SettingService) upsert(db *gorm.DB, key, value string) error {
	defer s.observe("upsert", time.Now())

	row := model.Setting{Key: key, Value: value, UpdatedAt: utils.Now()}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return s.fail("upsert", err)
	}
	return nil
}
