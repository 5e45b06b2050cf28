package store

import (
	"github.com/stephen-1-2/Anonymous-Wall/internal/models"
	"gorm.io/gorm"
)

// BoardConfig loads the single persisted configuration row.
func (s *Store) BoardConfig() (*models.BoardConfig, error) {
	var cfg models.BoardConfig
	if err := s.db.First(&cfg).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &cfg, nil
}

// SetBackground records the currently selected background reference.
func (s *Store) SetBackground(ref string) error {
	res := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&models.BoardConfig{}).
		Update("current_background", ref)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
