package models

import "time"

// BoardConfig is the single persisted configuration row: the admin secret
// hash and the currently selected background. Seeded at startup, mutated by
// the background picker.
type BoardConfig struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	AdminSecretHash   string    `gorm:"type:varchar(255);not null" json:"-"`
	CurrentBackground string    `gorm:"type:varchar(512)" json:"currentBackground"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (BoardConfig) TableName() string {
	return "board_config"
}
