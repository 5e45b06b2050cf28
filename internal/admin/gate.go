// Package admin implements the shared-secret gate in front of destructive
// operations. There are no admin accounts; a caller either presents the
// board secret or it does not.
package admin

import (
	"errors"

	"github.com/stephen-1-2/Anonymous-Wall/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Gate verifies a supplied secret against the bcrypt hash stored in the
// board config row. Stateless per call.
type Gate struct {
	db *gorm.DB
}

func NewGate(db *gorm.DB) *Gate {
	return &Gate{db: db}
}

// Seed makes sure the board config row exists, hashing the configured
// secret on first boot. An existing hash is never overwritten, so rotating
// the secret requires resetting the row deliberately.
func (g *Gate) Seed(secret string) error {
	var cfg models.BoardConfig
	err := g.db.First(&cfg).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return g.db.Create(&models.BoardConfig{AdminSecretHash: string(hash)}).Error
}

// Verify reports whether the supplied secret matches the stored one.
// Exact-match semantics: bcrypt comparison accepts no prefix or
// case-insensitive variants. Any storage failure reads as a mismatch.
func (g *Gate) Verify(supplied string) bool {
	if supplied == "" {
		return false
	}
	var cfg models.BoardConfig
	if err := g.db.First(&cfg).Error; err != nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(cfg.AdminSecretHash), []byte(supplied)) == nil
}
