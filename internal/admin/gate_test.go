package admin

import (
	"testing"

	"github.com/stephen-1-2/Anonymous-Wall/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupGate(t *testing.T) *Gate {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.BoardConfig{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db.Exec("DELETE FROM board_config")
	return NewGate(db)
}

func TestGate_SeedAndVerify(t *testing.T) {
	g := setupGate(t)
	assert.NoError(t, g.Seed("admin123"))

	assert.True(t, g.Verify("admin123"))

	// Exact-match semantics: no prefix, case, or padding variants
	assert.False(t, g.Verify("admin12"))
	assert.False(t, g.Verify("admin1234"))
	assert.False(t, g.Verify("Admin123"))
	assert.False(t, g.Verify("admin123 "))
	assert.False(t, g.Verify(""))
}

func TestGate_SeedDoesNotOverwrite(t *testing.T) {
	g := setupGate(t)
	assert.NoError(t, g.Seed("first-secret"))
	assert.NoError(t, g.Seed("second-secret"))

	assert.True(t, g.Verify("first-secret"))
	assert.False(t, g.Verify("second-secret"))
}

func TestGate_UnseededVerifyFails(t *testing.T) {
	g := setupGate(t)
	assert.False(t, g.Verify("anything"))
}
