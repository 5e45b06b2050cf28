// Package store is the counter-consistent aggregate store for the wall:
// messages, likes, and comments, plus the operations that keep the
// denormalized like/comment counters in lockstep with the child rows.
//
// The store wraps an injected *gorm.DB; it owns no globals and no
// background tasks. Every mutating operation is confined to a single
// transaction on a single entity.
package store

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors surfaced to the HTTP layer. Anything else coming out of
// the store is an infrastructure failure and should be reported as storage
// unavailable, not as an empty result.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrUnsupportedMedia = errors.New("unsupported media type")
	ErrTooLarge         = errors.New("payload too large")
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for migrations and one-off tooling.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
