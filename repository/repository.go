// Package repository holds the storage ports used by the services and their
// MongoDB, MySQL (gorm) and in-memory adapters.
package repository

import (
	"context"
	"errors"

	"rooms-api/models"
)

// ErrNotFound is returned when an id does not resolve to a stored entity.
var ErrNotFound = errors.New("not found")

type RoomTypeRepository interface {
	Create(ctx context.Context, rt *models.RoomType) error
	List(ctx context.Context) ([]models.RoomType, error)
}

type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	List(ctx context.Context, filter RoomFilter) ([]models.Room, error)
	Get(ctx context.Context, id string) (*models.Room, error)
	// Replace overwrites every writable field of the room and returns the
	// stored result.
	Replace(ctx context.Context, id string, fields models.RoomFields) (*models.Room, error)
	Delete(ctx context.Context, id string) error
}

// RoomFilter selects rooms. Every non-nil field adds a constraint and all
// constraints must hold.
type RoomFilter struct {
	// Search is a case-insensitive regular expression matched against the name.
	Search   *string
	RoomType *string
	MinPrice *float64
	MaxPrice *float64
}
