package repository

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"rooms-api/models"
)

// GormStore implements the repositories on a relational database through gorm.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// Migrate creates or updates the room_types and rooms tables.
func (s *GormStore) Migrate() error {
	return s.DB.AutoMigrate(&models.RoomType{}, &models.Room{})
}

func (s *GormStore) RoomTypes() RoomTypeRepository { return gormRoomTypes{db: s.DB} }

func (s *GormStore) Rooms() RoomRepository { return gormRooms{db: s.DB} }

type gormRoomTypes struct {
	db *gorm.DB
}

func (r gormRoomTypes) Create(ctx context.Context, rt *models.RoomType) error {
	rt.ID = ""
	return r.db.WithContext(ctx).Create(rt).Error
}

func (r gormRoomTypes) List(ctx context.Context) ([]models.RoomType, error) {
	var types []models.RoomType
	err := r.db.WithContext(ctx).Find(&types).Error
	return types, err
}

type gormRooms struct {
	db *gorm.DB
}

func (r gormRooms) Create(ctx context.Context, room *models.Room) error {
	room.ID = ""
	return r.db.WithContext(ctx).Create(room).Error
}

// roomFilterScope translates a RoomFilter into WHERE clauses.
func roomFilterScope(filter RoomFilter) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if filter.Search != nil {
			tx = tx.Where("REGEXP_LIKE(name, ?, 'i')", *filter.Search)
		}
		if filter.RoomType != nil {
			tx = tx.Where("room_type = ?", *filter.RoomType)
		}
		if filter.MinPrice != nil {
			tx = tx.Where("price >= ?", *filter.MinPrice)
		}
		if filter.MaxPrice != nil {
			tx = tx.Where("price <= ?", *filter.MaxPrice)
		}
		return tx
	}
}

func (r gormRooms) List(ctx context.Context, filter RoomFilter) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.WithContext(ctx).Scopes(roomFilterScope(filter)).Find(&rooms).Error
	return rooms, err
}

func (r gormRooms) Get(ctx context.Context, id string) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r gormRooms) Replace(ctx context.Context, id string, fields models.RoomFields) (*models.Room, error) {
	// A map is used so nil fields are written as NULL instead of being skipped.
	updates := map[string]interface{}{
		"name":      fields.Name,
		"room_type": fields.RoomType,
		"price":     fields.Price,
	}
	result := r.db.WithContext(ctx).Model(&models.Room{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		log.Printf("❌ Update Error for Room %s: %v", id, result.Error)
		return nil, result.Error
	}
	// Requires clientFoundRows on the DSN: matched rows, not changed rows.
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.Get(ctx, id)
}

func (r gormRooms) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Room{})
	if result.Error != nil {
		log.Printf("❌ DB Error during deletion (ID: %s): %v", id, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
