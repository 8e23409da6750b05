package repository

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"github.com/google/uuid"

	"rooms-api/models"
)

// MemoryStore keeps room types and rooms in process memory. It backs the
// memory:// database URL and the HTTP tests.
type MemoryStore struct {
	mu        sync.RWMutex
	roomTypes []models.RoomType
	rooms     map[string]models.Room
	order     []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rooms: make(map[string]models.Room)}
}

func (s *MemoryStore) RoomTypes() RoomTypeRepository { return memoryRoomTypes{s} }

func (s *MemoryStore) Rooms() RoomRepository { return memoryRooms{s} }

type memoryRoomTypes struct{ s *MemoryStore }

func (r memoryRoomTypes) Create(ctx context.Context, rt *models.RoomType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rt.ID = uuid.NewString()
	r.s.roomTypes = append(r.s.roomTypes, *rt)
	return nil
}

func (r memoryRoomTypes) List(ctx context.Context) ([]models.RoomType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.RoomType, len(r.s.roomTypes))
	copy(out, r.s.roomTypes)
	return out, nil
}

type memoryRooms struct{ s *MemoryStore }

func (r memoryRooms) Create(ctx context.Context, room *models.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	room.ID = uuid.NewString()
	r.s.rooms[room.ID] = *room
	r.s.order = append(r.s.order, room.ID)
	return nil
}

func (r memoryRooms) List(ctx context.Context, filter RoomFilter) ([]models.Room, error) {
	var nameRe *regexp.Regexp
	if filter.Search != nil {
		re, err := regexp.Compile("(?i)" + *filter.Search)
		if err != nil {
			return nil, fmt.Errorf("invalid search expression: %w", err)
		}
		nameRe = re
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rooms := make([]models.Room, 0, len(r.s.order))
	for _, id := range r.s.order {
		room := r.s.rooms[id]
		if matchRoom(room, filter, nameRe) {
			rooms = append(rooms, room)
		}
	}
	return rooms, nil
}

// matchRoom mirrors the document database semantics: a constraint on an
// absent field never matches.
func matchRoom(room models.Room, filter RoomFilter, nameRe *regexp.Regexp) bool {
	if nameRe != nil && (room.Name == nil || !nameRe.MatchString(*room.Name)) {
		return false
	}
	if filter.RoomType != nil && (room.RoomType == nil || *room.RoomType != *filter.RoomType) {
		return false
	}
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		if room.Price == nil {
			return false
		}
		if filter.MinPrice != nil && *room.Price < *filter.MinPrice {
			return false
		}
		if filter.MaxPrice != nil && *room.Price > *filter.MaxPrice {
			return false
		}
	}
	return true
}

func (r memoryRooms) Get(ctx context.Context, id string) (*models.Room, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	room, ok := r.s.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &room, nil
}

func (r memoryRooms) Replace(ctx context.Context, id string, fields models.RoomFields) (*models.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	room, ok := r.s.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	fields.Apply(&room)
	r.s.rooms[id] = room
	return &room, nil
}

func (r memoryRooms) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.rooms[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.rooms, id)
	for i, v := range r.s.order {
		if v == id {
			r.s.order = append(r.s.order[:i], r.s.order[i+1:]...)
			break
		}
	}
	return nil
}
