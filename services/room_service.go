package services

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"rooms-api/models"
	"rooms-api/repository"
)

type RoomService struct {
	Repo repository.RoomRepository
}

func NewRoomService(repo repository.RoomRepository) *RoomService {
	return &RoomService{Repo: repo}
}

// RoomQuery carries the raw list parameters. A nil field was not sent.
type RoomQuery struct {
	Search   *string
	RoomType *string
	MinPrice *string
	MaxPrice *string
}

func parsePrice(name, raw string) (*float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("cast to Number failed for %s %q: %w", name, raw, err)
	}
	return &v, nil
}

// BuildFilter turns query parameters into a RoomFilter.
//
// Empty search and roomType values are ignored. A price range needs both
// bounds or maxPrice alone; minPrice on its own adds no price constraint.
func (q RoomQuery) BuildFilter() (repository.RoomFilter, error) {
	var f repository.RoomFilter

	if q.Search != nil && *q.Search != "" {
		f.Search = q.Search
	}
	if q.RoomType != nil && *q.RoomType != "" {
		f.RoomType = q.RoomType
	}

	switch {
	case q.MinPrice != nil && q.MaxPrice != nil:
		lo, err := parsePrice("minPrice", *q.MinPrice)
		if err != nil {
			return f, err
		}
		hi, err := parsePrice("maxPrice", *q.MaxPrice)
		if err != nil {
			return f, err
		}
		f.MinPrice, f.MaxPrice = lo, hi
	case q.MaxPrice != nil:
		hi, err := parsePrice("maxPrice", *q.MaxPrice)
		if err != nil {
			return f, err
		}
		f.MaxPrice = hi
	}
	// TODO: confirm whether minPrice alone should become a lower bound; it is
	// ignored to keep existing clients' results unchanged.

	return f, nil
}

func (s *RoomService) Create(ctx context.Context, fields models.RoomFields) (*models.Room, error) {
	room := &models.Room{}
	fields.Apply(room)
	if err := s.Repo.Create(ctx, room); err != nil {
		log.Printf("⬅️ RoomService.Create error: %v", err)
		return nil, err
	}
	return room, nil
}

func (s *RoomService) List(ctx context.Context, q RoomQuery) ([]models.Room, error) {
	filter, err := q.BuildFilter()
	if err != nil {
		return nil, err
	}
	return s.Repo.List(ctx, filter)
}

func (s *RoomService) Get(ctx context.Context, id string) (*models.Room, error) {
	return s.Repo.Get(ctx, id)
}

// Update replaces name, roomType and price together; fields missing from
// the request are cleared.
func (s *RoomService) Update(ctx context.Context, id string, fields models.RoomFields) (*models.Room, error) {
	return s.Repo.Replace(ctx, id, fields)
}

func (s *RoomService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
