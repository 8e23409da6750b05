package services

import (
	"context"
	"log"

	"rooms-api/models"
	"rooms-api/repository"
)

type RoomTypeService struct {
	Repo repository.RoomTypeRepository
}

func NewRoomTypeService(repo repository.RoomTypeRepository) *RoomTypeService {
	return &RoomTypeService{Repo: repo}
}

// Create stores a room type. An empty or absent name is accepted.
func (s *RoomTypeService) Create(ctx context.Context, name *string) (*models.RoomType, error) {
	rt := &models.RoomType{Name: name}
	if err := s.Repo.Create(ctx, rt); err != nil {
		log.Printf("⬅️ RoomTypeService.Create error: %v", err)
		return nil, err
	}
	return rt, nil
}

func (s *RoomTypeService) List(ctx context.Context) ([]models.RoomType, error) {
	return s.Repo.List(ctx)
}
