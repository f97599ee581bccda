package contracts

import (
	"context"
	"smileworks-service/internal/app/models"
	"smileworks-service/internal/pkg/dto/requests"
	"smileworks-service/internal/pkg/dto/responses"
)

type LocationRepository interface {
	FindAll(ctx context.Context) ([]models.Location, error)
	FindByID(ctx context.Context, locationID string) (*models.Location, error)
	Upsert(ctx context.Context, location *models.Location) error
	Delete(ctx context.Context, locationID string) error
}

type LocationUsecase interface {
	FindAllLocations(ctx context.Context) ([]models.Location, error)
	FindLocationByID(ctx context.Context, locationID string) (*models.Location, error)
	UpsertLocation(ctx context.Context, request *requests.UpsertLocation) (*responses.UpsertResult, error)
	DeleteLocation(ctx context.Context, locationID string) error
}
