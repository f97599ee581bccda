package contracts

import (
	"context"
	"mime/multipart"
	"smileworks-service/internal/app/models"
	"smileworks-service/internal/pkg/dto/requests"
	"smileworks-service/internal/pkg/dto/responses"
)

type ProviderRepository interface {
	FindAll(ctx context.Context) ([]models.Provider, error)
	FindByID(ctx context.Context, providerID string) (*models.Provider, error)
	Upsert(ctx context.Context, provider *models.Provider) error
	Delete(ctx context.Context, providerID string) error
}

type ProviderUsecase interface {
	FindAllProviders(ctx context.Context) ([]models.Provider, error)
	FindProviderByID(ctx context.Context, providerID string) (*models.Provider, error)
	UpsertProvider(ctx context.Context, request *requests.UpsertProvider) (*responses.UpsertResult, error)
	DeleteProvider(ctx context.Context, providerID string) error
	UploadProviderPhoto(ctx context.Context, providerID string, file multipart.File, fileHeader *multipart.FileHeader) (*responses.ProviderPhoto, error)
}
