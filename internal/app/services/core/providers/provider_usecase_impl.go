package providers

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"smileworks-service/internal/app/config"
	"smileworks-service/internal/app/contracts"
	"smileworks-service/internal/app/models"
	"smileworks-service/internal/pkg/constvars"
	"smileworks-service/internal/pkg/dto/requests"
	"smileworks-service/internal/pkg/dto/responses"
	"smileworks-service/internal/pkg/exceptions"
	"smileworks-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const photoURLExpiry = 7 * 24 * time.Hour

type providerUsecase struct {
	ProviderRepository contracts.ProviderRepository
	StorageService     contracts.StorageService
	DriverConfig       *config.DriverConfig
	Log                *zap.Logger
}

func NewProviderUsecase(
	providerRepository contracts.ProviderRepository,
	storageService contracts.StorageService,
	driverConfig *config.DriverConfig,
	logger *zap.Logger,
) contracts.ProviderUsecase {
	return &providerUsecase{
		ProviderRepository: providerRepository,
		StorageService:     storageService,
		DriverConfig:       driverConfig,
		Log:                logger,
	}
}

func (uc *providerUsecase) FindAllProviders(ctx context.Context) ([]models.Provider, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("providerUsecase.FindAllProviders called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.ProviderRepository.FindAll(ctx)
}

func (uc *providerUsecase) FindProviderByID(ctx context.Context, providerID string) (*models.Provider, error) {
	provider, err := uc.ProviderRepository.FindByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, exceptions.ErrProviderNotFound(nil, providerID)
	}
	return provider, nil
}

func (uc *providerUsecase) UpsertProvider(ctx context.Context, request *requests.UpsertProvider) (*responses.UpsertResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("providerUsecase.UpsertProvider called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	provider := &models.Provider{
		ID:                request.ID,
		Name:              request.Name,
		Role:              request.Role,
		Bio:               request.Bio,
		PrimaryLocationID: request.PrimaryLocationID,
		PtoCalendarID:     request.PtoCalendarID,
		HolidayCalendarID: request.HolidayCalendarID,
		ShiftPlanIDs:      request.ShiftPlanIDs,
	}
	if provider.ID == "" {
		provider.ID = utils.GenerateEntityID("prov")
	} else {
		// Keep the stored photo when editing other fields.
		existing, err := uc.ProviderRepository.FindByID(ctx, provider.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			provider.PhotoURL = existing.PhotoURL
		}
	}

	if err := uc.ProviderRepository.Upsert(ctx, provider); err != nil {
		uc.Log.Error("providerUsecase.UpsertProvider error persisting provider",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return &responses.UpsertResult{ID: provider.ID}, nil
}

func (uc *providerUsecase) DeleteProvider(ctx context.Context, providerID string) error {
	return uc.ProviderRepository.Delete(ctx, providerID)
}

func (uc *providerUsecase) UploadProviderPhoto(ctx context.Context, providerID string, file multipart.File, fileHeader *multipart.FileHeader) (*responses.ProviderPhoto, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("providerUsecase.UploadProviderPhoto called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
	)

	provider, err := uc.ProviderRepository.FindByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, exceptions.ErrProviderNotFound(nil, providerID)
	}

	fileHeader.Filename = utils.GenerateFileName("provider_photo", providerID, filepath.Ext(fileHeader.Filename))
	objectName, err := uc.StorageService.UploadFile(ctx, file, fileHeader, uc.DriverConfig.Minio.BucketName)
	if err != nil {
		uc.Log.Error("providerUsecase.UploadProviderPhoto error uploading to storage",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	photoURL, err := uc.StorageService.GetObjectUrlWithExpiryTime(ctx, uc.DriverConfig.Minio.BucketName, objectName, photoURLExpiry)
	if err != nil {
		return nil, err
	}

	provider.PhotoURL = photoURL
	if err := uc.ProviderRepository.Upsert(ctx, provider); err != nil {
		return nil, err
	}
	return &responses.ProviderPhoto{PhotoURL: photoURL}, nil
}
