package locations

import (
	"context"
	"smileworks-service/internal/app/contracts"
	"smileworks-service/internal/app/models"
	"smileworks-service/internal/pkg/constvars"
	"smileworks-service/internal/pkg/dto/requests"
	"smileworks-service/internal/pkg/dto/responses"
	"smileworks-service/internal/pkg/exceptions"
	"smileworks-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type locationUsecase struct {
	LocationRepository contracts.LocationRepository
	Log                *zap.Logger
}

func NewLocationUsecase(
	locationRepository contracts.LocationRepository,
	logger *zap.Logger,
) contracts.LocationUsecase {
	return &locationUsecase{
		LocationRepository: locationRepository,
		Log:                logger,
	}
}

func (uc *locationUsecase) FindAllLocations(ctx context.Context) ([]models.Location, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("locationUsecase.FindAllLocations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.LocationRepository.FindAll(ctx)
}

func (uc *locationUsecase) FindLocationByID(ctx context.Context, locationID string) (*models.Location, error) {
	location, err := uc.LocationRepository.FindByID(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, exceptions.ErrLocationNotFound(nil, locationID)
	}
	return location, nil
}

func (uc *locationUsecase) UpsertLocation(ctx context.Context, request *requests.UpsertLocation) (*responses.UpsertResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("locationUsecase.UpsertLocation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	location := &models.Location{
		ID:       request.ID,
		Name:     request.Name,
		Address:  request.Address,
		Phone:    request.Phone,
		Timezone: request.Timezone,
	}
	if location.ID == "" {
		location.ID = utils.GenerateEntityID("loc")
	}

	if err := uc.LocationRepository.Upsert(ctx, location); err != nil {
		uc.Log.Error("locationUsecase.UpsertLocation error persisting location",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return &responses.UpsertResult{ID: location.ID}, nil
}

func (uc *locationUsecase) DeleteLocation(ctx context.Context, locationID string) error {
	return uc.LocationRepository.Delete(ctx, locationID)
}
