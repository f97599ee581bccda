package locations

import (
	"context"
	"net/http"
	"smileworks-service/internal/app/contracts"
	"smileworks-service/internal/pkg/constvars"
	"smileworks-service/internal/pkg/dto/requests"
	"smileworks-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type LocationController struct {
	Log             *zap.Logger
	LocationUsecase contracts.LocationUsecase
}

func NewLocationController(logger *zap.Logger, locationUsecase contracts.LocationUsecase) *LocationController {
	return &LocationController{
		Log:             logger,
		LocationUsecase: locationUsecase,
	}
}

func (ctrl *LocationController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	locations, err := ctrl.LocationUsecase.FindAllLocations(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LocationListSuccess, locations)
}

func (ctrl *LocationController) FindByID(w http.ResponseWriter, r *http.Request) {
	locationID := chi.URLParam(r, constvars.URLParamLocationID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	location, err := ctrl.LocationUsecase.FindLocationByID(ctx, locationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LocationListSuccess, location)
}

func (ctrl *LocationController) Upsert(w http.ResponseWriter, r *http.Request) {
	request := &requests.UpsertLocation{}
	if err := utils.ParseAndValidateBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.LocationUsecase.UpsertLocation(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LocationUpsertSuccess, result)
}

func (ctrl *LocationController) Delete(w http.ResponseWriter, r *http.Request) {
	locationID := chi.URLParam(r, constvars.URLParamLocationID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.LocationUsecase.DeleteLocation(ctx, locationID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LocationDeleteSuccess, nil)
}
