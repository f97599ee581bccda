package providers

import (
	"context"
	"fmt"
	"net/http"
	"smileworks-service/internal/app/config"
	"smileworks-service/internal/app/contracts"
	"smileworks-service/internal/pkg/constvars"
	"smileworks-service/internal/pkg/dto/requests"
	"smileworks-service/internal/pkg/exceptions"
	"smileworks-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProviderController struct {
	Log             *zap.Logger
	ProviderUsecase contracts.ProviderUsecase
	InternalConfig  *config.InternalConfig
}

func NewProviderController(logger *zap.Logger, providerUsecase contracts.ProviderUsecase, internalConfig *config.InternalConfig) *ProviderController {
	return &ProviderController{
		Log:             logger,
		ProviderUsecase: providerUsecase,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *ProviderController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	providers, err := ctrl.ProviderUsecase.FindAllProviders(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProviderListSuccess, providers)
}

func (ctrl *ProviderController) FindByID(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, constvars.URLParamProviderID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	provider, err := ctrl.ProviderUsecase.FindProviderByID(ctx, providerID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProviderGetSuccess, provider)
}

func (ctrl *ProviderController) Upsert(w http.ResponseWriter, r *http.Request) {
	request := &requests.UpsertProvider{}
	if err := utils.ParseAndValidateBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ProviderUsecase.UpsertProvider(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProviderUpsertSuccess, result)
}

func (ctrl *ProviderController) Delete(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, constvars.URLParamProviderID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ProviderUsecase.DeleteProvider(ctx, providerID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProviderDeleteSuccess, nil)
}

func (ctrl *ProviderController) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, constvars.URLParamProviderID)

	maxUploadSize := int64(ctrl.InternalConfig.App.PhotoMaxUploadSizeInMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(fmt.Errorf("multipart form exceeds %dMB: %w", ctrl.InternalConfig.App.PhotoMaxUploadSizeInMB, err)))
		return
	}

	file, fileHeader, err := r.FormFile("photo")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, uploadErr := ctrl.ProviderUsecase.UploadProviderPhoto(ctx, providerID, file, fileHeader)
	if uploadErr != nil {
		utils.BuildErrorResponse(ctrl.Log, w, uploadErr)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProviderPhotoSuccess, result)
}
