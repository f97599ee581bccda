package shifttemplates

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

type ShiftTemplateController struct {
	Log                  *zap.Logger
	ShiftTemplateUsecase contracts.ShiftTemplateUsecase
}

func NewShiftTemplateController(logger *zap.Logger, shiftTemplateUsecase contracts.ShiftTemplateUsecase) *ShiftTemplateController {
	return &ShiftTemplateController{
		Log:                  logger,
		ShiftTemplateUsecase: shiftTemplateUsecase,
	}
}

func (ctrl *ShiftTemplateController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	templates, err := ctrl.ShiftTemplateUsecase.FindAllShiftTemplates(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ShiftTemplateListSuccess, templates)
}

func (ctrl *ShiftTemplateController) FindByID(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, constvars.URLParamShiftTemplateID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	template, err := ctrl.ShiftTemplateUsecase.FindShiftTemplateByID(ctx, templateID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ShiftTemplateListSuccess, template)
}

func (ctrl *ShiftTemplateController) Upsert(w http.ResponseWriter, r *http.Request) {
	request := &requests.UpsertShiftTemplate{}
	if err := utils.ParseAndValidateBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ShiftTemplateUsecase.UpsertShiftTemplate(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ShiftTemplateSaveSuccess, result)
}

func (ctrl *ShiftTemplateController) Delete(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, constvars.URLParamShiftTemplateID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ShiftTemplateUsecase.DeleteShiftTemplate(ctx, templateID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ShiftTemplateDelSuccess, nil)
}
