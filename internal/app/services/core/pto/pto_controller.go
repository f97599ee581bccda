package pto

import (
	"context"
	"net/http"
	"smileworks-service/internal/app/contracts"
	"smileworks-service/internal/pkg/constvars"
	"smileworks-service/internal/pkg/dto/requests"
	"smileworks-service/internal/pkg/exceptions"
	"smileworks-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PtoController struct {
	Log        *zap.Logger
	PtoUsecase contracts.PtoUsecase
}

func NewPtoController(logger *zap.Logger, ptoUsecase contracts.PtoUsecase) *PtoController {
	return &PtoController{
		Log:        logger,
		PtoUsecase: ptoUsecase,
	}
}

func (ctrl *PtoController) FindByCalendar(w http.ResponseWriter, r *http.Request) {
	calendarID := r.URL.Query().Get(constvars.URLQueryParamCalendarID)
	if calendarID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLQueryParamCalendarID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	entries, err := ctrl.PtoUsecase.FindPtoEntries(ctx, calendarID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PtoListSuccess, entries)
}

func (ctrl *PtoController) Upsert(w http.ResponseWriter, r *http.Request) {
	request := &requests.UpsertPtoEntry{}
	if err := utils.ParseAndValidateBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PtoUsecase.UpsertPtoEntry(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PtoUpsertSuccess, result)
}

func (ctrl *PtoController) Delete(w http.ResponseWriter, r *http.Request) {
	ptoEntryID := chi.URLParam(r, constvars.URLParamPtoEntryID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.PtoUsecase.DeletePtoEntry(ctx, ptoEntryID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PtoDeleteSuccess, nil)
}
