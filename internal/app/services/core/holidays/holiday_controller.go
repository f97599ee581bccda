package holidays

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

type HolidayController struct {
	Log            *zap.Logger
	HolidayUsecase contracts.HolidayUsecase
}

func NewHolidayController(logger *zap.Logger, holidayUsecase contracts.HolidayUsecase) *HolidayController {
	return &HolidayController{
		Log:            logger,
		HolidayUsecase: holidayUsecase,
	}
}

func (ctrl *HolidayController) FindByCalendar(w http.ResponseWriter, r *http.Request) {
	calendarID := r.URL.Query().Get(constvars.URLQueryParamCalendarID)
	if calendarID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLQueryParamCalendarID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	holidayDates, err := ctrl.HolidayUsecase.FindHolidayDates(ctx, calendarID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HolidayListSuccess, holidayDates)
}

func (ctrl *HolidayController) Upsert(w http.ResponseWriter, r *http.Request) {
	request := &requests.UpsertHolidayDate{}
	if err := utils.ParseAndValidateBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.HolidayUsecase.UpsertHolidayDate(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HolidayUpsertSuccess, result)
}

func (ctrl *HolidayController) Delete(w http.ResponseWriter, r *http.Request) {
	holidayDateID := chi.URLParam(r, constvars.URLParamHolidayDateID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.HolidayUsecase.DeleteHolidayDate(ctx, holidayDateID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HolidayDeleteSuccess, nil)
}
