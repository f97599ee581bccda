package scheduling

import (
	"context"
	"net/http"
	"smileworks-service/internal/app/contracts"
	"smileworks-service/internal/pkg/constvars"
	"smileworks-service/internal/pkg/dto/requests"
	"smileworks-service/internal/pkg/exceptions"
	"smileworks-service/internal/pkg/utils"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type SchedulingController struct {
	Log               *zap.Logger
	SchedulingUsecase contracts.SchedulingUsecase
}

func NewSchedulingController(logger *zap.Logger, schedulingUsecase contracts.SchedulingUsecase) *SchedulingController {
	return &SchedulingController{
		Log:               logger,
		SchedulingUsecase: schedulingUsecase,
	}
}

func (ctrl *SchedulingController) AvailableSlots(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	durationMinutes, _ := strconv.Atoi(query.Get(constvars.URLQueryParamDuration))

	request := &requests.AvailabilityQuery{
		ProviderID:      query.Get(constvars.URLQueryParamProviderID),
		Date:            query.Get(constvars.URLQueryParamDate),
		DurationMinutes: durationMinutes,
		LocationID:      query.Get(constvars.URLQueryParamLocationID),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	slots, err := ctrl.SchedulingUsecase.AvailableSlots(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvailableSlotsSuccess, slots)
}

func (ctrl *SchedulingController) MonthAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	year, _ := strconv.Atoi(query.Get(constvars.URLQueryParamYear))
	month, _ := strconv.Atoi(query.Get(constvars.URLQueryParamMonth))
	durationMinutes, _ := strconv.Atoi(query.Get(constvars.URLQueryParamDuration))

	request := &requests.MonthAvailabilityQuery{
		ProviderID:      query.Get(constvars.URLQueryParamProviderID),
		Year:            year,
		Month:           month,
		DurationMinutes: durationMinutes,
		LocationID:      query.Get(constvars.URLQueryParamLocationID),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	days, err := ctrl.SchedulingUsecase.MonthAvailability(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MonthAvailabilitySuccess, days)
}

func (ctrl *SchedulingController) GenerateOccurrences(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	request := &requests.OccurrenceQuery{
		From:       query.Get(constvars.URLQueryParamFrom),
		To:         query.Get(constvars.URLQueryParamTo),
		ProviderID: query.Get(constvars.URLQueryParamProviderID),
		LocationID: query.Get(constvars.URLQueryParamLocationID),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	occurrences, err := ctrl.SchedulingUsecase.GenerateOccurrences(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OccurrenceListSuccess, occurrences)
}

func (ctrl *SchedulingController) CancelOccurrence(w http.ResponseWriter, r *http.Request) {
	request := &requests.CancelOccurrence{}
	if err := utils.ParseAndValidateBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	occurrence, err := ctrl.SchedulingUsecase.CancelOccurrence(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OccurrenceCancelSuccess, occurrence)
}

func (ctrl *SchedulingController) RestoreOccurrence(w http.ResponseWriter, r *http.Request) {
	request := &requests.RestoreOccurrence{}
	if err := utils.ParseAndValidateBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	occurrence, err := ctrl.SchedulingUsecase.RestoreOccurrence(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OccurrenceRestoreSuccess, occurrence)
}

func (ctrl *SchedulingController) SwapOccurrence(w http.ResponseWriter, r *http.Request) {
	request := &requests.SwapOccurrence{}
	if err := utils.ParseAndValidateBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	occurrence, err := ctrl.SchedulingUsecase.SwapOccurrence(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OccurrenceSwapSuccess, occurrence)
}

func (ctrl *SchedulingController) ReassignOccurrence(w http.ResponseWriter, r *http.Request) {
	request := &requests.ReassignOccurrence{}
	if err := utils.ParseAndValidateBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	occurrence, err := ctrl.SchedulingUsecase.ReassignOccurrence(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OccurrenceMoveSuccess, occurrence)
}
