package shiftplans

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

type ShiftPlanController struct {
	Log              *zap.Logger
	ShiftPlanUsecase contracts.ShiftPlanUsecase
}

func NewShiftPlanController(logger *zap.Logger, shiftPlanUsecase contracts.ShiftPlanUsecase) *ShiftPlanController {
	return &ShiftPlanController{
		Log:              logger,
		ShiftPlanUsecase: shiftPlanUsecase,
	}
}

func (ctrl *ShiftPlanController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	plans, err := ctrl.ShiftPlanUsecase.FindAllShiftPlans(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ShiftPlanListSuccess, plans)
}

func (ctrl *ShiftPlanController) FindByID(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, constvars.URLParamShiftPlanID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	plan, err := ctrl.ShiftPlanUsecase.FindShiftPlanByID(ctx, planID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ShiftPlanListSuccess, plan)
}

func (ctrl *ShiftPlanController) Upsert(w http.ResponseWriter, r *http.Request) {
	request := &requests.UpsertShiftPlan{}
	if err := utils.ParseAndValidateBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ShiftPlanUsecase.UpsertShiftPlan(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ShiftPlanSaveSuccess, result)
}

func (ctrl *ShiftPlanController) Delete(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, constvars.URLParamShiftPlanID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ShiftPlanUsecase.DeleteShiftPlan(ctx, planID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ShiftPlanDeleteSuccess, nil)
}

func (ctrl *ShiftPlanController) FindSlots(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, constvars.URLParamShiftPlanID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	slots, err := ctrl.ShiftPlanUsecase.FindSlotsByPlanID(ctx, planID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ShiftPlanSlotListSuccess, slots)
}

func (ctrl *ShiftPlanController) UpsertSlot(w http.ResponseWriter, r *http.Request) {
	request := &requests.UpsertShiftPlanSlot{}
	if err := utils.ParseAndValidateBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ShiftPlanUsecase.UpsertShiftPlanSlot(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ShiftPlanSlotSaveSuccess, result)
}

func (ctrl *ShiftPlanController) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, constvars.URLParamShiftPlanSlotID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ShiftPlanUsecase.DeleteShiftPlanSlot(ctx, slotID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ShiftPlanSlotDelSuccess, nil)
}
