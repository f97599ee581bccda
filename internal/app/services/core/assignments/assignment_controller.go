package assignments

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

type AssignmentController struct {
	Log               *zap.Logger
	AssignmentUsecase contracts.AssignmentUsecase
}

func NewAssignmentController(logger *zap.Logger, assignmentUsecase contracts.AssignmentUsecase) *AssignmentController {
	return &AssignmentController{
		Log:               logger,
		AssignmentUsecase: assignmentUsecase,
	}
}

func (ctrl *AssignmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	providerID := r.URL.Query().Get(constvars.URLQueryParamProviderID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	assignments, err := ctrl.AssignmentUsecase.FindAssignments(ctx, providerID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AssignmentListSuccess, assignments)
}

func (ctrl *AssignmentController) Upsert(w http.ResponseWriter, r *http.Request) {
	request := &requests.UpsertProviderAssignment{}
	if err := utils.ParseAndValidateBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AssignmentUsecase.UpsertAssignment(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AssignmentSaveSuccess, result)
}

func (ctrl *AssignmentController) Delete(w http.ResponseWriter, r *http.Request) {
	assignmentID := chi.URLParam(r, constvars.URLParamAssignmentID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.AssignmentUsecase.DeleteAssignment(ctx, assignmentID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AssignmentDeleteSuccess, nil)
}
