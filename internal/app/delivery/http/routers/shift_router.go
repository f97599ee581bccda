package routers

import (
	"fmt"
	"smileworks-service/internal/app/services/core/assignments"
	"smileworks-service/internal/app/services/core/shiftplans"
	"smileworks-service/internal/app/services/core/shifttemplates"
	"smileworks-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachShiftRoutes(
	router chi.Router,
	shiftTemplateController *shifttemplates.ShiftTemplateController,
	shiftPlanController *shiftplans.ShiftPlanController,
	assignmentController *assignments.AssignmentController,
) {
	router.Route("/shift-templates", func(r chi.Router) {
		r.Get("/", shiftTemplateController.FindAll)
		r.Post("/", shiftTemplateController.Upsert)
		r.Get(fmt.Sprintf("/{%s}", constvars.URLParamShiftTemplateID), shiftTemplateController.FindByID)
		r.Delete(fmt.Sprintf("/{%s}", constvars.URLParamShiftTemplateID), shiftTemplateController.Delete)
	})

	router.Route("/shift-plans", func(r chi.Router) {
		r.Get("/", shiftPlanController.FindAll)
		r.Post("/", shiftPlanController.Upsert)
		r.Get(fmt.Sprintf("/{%s}", constvars.URLParamShiftPlanID), shiftPlanController.FindByID)
		r.Delete(fmt.Sprintf("/{%s}", constvars.URLParamShiftPlanID), shiftPlanController.Delete)
		r.Get(fmt.Sprintf("/{%s}/slots", constvars.URLParamShiftPlanID), shiftPlanController.FindSlots)
		r.Post("/slots", shiftPlanController.UpsertSlot)
		r.Delete(fmt.Sprintf("/slots/{%s}", constvars.URLParamShiftPlanSlotID), shiftPlanController.DeleteSlot)
	})

	router.Route("/assignments", func(r chi.Router) {
		r.Get("/", assignmentController.FindAll)
		r.Post("/", assignmentController.Upsert)
		r.Delete(fmt.Sprintf("/{%s}", constvars.URLParamAssignmentID), assignmentController.Delete)
	})
}
