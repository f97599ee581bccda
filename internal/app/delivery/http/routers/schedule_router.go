package routers

import (
	"smileworks-service/internal/app/services/core/scheduling"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, schedulingController *scheduling.SchedulingController) {
	router.Route("/schedule/occurrences", func(r chi.Router) {
		r.Get("/", schedulingController.GenerateOccurrences)
		r.Post("/cancel", schedulingController.CancelOccurrence)
		r.Post("/restore", schedulingController.RestoreOccurrence)
		r.Post("/swap", schedulingController.SwapOccurrence)
		r.Post("/reassign", schedulingController.ReassignOccurrence)
	})
}
