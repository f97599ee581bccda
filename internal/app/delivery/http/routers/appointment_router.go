package routers

import (
	"fmt"
	"smileworks-service/internal/app/services/core/appointments"
	"smileworks-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentAdminRoutes(router chi.Router, appointmentController *appointments.AppointmentController) {
	router.Route("/appointments", func(r chi.Router) {
		r.Get(fmt.Sprintf("/{%s}", constvars.URLParamAppointmentID), appointmentController.FindByID)
		r.Post(fmt.Sprintf("/{%s}/cancel", constvars.URLParamAppointmentID), appointmentController.Cancel)
	})
}
