package routers

import (
	"fmt"
	"smileworks-service/internal/app/services/core/appointments"
	"smileworks-service/internal/app/services/core/locations"
	"smileworks-service/internal/app/services/core/providers"
	"smileworks-service/internal/app/services/core/scheduling"
	"smileworks-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

// Public surface: the patient-facing booking flow reads the catalog,
// checks availability and books an appointment without authentication.
func attachPublicRoutes(
	router chi.Router,
	locationController *locations.LocationController,
	providerController *providers.ProviderController,
	schedulingController *scheduling.SchedulingController,
	appointmentController *appointments.AppointmentController,
) {
	router.Route("/locations", func(r chi.Router) {
		r.Get("/", locationController.FindAll)
		r.Get(fmt.Sprintf("/{%s}", constvars.URLParamLocationID), locationController.FindByID)
	})

	router.Route("/providers", func(r chi.Router) {
		r.Get("/", providerController.FindAll)
		r.Get(fmt.Sprintf("/{%s}", constvars.URLParamProviderID), providerController.FindByID)
	})

	router.Route("/availability", func(r chi.Router) {
		r.Get("/slots", schedulingController.AvailableSlots)
		r.Get("/month", schedulingController.MonthAvailability)
	})

	router.Post("/appointments", appointmentController.Create)
}
