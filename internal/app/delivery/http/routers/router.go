package routers

import (
	"fmt"
	"smileworks-service/internal/app/config"
	"smileworks-service/internal/app/delivery/http/middlewares"
	"smileworks-service/internal/app/services/core/appointments"
	"smileworks-service/internal/app/services/core/assignments"
	"smileworks-service/internal/app/services/core/holidays"
	"smileworks-service/internal/app/services/core/locations"
	"smileworks-service/internal/app/services/core/providers"
	"smileworks-service/internal/app/services/core/pto"
	"smileworks-service/internal/app/services/core/scheduling"
	"smileworks-service/internal/app/services/core/shiftplans"
	"smileworks-service/internal/app/services/core/shifttemplates"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	locationController *locations.LocationController,
	providerController *providers.ProviderController,
	holidayController *holidays.HolidayController,
	ptoController *pto.PtoController,
	shiftTemplateController *shifttemplates.ShiftTemplateController,
	shiftPlanController *shiftplans.ShiftPlanController,
	assignmentController *assignments.AssignmentController,
	schedulingController *scheduling.SchedulingController,
	appointmentController *appointments.AppointmentController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id", "X-Api-Key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.RequestLogger)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			attachPublicRoutes(r, locationController, providerController, schedulingController, appointmentController)

			r.Route("/admin", func(r chi.Router) {
				r.Use(middlewares.APIKeyAuth)
				attachCatalogRoutes(r, locationController, providerController)
				attachCalendarRoutes(r, holidayController, ptoController)
				attachShiftRoutes(r, shiftTemplateController, shiftPlanController, assignmentController)
				attachScheduleRoutes(r, schedulingController)
				attachAppointmentAdminRoutes(r, appointmentController)
			})
		})
	})
}
