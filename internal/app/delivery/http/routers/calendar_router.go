package routers

import (
	"fmt"
	"smileworks-service/internal/app/services/core/holidays"
	"smileworks-service/internal/app/services/core/pto"
	"smileworks-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachCalendarRoutes(
	router chi.Router,
	holidayController *holidays.HolidayController,
	ptoController *pto.PtoController,
) {
	router.Route("/holidays", func(r chi.Router) {
		r.Get("/", holidayController.FindByCalendar)
		r.Post("/", holidayController.Upsert)
		r.Delete(fmt.Sprintf("/{%s}", constvars.URLParamHolidayDateID), holidayController.Delete)
	})

	router.Route("/pto", func(r chi.Router) {
		r.Get("/", ptoController.FindByCalendar)
		r.Post("/", ptoController.Upsert)
		r.Delete(fmt.Sprintf("/{%s}", constvars.URLParamPtoEntryID), ptoController.Delete)
	})
}
