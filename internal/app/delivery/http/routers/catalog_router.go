package routers

import (
	"fmt"
	"smileworks-service/internal/app/services/core/locations"
	"smileworks-service/internal/app/services/core/providers"
	"smileworks-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachCatalogRoutes(
	router chi.Router,
	locationController *locations.LocationController,
	providerController *providers.ProviderController,
) {
	router.Route("/locations", func(r chi.Router) {
		r.Get("/", locationController.FindAll)
		r.Post("/", locationController.Upsert)
		r.Delete(fmt.Sprintf("/{%s}", constvars.URLParamLocationID), locationController.Delete)
	})

	router.Route("/providers", func(r chi.Router) {
		r.Get("/", providerController.FindAll)
		r.Post("/", providerController.Upsert)
		r.Delete(fmt.Sprintf("/{%s}", constvars.URLParamProviderID), providerController.Delete)
		r.Post(fmt.Sprintf("/{%s}/photo", constvars.URLParamProviderID), providerController.UploadPhoto)
	})
}
