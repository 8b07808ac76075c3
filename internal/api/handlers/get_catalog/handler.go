package get_catalog

import (
	"net/http"

	"github.com/justforyou-nail/booking-service/internal/api/handlers"
)

type Handler struct {
	catalog Catalog
	logger  Logger
}

func NewHandler(catalog Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	domainServices := h.catalog.Services()
	services := make([]ServiceResponse, 0, len(domainServices))
	for _, svc := range domainServices {
		entry := ServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			Category:        string(svc.Category),
			CategoryLabel:   h.catalog.CategoryLabel(svc.Category),
			QuoteOnSite:     svc.QuoteOnSite,
			DurationMinutes: svc.DurationMinutes,
		}
		if !svc.QuoteOnSite {
			price := svc.PriceTWD
			entry.PriceTWD = &price
		}
		services = append(services, entry)
	}

	domainStylists := h.catalog.Stylists()
	stylists := make([]StylistResponse, 0, len(domainStylists))
	for _, st := range domainStylists {
		stylists = append(stylists, StylistResponse{
			ID:       st.ID,
			Name:     st.Name,
			Image:    st.Image,
			Greeting: st.Greeting,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, &CatalogResponse{
		Services: services,
		Stylists: stylists,
	})
}
