package get_catalog

// ServiceResponse is one bookable service. Price is omitted for
// quote-on-site services.
type ServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	CategoryLabel   string `json:"categoryLabel"`
	PriceTWD        *int   `json:"priceTwd,omitempty"`
	QuoteOnSite     bool   `json:"quoteOnSite"`
	DurationMinutes int    `json:"durationMinutes"`
}

// StylistResponse is one roster entry.
type StylistResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image,omitempty"`
	Greeting string `json:"greeting,omitempty"`
}

// CatalogResponse HTTP response model
type CatalogResponse struct {
	Services []ServiceResponse `json:"services"`
	Stylists []StylistResponse `json:"stylists"`
}
