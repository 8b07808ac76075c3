// Package catalog holds the immutable reference data: services, stylists and
// category labels. Loaded once at startup and injected where needed; nothing
// mutates it afterwards.
package catalog

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/justforyou-nail/booking-service/internal/domain"
)

var (
	// ErrInvalidCatalog is returned when the catalog file fails validation.
	ErrInvalidCatalog = errors.New("catalog: invalid catalog data")
)

// Catalog is the read-only reference store.
type Catalog struct {
	services       []domain.Service
	stylists       []domain.Stylist
	servicesByID   map[string]domain.Service
	stylistsByID   map[string]domain.Stylist
	categoryLabels map[domain.ServiceCategory]string
}

type serviceEntry struct {
	ID              string `toml:"id"`
	Name            string `toml:"name"`
	Category        string `toml:"category"`
	PriceTWD        int    `toml:"price_twd"`
	QuoteOnSite     bool   `toml:"quote_on_site"`
	DurationMinutes int    `toml:"duration_minutes"`
}

type stylistEntry struct {
	ID       string `toml:"id"`
	Name     string `toml:"name"`
	Image    string `toml:"image"`
	Greeting string `toml:"greeting"`
}

type fileFormat struct {
	Services       []serviceEntry    `toml:"services"`
	Stylists       []stylistEntry    `toml:"stylists"`
	CategoryLabels map[string]string `toml:"category_labels"`
}

// Load reads and validates the catalog file.
func Load(path string) (*Catalog, error) {
	var raw fileFormat
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("catalog: decode %s: %w", path, err)
	}
	return build(raw)
}

func build(raw fileFormat) (*Catalog, error) {
	c := &Catalog{
		servicesByID:   make(map[string]domain.Service, len(raw.Services)),
		stylistsByID:   make(map[string]domain.Stylist, len(raw.Stylists)),
		categoryLabels: make(map[domain.ServiceCategory]string, len(raw.CategoryLabels)),
	}

	for _, s := range raw.Services {
		svc := domain.Service{
			ID:              s.ID,
			Name:            s.Name,
			Category:        domain.ServiceCategory(s.Category),
			PriceTWD:        s.PriceTWD,
			QuoteOnSite:     s.QuoteOnSite,
			DurationMinutes: s.DurationMinutes,
		}
		if svc.ID == "" {
			return nil, fmt.Errorf("%w: service with empty id", ErrInvalidCatalog)
		}
		if !svc.Category.IsValid() {
			return nil, fmt.Errorf("%w: service %s has unknown category %q", ErrInvalidCatalog, svc.ID, s.Category)
		}
		if svc.DurationMinutes <= 0 {
			return nil, fmt.Errorf("%w: service %s has non-positive duration", ErrInvalidCatalog, svc.ID)
		}
		if !svc.QuoteOnSite && svc.PriceTWD <= 0 {
			return nil, fmt.Errorf("%w: service %s has no price and is not quote-on-site", ErrInvalidCatalog, svc.ID)
		}
		if _, dup := c.servicesByID[svc.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate service id %s", ErrInvalidCatalog, svc.ID)
		}
		c.services = append(c.services, svc)
		c.servicesByID[svc.ID] = svc
	}

	for _, s := range raw.Stylists {
		st := domain.Stylist{ID: s.ID, Name: s.Name, Image: s.Image, Greeting: s.Greeting}
		if st.ID == "" {
			return nil, fmt.Errorf("%w: stylist with empty id", ErrInvalidCatalog)
		}
		// The "no preference" sentinel must never collide with a real stylist.
		if st.ID == domain.StylistAny {
			return nil, fmt.Errorf("%w: stylist id %q is reserved", ErrInvalidCatalog, domain.StylistAny)
		}
		if _, dup := c.stylistsByID[st.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate stylist id %s", ErrInvalidCatalog, st.ID)
		}
		c.stylists = append(c.stylists, st)
		c.stylistsByID[st.ID] = st
	}

	if len(c.services) == 0 {
		return nil, fmt.Errorf("%w: no services defined", ErrInvalidCatalog)
	}
	if len(c.stylists) == 0 {
		return nil, fmt.Errorf("%w: no stylists defined", ErrInvalidCatalog)
	}

	for cat, label := range raw.CategoryLabels {
		category := domain.ServiceCategory(cat)
		if !category.IsValid() {
			return nil, fmt.Errorf("%w: label for unknown category %q", ErrInvalidCatalog, cat)
		}
		c.categoryLabels[category] = label
	}

	return c, nil
}

// Services returns all services in catalog order.
func (c *Catalog) Services() []domain.Service {
	return c.services
}

// Stylists returns the roster in declared order. This order is the stable
// scan order for automatic stylist assignment.
func (c *Catalog) Stylists() []domain.Stylist {
	return c.stylists
}

// ServiceByID looks up a service.
func (c *Catalog) ServiceByID(id string) (domain.Service, bool) {
	svc, ok := c.servicesByID[id]
	return svc, ok
}

// StylistByID looks up a stylist. The StylistAny sentinel is not a stylist.
func (c *Catalog) StylistByID(id string) (domain.Stylist, bool) {
	st, ok := c.stylistsByID[id]
	return st, ok
}

// CategoryLabel returns the display label for a category, falling back to the
// category tag itself.
func (c *Catalog) CategoryLabel(cat domain.ServiceCategory) string {
	if label, ok := c.categoryLabels[cat]; ok {
		return label
	}
	return string(cat)
}
