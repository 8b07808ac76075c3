package get_catalog

import "github.com/justforyou-nail/booking-service/internal/domain"

// Catalog is the read-only reference data the widget renders its first two
// steps from.
type Catalog interface {
	Services() []domain.Service
	Stylists() []domain.Stylist
	CategoryLabel(c domain.ServiceCategory) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
