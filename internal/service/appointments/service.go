// Package appointments serves the widget's booking list and cancellation.
package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/justforyou-nail/booking-service/internal/domain"
	storageAppt "github.com/justforyou-nail/booking-service/internal/infra/storage/appointment"
	"github.com/justforyou-nail/booking-service/internal/integrations/sheetstore"
	"github.com/justforyou-nail/booking-service/internal/service/appointments/models"
)

// Service lists and cancels appointments.
type Service struct {
	store   AppointmentStore
	catalog Catalog
	logger  Logger
}

// NewService creates the appointment service.
func NewService(store AppointmentStore, catalog Catalog, logger Logger) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
		logger:  logger,
	}
}

// List returns appointments matching the filter. A store failure degrades
// to an empty list so the widget keeps rendering.
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	filter := domain.AppointmentFilter{Date: req.Date, UserName: req.UserName}

	records, err := s.store.ListAppointments(ctx, filter)
	if err != nil {
		s.logger.Warn("List: store unreachable, returning empty list: %v", err)
		return &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{}}, nil
	}

	appointments := make([]models.AppointmentResponse, 0, len(records))
	for _, r := range records {
		appointments = append(appointments, s.toResponse(r))
	}

	s.logger.Info("List: returning %d appointments", len(appointments))
	return &models.AppointmentListResponse{
		Appointments: appointments,
		Total:        len(appointments),
	}, nil
}

// Cancel removes the appointment, freeing its slot immediately.
func (s *Service) Cancel(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}

	if err := s.store.CancelAppointment(ctx, id); err != nil {
		if errors.Is(err, storageAppt.ErrAppointmentNotFound) || errors.Is(err, sheetstore.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment %s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: store error for appointment %s: %v", id, err)
		return fmt.Errorf("%w: cancel failed: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: appointment %s cancelled", id)
	return nil
}

// toResponse resolves catalog names; ids missing from the catalog fall back
// to the raw id so old bookings still render.
func (s *Service) toResponse(a *domain.Appointment) models.AppointmentResponse {
	serviceName := a.ServiceID
	if svc, ok := s.catalog.ServiceByID(a.ServiceID); ok {
		serviceName = svc.Name
	}

	stylistName := a.StylistID
	if st, ok := s.catalog.StylistByID(a.StylistID); ok {
		stylistName = st.Name
	}

	return models.AppointmentResponse{
		ID:              a.ID,
		ServiceID:       a.ServiceID,
		ServiceName:     serviceName,
		StylistID:       a.StylistID,
		StylistName:     stylistName,
		Date:            a.Date,
		Time:            a.StartTime.String(),
		DurationMinutes: a.DurationMinutes,
		UserName:        a.UserName,
	}
}
