// Package appointment is the Postgres appointment store. It records and
// lists appointments as-is; availability decisions are made by callers
// before writing.
package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/justforyou-nail/booking-service/internal/domain"
	"github.com/justforyou-nail/booking-service/pkg/psqlbuilder"
)

// Repository persists appointments and stylist leaves.
type Repository struct {
	db DBExecutor
}

// NewRepository creates the appointment repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateAppointment inserts the appointment. The store performs no overlap
// checks; the caller is expected to have verified the slot just before.
func (r *Repository) CreateAppointment(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"service_id",
			"stylist_id",
			"appointment_date",
			"start_time",
			"duration_minutes",
			"user_name",
		).
		Values(
			appt.ID,
			appt.ServiceID,
			appt.StylistID,
			appt.Date,
			appt.StartTime,
			appt.DurationMinutes,
			appt.UserName,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateAppointment - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: CreateAppointment - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	return appt, nil
}

// ListAppointments returns appointments matching the filter, earliest first.
func (r *Repository) ListAppointments(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	selectBuilder := psqlbuilder.Select(
		"id",
		"service_id",
		"stylist_id",
		"appointment_date",
		"start_time",
		"duration_minutes",
		"user_name",
		"created_at",
	).
		From("appointments").
		OrderBy("appointment_date ASC, start_time ASC")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_date": *filter.Date})
	}
	if filter.UserName != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_name": *filter.UserName})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAppointments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAppointments - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// CancelAppointment removes the appointment. Cancelled appointments free
// their slot immediately, so removal is physical.
func (r *Repository) CancelAppointment(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CancelAppointment - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: CancelAppointment - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: CancelAppointment - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// ListLeaves returns stylist leaves for the given date. A row with an empty
// stylist_id is a shop-wide closure.
func (r *Repository) ListLeaves(ctx context.Context, date string) ([]domain.Leave, error) {
	query, args, err := psqlbuilder.Select("stylist_id", "leave_date").
		From("leaves").
		Where(squirrel.Eq{"leave_date": date}).
		OrderBy("stylist_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListLeaves - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListLeaves - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	leaves := make([]domain.Leave, 0)
	for rows.Next() {
		var leave domain.Leave
		var leaveDate time.Time
		if err := rows.Scan(&leave.StylistID, &leaveDate); err != nil {
			return nil, fmt.Errorf("%w: ListLeaves - scan row: %v", ErrScanRow, err)
		}
		// DATE columns arrive as time.Time; callers compare plain
		// "YYYY-MM-DD" strings.
		leave.Date = leaveDate.Format(domain.DateFormat)
		leaves = append(leaves, leave)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListLeaves - rows error: %v", ErrScanRow, err)
	}

	return leaves, nil
}

// scanAppointments scans query results into appointments.
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var apptDate time.Time
		var createdAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.ServiceID,
			&appt.StylistID,
			&apptDate,
			&appt.StartTime,
			&appt.DurationMinutes,
			&appt.UserName,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		// DATE columns arrive as time.Time; callers compare plain
		// "YYYY-MM-DD" strings.
		appt.Date = apptDate.Format(domain.DateFormat)
		appt.CreatedAt = createdAt.Time
		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
