// Package availability is the scheduling decision-maker: it answers whether a
// slot can be booked for a service on a date, generates the annotated slot
// grid for display, and picks a stylist for "no preference" bookings.
//
// All checks are pure functions over the appointment and leave sets supplied
// by the caller. The verdict is advisory: the appointment store performs no
// conflict enforcement of its own, so a booking confirmed against stale data
// can still win a race.
package availability

import (
	"errors"
	"fmt"
	"time"

	"github.com/justforyou-nail/booking-service/internal/catalog"
	"github.com/justforyou-nail/booking-service/internal/domain"
	"github.com/justforyou-nail/booking-service/pkg/types"
)

// Settings describes the booking grid and the weekly closure day.
type Settings struct {
	OpenTime            types.TimeString // first slot of the day
	LastSlotTime        types.TimeString // last slot of the day (inclusive)
	SlotIntervalMinutes int
	ClosedWeekday       time.Weekday
}

// DefaultSettings returns the salon defaults: half-hour slots 10:00-20:00,
// closed on Wednesdays.
func DefaultSettings() Settings {
	return Settings{
		OpenTime:            domain.DefaultOpenTime,
		LastSlotTime:        domain.DefaultLastSlotTime,
		SlotIntervalMinutes: domain.DefaultSlotIntervalMinutes,
		ClosedWeekday:       domain.DefaultClosedWeekday,
	}
}

// Slot is one candidate time on the grid with its booking verdict.
type Slot struct {
	Time     types.TimeString
	Bookable bool
}

// SlotList is the annotated grid for one date. Closed distinguishes a shop
// closure (no slot buttons at all) from an ordinary fully-booked day.
type SlotList struct {
	Closed bool
	Slots  []Slot
}

// Engine computes slot availability against the immutable catalog.
type Engine struct {
	catalog  *catalog.Catalog
	settings Settings
}

// NewEngine creates an engine for the given catalog and grid settings.
func NewEngine(cat *catalog.Catalog, settings Settings) *Engine {
	return &Engine{catalog: cat, settings: settings}
}

// IsShopClosed reports whether the whole shop is closed on the date: either
// the fixed weekly closure day or a shop-wide leave record.
func (e *Engine) IsShopClosed(date string, leaves []domain.Leave) (bool, error) {
	d, err := domain.ParseDate(date)
	if err != nil {
		return false, err
	}
	if d.Weekday() == e.settings.ClosedWeekday {
		return true, nil
	}
	for _, l := range leaves {
		if l.IsShopWide() && l.Date == date {
			return true, nil
		}
	}
	return false, nil
}

// IsSlotBookable decides whether the [start, start+duration) interval can be
// booked. With a specific stylist it fails closed on that stylist's leave, a
// shop closure, or any overlapping appointment. With the StylistAny selector
// it is an existential check over the full roster; it does not pick a stylist.
func (e *Engine) IsSlotBookable(
	svc domain.Service,
	date string,
	stylistSelector string,
	start types.TimeString,
	appointments []domain.Appointment,
	leaves []domain.Leave,
) (bool, error) {
	if err := start.Validate(); err != nil {
		return false, err
	}

	closed, err := e.IsShopClosed(date, leaves)
	if err != nil {
		return false, err
	}
	if closed {
		return false, nil
	}

	if stylistSelector == domain.StylistAny {
		for _, st := range e.catalog.Stylists() {
			free, err := e.stylistFree(st.ID, svc, date, start, appointments, leaves)
			if err != nil {
				return false, err
			}
			if free {
				return true, nil
			}
		}
		return false, nil
	}

	if _, ok := e.catalog.StylistByID(stylistSelector); !ok {
		return false, fmt.Errorf("availability: unknown stylist %q", stylistSelector)
	}
	return e.stylistFree(stylistSelector, svc, date, start, appointments, leaves)
}

// AssignStylist resolves a "no preference" booking to a concrete stylist at
// commit time. It scans the roster in declared order and returns the first
// free stylist for the exact chosen time. When none qualifies (a race lost
// between the slot list and the confirm) it falls back to the first stylist
// in roster order: best effort, the store will still accept the booking.
func (e *Engine) AssignStylist(
	svc domain.Service,
	date string,
	start types.TimeString,
	appointments []domain.Appointment,
	leaves []domain.Leave,
) string {
	roster := e.catalog.Stylists()
	for _, st := range roster {
		free, err := e.stylistFree(st.ID, svc, date, start, appointments, leaves)
		if err == nil && free {
			return st.ID
		}
	}
	return roster[0].ID
}

// SlotList generates the full grid for a date with per-slot verdicts. A
// closed date yields Closed=true and no slots. The list is recomputed fresh
// on every call; nothing is cached across date/service/stylist changes.
func (e *Engine) SlotList(
	svc domain.Service,
	date string,
	stylistSelector string,
	appointments []domain.Appointment,
	leaves []domain.Leave,
) (*SlotList, error) {
	closed, err := e.IsShopClosed(date, leaves)
	if err != nil {
		return nil, err
	}
	if closed {
		return &SlotList{Closed: true, Slots: []Slot{}}, nil
	}

	grid, err := e.grid()
	if err != nil {
		return nil, err
	}

	slots := make([]Slot, 0, len(grid))
	for _, t := range grid {
		bookable, err := e.IsSlotBookable(svc, date, stylistSelector, t, appointments, leaves)
		if err != nil {
			return nil, err
		}
		slots = append(slots, Slot{Time: t, Bookable: bookable})
	}

	return &SlotList{Slots: slots}, nil
}

// stylistFree checks one concrete stylist: no leave covering them on the
// date, and no existing appointment overlapping [start, start+duration).
// The grid does not stop a service from running past closing time; only
// conflicts with real bookings and leaves are checked.
func (e *Engine) stylistFree(
	stylistID string,
	svc domain.Service,
	date string,
	start types.TimeString,
	appointments []domain.Appointment,
	leaves []domain.Leave,
) (bool, error) {
	end, err := start.AddMinutes(svc.DurationMinutes)
	if err != nil {
		return false, err
	}

	for _, l := range leaves {
		if l.Date == date && l.CoversStylist(stylistID) {
			return false, nil
		}
	}

	for _, a := range appointments {
		if a.StylistID != stylistID || a.Date != date {
			continue
		}
		aEnd, err := a.EndTime()
		if err != nil {
			// Skip records the store returned with an unparseable time.
			continue
		}
		if types.Overlaps(start, end, a.StartTime, aEnd) {
			return false, nil
		}
	}

	return true, nil
}

// grid generates the candidate slot times from open through last slot.
func (e *Engine) grid() ([]types.TimeString, error) {
	grid := make([]types.TimeString, 0, 24)
	t := e.settings.OpenTime
	for !t.IsAfter(e.settings.LastSlotTime) {
		grid = append(grid, t)
		next, err := t.AddMinutes(e.settings.SlotIntervalMinutes)
		if err != nil {
			if errors.Is(err, types.ErrTimeOutOfRange) {
				break
			}
			return nil, err
		}
		t = next
	}
	return grid, nil
}
