// Package calendar turns bookings plus a visible window into render-ready
// slot and geometry descriptors. It is a pure read-side consumer of the
// booking and service collections: nothing here mutates state.
package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/bellezapura/salon-api/internal/model"
	"github.com/bellezapura/salon-api/internal/repository"
)

// The operating window is fixed configuration, not derived from business
// hours data: appointments are offered 08:00-20:00 in 30-minute steps.
const (
	OpeningHour = 8
	ClosingHour = 20
	SlotMinutes = 30
	SlotsPerDay = (ClosingHour - OpeningHour) * 60 / SlotMinutes
)

// DefaultUnit is the render height of one half-hour slot, in rem.
const DefaultUnit = 3.0

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

type Direction string

const (
	DirectionPrev  Direction = "prev"
	DirectionNext  Direction = "next"
	DirectionToday Direction = "today"
)

// Layout is the vertical geometry of one booking inside its day column,
// in units of the configured half-hour slot height.
type Layout struct {
	TopOffset float64 `json:"top_offset"`
	Height    float64 `json:"height"`
}

// Day is one column (or month cell) of the visible window. Placeholder
// cells pad a month grid before day 1 and are not bookable.
type Day struct {
	Date        time.Time   `json:"date"`
	Placeholder bool        `json:"placeholder,omitempty"`
	Slots       []time.Time `json:"slots,omitempty"`
}

// Entry is a booking positioned for rendering.
type Entry struct {
	Booking          *model.Booking `json:"booking"`
	ServiceName      string         `json:"service_name"`
	ProfessionalName string         `json:"professional_name,omitempty"`
	Start            time.Time      `json:"start"`
	End              time.Time      `json:"end"`
	Layout           Layout         `json:"layout"`
}

// View is a fully assembled agenda window ready to render.
type View struct {
	Granularity Granularity        `json:"granularity"`
	Reference   time.Time          `json:"reference"`
	Days        []Day              `json:"days"`
	Entries     map[string][]Entry `json:"entries"` // keyed by YYYY-MM-DD
}

type Service struct {
	bookingRepo repository.BookingRepository
	serviceRepo repository.ServiceRepository
	profRepo    repository.ProfessionalRepository
	unit        float64
}

func NewService(bookingRepo repository.BookingRepository, serviceRepo repository.ServiceRepository, profRepo repository.ProfessionalRepository, unit float64) *Service {
	if unit <= 0 {
		unit = DefaultUnit
	}
	return &Service{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		profRepo:    profRepo,
		unit:        unit,
	}
}

// VisibleSlots expands a reference date into the window the given
// granularity shows: the day's 24 half-hour marks, the Sunday-starting
// week with per-day marks, or the month grid with leading placeholders.
func (s *Service) VisibleSlots(viewDate time.Time, granularity Granularity) ([]Day, error) {
	switch granularity {
	case GranularityDay:
		return []Day{{Date: dateOnly(viewDate), Slots: daySlots(viewDate)}}, nil
	case GranularityWeek:
		start := startOfWeek(viewDate)
		days := make([]Day, 0, 7)
		for i := 0; i < 7; i++ {
			d := start.AddDate(0, 0, i)
			days = append(days, Day{Date: d, Slots: daySlots(d)})
		}
		return days, nil
	case GranularityMonth:
		first := time.Date(viewDate.Year(), viewDate.Month(), 1, 0, 0, 0, 0, viewDate.Location())
		daysInMonth := first.AddDate(0, 1, -1).Day()
		days := make([]Day, 0, int(first.Weekday())+daysInMonth)
		for i := 0; i < int(first.Weekday()); i++ {
			days = append(days, Day{Placeholder: true})
		}
		for d := 1; d <= daysInMonth; d++ {
			days = append(days, Day{Date: first.AddDate(0, 0, d-1)})
		}
		return days, nil
	default:
		return nil, fmt.Errorf("unknown granularity: %s", granularity)
	}
}

// LayoutBooking positions a booking inside its day column. The duration
// falls back to the service's when the booking carries no override.
func (s *Service) LayoutBooking(booking *model.Booking, svc *model.Service) Layout {
	startHour := booking.Date.Hour()
	startMinute := booking.Date.Minute()
	duration := booking.EffectiveDuration(svc)

	return Layout{
		TopOffset: float64((startHour-OpeningHour)*60+startMinute) / SlotMinutes * s.unit,
		Height:    float64(duration) / SlotMinutes * s.unit,
	}
}

// BookingsOnDate filters by exact calendar date, ignoring time of day,
// ordered by ascending start time.
func BookingsOnDate(date time.Time, bookings []*model.Booking) []*model.Booking {
	var matched []*model.Booking
	for _, b := range bookings {
		if sameDate(b.Date, date) {
			matched = append(matched, b)
		}
	}
	// repository List order is already date-ascending; same-day entries
	// keep their relative start-time order
	return matched
}

// Navigate shifts the reference date one window in the given direction.
func Navigate(current time.Time, granularity Granularity, direction Direction) time.Time {
	if direction == DirectionToday {
		return dateOnly(time.Now())
	}

	step := 1
	if direction == DirectionPrev {
		step = -1
	}
	switch granularity {
	case GranularityMonth:
		return current.AddDate(0, step, 0)
	case GranularityWeek:
		return current.AddDate(0, 0, 7*step)
	default:
		return current.AddDate(0, 0, step)
	}
}

// Agenda assembles the full view: visible days plus positioned entries.
// A booking whose service no longer exists is skipped rather than failing
// the whole render; a partial agenda beats an empty one.
func (s *Service) Agenda(ctx context.Context, viewDate time.Time, granularity Granularity) (*View, error) {
	days, err := s.VisibleSlots(viewDate, granularity)
	if err != nil {
		return nil, err
	}

	first, last := windowBounds(days)
	bookings, err := s.bookingRepo.List(ctx, &model.BookingFilters{
		StartDate: first,
		EndDate:   last.AddDate(0, 0, 1),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	view := &View{
		Granularity: granularity,
		Reference:   dateOnly(viewDate),
		Days:        days,
		Entries:     make(map[string][]Entry),
	}

	for _, day := range days {
		if day.Placeholder {
			continue
		}
		for _, b := range BookingsOnDate(day.Date, bookings) {
			svc, err := s.serviceRepo.Get(ctx, b.ServiceID)
			if err != nil {
				continue // dangling service reference, skip
			}
			entry := Entry{
				Booking:     b,
				ServiceName: svc.Name,
				Start:       b.Date,
				End:         b.Date.Add(time.Duration(b.EffectiveDuration(svc)) * time.Minute),
				Layout:      s.LayoutBooking(b, svc),
			}
			if prof, err := s.profRepo.Get(ctx, b.ProfessionalID); err == nil {
				entry.ProfessionalName = prof.Name
			}
			key := day.Date.Format("2006-01-02")
			view.Entries[key] = append(view.Entries[key], entry)
		}
	}
	return view, nil
}

func daySlots(d time.Time) []time.Time {
	slots := make([]time.Time, 0, SlotsPerDay)
	base := time.Date(d.Year(), d.Month(), d.Day(), OpeningHour, 0, 0, 0, d.Location())
	for i := 0; i < SlotsPerDay; i++ {
		slots = append(slots, base.Add(time.Duration(i*SlotMinutes)*time.Minute))
	}
	return slots
}

// startOfWeek returns the Sunday beginning the week containing d.
func startOfWeek(d time.Time) time.Time {
	day := dateOnly(d)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func windowBounds(days []Day) (time.Time, time.Time) {
	var first, last time.Time
	for _, d := range days {
		if d.Placeholder {
			continue
		}
		if first.IsZero() {
			first = d.Date
		}
		last = d.Date
	}
	return first, last
}
