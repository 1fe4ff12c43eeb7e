package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellezapura/salon-api/internal/model"
	"github.com/bellezapura/salon-api/internal/repository/memory"
)

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	svc := NewService(
		memory.NewBookingRepository(store),
		memory.NewServiceRepository(store),
		memory.NewProfessionalRepository(store),
		DefaultUnit,
	)
	return svc, store
}

func TestVisibleSlotsDay(t *testing.T) {
	svc, _ := newTestService(t)

	days, err := svc.VisibleSlots(time.Date(2024, 7, 10, 15, 42, 0, 0, time.UTC), GranularityDay)
	require.NoError(t, err)
	require.Len(t, days, 1)

	slots := days[0].Slots
	require.Len(t, slots, 24)
	assert.Equal(t, time.Date(2024, 7, 10, 8, 0, 0, 0, time.UTC), slots[0])
	assert.Equal(t, time.Date(2024, 7, 10, 8, 30, 0, 0, time.UTC), slots[1])
	assert.Equal(t, time.Date(2024, 7, 10, 19, 30, 0, 0, time.UTC), slots[23])
}

func TestVisibleSlotsWeekStartsSunday(t *testing.T) {
	svc, _ := newTestService(t)

	// Wednesday 2024-07-10 falls in the week Sun 07-07 .. Sat 07-13.
	days, err := svc.VisibleSlots(time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC), GranularityWeek)
	require.NoError(t, err)
	require.Len(t, days, 7)

	assert.Equal(t, time.Date(2024, 7, 7, 0, 0, 0, 0, time.UTC), days[0].Date)
	assert.Equal(t, time.Weekday(0), days[0].Date.Weekday())
	assert.Equal(t, time.Date(2024, 7, 13, 0, 0, 0, 0, time.UTC), days[6].Date)
	for _, d := range days {
		assert.Len(t, d.Slots, 24)
	}
}

func TestVisibleSlotsWeekOnSunday(t *testing.T) {
	svc, _ := newTestService(t)

	days, err := svc.VisibleSlots(time.Date(2024, 7, 7, 0, 0, 0, 0, time.UTC), GranularityWeek)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 7, 7, 0, 0, 0, 0, time.UTC), days[0].Date)
}

func TestVisibleSlotsMonthPadding(t *testing.T) {
	svc, _ := newTestService(t)

	// July 2024 begins on a Monday, so the grid leads with one placeholder.
	days, err := svc.VisibleSlots(time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC), GranularityMonth)
	require.NoError(t, err)
	require.Len(t, days, 32)

	assert.True(t, days[0].Placeholder)
	assert.False(t, days[1].Placeholder)
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), days[1].Date)
	assert.Equal(t, time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC), days[31].Date)
}

func TestVisibleSlotsMonthNoPadding(t *testing.T) {
	svc, _ := newTestService(t)

	// September 2024 begins on a Sunday.
	days, err := svc.VisibleSlots(time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC), GranularityMonth)
	require.NoError(t, err)
	require.Len(t, days, 30)
	assert.False(t, days[0].Placeholder)
}

func TestVisibleSlotsUnknownGranularity(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.VisibleSlots(time.Now(), Granularity("year"))
	assert.Error(t, err)
}

func TestLayoutBooking(t *testing.T) {
	svc, _ := newTestService(t)

	service := &model.Service{Duration: 60}
	booking := &model.Booking{Date: time.Date(2024, 7, 10, 9, 0, 0, 0, time.UTC)}

	layout := svc.LayoutBooking(booking, service)
	assert.Equal(t, 3.0, layout.TopOffset)
	assert.Equal(t, 6.0, layout.Height)
}

func TestLayoutBookingHalfHourStart(t *testing.T) {
	svc, _ := newTestService(t)

	service := &model.Service{Duration: 45}
	booking := &model.Booking{Date: time.Date(2024, 7, 10, 11, 30, 0, 0, time.UTC)}

	layout := svc.LayoutBooking(booking, service)
	assert.Equal(t, 21.0, layout.TopOffset)
	assert.Equal(t, 4.5, layout.Height)
}

func TestLayoutBookingDurationOverride(t *testing.T) {
	svc, _ := newTestService(t)

	service := &model.Service{Duration: 60}
	booking := &model.Booking{
		Date:     time.Date(2024, 7, 10, 8, 0, 0, 0, time.UTC),
		Duration: 90,
	}

	layout := svc.LayoutBooking(booking, service)
	assert.Equal(t, 0.0, layout.TopOffset)
	assert.Equal(t, 9.0, layout.Height)
}

func TestBookingsOnDate(t *testing.T) {
	target := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)
	bookings := []*model.Booking{
		{Date: time.Date(2024, 7, 10, 9, 0, 0, 0, time.UTC)},
		{Date: time.Date(2024, 7, 11, 9, 0, 0, 0, time.UTC)},
		{Date: time.Date(2024, 7, 10, 14, 0, 0, 0, time.UTC)},
	}

	matched := BookingsOnDate(target, bookings)
	require.Len(t, matched, 2)
	assert.Equal(t, 9, matched[0].Date.Hour())
	assert.Equal(t, 14, matched[1].Date.Hour())
}

func TestNavigate(t *testing.T) {
	wed := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 7, 11, 0, 0, 0, 0, time.UTC), Navigate(wed, GranularityDay, DirectionNext))
	assert.Equal(t, time.Date(2024, 7, 9, 0, 0, 0, 0, time.UTC), Navigate(wed, GranularityDay, DirectionPrev))
	assert.Equal(t, time.Date(2024, 7, 17, 0, 0, 0, 0, time.UTC), Navigate(wed, GranularityWeek, DirectionNext))
	assert.Equal(t, time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC), Navigate(wed, GranularityWeek, DirectionPrev))
	assert.Equal(t, time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC), Navigate(wed, GranularityMonth, DirectionNext))
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), Navigate(wed, GranularityMonth, DirectionPrev))

	today := Navigate(wed, GranularityDay, DirectionToday)
	now := time.Now()
	assert.Equal(t, now.Year(), today.Year())
	assert.Equal(t, now.YearDay(), today.YearDay())
}

func TestAgendaPositionsBookings(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	serviceRepo := memory.NewServiceRepository(store)
	bookingRepo := memory.NewBookingRepository(store)
	svc := NewService(bookingRepo, serviceRepo, memory.NewProfessionalRepository(store), DefaultUnit)

	facial := &model.Service{Name: "Limpeza de Pele", Duration: 60, Price: 180}
	require.NoError(t, serviceRepo.Create(ctx, facial))

	day := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, bookingRepo.Create(ctx, &model.Booking{
		ServiceID:      facial.ID,
		ProfessionalID: uuid.New(),
		Date:           time.Date(2024, 7, 10, 9, 0, 0, 0, time.UTC),
		Status:         model.BookingStatusConfirmed,
	}))

	view, err := svc.Agenda(ctx, day, GranularityDay)
	require.NoError(t, err)

	entries := view.Entries["2024-07-10"]
	require.Len(t, entries, 1)
	assert.Equal(t, "Limpeza de Pele", entries[0].ServiceName)
	assert.Empty(t, entries[0].ProfessionalName)
	assert.Equal(t, 3.0, entries[0].Layout.TopOffset)
	assert.Equal(t, 6.0, entries[0].Layout.Height)
	assert.Equal(t, time.Date(2024, 7, 10, 10, 0, 0, 0, time.UTC), entries[0].End)
}

func TestAgendaSkipsDanglingService(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	bookingRepo := memory.NewBookingRepository(store)
	day := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, bookingRepo.Create(ctx, &model.Booking{
		ServiceID:      uuid.New(),
		ProfessionalID: uuid.New(),
		Date:           time.Date(2024, 7, 10, 9, 0, 0, 0, time.UTC),
		Status:         model.BookingStatusConfirmed,
	}))

	view, err := svc.Agenda(ctx, day, GranularityDay)
	require.NoError(t, err)
	assert.Empty(t, view.Entries["2024-07-10"])
}
