package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellezapura/salon-api/internal/model"
	"github.com/bellezapura/salon-api/internal/repository/memory"
	"github.com/bellezapura/salon-api/internal/service/ledger"
	apperrors "github.com/bellezapura/salon-api/pkg/errors"
)

func newTestService(t *testing.T, cfg Config) (*Service, *memory.Store) {
	t.Helper()
	store := memory.NewSeededStore()
	svc := NewService(
		memory.NewBookingRepository(store),
		memory.NewUserRepository(store),
		memory.NewServiceRepository(store),
		memory.NewProfessionalRepository(store),
		memory.NewSaleRepository(store),
		ledger.NewService(),
		nil,
		cfg,
	)
	return svc, store
}

func slot(daysAhead, hour int) time.Time {
	d := time.Now().AddDate(0, 0, daysAhead)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, d.Location())
}

func TestClassifyRequest(t *testing.T) {
	svc, _ := newTestService(t, Config{})

	single := &model.Service{Sessions: 0}
	pack := &model.Service{Sessions: 10}

	assert.Equal(t, SinglePurchase, svc.ClassifyRequest(single, 1))
	assert.Equal(t, PackagePurchase, svc.ClassifyRequest(single, 2))
	assert.Equal(t, PackagePurchase, svc.ClassifyRequest(pack, 1))
	assert.Equal(t, PackagePurchase, svc.ClassifyRequest(pack, 3))
}

func TestConfirmPackagePurchase(t *testing.T) {
	svc, store := newTestService(t, Config{})
	ctx := context.Background()

	// drainage package: 10 sessions per unit
	updated, err := svc.ConfirmPackagePurchase(ctx, memory.UserJoaoID, memory.ServiceDrainageID, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, updated.Credits[memory.ServiceDrainageID])

	// persisted, not just returned
	stored, err := memory.NewUserRepository(store).Get(ctx, memory.UserJoaoID)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Credits[memory.ServiceDrainageID])

	// the sale is logged at price x quantity
	sales, err := memory.NewSaleRepository(store).List(ctx)
	require.NoError(t, err)
	last := sales[len(sales)-1]
	assert.Equal(t, "Drenagem Linfática (Pacote)", last.ServiceName)
	assert.Equal(t, "João Silva", last.ClientName)
	assert.Equal(t, 1400.0, last.Amount)
}

func TestConfirmPackagePurchaseQuantity(t *testing.T) {
	svc, _ := newTestService(t, Config{})
	ctx := context.Background()

	// single-session service bought in bulk still grants one credit per unit
	updated, err := svc.ConfirmPackagePurchase(ctx, memory.UserJoaoID, memory.ServiceMassageID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Credits[memory.ServiceMassageID])

	_, err = svc.ConfirmPackagePurchase(ctx, memory.UserJoaoID, memory.ServiceMassageID, 0)
	assert.Error(t, err)
}

func TestConfirmNewBookingPaid(t *testing.T) {
	svc, store := newTestService(t, Config{})
	ctx := context.Background()

	salesBefore, _ := memory.NewSaleRepository(store).List(ctx)

	booking, err := svc.ConfirmNewBooking(ctx, memory.UserJoaoID, memory.ServiceFacialID, memory.ProfessionalJulianaID, slot(2, 10), false)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusConfirmed, booking.Status)
	assert.False(t, booking.FromCredit)

	salesAfter, _ := memory.NewSaleRepository(store).List(ctx)
	require.Len(t, salesAfter, len(salesBefore)+1)
	assert.Equal(t, 180.0, salesAfter[len(salesAfter)-1].Amount)
}

func TestConfirmNewBookingFromCredit(t *testing.T) {
	svc, store := newTestService(t, Config{})
	ctx := context.Background()

	// Carla is seeded with 5 massage credits
	salesBefore, _ := memory.NewSaleRepository(store).List(ctx)

	booking, err := svc.ConfirmNewBooking(ctx, memory.UserCarlaID, memory.ServiceMassageID, memory.ProfessionalMarianaID, slot(1, 15), true)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusConfirmed, booking.Status)
	assert.True(t, booking.FromCredit)

	user, err := memory.NewUserRepository(store).Get(ctx, memory.UserCarlaID)
	require.NoError(t, err)
	assert.Equal(t, 4, user.Credits[memory.ServiceMassageID])

	// credit redemption records no sale
	salesAfter, _ := memory.NewSaleRepository(store).List(ctx)
	assert.Len(t, salesAfter, len(salesBefore))
}

func TestConfirmNewBookingUnknownRefs(t *testing.T) {
	svc, _ := newTestService(t, Config{})
	ctx := context.Background()

	_, err := svc.ConfirmNewBooking(ctx, memory.UserJoaoID, memory.ServiceFacialID, memory.UserJoaoID, slot(1, 10), false)
	assert.Error(t, err)

	_, err = svc.ConfirmNewBooking(ctx, memory.UserJoaoID, memory.UserJoaoID, memory.ProfessionalAnaID, slot(1, 10), false)
	assert.Error(t, err)
}

func TestReschedule(t *testing.T) {
	svc, _ := newTestService(t, Config{})
	ctx := context.Background()

	booking, err := svc.ConfirmNewBooking(ctx, memory.UserJoaoID, memory.ServiceFacialID, memory.ProfessionalJulianaID, slot(2, 10), false)
	require.NoError(t, err)

	newDate := slot(4, 16)
	moved, err := svc.Reschedule(ctx, booking.ID, newDate, memory.ProfessionalAnaID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, moved.ID)
	assert.Equal(t, booking.UserID, moved.UserID)
	assert.Equal(t, booking.ServiceID, moved.ServiceID)
	assert.Equal(t, newDate, moved.Date)
	assert.Equal(t, memory.ProfessionalAnaID, moved.ProfessionalID)
	assert.Equal(t, model.BookingStatusConfirmed, moved.Status)
}

func TestRescheduleRequiresConfirmed(t *testing.T) {
	svc, _ := newTestService(t, Config{})
	ctx := context.Background()

	booking, err := svc.ConfirmNewBooking(ctx, memory.UserJoaoID, memory.ServiceFacialID, memory.ProfessionalJulianaID, slot(2, 10), false)
	require.NoError(t, err)
	_, err = svc.Cancel(ctx, booking.ID)
	require.NoError(t, err)

	_, err = svc.Reschedule(ctx, booking.ID, slot(4, 16), memory.ProfessionalAnaID)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrConflict, appErr.Code)
}

func TestCancelGuards(t *testing.T) {
	svc, _ := newTestService(t, Config{})
	ctx := context.Background()

	booking, err := svc.ConfirmNewBooking(ctx, memory.UserJoaoID, memory.ServiceFacialID, memory.ProfessionalJulianaID, slot(2, 10), false)
	require.NoError(t, err)

	canceled, err := svc.Cancel(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusCanceled, canceled.Status)

	// canceling twice is a conflict
	_, err = svc.Cancel(ctx, booking.ID)
	assert.Error(t, err)

	completed, err := svc.ConfirmNewBooking(ctx, memory.UserJoaoID, memory.ServiceFacialID, memory.ProfessionalJulianaID, slot(3, 10), false)
	require.NoError(t, err)
	_, err = svc.Complete(ctx, completed.ID)
	require.NoError(t, err)
	_, err = svc.Cancel(ctx, completed.ID)
	assert.Error(t, err)
}

func TestCancelDoesNotRefundCreditByDefault(t *testing.T) {
	svc, store := newTestService(t, Config{})
	ctx := context.Background()

	booking, err := svc.ConfirmNewBooking(ctx, memory.UserCarlaID, memory.ServiceMassageID, memory.ProfessionalMarianaID, slot(1, 15), true)
	require.NoError(t, err)
	_, err = svc.Cancel(ctx, booking.ID)
	require.NoError(t, err)

	user, err := memory.NewUserRepository(store).Get(ctx, memory.UserCarlaID)
	require.NoError(t, err)
	assert.Equal(t, 4, user.Credits[memory.ServiceMassageID])
}

func TestCancelRefundsCreditWhenConfigured(t *testing.T) {
	svc, store := newTestService(t, Config{RefundCreditOnCancel: true})
	ctx := context.Background()

	booking, err := svc.ConfirmNewBooking(ctx, memory.UserCarlaID, memory.ServiceMassageID, memory.ProfessionalMarianaID, slot(1, 15), true)
	require.NoError(t, err)
	_, err = svc.Cancel(ctx, booking.ID)
	require.NoError(t, err)

	user, err := memory.NewUserRepository(store).Get(ctx, memory.UserCarlaID)
	require.NoError(t, err)
	assert.Equal(t, 5, user.Credits[memory.ServiceMassageID])
}

func TestRecordReview(t *testing.T) {
	svc, _ := newTestService(t, Config{})
	ctx := context.Background()

	booking, err := svc.ConfirmNewBooking(ctx, memory.UserJoaoID, memory.ServiceFacialID, memory.ProfessionalJulianaID, slot(2, 10), false)
	require.NoError(t, err)

	// confirmed bookings cannot be reviewed
	_, err = svc.RecordReview(ctx, booking.ID, 5, "Atendimento excelente!")
	assert.Error(t, err)

	_, err = svc.Complete(ctx, booking.ID)
	require.NoError(t, err)

	reviewed, err := svc.RecordReview(ctx, booking.ID, 5, "Atendimento excelente!")
	require.NoError(t, err)
	assert.Equal(t, 5, reviewed.Rating)

	// one review only
	_, err = svc.RecordReview(ctx, booking.ID, 4, "Mudei de ideia sobre a nota.")
	assert.Error(t, err)
}

func TestRecordReviewValidation(t *testing.T) {
	svc, _ := newTestService(t, Config{})
	ctx := context.Background()

	booking, err := svc.ConfirmNewBooking(ctx, memory.UserJoaoID, memory.ServiceFacialID, memory.ProfessionalJulianaID, slot(2, 10), false)
	require.NoError(t, err)
	_, err = svc.Complete(ctx, booking.ID)
	require.NoError(t, err)

	_, err = svc.RecordReview(ctx, booking.ID, 0, "Comentário longo o bastante.")
	assert.Error(t, err)
	_, err = svc.RecordReview(ctx, booking.ID, 6, "Comentário longo o bastante.")
	assert.Error(t, err)
	_, err = svc.RecordReview(ctx, booking.ID, 4, "curto")
	assert.Error(t, err)

	// still unrated after the rejections
	current, err := svc.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Zero(t, current.Rating)
}

func TestListBookingsFilters(t *testing.T) {
	svc, _ := newTestService(t, Config{})
	ctx := context.Background()

	mine, err := svc.ListBookings(ctx, &model.BookingFilters{UserID: memory.UserCarlaID})
	require.NoError(t, err)
	require.NotEmpty(t, mine)
	for _, b := range mine {
		assert.Equal(t, memory.UserCarlaID, b.UserID)
	}

	confirmed, err := svc.ListBookings(ctx, &model.BookingFilters{Status: model.BookingStatusConfirmed})
	require.NoError(t, err)
	for _, b := range confirmed {
		assert.Equal(t, model.BookingStatusConfirmed, b.Status)
	}
}
