package fixture

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartserve/internal/domain"
	"smartserve/internal/repository"
)

func TestSeedData(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	services, err := store.Services().ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, services, 6)

	u, err := store.Users().GetByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Test User", u.Name)

	a, err := store.Admins().GetByLogin(ctx, "superadmin")
	require.NoError(t, err)
	assert.Equal(t, "superadmin", a.Role)

	// admins resolve by email too
	_, err = store.Admins().GetByLogin(ctx, "admin@smartserve.com")
	assert.NoError(t, err)
}

func newPendingBooking(t *testing.T, store *Store) *domain.Booking {
	t.Helper()
	b := &domain.Booking{
		Reference:   "ref-1",
		UserID:      1,
		ServiceID:   1,
		BookingDate: "2025-06-01",
		BookingTime: "10:00",
		TotalPrice:  2700,
		Status:      domain.BookingPending,
	}
	require.NoError(t, store.Bookings().Create(context.Background(), b))
	return b
}

func TestConcurrentAssignExactlyOnce(t *testing.T) {
	store := NewStore()
	b := newPendingBooking(t, store)
	bookings := store.Bookings()

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = bookings.AssignProfessional(context.Background(), b.ID, int64(i+1))
		}(i)
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		if err == nil {
			won++
		} else {
			assert.ErrorIs(t, err, repository.ErrNotFound)
		}
	}
	assert.Equal(t, 1, won)

	got, err := bookings.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, got.Status)
	require.NotNil(t, got.ProfessionalID)
	assert.NotNil(t, got.AssignedAt)
}

func TestCancelOnlyWhileCancellable(t *testing.T) {
	store := NewStore()
	b := newPendingBooking(t, store)
	bookings := store.Bookings()
	ctx := context.Background()

	require.NoError(t, bookings.CancelByUser(ctx, b.ID, 1))

	got, err := bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, got.Status)

	// terminal now
	err = bookings.CancelByUser(ctx, b.ID, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCancelScopedToOwner(t *testing.T) {
	store := NewStore()
	b := newPendingBooking(t, store)

	err := store.Bookings().CancelByUser(context.Background(), b.ID, 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBookedProfessionalIDsMatchesExactSlot(t *testing.T) {
	store := NewStore()
	bookings := store.Bookings()
	ctx := context.Background()

	pro := int64(1)
	require.NoError(t, bookings.Create(ctx, &domain.Booking{
		UserID: 1, ServiceID: 1, ProfessionalID: &pro,
		BookingDate: "2025-06-01", BookingTime: "10:00",
		Status: domain.BookingConfirmed,
	}))

	ids, err := bookings.BookedProfessionalIDs(ctx, "2025-06-01", "10:00")
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids)

	// different time, same day
	ids, err = bookings.BookedProfessionalIDs(ctx, "2025-06-01", "11:00")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestUpdateStatusAccumulatesNotes(t *testing.T) {
	store := NewStore()
	b := newPendingBooking(t, store)
	bookings := store.Bookings()
	ctx := context.Background()

	require.NoError(t, bookings.UpdateStatus(ctx, b.ID, domain.BookingConfirmed, "assigned manually"))
	require.NoError(t, bookings.UpdateStatus(ctx, b.ID, domain.BookingInProgress, "team on site"))

	got, err := bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "\n[Admin]: assigned manually\n[Admin]: team on site", got.AdminNotes)
}

func TestServiceUpsertKeyedOnName(t *testing.T) {
	store := NewStore()
	services := store.Services()
	ctx := context.Background()

	require.NoError(t, services.Upsert(ctx, &domain.Service{Name: "Plumbing", Price: 2600, IsActive: true}))

	svc, err := services.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2600.0, svc.Price)

	before, _ := services.ListActive(ctx)
	require.NoError(t, services.Upsert(ctx, &domain.Service{Name: "Gardening", Price: 1800, IsActive: true}))
	after, _ := services.ListActive(ctx)
	assert.Len(t, after, len(before)+1)
}
