package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"vendormatch/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

type slotKey struct {
	eventID     string
	participant string
	slotStart   string
}

// fakeBookingRepo is an in-memory SlotBookingRepository. Create is atomic
// under the mutex, mirroring the database unique constraint.
type fakeBookingRepo struct {
	mu        sync.Mutex
	byKey     map[slotKey]*domain.SlotBooking
	nextID    int
	createErr error
	existsErr error
	// preCheckBlind makes Exists always report free, simulating the stale
	// advisory read during a race.
	preCheckBlind bool
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		byKey:  make(map[slotKey]*domain.SlotBooking),
		nextID: 1,
	}
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.SlotBooking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	key := slotKey{b.EventID, b.ParticipantName, b.SlotStart}
	if _, taken := f.byKey[key]; taken {
		return domain.ErrSlotTaken
	}
	b.ID = fmt.Sprintf("bk-%d", f.nextID)
	f.nextID++
	copied := *b
	f.byKey[key] = &copied
	return nil
}

func (f *fakeBookingRepo) Exists(ctx context.Context, eventID, participantName, slotStart string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.existsErr != nil {
		return false, f.existsErr
	}
	if f.preCheckBlind {
		return false, nil
	}
	_, taken := f.byKey[slotKey{eventID, participantName, slotStart}]
	return taken, nil
}

func (f *fakeBookingRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.SlotBooking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.SlotBooking
	for _, b := range f.byKey {
		if b.EventID == eventID {
			out = append(out, b)
		}
	}
	// Sort ascending by slot start to match the repository ORDER BY.
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].SlotStart < out[i].SlotStart {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) StatusByEventID(ctx context.Context, eventID string) ([]*domain.SlotStatus, error) {
	bookings, _ := f.ListByEventID(ctx, eventID)
	out := make([]*domain.SlotStatus, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, &domain.SlotStatus{
			ParticipantName: b.ParticipantName,
			SlotStart:       b.SlotStart,
			SlotEnd:         b.SlotEnd,
			EventDate:       b.EventDate,
			BookedByVendor:  b.BookedByVendor,
			TenantID:        b.TenantID,
			ActorName:       b.ActorName,
		})
	}
	return out, nil
}

// fakeEmailService records sent confirmations.
type fakeEmailService struct {
	mu            sync.Mutex
	confirmations []*domain.BookingConfirmationEmailData
	sendErr       error
}

func (f *fakeEmailService) SendBookingConfirmation(ctx context.Context, data *domain.BookingConfirmationEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.confirmations = append(f.confirmations, data)
	return nil
}

func (f *fakeEmailService) SendMessage(ctx context.Context, to, subject, htmlBody string) error {
	return f.sendErr
}

func newBooking(eventID, participant, slotStart, slotEnd string) *domain.SlotBooking {
	return domain.NewSlotBooking(eventID, participant, slotStart, slotEnd, true, "T1", "Jane", "2025-03-01", time.Time{})
}

func TestBookingService_BookSlot(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBookingRepo()
	emails := &fakeEmailService{}
	svc := NewBookingService(repo, newFakeEventRepo(), emails, testLogger, 2*time.Second)

	b1 := newBooking("ev-1", "Vendor A", "09:00", "09:15")
	require.NoError(t, svc.BookSlot(ctx, b1, "jane@t1.test"))
	require.NotEmpty(t, b1.ID)

	// Identical tuple again: conflict, ledger unchanged.
	dup := newBooking("ev-1", "Vendor A", "09:00", "09:15")
	err := svc.BookSlot(ctx, dup, "")
	require.ErrorIs(t, err, domain.ErrSlotTaken)

	rows, err := svc.ListBookings(ctx, "ev-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// Different slot start for the same participant succeeds.
	b2 := newBooking("ev-1", "Vendor A", "09:15", "09:30")
	require.NoError(t, svc.BookSlot(ctx, b2, ""))
	require.NotEqual(t, b1.ID, b2.ID)

	rows, err = svc.ListBookings(ctx, "ev-1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, b1.ID, rows[0].ID)
	assert.Equal(t, b2.ID, rows[1].ID)

	// One confirmation went out, for the call that supplied an address.
	require.Len(t, emails.confirmations, 1)
	assert.Equal(t, "jane@t1.test", emails.confirmations[0].Email)
}

func TestBookingService_BookSlot_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewBookingService(newFakeBookingRepo(), newFakeEventRepo(), nil, testLogger, 2*time.Second)

	tests := []struct {
		name    string
		booking *domain.SlotBooking
	}{
		{"missing event id", newBooking("", "Vendor A", "09:00", "09:15")},
		{"missing participant", newBooking("ev-1", "", "09:00", "09:15")},
		{"bad slot start", newBooking("ev-1", "Vendor A", "9am", "09:15")},
		{"bad slot end", newBooking("ev-1", "Vendor A", "09:00", "late")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.BookSlot(ctx, tt.booking, "")
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// TestBookingService_BookSlot_Race is the core uniqueness property: N
// concurrent requests for the same tuple produce exactly one success and
// N-1 conflicts, with one ledger row afterward. The fake's Exists is blinded
// so every request passes the advisory pre-check and the decision falls
// entirely to the atomic Create, as it does against the real constraint.
func TestBookingService_BookSlot_Race(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBookingRepo()
	repo.preCheckBlind = true
	svc := NewBookingService(repo, newFakeEventRepo(), nil, testLogger, 5*time.Second)

	const n = 16
	errs := make([]error, n)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			errs[i] = svc.BookSlot(ctx, newBooking("ev-1", "Vendor A", "09:00", "09:15"), "")
		}(i)
	}
	close(start)
	wg.Wait()

	successes, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case err == domain.ErrSlotTaken:
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, successes)
	require.Equal(t, n-1, conflicts)

	rows, err := svc.ListBookings(ctx, "ev-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestBookingService_BookSlot_EmailFailureDoesNotSurface(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBookingRepo()
	emails := &fakeEmailService{sendErr: fmt.Errorf("ses unavailable")}
	svc := NewBookingService(repo, newFakeEventRepo(), emails, testLogger, 2*time.Second)

	err := svc.BookSlot(ctx, newBooking("ev-1", "Vendor A", "09:00", "09:15"), "jane@t1.test")
	require.NoError(t, err)

	rows, err := svc.ListBookings(ctx, "ev-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestBookingService_SlotStatus(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBookingRepo()
	svc := NewBookingService(repo, newFakeEventRepo(), nil, testLogger, 2*time.Second)

	require.NoError(t, svc.BookSlot(ctx, newBooking("ev-1", "Vendor B", "10:30", "10:45"), ""))
	require.NoError(t, svc.BookSlot(ctx, newBooking("ev-1", "Vendor A", "09:00", "09:15"), ""))

	first, err := svc.SlotStatus(ctx, "ev-1")
	require.NoError(t, err)
	require.Len(t, first, 2)
	for i := 1; i < len(first); i++ {
		assert.LessOrEqual(t, first[i-1].SlotStart, first[i].SlotStart)
	}

	// Idempotent read: no writes in between, identical result.
	second, err := svc.SlotStatus(ctx, "ev-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBookingService_SlotStatus_EmptyEvent(t *testing.T) {
	ctx := context.Background()
	svc := NewBookingService(newFakeBookingRepo(), newFakeEventRepo(), nil, testLogger, 2*time.Second)

	statuses, err := svc.SlotStatus(ctx, "ev-none")
	require.NoError(t, err)
	require.NotNil(t, statuses)
	require.Empty(t, statuses)
}
