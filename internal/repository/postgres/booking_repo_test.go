package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"vendormatch/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestSlotBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		booking *domain.SlotBooking
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr error
	}{
		{
			name: "success",
			booking: &domain.SlotBooking{
				EventID:         "ev-1",
				ParticipantName: "Vendor A",
				SlotStart:       "09:00",
				SlotEnd:         "09:15",
				BookedByVendor:  true,
				TenantID:        "T1",
				ActorName:       "Jane",
				EventDate:       "2025-03-01",
				CreatedAt:       createdAt,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO slot_bookings`).
					WithArgs("ev-1", "Vendor A", "09:00", "09:15", true, "T1", "Jane", "2025-03-01", createdAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("bk-1"))
			},
			wantID: "bk-1",
		},
		{
			name: "unique violation returns ErrSlotTaken",
			booking: &domain.SlotBooking{
				EventID:         "ev-1",
				ParticipantName: "Vendor A",
				SlotStart:       "09:00",
				CreatedAt:       createdAt,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO slot_bookings`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: domain.ErrSlotTaken,
		},
		{
			name: "db error passes through",
			booking: &domain.SlotBooking{
				EventID:         "ev-1",
				ParticipantName: "Vendor B",
				SlotStart:       "10:00",
				CreatedAt:       createdAt,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO slot_bookings`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewSlotBookingRepository(db)
			err = repo.Create(ctx, tt.booking)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.booking.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSlotBookingRepository_Exists(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		mock func(mock sqlmock.Sqlmock)
		want bool
	}{
		{
			name: "taken",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs("ev-1", "Vendor A", "09:00").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			},
			want: true,
		},
		{
			name: "free",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs("ev-1", "Vendor A", "09:00").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewSlotBookingRepository(db)
			got, err := repo.Exists(ctx, "ev-1", "Vendor A", "09:00")
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSlotBookingRepository_ListByEventID(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	cols := []string{"id", "event_id", "participant_name", "slot_start", "slot_end", "booked_by_vendor", "tenant_id", "actor_name", "event_date", "created_at"}

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, event_id, participant_name, slot_start, slot_end`).
		WithArgs("ev-1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("bk-1", "ev-1", "Vendor A", "09:00", "09:15", true, "T1", "Jane", "2025-03-01", createdAt).
			AddRow("bk-2", "ev-1", "Vendor A", "09:15", "09:30", true, "T1", "Jane", "2025-03-01", createdAt))

	repo := NewSlotBookingRepository(db)
	got, err := repo.ListByEventID(ctx, "ev-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "bk-1", got[0].ID)
	require.Equal(t, "bk-2", got[1].ID)
	require.LessOrEqual(t, got[0].SlotStart, got[1].SlotStart)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSlotBookingRepository_ListByEventID_Empty(t *testing.T) {
	ctx := context.Background()
	cols := []string{"id", "event_id", "participant_name", "slot_start", "slot_end", "booked_by_vendor", "tenant_id", "actor_name", "event_date", "created_at"}

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, event_id, participant_name, slot_start, slot_end`).
		WithArgs("ev-gone").
		WillReturnRows(sqlmock.NewRows(cols))

	repo := NewSlotBookingRepository(db)
	got, err := repo.ListByEventID(ctx, "ev-gone")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSlotBookingRepository_StatusByEventID(t *testing.T) {
	ctx := context.Background()
	cols := []string{"participant_name", "slot_start", "slot_end", "event_date", "booked_by_vendor", "tenant_id", "actor_name"}

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantLen int
		wantErr bool
	}{
		{
			name: "two rows ascending by slot start",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT participant_name, slot_start, slot_end, event_date`).
					WithArgs("ev-1").
					WillReturnRows(sqlmock.NewRows(cols).
						AddRow("Vendor A", "09:00", "09:15", "2025-03-01", true, "T1", "Jane").
						AddRow("Vendor B", "09:30", "09:45", "2025-03-01", false, "T1", "Bob"))
			},
			wantLen: 2,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT participant_name, slot_start, slot_end, event_date`).
					WithArgs("ev-1").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewSlotBookingRepository(db)
			got, err := repo.StatusByEventID(ctx, "ev-1")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, tt.wantLen)
			for i := 1; i < len(got); i++ {
				require.LessOrEqual(t, got[i-1].SlotStart, got[i].SlotStart)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
