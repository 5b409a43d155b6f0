package booking

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"booking-registry/database"
	bookingModel "booking-registry/models/booking"
	settingsModel "booking-registry/models/settings"
	userModel "booking-registry/models/user"
	"booking-registry/types"
	bookingTypes "booking-registry/types/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (*Service, *userModel.User) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "booking.db") + "?_busy_timeout=10000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	require.NoError(t, db.Create(&settingsModel.Settings{
		ID:                     settingsModel.SettingsID,
		AllowSelfSignup:        false,
		SerialPrefix:           "LUBC-",
		DefaultProjectLocation: "Ranchi, Jharkhand",
	}).Error)
	require.NoError(t, db.Create(&settingsModel.SerialCounter{
		ID:        settingsModel.CounterID,
		LastValue: 0,
	}).Error)

	actor := &userModel.User{
		Uuid:         uuid.NewString(),
		FullName:     "Test Staff",
		Email:        "staff@example.com",
		PasswordHash: "x",
		Role:         "STAFF",
		Status:       "ACTIVE",
	}
	require.NoError(t, db.Create(actor).Error)

	return NewService(db), actor
}

func validRequest() *bookingTypes.BookingRequest {
	return &bookingTypes.BookingRequest{
		ProjectName:             "Green Heights",
		ProjectLocation:         "Ranchi, Jharkhand",
		UnitCategory:            "Residential",
		UnitType:                "Flat",
		UnitNo:                  "A-101",
		ApplicantName:           "Rakesh Kumar",
		ApplicantFatherOrSpouse: "Suresh Kumar",
		ApplicantMobile:         "9876543210",
		BasicSalePrice:          1200000,
		OtherCharges:            93102,
		TotalCost:               1293102,
		BookingAmountPaid:       900000,
		PaymentMode:             "UPI",
		PaymentPlanType:         "DownPayment",
	}
}

func TestFinalizeAssignsSerial(t *testing.T) {
	svc, actor := newTestService(t)

	b, err := svc.Finalize(validRequest(), "", actor)
	require.NoError(t, err)

	require.NotNil(t, b.SerialNo)
	assert.Equal(t, int64(1), *b.SerialNo)
	require.NotNil(t, b.SerialDisplay)
	assert.Equal(t, "LUBC-000001", *b.SerialDisplay)
	assert.Equal(t, bookingModel.BookingStatusSubmitted, b.Status)
	require.NotNil(t, b.SubmittedAt)

	var audits []bookingModel.AuditLog
	require.NoError(t, svc.DB.Where("booking_id = ?", b.ID).Find(&audits).Error)
	require.Len(t, audits, 1)
	assert.Equal(t, bookingModel.AuditActionCreated, audits[0].Action)
}

func TestFinalizeDraft(t *testing.T) {
	svc, actor := newTestService(t)

	partial := &bookingTypes.BookingRequest{ProjectName: "Green Heights"}
	draft, err := svc.SaveDraft(partial, "", actor)
	require.NoError(t, err)
	assert.Equal(t, bookingModel.BookingStatusDraft, draft.Status)
	assert.Nil(t, draft.SerialNo)

	b, err := svc.Finalize(validRequest(), draft.Uuid, actor)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, b.ID)
	require.NotNil(t, b.SerialNo)
	assert.Equal(t, int64(1), *b.SerialNo)
}

func TestRefinalizeNeverReallocates(t *testing.T) {
	svc, actor := newTestService(t)

	first, err := svc.Finalize(validRequest(), "", actor)
	require.NoError(t, err)

	req := validRequest()
	req.ApplicantName = "Rakesh K. Kumar"
	second, err := svc.Finalize(req, first.Uuid, actor)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, *first.SerialNo, *second.SerialNo)
	assert.Equal(t, *first.SerialDisplay, *second.SerialDisplay)
	assert.Equal(t, "Rakesh K. Kumar", second.ApplicantName)

	// The counter must still read 1; re-submission is an edit.
	var counter settingsModel.SerialCounter
	require.NoError(t, svc.DB.First(&counter, settingsModel.CounterID).Error)
	assert.Equal(t, int64(1), counter.LastValue)
}

func TestFinalizeRejectsInvalidPayload(t *testing.T) {
	svc, actor := newTestService(t)

	req := validRequest()
	req.TotalCost = 2000000 // mismatched, no override reason

	_, err := svc.Finalize(req, "", actor)
	require.Error(t, err)
	ve, ok := types.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "total_cost_override_reason")

	// Rejection must not burn a serial or leave a row behind.
	var count int64
	require.NoError(t, svc.DB.Model(&bookingModel.Booking{}).Count(&count).Error)
	assert.Zero(t, count)
	var counter settingsModel.SerialCounter
	require.NoError(t, svc.DB.First(&counter, settingsModel.CounterID).Error)
	assert.Zero(t, counter.LastValue)
}

func TestFinalizeDefaultsProjectLocation(t *testing.T) {
	svc, actor := newTestService(t)

	req := validRequest()
	req.ProjectLocation = ""
	b, err := svc.Finalize(req, "", actor)
	require.NoError(t, err)
	assert.Equal(t, "Ranchi, Jharkhand", b.ProjectLocation)
}

func TestUpdatePreservesSerial(t *testing.T) {
	svc, actor := newTestService(t)

	b, err := svc.Finalize(validRequest(), "", actor)
	require.NoError(t, err)

	upd := &bookingTypes.BookingUpdateRequest{BookingRequest: *validRequest(), Reason: "typo in unit number"}
	upd.UnitNo = "A-102"

	edited, err := svc.Update(b.Uuid, upd, actor)
	require.NoError(t, err)
	assert.Equal(t, "A-102", edited.UnitNo)
	assert.Equal(t, bookingModel.BookingStatusEdited, edited.Status)
	assert.Equal(t, *b.SerialNo, *edited.SerialNo)
	assert.Equal(t, *b.SerialDisplay, *edited.SerialDisplay)

	var audits []bookingModel.AuditLog
	require.NoError(t, svc.DB.Where("booking_id = ? AND action = ?", b.ID, bookingModel.AuditActionEdited).Find(&audits).Error)
	require.Len(t, audits, 1)
	require.NotNil(t, audits[0].Reason)
	assert.Equal(t, "typo in unit number", *audits[0].Reason)
}

func TestUpdateRejectsDraft(t *testing.T) {
	svc, actor := newTestService(t)

	draft, err := svc.SaveDraft(&bookingTypes.BookingRequest{ProjectName: "Green Heights"}, "", actor)
	require.NoError(t, err)

	upd := &bookingTypes.BookingUpdateRequest{BookingRequest: *validRequest()}
	_, err = svc.Update(draft.Uuid, upd, actor)
	require.Error(t, err)
	_, ok := types.AsValidationError(err)
	assert.True(t, ok)
}

func TestSoftDeleteAndRestore(t *testing.T) {
	svc, actor := newTestService(t)

	b, err := svc.Finalize(validRequest(), "", actor)
	require.NoError(t, err)

	require.NoError(t, svc.SoftDelete(b.Uuid, actor))

	live, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, live)

	deleted, err := svc.ListDeleted()
	require.NoError(t, err)
	require.Len(t, deleted, 1)
	assert.Equal(t, b.Uuid, deleted[0].Uuid)
	assert.Equal(t, *b.SerialNo, *deleted[0].SerialNo)

	// Double delete is a no-op rejection.
	err = svc.SoftDelete(b.Uuid, actor)
	_, ok := types.AsValidationError(err)
	assert.True(t, ok)

	require.NoError(t, svc.Restore(b.Uuid, actor))
	live, err = svc.List()
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, *b.SerialDisplay, *live[0].SerialDisplay)
}

func TestSerialNeverReusedAfterDelete(t *testing.T) {
	svc, actor := newTestService(t)

	first, err := svc.Finalize(validRequest(), "", actor)
	require.NoError(t, err)
	require.NoError(t, svc.SoftDelete(first.Uuid, actor))

	second, err := svc.Finalize(validRequest(), "", actor)
	require.NoError(t, err)
	assert.Equal(t, int64(2), *second.SerialNo)
}

func TestDeleteDraft(t *testing.T) {
	svc, actor := newTestService(t)

	draft, err := svc.SaveDraft(&bookingTypes.BookingRequest{ProjectName: "Green Heights"}, "", actor)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDraft(draft.Uuid, actor))
	assert.ErrorIs(t, svc.DeleteDraft(draft.Uuid, actor), types.ErrNotFound)

	// Submitted bookings are not hard-deletable through the draft path.
	b, err := svc.Finalize(validRequest(), "", actor)
	require.NoError(t, err)
	assert.ErrorIs(t, svc.DeleteDraft(b.Uuid, actor), types.ErrNotFound)
}

func TestSaveDraftOwnerScoped(t *testing.T) {
	svc, actor := newTestService(t)

	other := &userModel.User{
		Uuid:         uuid.NewString(),
		FullName:     "Other Staff",
		Email:        "other@example.com",
		PasswordHash: "x",
		Role:         "STAFF",
		Status:       "ACTIVE",
	}
	require.NoError(t, svc.DB.Create(other).Error)

	draft, err := svc.SaveDraft(&bookingTypes.BookingRequest{ProjectName: "Green Heights"}, "", actor)
	require.NoError(t, err)

	_, err = svc.SaveDraft(&bookingTypes.BookingRequest{ProjectName: "Hijack"}, draft.Uuid, other)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestGetNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Get(uuid.NewString())
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestStats(t *testing.T) {
	svc, actor := newTestService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.Finalize(validRequest(), "", actor)
		require.NoError(t, err)
	}
	_, err := svc.SaveDraft(&bookingTypes.BookingRequest{ProjectName: "Green Heights"}, "", actor)
	require.NoError(t, err)

	list, err := svc.List()
	require.NoError(t, err)
	require.NoError(t, svc.SoftDelete(list[0].Uuid, actor))

	st, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), st.TotalSubmitted)
	assert.Equal(t, int64(2), st.SubmittedToday)
	assert.Equal(t, int64(2), st.ThisMonth)
	assert.Equal(t, int64(1), st.Drafts)
	assert.Equal(t, int64(1), st.Deleted)
}

func TestListOrderedBySerialDescending(t *testing.T) {
	svc, actor := newTestService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.Finalize(validRequest(), "", actor)
		require.NoError(t, err)
	}

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, int64(3), *list[0].SerialNo)
	assert.Equal(t, int64(2), *list[1].SerialNo)
	assert.Equal(t, int64(1), *list[2].SerialNo)
}

func TestListChronologicalOrdersOldestFirst(t *testing.T) {
	svc, actor := newTestService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.Finalize(validRequest(), "", actor)
		require.NoError(t, err)
	}
	_, err := svc.SaveDraft(&bookingTypes.BookingRequest{ProjectName: "Green Heights"}, "", actor)
	require.NoError(t, err)

	list, err := svc.ListChronological()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, int64(1), *list[0].SerialNo)
	assert.Equal(t, int64(2), *list[1].SerialNo)
	assert.Equal(t, int64(3), *list[2].SerialNo)
}

func TestConcurrentFinalizeUniqueSerials(t *testing.T) {
	svc, actor := newTestService(t)

	const workers = 8

	var mu sync.Mutex
	serials := map[int64]bool{}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				b, err := svc.Finalize(validRequest(), "", actor)
				if err != nil && errors.Is(err, types.ErrSerialConflict) {
					continue
				}
				if err != nil {
					t.Error(err)
					return
				}
				mu.Lock()
				serials[*b.SerialNo] = true
				mu.Unlock()
				return
			}
		}()
	}
	wg.Wait()

	assert.Len(t, serials, workers, "every submission must get its own serial")
}
