package serial

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"booking-registry/models/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "serial.db") + "?_busy_timeout=10000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&settings.SerialCounter{}))
	require.NoError(t, db.Create(&settings.SerialCounter{ID: settings.CounterID, LastValue: 0}).Error)
	return db
}

func TestAllocateSequential(t *testing.T) {
	db := newTestDB(t)

	for want := int64(1); want <= 5; want++ {
		var got int64
		err := db.Transaction(func(tx *gorm.DB) error {
			n, err := Allocate(tx)
			got = n
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestAllocateRollsBackWithTransaction(t *testing.T) {
	db := newTestDB(t)

	boom := errors.New("save failed")
	err := db.Transaction(func(tx *gorm.DB) error {
		n, err := Allocate(tx)
		require.NoError(t, err)
		require.Equal(t, int64(1), n)
		return boom
	})
	require.ErrorIs(t, err, boom)

	// The rolled-back reservation must not have advanced the counter.
	var counter settings.SerialCounter
	require.NoError(t, db.First(&counter, settings.CounterID).Error)
	assert.Equal(t, int64(0), counter.LastValue)

	var next int64
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		n, err := Allocate(tx)
		next = n
		return err
	}))
	assert.Equal(t, int64(1), next)
}

func TestAllocateConcurrentUnique(t *testing.T) {
	db := newTestDB(t)

	const workers = 16

	var mu sync.Mutex
	got := make([]int64, 0, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				var n int64
				err := db.Transaction(func(tx *gorm.DB) error {
					v, err := Allocate(tx)
					n = v
					return err
				})
				if err != nil && IsConflict(err) {
					continue
				}
				if err != nil {
					t.Error(err)
					return
				}
				mu.Lock()
				got = append(got, n)
				mu.Unlock()
				return
			}
		}()
	}
	wg.Wait()

	require.Len(t, got, workers)
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	for i, n := range got {
		assert.Equal(t, int64(i+1), n, "serials must be unique and gapless under contention")
	}
}

func TestAllocateMissingCounter(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "empty.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&settings.SerialCounter{}))

	err = db.Transaction(func(tx *gorm.DB) error {
		_, err := Allocate(tx)
		return err
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "counter row")
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "LUBC-000041", Display("LUBC-", 41))
	assert.Equal(t, "LUBC-000001", Display("LUBC-", 1))
	assert.Equal(t, "LUBC-999999", Display("LUBC-", 999999))
	// Values past the pad width keep all their digits.
	assert.Equal(t, "LUBC-1234567", Display("LUBC-", 1234567))
	assert.Equal(t, "000007", Display("", 7))
}

func TestIsConflict(t *testing.T) {
	assert.False(t, IsConflict(nil))
	assert.False(t, IsConflict(errors.New("connection refused")))

	assert.True(t, IsConflict(ErrConflict))
	assert.True(t, IsConflict(fmt.Errorf("wrapped: %w", ErrConflict)))
	assert.True(t, IsConflict(gorm.ErrDuplicatedKey))
	assert.True(t, IsConflict(errors.New(`ERROR: duplicate key value violates unique constraint "idx_bookings_serial_no"`)))
	assert.True(t, IsConflict(errors.New("UNIQUE constraint failed: bookings.serial_no")))
	assert.True(t, IsConflict(errors.New("database is locked")))
	assert.True(t, IsConflict(errors.New("deadlock detected")))
}
