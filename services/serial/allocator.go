// Package serial hands out the permanent booking serial numbers.
//
// The counter is a single shared row; reserving the next value is one
// atomic UPDATE inside the caller's transaction, so concurrent finalizers
// serialize on the row lock and can never see the same value. The old
// "read current max, add one" pattern is exactly what this package exists
// to prevent.
package serial

import (
	"errors"
	"fmt"
	"strings"

	"booking-registry/models/settings"

	"gorm.io/gorm"
)

const (
	// DisplayWidth is the zero-pad width of the human-readable serial.
	DisplayWidth = 6

	// MaxAttempts bounds retries when a reservation hits a conflict.
	MaxAttempts = 3
)

// ErrConflict marks a transient allocation failure (lock contention or a
// duplicate-serial constraint hit). The caller may retry the whole
// submission; it is distinct from a validation rejection.
var ErrConflict = errors.New("serial allocation conflict")

// Allocate reserves the next serial number. It must be called inside the
// same transaction that persists the submission so that a failed save
// rolls the reservation back with it. Gaps from rolled-back submissions
// are acceptable; duplicates are not.
func Allocate(tx *gorm.DB) (int64, error) {
	res := tx.Model(&settings.SerialCounter{}).
		Where("id = ?", settings.CounterID).
		Update("last_value", gorm.Expr("last_value + 1"))
	if res.Error != nil {
		if IsConflict(res.Error) {
			return 0, fmt.Errorf("%w: %v", ErrConflict, res.Error)
		}
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, fmt.Errorf("serial counter row %d missing", settings.CounterID)
	}

	var counter settings.SerialCounter
	if err := tx.First(&counter, settings.CounterID).Error; err != nil {
		return 0, err
	}
	return counter.LastValue, nil
}

// Display renders the permanent human-readable identifier, e.g.
// Display("LUBC-", 41) == "LUBC-000041".
func Display(prefix string, n int64) string {
	return fmt.Sprintf("%s%0*d", prefix, DisplayWidth, n)
}

// IsConflict reports whether err is a retryable allocation conflict: a
// unique-constraint hit on serial_no or database lock contention.
func IsConflict(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrConflict) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked") ||
		strings.Contains(msg, "deadlock")
}
