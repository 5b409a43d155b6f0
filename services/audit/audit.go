package audit

import (
	bookingModel "booking-registry/models/booking"

	"gorm.io/gorm"
)

// RecordBookingAction appends an audit row for a booking inside the
// caller's transaction, so the audit entry commits or rolls back with the
// change it describes.
func RecordBookingAction(tx *gorm.DB, bookingID uint, actorID uint, action string, reason *string) error {
	entry := bookingModel.AuditLog{
		BookingID:   bookingID,
		ChangedByID: actorID,
		Action:      action,
		Reason:      reason,
	}
	return tx.Create(&entry).Error
}

// RecordAdminAction appends an admin audit row.
func RecordAdminAction(tx *gorm.DB, adminID uint, action string, targetUserID *uint, details string) error {
	entry := bookingModel.AdminAuditLog{
		AdminID:      adminID,
		Action:       action,
		TargetUserID: targetUserID,
		Details:      details,
	}
	return tx.Create(&entry).Error
}
