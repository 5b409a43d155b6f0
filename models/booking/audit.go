// models/booking/audit.go
package booking

import (
	"booking-registry/models/user"
	"time"
)

// AuditLog records every state-changing action taken on a booking.
// Rows are append-only; there are many per booking.
type AuditLog struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	BookingID uint    `gorm:"not null;index" json:"booking_id"`
	Booking   Booking `gorm:"foreignKey:BookingID" json:"-"`

	ChangedByID uint      `gorm:"not null" json:"changed_by_id"`
	ChangedBy   user.User `gorm:"foreignKey:ChangedByID" json:"changed_by"`

	Action string  `gorm:"type:varchar(20);not null;index" json:"action"` // CREATED, EDITED, DELETED, RESTORED
	Reason *string `gorm:"type:text" json:"reason,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "booking_audit_logs"
}

// AdminAuditLog records administrative actions (user approval, role
// changes, settings updates).
type AdminAuditLog struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	AdminID uint      `gorm:"not null;index" json:"admin_id"`
	Admin   user.User `gorm:"foreignKey:AdminID" json:"admin"`

	Action       string `gorm:"type:varchar(50);not null" json:"action"`
	TargetUserID *uint  `json:"target_user_id,omitempty"`
	Details      string `gorm:"type:text" json:"details,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AdminAuditLog) TableName() string {
	return "admin_audit_logs"
}
