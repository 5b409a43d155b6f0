package settings

import (
	"time"
)

// SettingsID is the primary key of the single settings row.
const SettingsID = 1

// CounterID is the primary key of the single serial counter row.
const CounterID = 1

// Settings is a singleton row holding admin-editable configuration.
type Settings struct {
	ID                     uint      `gorm:"primaryKey" json:"id"`
	AllowSelfSignup        bool      `gorm:"not null;default:false" json:"allow_self_signup"`
	SerialPrefix           string    `gorm:"type:varchar(20);not null;default:'LUBC-'" json:"serial_prefix"`
	DefaultProjectLocation string    `gorm:"type:varchar(255);not null" json:"default_project_location"`
	CreatedAt              time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// SerialCounter is the shared monotonic counter behind serial allocation.
// It is a single row; the allocator bumps LastValue with one atomic UPDATE,
// never with read-then-write.
type SerialCounter struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	LastValue int64     `gorm:"not null;default:0" json:"last_value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
