package user

import (
	"time"
)

// User represents a staff account. New accounts start as PENDING until an
// admin approves them; only ACTIVE accounts can log in.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Uuid         string `gorm:"type:varchar(255);not null;unique" json:"uuid"`
	FullName     string `gorm:"type:varchar(255);not null" json:"full_name"`
	Email        string `gorm:"type:varchar(255);not null;unique" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:STAFF" json:"role"`
	Status       string `gorm:"type:varchar(20);not null;default:PENDING" json:"status"`

	ApprovedByID *uint `gorm:"index" json:"approved_by_id,omitempty"`
	ApprovedBy   *User `gorm:"foreignKey:ApprovedByID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"approved_by,omitempty"`

	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// IsActive reports whether the account may use the system.
func (u *User) IsActive() bool {
	return u.Status == "ACTIVE" && u.DeletedAt == nil
}

// HasAnyRole reports whether the user's role is in the given set.
func (u *User) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
