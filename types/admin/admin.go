package admin

import (
	"fmt"

	"booking-registry/constants"
)

// RoleChangeRequest sets a user's role.
type RoleChangeRequest struct {
	Role string `json:"role" validate:"required,oneof=STAFF EXECUTIVE ADMIN"`
}

// SettingsUpdateRequest updates the singleton settings row.
type SettingsUpdateRequest struct {
	AllowSelfSignup        *bool   `json:"allow_self_signup"`
	SerialPrefix           *string `json:"serial_prefix" validate:"omitempty,min=1,max=20"`
	DefaultProjectLocation *string `json:"default_project_location" validate:"omitempty,max=255"`
}

func (r RoleChangeRequest) Validate() error {
	if !constants.IsValidRole(r.Role) {
		return fmt.Errorf("role must be one of STAFF, EXECUTIVE, ADMIN")
	}
	return nil
}

func (r SettingsUpdateRequest) Validate() error {
	if r.SerialPrefix != nil && *r.SerialPrefix == "" {
		return fmt.Errorf("serial_prefix cannot be empty")
	}
	return nil
}
