package booking

import (
	"booking-registry/models/user"
	"time"
)

// Booking represents a property booking record captured by staff.
//
// SerialNo/SerialDisplay stay null while the record is a DRAFT and are
// stamped exactly once when it is first submitted; they never change again,
// not across edits and not across soft-delete/restore.
type Booking struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Uuid string `gorm:"type:varchar(255);not null;unique" json:"uuid"`

	SerialNo      *int64  `gorm:"uniqueIndex" json:"serial_no,omitempty"`
	SerialDisplay *string `gorm:"type:varchar(50)" json:"serial_display,omitempty"`

	// Project & Unit
	ProjectName       string   `gorm:"type:varchar(255)" json:"project_name"`
	ProjectLocation   string   `gorm:"type:varchar(255)" json:"project_location"`
	ProjectAddress    *string  `gorm:"type:text" json:"project_address,omitempty"`
	ReraRegnNo        *string  `gorm:"type:varchar(100)" json:"rera_regn_no,omitempty"`
	BuildingPermitNo  *string  `gorm:"type:varchar(100)" json:"building_permit_no,omitempty"`
	UnitCategory      string   `gorm:"type:varchar(20)" json:"unit_category"`
	UnitType          string   `gorm:"type:varchar(20)" json:"unit_type"`
	UnitTypeOtherText *string  `gorm:"type:varchar(255)" json:"unit_type_other_text,omitempty"`
	UnitNo            string   `gorm:"type:varchar(50)" json:"unit_no"`
	FloorNo           *string  `gorm:"type:varchar(50)" json:"floor_no,omitempty"`
	SuperBuiltupArea  *float64 `json:"super_builtup_area,omitempty"`
	CarpetArea        *float64 `json:"carpet_area,omitempty"`

	// Applicant
	ApplicantName           string  `gorm:"type:varchar(255)" json:"applicant_name"`
	ApplicantFatherOrSpouse string  `gorm:"type:varchar(255)" json:"applicant_father_or_spouse"`
	ApplicantMobile         string  `gorm:"type:varchar(20)" json:"applicant_mobile"`
	ApplicantEmail          *string `gorm:"type:varchar(255)" json:"applicant_email,omitempty"`
	ApplicantPan            *string `gorm:"type:varchar(20)" json:"applicant_pan,omitempty"`
	ApplicantAadhaar        *string `gorm:"type:varchar(20)" json:"applicant_aadhaar,omitempty"`
	ApplicantAddress        *string `gorm:"type:text" json:"applicant_address,omitempty"`

	// Co-applicant (optional as a block; name is the presence marker)
	CoapplicantName         *string `gorm:"type:varchar(255)" json:"coapplicant_name,omitempty"`
	CoapplicantRelationship *string `gorm:"type:varchar(100)" json:"coapplicant_relationship,omitempty"`
	CoapplicantMobile       *string `gorm:"type:varchar(20)" json:"coapplicant_mobile,omitempty"`
	CoapplicantPan          *string `gorm:"type:varchar(20)" json:"coapplicant_pan,omitempty"`
	CoapplicantAadhaar      *string `gorm:"type:varchar(20)" json:"coapplicant_aadhaar,omitempty"`

	// Pricing & Payment
	BasicSalePrice          float64 `json:"basic_sale_price"`
	OtherCharges            float64 `json:"other_charges"`
	TotalCost               float64 `json:"total_cost"`
	TotalCostOverrideReason *string `gorm:"type:text" json:"total_cost_override_reason,omitempty"`
	BookingAmountPaid       float64 `json:"booking_amount_paid"`
	PaymentMode             string  `gorm:"type:varchar(20)" json:"payment_mode"`
	PaymentModeDetail       *string `gorm:"type:varchar(255)" json:"payment_mode_detail,omitempty"`
	TxnOrChequeNo           *string `gorm:"type:varchar(100)" json:"txn_or_cheque_no,omitempty"`
	TxnDate                 *string `gorm:"type:varchar(50)" json:"txn_date,omitempty"`

	// Payment Plan
	PaymentPlanType       string  `gorm:"type:varchar(30)" json:"payment_plan_type"`
	PaymentPlanCustomText *string `gorm:"type:text" json:"payment_plan_custom_text,omitempty"`

	Status string `gorm:"type:varchar(20);not null;default:DRAFT" json:"status"`

	CreatedByID uint      `gorm:"not null;index" json:"created_by_id"`
	CreatedBy   user.User `gorm:"foreignKey:CreatedByID" json:"created_by"`

	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Soft delete; a deleted booking stays addressable for restore.
	DeletedAt   *time.Time `gorm:"index" json:"deleted_at,omitempty"`
	DeletedByID *uint      `json:"deleted_by_id,omitempty"`
}

// IsSubmitted reports whether the booking has left DRAFT (and therefore
// carries a serial number).
func (b *Booking) IsSubmitted() bool {
	return b.Status != BookingStatusDraft
}

// IsDeleted reports whether the booking is soft-deleted.
func (b *Booking) IsDeleted() bool {
	return b.DeletedAt != nil
}

// HasCoapplicant reports whether a co-applicant block was captured.
func (b *Booking) HasCoapplicant() bool {
	return b.CoapplicantName != nil && *b.CoapplicantName != ""
}
