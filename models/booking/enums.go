package booking

// Booking lifecycle statuses
const (
	BookingStatusDraft     = "DRAFT"
	BookingStatusSubmitted = "SUBMITTED"
	BookingStatusEdited    = "EDITED"
)

// Unit categories
const (
	UnitCategoryResidential = "Residential"
	UnitCategoryCommercial  = "Commercial"
)

// Unit types
const (
	UnitTypeFlat   = "Flat"
	UnitTypeVilla  = "Villa"
	UnitTypePlot   = "Plot"
	UnitTypeShop   = "Shop"
	UnitTypeOffice = "Office"
	UnitTypeOther  = "Other"
)

// Payment modes
const (
	PaymentModeCash     = "Cash"
	PaymentModeCheque   = "Cheque"
	PaymentModeNEFTRTGS = "NEFT_RTGS"
	PaymentModeUPI      = "UPI"
)

// Payment plan types
const (
	PaymentPlanConstructionLinked = "ConstructionLinked"
	PaymentPlanDownPayment        = "DownPayment"
	PaymentPlanPossessionLinked   = "PossessionLinked"
	PaymentPlanCustom             = "Custom"
)

// Audit actions
const (
	AuditActionCreated  = "CREATED"
	AuditActionEdited   = "EDITED"
	AuditActionDeleted  = "DELETED"
	AuditActionRestored = "RESTORED"
)
