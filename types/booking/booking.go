package booking

import (
	"math"
	"reflect"
	"regexp"
	"strings"

	bookingModel "booking-registry/models/booking"
	"booking-registry/types"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// Report field errors under their json names so the form can point at
	// the offending input.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

var (
	mobileRegex  = regexp.MustCompile(`^[6-9]\d{9}$`)
	panRegex     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	aadhaarRegex = regexp.MustCompile(`^\d{12}$`)
)

// BookingRequest is the full multi-step form payload. Drafts accept it
// partially filled; Validate runs only at submission.
type BookingRequest struct {
	// Step 1: Project & Unit
	ProjectName       string   `json:"project_name" validate:"required,max=255"`
	ProjectLocation   string   `json:"project_location" validate:"omitempty,max=255"`
	ProjectAddress    string   `json:"project_address" validate:"omitempty"`
	ReraRegnNo        string   `json:"rera_regn_no" validate:"omitempty,max=100"`
	BuildingPermitNo  string   `json:"building_permit_no" validate:"omitempty,max=100"`
	UnitCategory      string   `json:"unit_category" validate:"required,oneof=Residential Commercial"`
	UnitType          string   `json:"unit_type" validate:"required,oneof=Flat Villa Plot Shop Office Other"`
	UnitTypeOtherText string   `json:"unit_type_other_text" validate:"omitempty,max=255"`
	UnitNo            string   `json:"unit_no" validate:"required,max=50"`
	FloorNo           string   `json:"floor_no" validate:"omitempty,max=50"`
	SuperBuiltupArea  *float64 `json:"super_builtup_area" validate:"omitempty,gt=0"`
	CarpetArea        *float64 `json:"carpet_area" validate:"omitempty,gt=0"`

	// Step 2: Applicant / Co-applicant
	ApplicantName           string `json:"applicant_name" validate:"required,max=255"`
	ApplicantFatherOrSpouse string `json:"applicant_father_or_spouse" validate:"required,max=255"`
	ApplicantMobile         string `json:"applicant_mobile" validate:"required"`
	ApplicantEmail          string `json:"applicant_email" validate:"omitempty,email"`
	ApplicantPan            string `json:"applicant_pan" validate:"omitempty"`
	ApplicantAadhaar        string `json:"applicant_aadhaar" validate:"omitempty"`
	ApplicantAddress        string `json:"applicant_address" validate:"omitempty"`
	CoapplicantName         string `json:"coapplicant_name" validate:"omitempty,max=255"`
	CoapplicantRelationship string `json:"coapplicant_relationship" validate:"omitempty,max=100"`
	CoapplicantMobile       string `json:"coapplicant_mobile" validate:"omitempty"`
	CoapplicantPan          string `json:"coapplicant_pan" validate:"omitempty"`
	CoapplicantAadhaar      string `json:"coapplicant_aadhaar" validate:"omitempty"`

	// Step 3: Pricing & Payment
	BasicSalePrice          float64 `json:"basic_sale_price" validate:"gt=0"`
	OtherCharges            float64 `json:"other_charges" validate:"gte=0"`
	TotalCost               float64 `json:"total_cost" validate:"gt=0"`
	TotalCostOverrideReason string  `json:"total_cost_override_reason" validate:"omitempty"`
	BookingAmountPaid       float64 `json:"booking_amount_paid" validate:"gt=0"`
	PaymentMode             string  `json:"payment_mode" validate:"required,oneof=Cash Cheque NEFT_RTGS UPI"`
	PaymentModeDetail       string  `json:"payment_mode_detail" validate:"omitempty,max=255"`
	TxnOrChequeNo           string  `json:"txn_or_cheque_no" validate:"omitempty,max=100"`
	TxnDate                 string  `json:"txn_date" validate:"omitempty,max=50"`
	PaymentPlanType         string  `json:"payment_plan_type" validate:"required,oneof=ConstructionLinked DownPayment PossessionLinked Custom"`
	PaymentPlanCustomText   string  `json:"payment_plan_custom_text" validate:"omitempty"`
}

// Validate checks the full payload for submission. It returns a
// *types.ValidationError keyed by json field name so the caller can point
// at the specific inputs at fault.
func (r *BookingRequest) Validate() error {
	fields := map[string]string{}

	if err := validate.Struct(r); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				if _, seen := fields[fe.Field()]; !seen {
					fields[fe.Field()] = tagMessage(fe)
				}
			}
		} else {
			return err
		}
	}

	if r.UnitType == bookingModel.UnitTypeOther && r.UnitTypeOtherText == "" {
		fields["unit_type_other_text"] = "Please specify the unit type"
	}

	if r.ApplicantMobile != "" && !mobileRegex.MatchString(r.ApplicantMobile) {
		fields["applicant_mobile"] = "Invalid mobile number"
	}
	if r.ApplicantPan != "" && !panRegex.MatchString(r.ApplicantPan) {
		fields["applicant_pan"] = "Invalid PAN"
	}
	if r.ApplicantAadhaar != "" && !aadhaarRegex.MatchString(r.ApplicantAadhaar) {
		fields["applicant_aadhaar"] = "Invalid Aadhaar"
	}

	if r.HasCoapplicant() {
		if r.CoapplicantRelationship == "" {
			fields["coapplicant_relationship"] = "Co-applicant relationship is required"
		}
		if r.CoapplicantMobile != "" && !mobileRegex.MatchString(r.CoapplicantMobile) {
			fields["coapplicant_mobile"] = "Invalid mobile number"
		}
		if r.CoapplicantPan != "" && !panRegex.MatchString(r.CoapplicantPan) {
			fields["coapplicant_pan"] = "Invalid PAN"
		}
		if r.CoapplicantAadhaar != "" && !aadhaarRegex.MatchString(r.CoapplicantAadhaar) {
			fields["coapplicant_aadhaar"] = "Invalid Aadhaar"
		}
	}

	// Declared total must match basic + other unless an override reason is
	// given; the mismatched total is then preserved verbatim.
	autoTotal := r.BasicSalePrice + r.OtherCharges
	if math.Abs(r.TotalCost-autoTotal) > 0.01 && r.TotalCostOverrideReason == "" {
		fields["total_cost_override_reason"] = "Please provide a reason for overriding the total cost"
	}

	if r.PaymentPlanType == bookingModel.PaymentPlanCustom && r.PaymentPlanCustomText == "" {
		fields["payment_plan_custom_text"] = "Please specify the custom payment plan"
	}

	if len(fields) > 0 {
		return &types.ValidationError{Fields: fields}
	}
	return nil
}

// HasCoapplicant reports whether the payload carries a co-applicant block.
func (r *BookingRequest) HasCoapplicant() bool {
	return r.CoapplicantName != ""
}

// Apply copies the payload onto a booking row, mapping empty optional
// strings to NULL columns. Serial and lifecycle fields are untouched.
func (r *BookingRequest) Apply(b *bookingModel.Booking) {
	b.ProjectName = r.ProjectName
	b.ProjectLocation = r.ProjectLocation
	b.ProjectAddress = optional(r.ProjectAddress)
	b.ReraRegnNo = optional(r.ReraRegnNo)
	b.BuildingPermitNo = optional(r.BuildingPermitNo)
	b.UnitCategory = r.UnitCategory
	b.UnitType = r.UnitType
	if r.UnitType == bookingModel.UnitTypeOther {
		b.UnitTypeOtherText = optional(r.UnitTypeOtherText)
	} else {
		b.UnitTypeOtherText = nil
	}
	b.UnitNo = r.UnitNo
	b.FloorNo = optional(r.FloorNo)
	b.SuperBuiltupArea = r.SuperBuiltupArea
	b.CarpetArea = r.CarpetArea

	b.ApplicantName = r.ApplicantName
	b.ApplicantFatherOrSpouse = r.ApplicantFatherOrSpouse
	b.ApplicantMobile = r.ApplicantMobile
	b.ApplicantEmail = optional(r.ApplicantEmail)
	b.ApplicantPan = optional(r.ApplicantPan)
	b.ApplicantAadhaar = optional(r.ApplicantAadhaar)
	b.ApplicantAddress = optional(r.ApplicantAddress)

	b.CoapplicantName = optional(r.CoapplicantName)
	b.CoapplicantRelationship = optional(r.CoapplicantRelationship)
	b.CoapplicantMobile = optional(r.CoapplicantMobile)
	b.CoapplicantPan = optional(r.CoapplicantPan)
	b.CoapplicantAadhaar = optional(r.CoapplicantAadhaar)

	b.BasicSalePrice = r.BasicSalePrice
	b.OtherCharges = r.OtherCharges
	b.TotalCost = r.TotalCost
	b.TotalCostOverrideReason = optional(r.TotalCostOverrideReason)
	b.BookingAmountPaid = r.BookingAmountPaid
	b.PaymentMode = r.PaymentMode
	b.PaymentModeDetail = optional(r.PaymentModeDetail)
	b.TxnOrChequeNo = optional(r.TxnOrChequeNo)
	b.TxnDate = optional(r.TxnDate)
	b.PaymentPlanType = r.PaymentPlanType
	if r.PaymentPlanType == bookingModel.PaymentPlanCustom {
		b.PaymentPlanCustomText = optional(r.PaymentPlanCustomText)
	} else {
		b.PaymentPlanCustomText = nil
	}
}

// BookingUpdateRequest wraps an edit of a submitted booking with the
// optional audit reason.
type BookingUpdateRequest struct {
	BookingRequest
	Reason string `json:"reason" validate:"omitempty"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email"
	case "oneof":
		return "Invalid value"
	case "gt":
		return "Must be greater than " + fe.Param()
	case "gte":
		return "Cannot be negative"
	case "max":
		return "Too long"
	default:
		return "Invalid value"
	}
}
