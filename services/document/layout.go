package document

import (
	"fmt"

	bookingModel "booking-registry/models/booking"
	"booking-registry/utils"
)

// Row is one label/value line in a document section.
type Row struct {
	Label string
	Value string
}

// Section is a titled block of rows rendered in order.
type Section struct {
	Title string
	Rows  []Row
}

// CompanySections builds the internal company-record layout. Mandatory
// display fields fall back to N/A; optional fields omit their row entirely
// when absent.
func CompanySections(b *bookingModel.Booking) []Section {
	sections := []Section{}

	project := Section{Title: "PROJECT INFORMATION"}
	project.Rows = append(project.Rows,
		Row{"Project Name", orNA(b.ProjectName)},
		Row{"Location", orNA(b.ProjectLocation)},
	)
	if b.ProjectAddress != nil {
		project.Rows = append(project.Rows, Row{"Address", *b.ProjectAddress})
	}
	project.Rows = append(project.Rows, Row{"RERA Registration", utils.Display(b.ReraRegnNo)})
	if b.BuildingPermitNo != nil {
		project.Rows = append(project.Rows, Row{"Building Permit", *b.BuildingPermitNo})
	}
	sections = append(sections, project)

	details := Section{Title: "BOOKING DETAILS"}
	details.Rows = append(details.Rows,
		Row{"Serial Number", utils.Display(b.SerialDisplay)},
		Row{"Status", orNA(b.Status)},
		Row{"Date", submittedDate(b)},
	)
	sections = append(sections, details)

	unit := Section{Title: "UNIT DETAILS"}
	unit.Rows = append(unit.Rows,
		Row{"Category", orNA(b.UnitCategory)},
		Row{"Type", unitType(b)},
		Row{"Unit Number", orNA(b.UnitNo)},
		Row{"Floor Number", utils.Display(b.FloorNo)},
		Row{"Super Built-up Area", utils.FormatArea(b.SuperBuiltupArea)},
		Row{"Carpet Area", utils.FormatArea(b.CarpetArea)},
	)
	sections = append(sections, unit)

	applicant := Section{Title: "APPLICANT INFORMATION"}
	applicant.Rows = append(applicant.Rows,
		Row{"Name", orNA(b.ApplicantName)},
		Row{"Father/Spouse", orNA(b.ApplicantFatherOrSpouse)},
		Row{"Mobile", orNA(b.ApplicantMobile)},
		Row{"Email", utils.Display(b.ApplicantEmail)},
		Row{"PAN", utils.Display(b.ApplicantPan)},
		Row{"Aadhaar", utils.Display(b.ApplicantAadhaar)},
	)
	sections = append(sections, applicant)

	if b.HasCoapplicant() {
		coapplicant := Section{Title: "CO-APPLICANT INFORMATION"}
		coapplicant.Rows = append(coapplicant.Rows,
			Row{"Name", *b.CoapplicantName},
			Row{"Relationship", utils.Display(b.CoapplicantRelationship)},
			Row{"Mobile", utils.Display(b.CoapplicantMobile)},
			Row{"PAN", utils.Display(b.CoapplicantPan)},
			Row{"Aadhaar", utils.Display(b.CoapplicantAadhaar)},
		)
		sections = append(sections, coapplicant)
	}

	payment := Section{Title: "PAYMENT INFORMATION"}
	payment.Rows = append(payment.Rows,
		Row{"Basic Sale Price", utils.FormatCurrency(b.BasicSalePrice)},
		Row{"Other Charges", utils.FormatCurrency(b.OtherCharges)},
		Row{"Total Cost", utils.FormatCurrency(b.TotalCost)},
	)
	if b.TotalCostOverrideReason != nil {
		payment.Rows = append(payment.Rows, Row{"Total Cost Override Reason", *b.TotalCostOverrideReason})
	}
	payment.Rows = append(payment.Rows,
		Row{"Booking Amount Paid", utils.FormatCurrency(b.BookingAmountPaid)},
		Row{"Payment Mode", orNA(b.PaymentMode)},
	)
	if b.TxnOrChequeNo != nil {
		payment.Rows = append(payment.Rows, Row{"Txn/Cheque No", *b.TxnOrChequeNo})
	}
	payment.Rows = append(payment.Rows, Row{"Payment Plan", paymentPlan(b)})
	sections = append(sections, payment)

	return sections
}

// CustomerSections builds the customer-copy layout: same data set,
// customer framing, with a payment summary computing the remaining amount.
func CustomerSections(b *bookingModel.Booking) []Section {
	sections := []Section{}

	details := Section{Title: "BOOKING DETAILS"}
	details.Rows = append(details.Rows,
		Row{"Serial Number", utils.Display(b.SerialDisplay)},
		Row{"Booking Date", submittedDate(b)},
	)
	sections = append(sections, details)

	project := Section{Title: "PROJECT DETAILS"}
	project.Rows = append(project.Rows,
		Row{"Project", orNA(b.ProjectName)},
		Row{"Location", orNA(b.ProjectLocation)},
	)
	if b.ProjectAddress != nil {
		project.Rows = append(project.Rows, Row{"Address", *b.ProjectAddress})
	}
	if b.ReraRegnNo != nil {
		project.Rows = append(project.Rows, Row{"RERA Registration", *b.ReraRegnNo})
	}
	if b.BuildingPermitNo != nil {
		project.Rows = append(project.Rows, Row{"Building Permit", *b.BuildingPermitNo})
	}
	sections = append(sections, project)

	unit := Section{Title: "UNIT INFORMATION"}
	unit.Rows = append(unit.Rows,
		Row{"Type", unitType(b)},
		Row{"Unit Number", orNA(b.UnitNo)},
		Row{"Floor", utils.Display(b.FloorNo)},
		Row{"Area", utils.FormatArea(b.CarpetArea)},
	)
	sections = append(sections, unit)

	remaining := b.TotalCost - b.BookingAmountPaid
	payment := Section{Title: "PAYMENT SUMMARY"}
	payment.Rows = append(payment.Rows,
		Row{"Total Property Cost", utils.FormatCurrency(b.TotalCost)},
		Row{"Amount Paid", utils.FormatCurrency(b.BookingAmountPaid)},
		Row{"Remaining Amount", utils.FormatCurrency(remaining)},
	)
	sections = append(sections, payment)

	applicant := Section{Title: "APPLICANT INFORMATION"}
	applicant.Rows = append(applicant.Rows,
		Row{"Name", orNA(b.ApplicantName)},
		Row{"Mobile", orNA(b.ApplicantMobile)},
		Row{"Email", utils.Display(b.ApplicantEmail)},
	)
	if b.ApplicantPan != nil {
		applicant.Rows = append(applicant.Rows, Row{"PAN", *b.ApplicantPan})
	}
	if b.ApplicantAadhaar != nil {
		applicant.Rows = append(applicant.Rows, Row{"Aadhaar", *b.ApplicantAadhaar})
	}
	sections = append(sections, applicant)

	if b.HasCoapplicant() {
		coapplicant := Section{Title: "CO-APPLICANT INFORMATION"}
		coapplicant.Rows = append(coapplicant.Rows,
			Row{"Name", *b.CoapplicantName},
			Row{"Relationship", utils.Display(b.CoapplicantRelationship)},
		)
		if b.CoapplicantMobile != nil {
			coapplicant.Rows = append(coapplicant.Rows, Row{"Mobile", *b.CoapplicantMobile})
		}
		if b.CoapplicantPan != nil {
			coapplicant.Rows = append(coapplicant.Rows, Row{"PAN", *b.CoapplicantPan})
		}
		if b.CoapplicantAadhaar != nil {
			coapplicant.Rows = append(coapplicant.Rows, Row{"Aadhaar", *b.CoapplicantAadhaar})
		}
		sections = append(sections, coapplicant)
	}

	return sections
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func submittedDate(b *bookingModel.Booking) string {
	if b.SubmittedAt == nil {
		return "N/A"
	}
	return utils.FormatDate(*b.SubmittedAt)
}

func unitType(b *bookingModel.Booking) string {
	if b.UnitType == bookingModel.UnitTypeOther && b.UnitTypeOtherText != nil {
		return fmt.Sprintf("Other (%s)", *b.UnitTypeOtherText)
	}
	return orNA(b.UnitType)
}

func paymentPlan(b *bookingModel.Booking) string {
	if b.PaymentPlanType == bookingModel.PaymentPlanCustom && b.PaymentPlanCustomText != nil {
		return *b.PaymentPlanCustomText
	}
	return orNA(b.PaymentPlanType)
}
