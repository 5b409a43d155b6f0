package document

import (
	"testing"
	"time"

	bookingModel "booking-registry/models/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func f64Ptr(v float64) *float64 { return &v }

func i64Ptr(v int64) *int64 { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func sampleBooking() *bookingModel.Booking {
	submitted := time.Date(2026, 3, 15, 11, 0, 0, 0, time.UTC)
	return &bookingModel.Booking{
		Uuid:                    "b8f7c9e2-1111-2222-3333-444455556666",
		SerialNo:                i64Ptr(41),
		SerialDisplay:           strPtr("LUBC-000041"),
		ProjectName:             "Green Heights",
		ProjectLocation:         "Ranchi, Jharkhand",
		UnitCategory:            "Residential",
		UnitType:                "Flat",
		UnitNo:                  "A-101",
		SuperBuiltupArea:        f64Ptr(1450),
		ApplicantName:           "Rakesh Kumar",
		ApplicantFatherOrSpouse: "Suresh Kumar",
		ApplicantMobile:         "9876543210",
		BasicSalePrice:          1200000,
		OtherCharges:            93102,
		TotalCost:               1293102,
		BookingAmountPaid:       900000,
		PaymentMode:             "UPI",
		PaymentPlanType:         "DownPayment",
		Status:                  bookingModel.BookingStatusSubmitted,
		SubmittedAt:             timePtr(submitted),
	}
}

func findSection(t *testing.T, sections []Section, title string) *Section {
	t.Helper()
	for i := range sections {
		if sections[i].Title == title {
			return &sections[i]
		}
	}
	return nil
}

func rowValue(s *Section, label string) (string, bool) {
	for _, r := range s.Rows {
		if r.Label == label {
			return r.Value, true
		}
	}
	return "", false
}

func TestCompanySectionsOmitCoapplicantWhenAbsent(t *testing.T) {
	sections := CompanySections(sampleBooking())
	assert.Nil(t, findSection(t, sections, "CO-APPLICANT INFORMATION"))
}

func TestCompanySectionsIncludeCoapplicant(t *testing.T) {
	b := sampleBooking()
	b.CoapplicantName = strPtr("Sunita Kumar")
	b.CoapplicantRelationship = strPtr("Spouse")

	sections := CompanySections(b)
	co := findSection(t, sections, "CO-APPLICANT INFORMATION")
	require.NotNil(t, co)

	name, ok := rowValue(co, "Name")
	require.True(t, ok)
	assert.Equal(t, "Sunita Kumar", name)

	// Missing co-applicant identity fields fall back to N/A on the record.
	pan, ok := rowValue(co, "PAN")
	require.True(t, ok)
	assert.Equal(t, "N/A", pan)
}

func TestCompanySectionsOptionalRows(t *testing.T) {
	b := sampleBooking()
	sections := CompanySections(b)

	project := findSection(t, sections, "PROJECT INFORMATION")
	require.NotNil(t, project)
	_, hasAddress := rowValue(project, "Address")
	assert.False(t, hasAddress)

	payment := findSection(t, sections, "PAYMENT INFORMATION")
	require.NotNil(t, payment)
	_, hasOverride := rowValue(payment, "Total Cost Override Reason")
	assert.False(t, hasOverride)

	b.ProjectAddress = strPtr("Plot 12, Main Road")
	b.TotalCostOverrideReason = strPtr("Corner unit premium waived")
	sections = CompanySections(b)

	addr, ok := rowValue(findSection(t, sections, "PROJECT INFORMATION"), "Address")
	require.True(t, ok)
	assert.Equal(t, "Plot 12, Main Road", addr)
	reason, ok := rowValue(findSection(t, sections, "PAYMENT INFORMATION"), "Total Cost Override Reason")
	require.True(t, ok)
	assert.Equal(t, "Corner unit premium waived", reason)
}

func TestCompanySectionsCurrencyAndAreaFormatting(t *testing.T) {
	sections := CompanySections(sampleBooking())

	payment := findSection(t, sections, "PAYMENT INFORMATION")
	require.NotNil(t, payment)
	total, ok := rowValue(payment, "Total Cost")
	require.True(t, ok)
	assert.Equal(t, "Rs. 12,93,102", total)

	unit := findSection(t, sections, "UNIT DETAILS")
	require.NotNil(t, unit)
	sba, ok := rowValue(unit, "Super Built-up Area")
	require.True(t, ok)
	assert.Equal(t, "1450 sq.ft", sba)
	carpet, ok := rowValue(unit, "Carpet Area")
	require.True(t, ok)
	assert.Equal(t, "N/A sq.ft", carpet)
}

func TestCompanySectionsUnitTypeOther(t *testing.T) {
	b := sampleBooking()
	b.UnitType = bookingModel.UnitTypeOther
	b.UnitTypeOtherText = strPtr("Penthouse")

	unit := findSection(t, CompanySections(b), "UNIT DETAILS")
	require.NotNil(t, unit)
	typ, ok := rowValue(unit, "Type")
	require.True(t, ok)
	assert.Equal(t, "Other (Penthouse)", typ)
}

func TestCompanySectionsCustomPaymentPlan(t *testing.T) {
	b := sampleBooking()
	b.PaymentPlanType = bookingModel.PaymentPlanCustom
	b.PaymentPlanCustomText = strPtr("30% now, rest on possession")

	payment := findSection(t, CompanySections(b), "PAYMENT INFORMATION")
	require.NotNil(t, payment)
	plan, ok := rowValue(payment, "Payment Plan")
	require.True(t, ok)
	assert.Equal(t, "30% now, rest on possession", plan)
}

func TestCustomerSectionsRemainingAmount(t *testing.T) {
	sections := CustomerSections(sampleBooking())

	payment := findSection(t, sections, "PAYMENT SUMMARY")
	require.NotNil(t, payment)

	remaining, ok := rowValue(payment, "Remaining Amount")
	require.True(t, ok)
	assert.Equal(t, "Rs. 3,93,102", remaining)
}

func TestCustomerSectionsOmitAbsentIdentityRows(t *testing.T) {
	sections := CustomerSections(sampleBooking())

	applicant := findSection(t, sections, "APPLICANT INFORMATION")
	require.NotNil(t, applicant)
	_, hasPan := rowValue(applicant, "PAN")
	assert.False(t, hasPan)
	_, hasAadhaar := rowValue(applicant, "Aadhaar")
	assert.False(t, hasAadhaar)

	assert.Nil(t, findSection(t, sections, "CO-APPLICANT INFORMATION"))
}

func TestCustomerSectionsBookingDate(t *testing.T) {
	sections := CustomerSections(sampleBooking())

	details := findSection(t, sections, "BOOKING DETAILS")
	require.NotNil(t, details)
	date, ok := rowValue(details, "Booking Date")
	require.True(t, ok)
	assert.Equal(t, "15/03/2026", date)

	serial, ok := rowValue(details, "Serial Number")
	require.True(t, ok)
	assert.Equal(t, "LUBC-000041", serial)
}
