package report

import (
	"testing"
	"time"

	bookingModel "booking-registry/models/booking"
	userModel "booking-registry/models/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleBookings() []bookingModel.Booking {
	submitted := time.Date(2026, 3, 15, 11, 0, 0, 0, time.UTC)
	serial1, display1 := int64(1), "LUBC-000001"
	serial2, display2 := int64(2), "LUBC-000002"
	return []bookingModel.Booking{
		{
			SerialNo:          &serial1,
			SerialDisplay:     &display1,
			Status:            bookingModel.BookingStatusSubmitted,
			ProjectName:       "Green Heights",
			ProjectLocation:   "Ranchi, Jharkhand",
			UnitNo:            "A-101",
			ApplicantName:     "Rakesh Kumar",
			ApplicantMobile:   "9876543210",
			BasicSalePrice:    1200000,
			OtherCharges:      93102,
			TotalCost:         1293102,
			BookingAmountPaid: 900000,
			PaymentMode:       "UPI",
			SubmittedAt:       &submitted,
			CreatedBy:         userModel.User{FullName: "Test Staff"},
		},
		{
			SerialNo:          &serial2,
			SerialDisplay:     &display2,
			Status:            bookingModel.BookingStatusEdited,
			ProjectName:       "Green Heights",
			ProjectLocation:   "Ranchi, Jharkhand",
			UnitNo:            "B-204",
			ApplicantName:     "Sunita Devi",
			ApplicantMobile:   "8765432109",
			BasicSalePrice:    950000,
			OtherCharges:      50000,
			TotalCost:         1000000,
			BookingAmountPaid: 100000,
			PaymentMode:       "Cheque",
			SubmittedAt:       &submitted,
			CreatedBy:         userModel.User{FullName: "Other Staff"},
		},
	}
}

func TestBuildRegisterWorkbook(t *testing.T) {
	buf, err := BuildRegisterWorkbook(sampleBookings())
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, headers, rows[0])

	assert.Equal(t, "LUBC-000001", rows[1][0])
	assert.Equal(t, "SUBMITTED", rows[1][1])
	assert.Equal(t, "Rakesh Kumar", rows[1][5])
	assert.Equal(t, "15/03/2026", rows[1][12])
	assert.Equal(t, "Test Staff", rows[1][13])

	assert.Equal(t, "LUBC-000002", rows[2][0])
	assert.Equal(t, "EDITED", rows[2][1])
}

func TestBuildRegisterWorkbookEmpty(t *testing.T) {
	buf, err := BuildRegisterWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, headers, rows[0])
}

func TestRegisterFileName(t *testing.T) {
	assert.Equal(t, "Booking_Register.xlsx", RegisterFileName())
}
