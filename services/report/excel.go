// Package report builds the spreadsheet export of the booking register for
// the downloads page.
package report

import (
	"bytes"
	"fmt"

	bookingModel "booking-registry/models/booking"
	"booking-registry/utils"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Bookings"

var headers = []string{
	"Serial",
	"Status",
	"Project",
	"Location",
	"Unit",
	"Applicant",
	"Mobile",
	"Basic Sale Price",
	"Other Charges",
	"Total Cost",
	"Amount Paid",
	"Payment Mode",
	"Submitted On",
	"Created By",
}

// BuildRegisterWorkbook renders the given bookings as an XLSX register,
// one row per booking in the order supplied.
func BuildRegisterWorkbook(bookings []bookingModel.Booking) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}

	for i, b := range bookings {
		values := []interface{}{
			stringOr(b.SerialDisplay, ""),
			b.Status,
			b.ProjectName,
			b.ProjectLocation,
			b.UnitNo,
			b.ApplicantName,
			b.ApplicantMobile,
			b.BasicSalePrice,
			b.OtherCharges,
			b.TotalCost,
			b.BookingAmountPaid,
			b.PaymentMode,
			submittedOn(&b),
			b.CreatedBy.FullName,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf, nil
}

// RegisterFileName is the download name for the register export.
func RegisterFileName() string {
	return "Booking_Register.xlsx"
}

func stringOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func submittedOn(b *bookingModel.Booking) string {
	if b.SubmittedAt == nil {
		return ""
	}
	return utils.FormatDate(*b.SubmittedAt)
}
