// Package document renders the two booking confirmation PDFs (company
// record and customer copy) and packages them for download. Rendering is
// pure: the same booking state and generatedAt timestamp always produce
// byte-identical output.
package document

import (
	"bytes"
	"fmt"
	"time"

	bookingModel "booking-registry/models/booking"
	"booking-registry/types"
	"booking-registry/utils"

	"github.com/jung-kurt/gofpdf"
)

// Renderer holds the letterhead configuration shared by both variants.
type Renderer struct {
	CompanyName      string
	Tagline          string
	RegisteredOffice string
}

// NewRenderer returns a renderer with the company letterhead.
func NewRenderer() *Renderer {
	return &Renderer{
		CompanyName:      "LEVEL UP BUILDCON",
		Tagline:          "Property Booking Confirmation",
		RegisteredOffice: "Registered office: ASHIRWAD, 452 A, GROUND FLOOR, PEE PEE COMPOUND, MAIN ROAD, RANCHI",
	}
}

// Page geometry in millimetres (A4 portrait).
const (
	marginX       = 15.0
	contentX      = 20.0
	valueX        = 95.0
	rowHeight     = 6.0
	bottomLimit   = 25.0
	continueTop   = 15.0
	footerRuleY   = 12.0
	footerTextY   = 8.0
)

type doc struct {
	pdf  *gofpdf.Fpdf
	w, h float64
	y    float64
}

func (r *Renderer) newDoc(b *bookingModel.Booking, generatedAt time.Time) (*doc, error) {
	if b.Uuid == "" || b.SerialDisplay == nil || *b.SerialDisplay == "" {
		return nil, fmt.Errorf("%w: booking is missing its serial identity", types.ErrRenderFailed)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(generatedAt)
	// Resource catalogs must serialize in a stable order or the font
	// objects swap numbers between runs and equal inputs stop producing
	// equal bytes.
	pdf.SetCatalogSort(true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	w, h := pdf.GetPageSize()
	d := &doc{pdf: pdf, w: w, h: h, y: 12}

	// Decorative top border
	pdf.SetDrawColor(75, 105, 145)
	pdf.SetLineWidth(2)
	pdf.Line(marginX, 8, w-marginX, 8)

	// Letterhead band
	pdf.SetFillColor(248, 250, 252)
	pdf.Rect(marginX, 9, w-2*marginX, 22, "F")

	pdf.SetTextColor(75, 105, 145)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(contentX, 16, r.CompanyName)

	pdf.SetTextColor(102, 115, 140)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(contentX, 23, r.Tagline)

	pdf.SetTextColor(60, 70, 85)
	pdf.SetFont("Helvetica", "B", 7.5)
	addrY := 11.0
	for _, line := range pdf.SplitText(r.RegisteredOffice, 50) {
		pdf.Text(w-65, addrY, line)
		addrY += 3
	}

	pdf.SetTextColor(150, 160, 175)
	pdf.SetFont("Helvetica", "", 7)
	pdf.Text(w-65, 28, "Document ID: "+*b.SerialDisplay)

	return d, nil
}

func (d *doc) breakPage() {
	if d.y > d.h-bottomLimit {
		d.pdf.AddPage()
		d.y = continueTop
	}
}

func (d *doc) sectionHeader(title string) {
	d.pdf.SetTextColor(255, 255, 255)
	d.pdf.SetFillColor(75, 105, 145)
	d.pdf.Rect(marginX, d.y-3, d.w-2*marginX, 6, "F")

	d.pdf.SetFont("Helvetica", "B", 10)
	d.pdf.Text(contentX, d.y+0.5, title)

	d.y += 8
	d.breakPage()
}

func (d *doc) row(label, value string) {
	if int(d.y/rowHeight)%2 == 0 {
		d.pdf.SetFillColor(248, 250, 252)
		d.pdf.Rect(marginX, d.y-4, d.w-2*marginX, 5.5, "F")
	}

	d.pdf.SetTextColor(75, 105, 145)
	d.pdf.SetFont("Helvetica", "B", 10)
	d.pdf.Text(contentX, d.y+0.5, label)

	d.pdf.SetTextColor(60, 70, 85)
	d.pdf.SetFont("Helvetica", "", 10)
	lines := d.pdf.SplitText(value, d.w-110)
	if len(lines) > 1 {
		// Long values wrap; keep the row cadence by stepping per line.
		lineY := d.y + 0.5
		for _, line := range lines {
			d.pdf.Text(valueX, lineY, line)
			lineY += 4
		}
		d.y += 4 * float64(len(lines)-1)
	} else {
		d.pdf.Text(valueX, d.y+0.5, value)
	}

	d.y += rowHeight
	d.breakPage()
}

func (d *doc) sections(sections []Section, gap float64) {
	for _, s := range sections {
		d.sectionHeader(s.Title)
		for _, r := range s.Rows {
			d.row(r.Label, r.Value)
		}
		d.y += gap
	}
}

func (d *doc) paragraph(text string, size float64) {
	d.pdf.SetTextColor(60, 70, 85)
	d.pdf.SetFont("Helvetica", "", size)
	for _, line := range d.pdf.SplitText(text, d.w-40) {
		d.pdf.Text(contentX, d.y, line)
		d.y += 3.5
	}
}

func (d *doc) heading(text string) {
	d.pdf.SetTextColor(75, 105, 145)
	d.pdf.SetFont("Helvetica", "B", 10)
	d.pdf.Text(contentX, d.y, text)
	d.y += 5
}

func (d *doc) signatureLine(left, right string) {
	d.pdf.SetTextColor(60, 70, 85)
	d.pdf.SetFont("Helvetica", "", 9)
	d.pdf.Text(contentX, d.y, left+": _____________________")
	d.pdf.Text(d.w-70, d.y, right+": _____________________")
	d.y += 8
}

func (d *doc) footer(mark string, generatedAt time.Time) {
	d.pdf.SetDrawColor(75, 105, 145)
	d.pdf.SetLineWidth(0.5)
	d.pdf.Line(marginX, d.h-footerRuleY, d.w-marginX, d.h-footerRuleY)

	d.pdf.SetTextColor(120, 130, 145)
	d.pdf.SetFont("Helvetica", "", 8)
	d.pdf.Text(contentX, d.h-footerTextY, mark)
	d.pdf.Text(d.w-50, d.h-footerTextY, "Generated: "+utils.FormatDate(generatedAt))
}

func (d *doc) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}

// RenderCompany produces the internal company record.
func (r *Renderer) RenderCompany(b *bookingModel.Booking, generatedAt time.Time) ([]byte, error) {
	d, err := r.newDoc(b, generatedAt)
	if err != nil {
		return nil, err
	}

	d.y = 32
	d.sections(CompanySections(b), 3)
	d.y += 2

	d.heading("DECLARATION")
	d.paragraph("I/We agree to abide by the terms, conditions and provisions of RERA, 2016. This booking does not constitute final allotment.", 8.5)
	d.y += 10

	if d.y > d.h-40 {
		d.pdf.AddPage()
		d.y = continueTop
	}
	d.signatureLine("Applicant Signature", "Date")
	d.signatureLine("Authorized Signatory", "Company Seal")

	d.footer("COMPANY RECORD", generatedAt)
	return d.output()
}

// RenderCustomer produces the copy addressed to the applicant.
func (r *Renderer) RenderCustomer(b *bookingModel.Booking, generatedAt time.Time) ([]byte, error) {
	d, err := r.newDoc(b, generatedAt)
	if err != nil {
		return nil, err
	}

	d.y = 35
	name := b.ApplicantName
	if name == "" {
		name = "Valued Customer"
	}
	d.heading("Dear " + name + ",")
	d.paragraph("Thank you for choosing Level Up Buildcon! Your booking has been successfully registered with us. Please find all booking details below.", 8.5)
	d.y += 5

	d.sections(CustomerSections(b), 4)

	d.heading("Important Information")
	d.paragraph("Keep this document safely for your records. Further payment details and transaction updates will be communicated separately. For any queries, please contact us with your booking serial number.", 8.5)
	d.y += 9

	if d.y > d.h-30 {
		d.pdf.AddPage()
		d.y = continueTop
	}
	d.signatureLine("Authorized Signatory", "Company Seal")

	d.pdf.SetTextColor(75, 105, 145)
	d.pdf.SetFont("Helvetica", "B", 11)
	d.pdf.Text(contentX, d.y, "Best Regards,")
	d.y += 5
	d.pdf.SetTextColor(60, 70, 85)
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.Text(contentX, d.y, "Level Up Buildcon Team")

	d.footer("CUSTOMER COPY", generatedAt)
	return d.output()
}
