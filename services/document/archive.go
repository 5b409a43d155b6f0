package document

import (
	"archive/zip"
	"bytes"
	"fmt"
	"time"

	bookingModel "booking-registry/models/booking"
	"booking-registry/types"
)

// Package bundles the two rendered documents into one zip keyed by the
// booking's serial display. Entries are written in a fixed order so the
// archive itself is deterministic.
func Package(serialDisplay string, companyPDF, customerPDF []byte) ([]byte, error) {
	if len(companyPDF) == 0 || len(customerPDF) == 0 {
		return nil, fmt.Errorf("%w: refusing to package an empty document", types.ErrRenderFailed)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	entries := []struct {
		name string
		data []byte
	}{
		{serialDisplay + "_Company.pdf", companyPDF},
		{serialDisplay + "_Customer.pdf", customerPDF},
	}

	for _, e := range entries {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     e.name,
			Method:   zip.Deflate,
			Modified: time.Unix(0, 0).UTC(),
		})
		if err != nil {
			zw.Close()
			return nil, fmt.Errorf("create archive entry %s: %w", e.name, err)
		}
		if _, err := w.Write(e.data); err != nil {
			zw.Close()
			return nil, fmt.Errorf("write archive entry %s: %w", e.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderArchive renders both document variants and packages them. If
// either render fails, no archive is produced.
func (r *Renderer) RenderArchive(b *bookingModel.Booking, generatedAt time.Time) ([]byte, error) {
	companyPDF, err := r.RenderCompany(b, generatedAt)
	if err != nil {
		return nil, err
	}
	customerPDF, err := r.RenderCustomer(b, generatedAt)
	if err != nil {
		return nil, err
	}
	if b.SerialDisplay == nil {
		return nil, fmt.Errorf("%w: booking is missing its serial identity", types.ErrRenderFailed)
	}
	return Package(*b.SerialDisplay, companyPDF, customerPDF)
}

// ArchiveFileName is the download name for a booking's document bundle.
func ArchiveFileName(serialDisplay string) string {
	return serialDisplay + "_Bookings.zip"
}
