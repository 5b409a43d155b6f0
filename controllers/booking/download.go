package booking

import (
	"time"

	"booking-registry/services/document"
	"booking-registry/services/report"
	"booking-registry/types"

	"github.com/gofiber/fiber/v2"
)

// Download renders both confirmation documents for a booking and streams
// them as one zip. Rendering is stateless; two concurrent downloads of the
// same booking produce equivalent archives.
func (bc *BookingController) Download(c *fiber.Ctx) error {
	b, err := bc.Service.Get(c.Params("id"))
	if err != nil {
		return bc.fail(c, "Failed to fetch booking", err)
	}

	if !b.IsSubmitted() || b.SerialDisplay == nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Status:  fiber.StatusUnprocessableEntity,
			Message: "Documents are available only for submitted bookings",
		})
	}

	renderer := document.NewRenderer()
	archive, err := renderer.RenderArchive(b, time.Now())
	if err != nil {
		return bc.fail(c, "Failed to generate documents", err)
	}

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition,
		`attachment; filename="`+document.ArchiveFileName(*b.SerialDisplay)+`"`)
	return c.Send(archive)
}

// Export streams the full register of submitted bookings as a spreadsheet,
// oldest first.
func (bc *BookingController) Export(c *fiber.Ctx) error {
	bookings, err := bc.Service.ListChronological()
	if err != nil {
		return bc.fail(c, "Failed to list bookings", err)
	}

	buf, err := report.BuildRegisterWorkbook(bookings)
	if err != nil {
		return bc.fail(c, "Failed to build register export", err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+report.RegisterFileName()+`"`)
	return c.Send(buf.Bytes())
}
