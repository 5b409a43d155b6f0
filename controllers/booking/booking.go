package booking

import (
	"errors"

	"booking-registry/logger"
	bookingService "booking-registry/services/booking"
	"booking-registry/types"
	bookingTypes "booking-registry/types/booking"
	"booking-registry/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BookingController handles booking-related HTTP requests
type BookingController struct {
	DB      *gorm.DB
	Logger  *logger.AsyncLogger
	Service *bookingService.Service
}

// NewBookingController creates a new booking controller
func NewBookingController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{
		DB:      db,
		Logger:  asyncLogger,
		Service: bookingService.NewService(db),
	}
}

type draftEnvelope struct {
	DraftID string `json:"draft_id"`
	bookingTypes.BookingRequest
}

// SaveDraft creates or updates a draft with partial form data.
func (bc *BookingController) SaveDraft(c *fiber.Ctx) error {
	var req draftEnvelope
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse draft request body", err)
		return badRequest(c, "Invalid request body")
	}

	actor, err := utils.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	draft, err := bc.Service.SaveDraft(&req.BookingRequest, req.DraftID, actor)
	if err != nil {
		return bc.fail(c, "Failed to save draft", err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Draft saved",
		Data:    draft,
	})
}

// Drafts lists the caller's own drafts.
func (bc *BookingController) Drafts(c *fiber.Ctx) error {
	actor, err := utils.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	drafts, err := bc.Service.ListDrafts(actor)
	if err != nil {
		return bc.fail(c, "Failed to list drafts", err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Drafts",
		Data:    drafts,
	})
}

// DeleteDraft removes an unsubmitted draft.
func (bc *BookingController) DeleteDraft(c *fiber.Ctx) error {
	actor, err := utils.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	if err := bc.Service.DeleteDraft(c.Params("id"), actor); err != nil {
		return bc.fail(c, "Failed to delete draft", err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Draft deleted",
	})
}

// Submit finalizes a booking: full validation, serial allocation, audit.
// Re-submitting an already-finalized booking keeps its serial.
func (bc *BookingController) Submit(c *fiber.Ctx) error {
	var req draftEnvelope
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse submit request body", err)
		return badRequest(c, "Invalid request body")
	}

	actor, err := utils.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	b, err := bc.Service.Finalize(&req.BookingRequest, req.DraftID, actor)
	if err != nil {
		return bc.fail(c, "Failed to submit booking", err)
	}

	logger.Success("Booking " + *b.SerialDisplay + " submitted by " + actor.Email)
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking submitted",
		Data: fiber.Map{
			"booking_id":     b.Uuid,
			"serial_display": *b.SerialDisplay,
			"booking":        b,
		},
	})
}

// Index lists live bookings.
func (bc *BookingController) Index(c *fiber.Ctx) error {
	bookings, err := bc.Service.List()
	if err != nil {
		return bc.fail(c, "Failed to list bookings", err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bookings",
		Data:    bookings,
	})
}

// Deleted lists soft-deleted bookings for the restore screen.
func (bc *BookingController) Deleted(c *fiber.Ctx) error {
	bookings, err := bc.Service.ListDeleted()
	if err != nil {
		return bc.fail(c, "Failed to list deleted bookings", err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Deleted bookings",
		Data:    bookings,
	})
}

// Show returns one booking by public id.
func (bc *BookingController) Show(c *fiber.Ctx) error {
	b, err := bc.Service.Get(c.Params("id"))
	if err != nil {
		return bc.fail(c, "Failed to fetch booking", err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking",
		Data:    b,
	})
}

// Update edits a submitted booking. Serial identity never changes.
func (bc *BookingController) Update(c *fiber.Ctx) error {
	var req bookingTypes.BookingUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse update request body", err)
		return badRequest(c, "Invalid request body")
	}

	actor, err := utils.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	b, err := bc.Service.Update(c.Params("id"), &req, actor)
	if err != nil {
		return bc.fail(c, "Failed to update booking", err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking updated",
		Data:    b,
	})
}

// Delete soft-deletes a booking.
func (bc *BookingController) Delete(c *fiber.Ctx) error {
	actor, err := utils.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	if err := bc.Service.SoftDelete(c.Params("id"), actor); err != nil {
		return bc.fail(c, "Failed to delete booking", err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking deleted",
	})
}

// Restore brings a soft-deleted booking back.
func (bc *BookingController) Restore(c *fiber.Ctx) error {
	actor, err := utils.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	if err := bc.Service.Restore(c.Params("id"), actor); err != nil {
		return bc.fail(c, "Failed to restore booking", err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking restored",
	})
}

// Stats summarizes the register for the dashboard.
func (bc *BookingController) Stats(c *fiber.Ctx) error {
	stats, err := bc.Service.Stats()
	if err != nil {
		return bc.fail(c, "Failed to compute stats", err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Stats",
		Data:    stats,
	})
}

// fail maps service errors onto the response envelope: validation errors
// carry a field map, allocation conflicts are marked retryable, render
// failures are document-generation errors.
func (bc *BookingController) fail(c *fiber.Ctx, message string, err error) error {
	if ve, ok := types.AsValidationError(err); ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Status:  fiber.StatusUnprocessableEntity,
			Message: "Validation failed",
			Errors:  ve.Fields,
		})
	}
	if errors.Is(err, types.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Booking not found",
		})
	}
	if errors.Is(err, types.ErrSerialConflict) {
		logger.Warning("Serial allocation conflict: " + err.Error())
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "Submission conflicted with another booking; please retry",
		})
	}
	if errors.Is(err, types.ErrRenderFailed) {
		logger.Error(message, err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to generate documents",
		})
	}

	logger.Error(message, err)
	return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Message: message,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
		Status:  fiber.StatusBadRequest,
		Message: message,
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
		Status:  fiber.StatusUnauthorized,
		Message: "Authentication required",
	})
}
