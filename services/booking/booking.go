// Package booking implements the booking lifecycle: draft capture,
// finalization with serial allocation, post-submission edits and
// soft delete/restore. All multi-row writes run in transactions so a
// failed submission leaves the record either untouched or fully
// finalized, never half way.
package booking

import (
	"errors"
	"fmt"
	"time"

	bookingModel "booking-registry/models/booking"
	settingsModel "booking-registry/models/settings"
	userModel "booking-registry/models/user"
	"booking-registry/services/audit"
	"booking-registry/services/serial"
	"booking-registry/types"
	bookingTypes "booking-registry/types/booking"

	"github.com/google/uuid"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// Service carries the booking lifecycle operations.
type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// Settings returns the singleton settings row.
func (s *Service) Settings() (*settingsModel.Settings, error) {
	var cfg settingsModel.Settings
	if err := s.DB.First(&cfg, settingsModel.SettingsID).Error; err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return &cfg, nil
}

// SaveDraft creates or updates a DRAFT with whatever partial data the form
// has so far. Drafts are owner-scoped and carry no serial.
func (s *Service) SaveDraft(req *bookingTypes.BookingRequest, draftUuid string, actor *userModel.User) (*bookingModel.Booking, error) {
	var b bookingModel.Booking

	if draftUuid != "" {
		err := s.DB.Where("uuid = ? AND created_by_id = ? AND status = ?",
			draftUuid, actor.ID, bookingModel.BookingStatusDraft).First(&b).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, types.ErrNotFound
			}
			return nil, err
		}
	} else {
		b = bookingModel.Booking{
			Uuid:        uuid.NewString(),
			Status:      bookingModel.BookingStatusDraft,
			CreatedByID: actor.ID,
		}
	}

	req.Apply(&b)

	if err := s.DB.Save(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// Finalize validates the full payload and moves the booking to SUBMITTED,
// stamping a serial number if it does not already hold one. Re-invoking on
// an already-submitted booking never reallocates. On a serial conflict the
// whole transaction is retried a bounded number of times.
func (s *Service) Finalize(req *bookingTypes.BookingRequest, draftUuid string, actor *userModel.User) (*bookingModel.Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cfg, err := s.Settings()
	if err != nil {
		return nil, err
	}
	if req.ProjectLocation == "" {
		req.ProjectLocation = cfg.DefaultProjectLocation
	}

	var result bookingModel.Booking
	var lastErr error

	for attempt := 1; attempt <= serial.MaxAttempts; attempt++ {
		lastErr = s.DB.Transaction(func(tx *gorm.DB) error {
			var b bookingModel.Booking

			if draftUuid != "" {
				err := tx.Where("uuid = ? AND created_by_id = ?", draftUuid, actor.ID).First(&b).Error
				if err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return types.ErrNotFound
					}
					return err
				}
				if b.IsDeleted() {
					return types.NewValidationError("status", "cannot submit a deleted booking")
				}
			} else {
				b = bookingModel.Booking{
					Uuid:        uuid.NewString(),
					CreatedByID: actor.ID,
				}
			}

			req.Apply(&b)

			action := bookingModel.AuditActionCreated
			if b.SerialNo != nil {
				// Repeat submission of a finalized booking is an edit;
				// the serial identity stays as-is.
				action = bookingModel.AuditActionEdited
			} else {
				submittedAt := time.Now()
				b.SubmittedAt = &submittedAt

				n, err := serial.Allocate(tx)
				if err != nil {
					return err
				}
				display := serial.Display(cfg.SerialPrefix, n)
				b.SerialNo = &n
				b.SerialDisplay = &display
			}
			b.Status = bookingModel.BookingStatusSubmitted

			if err := tx.Save(&b).Error; err != nil {
				return err
			}

			if err := audit.RecordBookingAction(tx, b.ID, actor.ID, action, nil); err != nil {
				return err
			}

			result = b
			return nil
		})

		if lastErr == nil {
			return &result, nil
		}
		if !serial.IsConflict(lastErr) {
			return nil, lastErr
		}
	}

	return nil, fmt.Errorf("%w: gave up after %d attempts: %v",
		types.ErrSerialConflict, serial.MaxAttempts, lastErr)
}

// Update applies an edit to a submitted booking. The serial identity is
// immutable; only payload fields change and the status flips to EDITED.
func (s *Service) Update(bookingUuid string, req *bookingTypes.BookingUpdateRequest, actor *userModel.User) (*bookingModel.Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var result bookingModel.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var b bookingModel.Booking
		if err := tx.Where("uuid = ? AND deleted_at IS NULL", bookingUuid).First(&b).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrNotFound
			}
			return err
		}
		if !b.IsSubmitted() {
			return types.NewValidationError("status", "draft bookings are edited through the draft endpoints")
		}

		serialNo, serialDisplay := b.SerialNo, b.SerialDisplay
		req.Apply(&b)
		b.SerialNo, b.SerialDisplay = serialNo, serialDisplay
		b.Status = bookingModel.BookingStatusEdited

		if err := tx.Save(&b).Error; err != nil {
			return err
		}

		var reason *string
		if req.Reason != "" {
			reason = &req.Reason
		}
		if err := audit.RecordBookingAction(tx, b.ID, actor.ID, bookingModel.AuditActionEdited, reason); err != nil {
			return err
		}

		result = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// SoftDelete hides a booking from normal listings. The serial identity is
// untouched and the record stays addressable for restore.
func (s *Service) SoftDelete(bookingUuid string, actor *userModel.User) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var b bookingModel.Booking
		if err := tx.Where("uuid = ?", bookingUuid).First(&b).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrNotFound
			}
			return err
		}
		if b.IsDeleted() {
			return types.NewValidationError("status", "booking is already deleted")
		}

		deletedAt := time.Now()
		b.DeletedAt = &deletedAt
		b.DeletedByID = &actor.ID

		if err := tx.Save(&b).Error; err != nil {
			return err
		}
		return audit.RecordBookingAction(tx, b.ID, actor.ID, bookingModel.AuditActionDeleted, nil)
	})
}

// Restore clears the soft-delete marker.
func (s *Service) Restore(bookingUuid string, actor *userModel.User) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var b bookingModel.Booking
		if err := tx.Where("uuid = ?", bookingUuid).First(&b).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrNotFound
			}
			return err
		}
		if !b.IsDeleted() {
			return types.NewValidationError("status", "booking is not deleted")
		}

		b.DeletedAt = nil
		b.DeletedByID = nil

		if err := tx.Save(&b).Error; err != nil {
			return err
		}
		return audit.RecordBookingAction(tx, b.ID, actor.ID, bookingModel.AuditActionRestored, nil)
	})
}

// Get fetches one booking (deleted or not) by public uuid.
func (s *Service) Get(bookingUuid string) (*bookingModel.Booking, error) {
	var b bookingModel.Booking
	err := s.DB.Preload("CreatedBy").Where("uuid = ?", bookingUuid).First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// List returns all live (non-deleted, non-draft) bookings, newest first.
func (s *Service) List() ([]bookingModel.Booking, error) {
	var out []bookingModel.Booking
	err := s.DB.Preload("CreatedBy").
		Where("deleted_at IS NULL AND status <> ?", bookingModel.BookingStatusDraft).
		Order("serial_no DESC").
		Find(&out).Error
	return out, err
}

// ListChronological returns live bookings oldest first, the order a
// printed register reads in.
func (s *Service) ListChronological() ([]bookingModel.Booking, error) {
	var out []bookingModel.Booking
	err := s.DB.Preload("CreatedBy").
		Where("deleted_at IS NULL AND status <> ?", bookingModel.BookingStatusDraft).
		Order("serial_no ASC").
		Find(&out).Error
	return out, err
}

// ListDeleted returns only soft-deleted bookings.
func (s *Service) ListDeleted() ([]bookingModel.Booking, error) {
	var out []bookingModel.Booking
	err := s.DB.Preload("CreatedBy").
		Where("deleted_at IS NOT NULL").
		Order("deleted_at DESC").
		Find(&out).Error
	return out, err
}

// ListDrafts returns the actor's own drafts, most recently touched first.
func (s *Service) ListDrafts(actor *userModel.User) ([]bookingModel.Booking, error) {
	var out []bookingModel.Booking
	err := s.DB.Where("created_by_id = ? AND status = ? AND deleted_at IS NULL",
		actor.ID, bookingModel.BookingStatusDraft).
		Order("updated_at DESC").
		Find(&out).Error
	return out, err
}

// DeleteDraft removes an unsubmitted draft outright; drafts have no serial
// so there is nothing to preserve.
func (s *Service) DeleteDraft(draftUuid string, actor *userModel.User) error {
	res := s.DB.Where("uuid = ? AND created_by_id = ? AND status = ?",
		draftUuid, actor.ID, bookingModel.BookingStatusDraft).
		Delete(&bookingModel.Booking{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Stats summarizes the register for the dashboard.
type Stats struct {
	TotalSubmitted int64 `json:"total_submitted"`
	SubmittedToday int64 `json:"submitted_today"`
	ThisMonth      int64 `json:"this_month"`
	Drafts         int64 `json:"drafts"`
	Deleted        int64 `json:"deleted"`
}

func (s *Service) Stats() (*Stats, error) {
	var st Stats
	live := s.DB.Model(&bookingModel.Booking{}).
		Where("deleted_at IS NULL AND status <> ?", bookingModel.BookingStatusDraft)

	if err := live.Session(&gorm.Session{}).Count(&st.TotalSubmitted).Error; err != nil {
		return nil, err
	}
	if err := live.Session(&gorm.Session{}).
		Where("submitted_at >= ?", now.BeginningOfDay()).
		Count(&st.SubmittedToday).Error; err != nil {
		return nil, err
	}
	if err := live.Session(&gorm.Session{}).
		Where("submitted_at >= ?", now.BeginningOfMonth()).
		Count(&st.ThisMonth).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&bookingModel.Booking{}).
		Where("status = ? AND deleted_at IS NULL", bookingModel.BookingStatusDraft).
		Count(&st.Drafts).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&bookingModel.Booking{}).
		Where("deleted_at IS NOT NULL").
		Count(&st.Deleted).Error; err != nil {
		return nil, err
	}
	return &st, nil
}
