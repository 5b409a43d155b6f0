package admin

import (
	"errors"
	"fmt"

	"booking-registry/constants"
	"booking-registry/logger"
	settingsModel "booking-registry/models/settings"
	userModel "booking-registry/models/user"
	"booking-registry/services/audit"
	"booking-registry/types"
	adminTypes "booking-registry/types/admin"
	"booking-registry/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminController handles user administration and settings. Every route it
// serves sits behind the ADMIN role gate.
type AdminController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewAdminController creates a new admin controller
func NewAdminController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *AdminController {
	return &AdminController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Users lists all accounts, pending ones first.
func (ac *AdminController) Users(c *fiber.Ctx) error {
	var users []userModel.User
	err := ac.DB.Order("CASE WHEN status = 'PENDING' THEN 0 ELSE 1 END, created_at DESC").
		Find(&users).Error
	if err != nil {
		logger.Error("Failed to list users", err)
		return dbError(c)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Users",
		Data:    users,
	})
}

// Approve activates a PENDING account.
func (ac *AdminController) Approve(c *fiber.Ctx) error {
	return ac.setStatus(c, constants.UserStatusActive, "USER_APPROVED")
}

// Disable locks an account out.
func (ac *AdminController) Disable(c *fiber.Ctx) error {
	return ac.setStatus(c, constants.UserStatusDisabled, "USER_DISABLED")
}

func (ac *AdminController) setStatus(c *fiber.Ctx, status, action string) error {
	actor, err := utils.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var target userModel.User
	if err := ac.DB.Where("uuid = ?", c.Params("id")).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "User not found")
		}
		return dbError(c)
	}

	if target.ID == actor.ID && status == constants.UserStatusDisabled {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Status:  fiber.StatusUnprocessableEntity,
			Message: "You cannot disable your own account",
		})
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": status}
		if status == constants.UserStatusActive {
			updates["approved_by_id"] = actor.ID
		}
		if err := tx.Model(&target).Updates(updates).Error; err != nil {
			return err
		}
		return audit.RecordAdminAction(tx, actor.ID, action, &target.ID, target.Email)
	})
	if err != nil {
		logger.Error("Failed to update user status", err)
		return dbError(c)
	}

	logger.Success(fmt.Sprintf("%s %s by %s", action, target.Email, actor.Email))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "User updated",
		Data:    target,
	})
}

// SetRole changes a user's role.
func (ac *AdminController) SetRole(c *fiber.Ctx) error {
	var req adminTypes.RoleChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Status:  fiber.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	}

	actor, err := utils.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var target userModel.User
	if err := ac.DB.Where("uuid = ?", c.Params("id")).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "User not found")
		}
		return dbError(c)
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&target).Update("role", req.Role).Error; err != nil {
			return err
		}
		details := fmt.Sprintf("%s -> %s", target.Email, req.Role)
		return audit.RecordAdminAction(tx, actor.ID, "USER_ROLE_CHANGED", &target.ID, details)
	})
	if err != nil {
		logger.Error("Failed to change user role", err)
		return dbError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Role updated",
		Data:    target,
	})
}

// GetSettings returns the singleton settings row.
func (ac *AdminController) GetSettings(c *fiber.Ctx) error {
	var cfg settingsModel.Settings
	if err := ac.DB.First(&cfg, settingsModel.SettingsID).Error; err != nil {
		logger.Error("Failed to load settings", err)
		return dbError(c)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Settings",
		Data:    cfg,
	})
}

// UpdateSettings applies partial changes to the settings row. Changing the
// serial prefix affects only future serial displays; already-issued
// serials keep the display they were stamped with.
func (ac *AdminController) UpdateSettings(c *fiber.Ctx) error {
	var req adminTypes.SettingsUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Status:  fiber.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	}

	actor, err := utils.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	updates := map[string]interface{}{}
	if req.AllowSelfSignup != nil {
		updates["allow_self_signup"] = *req.AllowSelfSignup
	}
	if req.SerialPrefix != nil {
		updates["serial_prefix"] = *req.SerialPrefix
	}
	if req.DefaultProjectLocation != nil {
		updates["default_project_location"] = *req.DefaultProjectLocation
	}
	if len(updates) == 0 {
		return badRequest(c, "Nothing to update")
	}

	var cfg settingsModel.Settings
	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&cfg, settingsModel.SettingsID).Error; err != nil {
			return err
		}
		if err := tx.Model(&cfg).Updates(updates).Error; err != nil {
			return err
		}
		return audit.RecordAdminAction(tx, actor.ID, "SETTINGS_UPDATED", nil, fmt.Sprintf("%v", updates))
	})
	if err != nil {
		logger.Error("Failed to update settings", err)
		return dbError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Settings updated",
		Data:    cfg,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
		Status:  fiber.StatusBadRequest,
		Message: message,
	})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
		Status:  fiber.StatusNotFound,
		Message: message,
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
		Status:  fiber.StatusUnauthorized,
		Message: "Authentication required",
	})
}

func dbError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Message: "Database error",
	})
}
