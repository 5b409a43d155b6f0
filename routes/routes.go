package routes

import (
	"booking-registry/constants"
	"booking-registry/controllers/admin"
	"booking-registry/controllers/auth"
	"booking-registry/controllers/booking"
	"booking-registry/logger"
	"booking-registry/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)
	authController := auth.NewAuthController(db, asyncLogger)
	bookingController := booking.NewBookingController(db, asyncLogger)
	adminController := admin.NewAdminController(db, asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Use(middleware.RequestLogger(asyncLogger))

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "booking-registry",
			"status":  "ok",
		})
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Post("/login", authController.Login)
	api.Post("/register", authController.Register)

	/*=============================================================================
	| Protected Routes
	===============================================================================*/
	authGroup := api.Group("/auth").Use(middleware.Authenticated(db))
	authGroup.Get("/profile", authController.Profile)
	authGroup.Post("/logout", authController.LogOut)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	bookingGroup := api.Group("/booking").Use(middleware.Authenticated(db))

	// Drafts and submission: any active user
	bookingGroup.Post("/draft", bookingController.SaveDraft)
	bookingGroup.Get("/drafts", bookingController.Drafts)
	bookingGroup.Delete("/draft/:id", bookingController.DeleteDraft)
	bookingGroup.Post("/submit", bookingController.Submit)

	// Register views and documents: any active user
	bookingGroup.Get("/", bookingController.Index)
	bookingGroup.Get("/stats", bookingController.Stats)
	bookingGroup.Get("/export", bookingController.Export)
	bookingGroup.Get("/deleted", middleware.RequireRoles(
		constants.BookingManagerRoles...,
	), bookingController.Deleted)
	bookingGroup.Get("/:id", bookingController.Show)
	bookingGroup.Get("/:id/download", bookingController.Download)

	// Mutations on submitted bookings: ADMIN or EXECUTIVE
	bookingGroup.Put("/:id", middleware.RequireRoles(
		constants.BookingManagerRoles...,
	), bookingController.Update)

	bookingGroup.Delete("/:id", middleware.RequireRoles(
		constants.BookingManagerRoles...,
	), bookingController.Delete)

	// Restoration: ADMIN only
	bookingGroup.Post("/:id/restore", middleware.RequireRoles(
		constants.AdminRoles...,
	), bookingController.Restore)

	/*=============================================================================
	| Admin Routes
	===============================================================================*/
	adminGroup := api.Group("/admin").
		Use(middleware.Authenticated(db)).
		Use(middleware.RequireRoles(constants.AdminRoles...))

	adminGroup.Get("/users", adminController.Users)
	adminGroup.Post("/users/:id/approve", adminController.Approve)
	adminGroup.Post("/users/:id/disable", adminController.Disable)
	adminGroup.Post("/users/:id/role", adminController.SetRole)
	adminGroup.Get("/settings", adminController.GetSettings)
	adminGroup.Put("/settings", adminController.UpdateSettings)
}
