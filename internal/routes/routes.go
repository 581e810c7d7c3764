// Package routes defines the API routing configuration: route groups, their
// handlers, and the middleware applied to each.
package routes

import (
	"permitdesk/internal/handlers"
	"permitdesk/internal/middleware"
	"permitdesk/internal/repositories"
	"permitdesk/internal/services/auth"
	"permitdesk/internal/services/fee"
	"permitdesk/internal/services/payment"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services, and handlers onto the app.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	scheduleRepo := repositories.NewFeeScheduleRepository(db)
	userRepo := repositories.NewUserRepository(db)

	authService := auth.NewService(userRepo)
	resolver := fee.NewResolver(scheduleRepo, scheduleCache(), nil)
	feeService := fee.NewService(resolver, nil)
	paymentService := payment.NewService(db)

	authHandler := handlers.NewAuthHandler(authService)
	feeHandler := handlers.NewFeeHandler(feeService, scheduleRepo)
	paymentHandler := handlers.NewPaymentHandler(feeService, paymentService)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")

	// Public: applicants check fee estimates before submitting.
	api.Post("/fees/quote", feeHandler.Quote)

	api.Post("/login", authHandler.Login)
	api.Post("/refresh", authHandler.Refresh)

	// Staff routes.
	authenticated := api.Group("/", authMiddleware.Handler)
	authenticated.Post("/logout", authHandler.Logout)
	authenticated.Get("/fees/schedules/:prescribedActivityID", feeHandler.GetSchedule)
	authenticated.Post("/fees/pay", paymentHandler.Pay)
}

// scheduleCache adapts the global cache service to the engine's interface.
// The explicit nil check matters: wrapping a nil *cache.CacheService in the
// interface directly would defeat the resolver's nil guard and panic on the
// first lookup.
func scheduleCache() fee.ScheduleCache {
	if repositories.CacheService == nil {
		return nil
	}
	return repositories.CacheService
}
