package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/pratishelar/realtor-sub000/handlers"
	"github.com/pratishelar/realtor-sub000/middleware"
)

func RegisterRoutes(e *echo.Echo) {
	propertyController := handlers.NewPropertyController()
	userController := handlers.NewUserController()
	enquiryController := handlers.NewEnquiryController()
	uploadController := handlers.NewUploadController()

	e.GET("/health", handlers.HealthCheck)

	// Public browsing
	e.GET("/properties", propertyController.ListProperties)
	e.GET("/properties/:id", propertyController.GetProperty)
	e.POST("/enquiries", enquiryController.CreateEnquiry)

	// Auth
	e.POST("/auth/register", userController.Register)
	e.POST("/auth/login", userController.Login)
	e.GET("/auth/profile", userController.GetProfile, middleware.JWTMiddleware())

	// Admin dashboard
	admin := e.Group("/admin", middleware.JWTMiddleware(), middleware.AdminOnly())
	admin.POST("/properties", propertyController.CreateProperty)
	admin.PUT("/properties/:id", propertyController.UpdateProperty)
	admin.DELETE("/properties/:id", propertyController.DeleteProperty)
	admin.POST("/properties/amenities/backfill", propertyController.BackfillAmenities)
	admin.GET("/enquiries", enquiryController.ListEnquiries)
	admin.POST("/uploads", uploadController.UploadImages)
	admin.POST("/uploads/raw", uploadController.UploadDocuments)
}
