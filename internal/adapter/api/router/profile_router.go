package router

import (
	"github.com/labstack/echo/v4"

	"connekt/internal/adapter/api/handler"
	"connekt/internal/adapter/api/middleware"
	"connekt/internal/infrastructure/ratelimit"
)

func SetupProfileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter middleware.Limiter) {
	profileHandler := handler.GetProfileHandler()
	ratingHandler := handler.GetRatingHandler()
	mediaHandler := handler.GetMediaHandler()

	// Public routes; a valid token only changes what the viewer may see
	profiles := e.Group("/v1/profiles")
	profiles.Use(authMiddleware.OptionalAuth)

	profiles.GET("/handle/:handle", profileHandler.GetPublicProfileByHandle)
	profiles.GET("/:uid", profileHandler.GetPublicProfile)
	profiles.GET("/:uid/layout", profileHandler.GetLayout)
	profiles.GET("/:uid/reputation", profileHandler.GetReputation)
	profiles.GET("/:uid/ratings", ratingHandler.ListRatings)

	// Authenticated actions on someone else's profile
	profiles.POST("/:uid/ratings", ratingHandler.AddRating,
		authMiddleware.Authenticate, middleware.RateLimit(limiter, ratelimit.ActionRateProfile))
	profiles.POST("/:uid/referrals", profileHandler.AddReferral, authMiddleware.Authenticate)

	// Owner routes
	me := e.Group("/v1/me/profile")
	me.Use(authMiddleware.Authenticate)

	me.GET("", profileHandler.GetMyProfile)
	me.PATCH("", profileHandler.UpdateProfile)
	me.PUT("/handle", profileHandler.ClaimHandle)
	me.PUT("/skills", profileHandler.UpdateSkills)
	me.PUT("/privacy", profileHandler.UpdatePrivacySettings)

	me.POST("/experience", profileHandler.AddExperience)
	me.PUT("/experience/:id", profileHandler.UpdateExperience)
	me.DELETE("/experience/:id", profileHandler.DeleteExperience)

	me.POST("/education", profileHandler.AddEducation)
	me.PUT("/education/:id", profileHandler.UpdateEducation)
	me.DELETE("/education/:id", profileHandler.DeleteEducation)

	me.POST("/sections", profileHandler.AddCustomSection)
	me.PUT("/sections/:id", profileHandler.UpdateCustomSection)
	me.DELETE("/sections/:id", profileHandler.DeleteCustomSection)
	me.PUT("/section-order", profileHandler.UpdateSectionOrder)

	me.DELETE("/referrals/:id", profileHandler.DeleteReferral)

	uploads := middleware.RateLimit(limiter, ratelimit.ActionUploadMedia)
	me.POST("/photo", mediaHandler.UploadProfilePhoto, uploads)
	me.POST("/portfolio", mediaHandler.UploadPortfolioItem, uploads)
	me.PUT("/portfolio/order", mediaHandler.ReorderPortfolio)
	me.DELETE("/portfolio/:id", mediaHandler.RemovePortfolioItem)
}
