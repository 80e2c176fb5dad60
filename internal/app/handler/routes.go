package handler

import (
	"marketplace/internal/app/middleware"
	"marketplace/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все REST API маршруты с авторизацией
func (h *Handler) RegisterRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	anyRole := authMiddleware.WithAuthCheck()
	owners := authMiddleware.WithAuthCheck(role.Specialist, role.Admin)
	admins := authMiddleware.WithAuthCheck(role.Admin)

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.RegisterUser)
		auth.POST("/login", h.LoginUser)

		auth.POST("/logout", anyRole, h.LogoutUser)
		auth.GET("/profile", anyRole, h.GetUserProfile)
	}

	// ============ Карточки специалистов ============
	specialists := api.Group("/specialists")
	{
		specialists.GET("", h.GetSpecialists)
		specialists.GET("/:id", h.GetSpecialist)

		// владелец карточки или администратор, владение проверяет сервис
		specialists.POST("", owners, h.CreateSpecialist)
		specialists.PATCH("/:id", owners, h.UpdateSpecialist)
		specialists.DELETE("/:id", owners, h.DeleteSpecialist)
		specialists.POST("/:id/publish", owners, h.PublishSpecialist)
		specialists.PUT("/:id/services", owners, h.AssignServices)
	}

	// ============ Уровни комиссии ============
	fees := api.Group("/platform-fees")
	{
		fees.GET("", h.GetFeeTiers)
		fees.GET("/calculate", h.CalculateFee)
		fees.GET("/:id", h.GetFeeTier)

		fees.POST("", admins, h.CreateFeeTier)
		fees.PATCH("/:id", admins, h.UpdateFeeTier)
		fees.DELETE("/:id", admins, h.DeleteFeeTier)
	}

	// ============ Справочник услуг ============
	services := api.Group("/service-offerings")
	{
		services.GET("", h.GetServiceMasters)
		services.GET("/:id", h.GetServiceMaster)

		services.POST("", admins, h.CreateServiceMaster)
		services.PATCH("/:id", admins, h.UpdateServiceMaster)
		services.DELETE("/:id", admins, h.DeleteServiceMaster)
		services.POST("/:id/image", admins, h.UploadServiceImage)
	}

	router.GET("/ping", h.Ping)
}
