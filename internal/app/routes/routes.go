package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/controllers"
	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
	"github.com/Amber-bisht/notesfind-sub000/internal/middleware"
)

// SetupRouter configures all application routes.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	categoryController *controllers.CategoryController,
	subCategoryController *controllers.SubCategoryController,
	noteController *controllers.NoteController,
	rankController *controllers.RankController,
	webinarController *controllers.WebinarController,
	contactController *controllers.ContactController,
	userController *controllers.UserController,
	uploadController *controllers.UploadController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/google", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.GET("/me", authMiddleware.RequireAuth(), authController.Me)
	}

	// --- Public catalog browsing ---
	categories := v1.Group("/categories")
	{
		categories.GET("", categoryController.GetAllCategories)
		categories.GET("/:id", categoryController.GetCategoryByID)
		categories.GET("/slug/:slug", categoryController.GetCategoryBySlug)
	}

	subCategories := v1.Group("/subcategories")
	{
		subCategories.GET("", subCategoryController.GetAllSubCategories)
		subCategories.GET("/:id", subCategoryController.GetSubCategoryByID)
		subCategories.GET("/slug/:slug", subCategoryController.GetSubCategoryBySlug)
	}

	notes := v1.Group("/notes")
	{
		// OptionalAuth lets editors see drafts in listings.
		notes.GET("", authMiddleware.OptionalAuth(), noteController.ListNotes)
		notes.GET("/:id", authMiddleware.OptionalAuth(), noteController.GetNoteByID)
		notes.GET("/slug/:slug", noteController.GetNoteBySlug)
	}

	webinars := v1.Group("/webinars")
	{
		webinars.GET("", webinarController.GetAllWebinars)
		webinars.GET("/:id", webinarController.GetWebinarByID)
		webinars.GET("/slug/:slug", webinarController.GetWebinarBySlug)
	}

	// Contact form is public but captcha-gated inside the service.
	v1.POST("/contact", contactController.Submit)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.RequireAuth())
	{
		authenticated.GET("/users/me", userController.GetProfile)
		authenticated.PUT("/users/me", userController.UpdateProfile)
		authenticated.GET("/users/me/likes", userController.LikedNotes)
		authenticated.POST("/users/me/downloads", userController.RecordDownload)
		authenticated.GET("/users/me/downloads", userController.Downloads)

		authenticated.POST("/notes/:id/like", noteController.ToggleLike)
		authenticated.GET("/notes/slug/:slug/pdf", noteController.DownloadPDF)

		authenticated.POST("/webinars/:id/attendees", webinarController.Join)

		// --- Editor routes (admin or publisher) ---
		editors := authenticated.Group("")
		editors.Use(middleware.RequireRoles(models.RoleAdmin, models.RolePublisher))
		{
			editors.POST("/notes", noteController.CreateNote)
			editors.PUT("/notes/:id", noteController.UpdateNote)
			editors.DELETE("/notes/:id", noteController.DeleteNote)

			editors.POST("/uploads", uploadController.Upload)
			editors.DELETE("/uploads", uploadController.Delete)
			editors.GET("/uploads/signature", uploadController.Signature)

			editors.GET("/ranks/check", rankController.CheckRank)
		}

		// --- Admin routes ---
		admin := authenticated.Group("")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		{
			admin.POST("/categories", categoryController.CreateCategory)
			admin.PUT("/categories/:id", categoryController.UpdateCategory)
			admin.DELETE("/categories/:id", categoryController.DeleteCategory)

			admin.POST("/subcategories", subCategoryController.CreateSubCategory)
			admin.PUT("/subcategories/:id", subCategoryController.UpdateSubCategory)
			admin.DELETE("/subcategories/:id", subCategoryController.DeleteSubCategory)

			admin.POST("/webinars", webinarController.CreateWebinar)
			admin.PUT("/webinars/:id", webinarController.UpdateWebinar)
			admin.DELETE("/webinars/:id", webinarController.DeleteWebinar)
			admin.GET("/webinars/:id/attendees", webinarController.Attendees)
			admin.GET("/webinars/:id/export", webinarController.ExportAttendeesCSV)

			admin.GET("/contact", contactController.List)
			admin.PUT("/contact/:id/resolve", contactController.MarkResolved)
			admin.DELETE("/contact/:id", contactController.Delete)

			admin.GET("/admin/stats", adminController.Stats)
			admin.GET("/admin/users", adminController.ListUsers)
			admin.PUT("/admin/users/:id/role", adminController.UpdateUserRole)
		}
	}
}
