package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rashed/campschool/internal/app/controllers"
	"github.com/rashed/campschool/internal/middleware"
)

// SetupRouter configures all application routes. The path layout mirrors the
// original campSchool API, including its inconsistent prefixes; clients are
// already wired against these exact paths.
func SetupRouter(
	router *gin.Engine,
	tokenController *controllers.TokenController,
	userController *controllers.UserController,
	classController *controllers.ClassController,
	cartController *controllers.CartController,
	paymentController *controllers.PaymentController,
	reportController *controllers.ReportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Liveness probe
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server Api is running")
	})

	// Token issuance (public)
	router.POST("/jwt", tokenController.IssueToken)

	// --- Public routes ---
	router.GET("/api/all-users", userController.GetInstructors)
	router.POST("/api/add-user", userController.AddUser)
	router.PATCH("/api/user/roleset", userController.SetRole)
	router.POST("/api/add-class", classController.AddClass)
	router.PATCH("/api/class-update", classController.UpdateClass)
	router.GET("/api/all-classes", classController.GetApprovedClasses)
	router.GET("/topclasses", classController.GetTopClasses)
	router.POST("/api/add-select-class", cartController.AddSelection)
	router.DELETE("/api/select-class/:id", cartController.RemoveSelection)
	router.GET("/topInstructor", reportController.GetTopInstructors)

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/api/class-list", classController.GetClassList)
		authenticated.GET("/api/users/admin/:email", userController.CheckAdmin)
		authenticated.GET("/api/users/instructor/:email", userController.CheckInstructor)
		authenticated.GET("/api/users/student/:email", userController.CheckStudent)
		authenticated.GET("/api/all-select-class/:email", cartController.GetSelections)
		authenticated.GET("/api/select-class/:id", cartController.GetSelection)
		authenticated.POST("/create-payment-intent", paymentController.CreatePaymentIntent)

		// Admin-only routes
		adminProtected := authenticated.Group("")
		adminProtected.Use(authMiddleware.AdminRequired())
		{
			adminProtected.GET("/api/users", userController.GetUsers)
		}

		// Student-only routes
		studentProtected := authenticated.Group("")
		studentProtected.Use(authMiddleware.StudentRequired())
		{
			studentProtected.POST("/payments", paymentController.RecordPayment)
			studentProtected.GET("/enrollClasses", paymentController.GetEnrollments)
			studentProtected.GET("/student/paymentHistory", paymentController.GetPaymentHistory)
		}
	}
}
