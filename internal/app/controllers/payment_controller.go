package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rashed/campschool/internal/app/models/dto"
	"github.com/rashed/campschool/internal/app/services"
	"github.com/rashed/campschool/internal/middleware"
)

// PaymentController handles payment intents and enrollment completion
type PaymentController struct {
	paymentService services.PaymentService
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// CreatePaymentIntent asks the gateway for a payment intent and returns the
// client secret the frontend needs to complete the card payment.
// @Summary Create a payment intent
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePaymentIntentRequest true "Price in major units"
// @Success 200 {object} dto.ClientSecretResponse
// @Failure 401 {object} dto.AuthErrorResponse
// @Failure 502 {object} dto.MessageResponse "Gateway failure"
// @Router /create-payment-intent [post]
func (c *PaymentController) CreatePaymentIntent(ctx *gin.Context) {
	var req dto.CreatePaymentIntentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid payment data"})
		return
	}

	secret, err := c.paymentService.CreateIntent(ctx, req.Price)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ClientSecretResponse{ClientSecret: secret})
}

// RecordPayment confirms a client-completed payment: the payment row is
// inserted, the cart entry removed and the class seat counters moved, all in
// one transaction. The response keeps the legacy three-result shape.
// @Summary Record a completed payment
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RecordPaymentRequest true "Payment confirmation"
// @Success 200 {object} dto.PaymentOutcome
// @Failure 401 {object} dto.AuthErrorResponse
// @Failure 403 {object} dto.AuthErrorResponse
// @Failure 404 {object} dto.MessageResponse "Class not found"
// @Router /payments [post]
func (c *PaymentController) RecordPayment(ctx *gin.Context) {
	var req dto.RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid payment data"})
		return
	}

	result, err := c.paymentService.CompleteEnrollment(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PaymentOutcome{
		Result:       dto.NewInsertResult(result.PaymentID),
		DeleteResult: dto.NewDeleteResult(result.CartDeleted),
		UpdateResult: dto.NewUpdateResult(result.ClassUpdated),
	})
}

// GetEnrollments lists the payments recorded for an email
// @Summary List enrolled classes
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param email query string true "Student email"
// @Success 200 {array} models.Payment
// @Router /enrollClasses [get]
func (c *PaymentController) GetEnrollments(ctx *gin.Context) {
	email := ctx.Query("email")

	payments, err := c.paymentService.GetEnrollments(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, payments)
}

// GetPaymentHistory lists payments for an email, newest first
// @Summary Payment history
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param email query string true "Student email"
// @Success 200 {array} models.Payment
// @Router /student/paymentHistory [get]
func (c *PaymentController) GetPaymentHistory(ctx *gin.Context) {
	email := ctx.Query("email")

	payments, err := c.paymentService.GetPaymentHistory(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, payments)
}
