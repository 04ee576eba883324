package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rashed/campschool/internal/app/models"
	"github.com/rashed/campschool/internal/app/models/dto"
	"github.com/rashed/campschool/internal/app/repositories"
	"github.com/rashed/campschool/internal/pkg/apperrors"
	"github.com/rashed/campschool/internal/pkg/payment"
)

// PaymentService handles payment intents and enrollment completion
type PaymentService interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
	CompleteEnrollment(ctx context.Context, req dto.RecordPaymentRequest) (*repositories.EnrollmentResult, error)
	GetEnrollments(ctx context.Context, email string) ([]*models.Payment, error)
	GetPaymentHistory(ctx context.Context, email string) ([]*models.Payment, error)
}

type paymentService struct {
	paymentRepo repositories.IPaymentRepository
	gateway     payment.Gateway
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(paymentRepo repositories.IPaymentRepository, gateway payment.Gateway) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		gateway:     gateway,
	}
}

// CreateIntent asks the gateway for a payment intent worth price in major
// units and returns the client secret. Nothing is persisted server-side.
func (s *paymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(math.Round(price * 100))

	secret, err := s.gateway.CreateIntent(ctx, amount)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrPaymentGateway, err)
	}

	return secret, nil
}

// CompleteEnrollment records the confirmed payment and performs the
// enrollment bookkeeping: one payment row in, the cart entry out, and the
// class seat counters moved.
func (s *paymentService) CompleteEnrollment(ctx context.Context, req dto.RecordPaymentRequest) (*repositories.EnrollmentResult, error) {
	record := &models.Payment{
		Email:         req.Email,
		ClassItemID:   req.ClassItemID,
		CartItem:      req.CartItem,
		ClassName:     req.ClassName,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
		CreatedAt:     time.Now(),
	}

	result, err := s.paymentRepo.RecordEnrollment(ctx, record)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetEnrollments retrieves every payment recorded for an email
func (s *paymentService) GetEnrollments(ctx context.Context, email string) ([]*models.Payment, error) {
	payments, err := s.paymentRepo.GetByEmail(ctx, email, false)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}
	return payments, nil
}

// GetPaymentHistory retrieves payments for an email, newest first
func (s *paymentService) GetPaymentHistory(ctx context.Context, email string) ([]*models.Payment, error) {
	payments, err := s.paymentRepo.GetByEmail(ctx, email, true)
	if err != nil {
		return nil, fmt.Errorf("error retrieving payment history: %w", err)
	}
	return payments, nil
}
