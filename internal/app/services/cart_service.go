package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rashed/campschool/internal/app/models"
	"github.com/rashed/campschool/internal/app/models/dto"
	"github.com/rashed/campschool/internal/app/repositories"
	"github.com/rashed/campschool/internal/pkg/apperrors"
)

// CartService handles selected-class (cart) operations
type CartService interface {
	AddSelection(ctx context.Context, req dto.AddSelectClassRequest) (int64, error)
	GetSelectionsByStudent(ctx context.Context, email string) ([]*models.SelectedClass, error)
	GetSelection(ctx context.Context, id int64) (*models.SelectedClass, error)
	RemoveSelection(ctx context.Context, id int64) (int64, error)
}

type cartService struct {
	cartRepo repositories.ISelectedClassRepository
}

// NewCartService creates a new cart service instance
func NewCartService(cartRepo repositories.ISelectedClassRepository) CartService {
	return &cartService{cartRepo: cartRepo}
}

// AddSelection puts a class into a student's cart. A second selection of the
// same class by the same student is reported via ErrCartItemAlreadySelected.
func (s *cartService) AddSelection(ctx context.Context, req dto.AddSelectClassRequest) (int64, error) {
	exists, err := s.cartRepo.Exists(ctx, req.ClassID, req.StudentEmail)
	if err != nil {
		return 0, fmt.Errorf("error checking selection: %w", err)
	}
	if exists {
		return 0, apperrors.ErrCartItemAlreadySelected
	}

	entry := &models.SelectedClass{
		ClassID:      req.ClassID,
		StudentEmail: req.StudentEmail,
		CreatedAt:    time.Now(),
	}

	id, err := s.cartRepo.Create(ctx, entry)
	if err != nil {
		return 0, fmt.Errorf("error creating selection: %w", err)
	}

	return id, nil
}

// GetSelectionsByStudent retrieves a student's cart entries, newest first
func (s *cartService) GetSelectionsByStudent(ctx context.Context, email string) ([]*models.SelectedClass, error) {
	entries, err := s.cartRepo.GetByStudentEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error retrieving selections: %w", err)
	}
	return entries, nil
}

// GetSelection retrieves one cart entry by id
func (s *cartService) GetSelection(ctx context.Context, id int64) (*models.SelectedClass, error) {
	entry, err := s.cartRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// RemoveSelection deletes a cart entry by id and reports the deleted count
func (s *cartService) RemoveSelection(ctx context.Context, id int64) (int64, error) {
	deleted, err := s.cartRepo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("error removing selection: %w", err)
	}
	return deleted, nil
}
