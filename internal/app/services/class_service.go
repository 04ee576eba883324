package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rashed/campschool/internal/app/models"
	"github.com/rashed/campschool/internal/app/models/dto"
	"github.com/rashed/campschool/internal/app/repositories"
)

// TopClassesLimit caps the popular-classes listing.
const TopClassesLimit = 6

// ClassService handles class-related operations
type ClassService interface {
	AddClass(ctx context.Context, req dto.AddClassRequest) (int64, error)
	GetAllClasses(ctx context.Context) ([]*models.Class, error)
	GetApprovedClasses(ctx context.Context) ([]*models.Class, error)
	GetTopClasses(ctx context.Context) ([]*models.Class, error)
	UpdateClass(ctx context.Context, req dto.ClassUpdateRequest) (int64, error)
}

type classService struct {
	classRepo repositories.IClassRepository
}

// NewClassService creates a new class service instance
func NewClassService(classRepo repositories.IClassRepository) ClassService {
	return &classService{classRepo: classRepo}
}

// AddClass creates a class listing. Every new listing starts out pending with
// a server-side creation timestamp, whatever the caller sends.
func (s *classService) AddClass(ctx context.Context, req dto.AddClassRequest) (int64, error) {
	class := &models.Class{
		Name:            req.Name,
		Image:           req.Image,
		InstructorName:  req.InstructorName,
		InstructorEmail: req.InstructorEmail,
		Price:           req.Price,
		Quantity:        req.Quantity,
		TotalEnrolled:   0,
		Status:          models.ClassPending,
		CreatedAt:       time.Now(),
	}

	id, err := s.classRepo.Create(ctx, class)
	if err != nil {
		return 0, fmt.Errorf("error creating class: %w", err)
	}

	return id, nil
}

// GetAllClasses retrieves every class regardless of status
func (s *classService) GetAllClasses(ctx context.Context) ([]*models.Class, error) {
	classes, err := s.classRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving classes: %w", err)
	}
	return classes, nil
}

// GetApprovedClasses retrieves approved classes, newest first
func (s *classService) GetApprovedClasses(ctx context.Context) ([]*models.Class, error) {
	classes, err := s.classRepo.GetByStatus(ctx, models.ClassApproved)
	if err != nil {
		return nil, fmt.Errorf("error retrieving approved classes: %w", err)
	}
	return classes, nil
}

// GetTopClasses retrieves the six most-enrolled approved classes
func (s *classService) GetTopClasses(ctx context.Context) ([]*models.Class, error) {
	classes, err := s.classRepo.GetTopByEnrollment(ctx, models.ClassApproved, TopClassesLimit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving top classes: %w", err)
	}
	return classes, nil
}

// UpdateClass sets a class's status and feedback. The status value is passed
// through unvalidated, matching the original behavior.
func (s *classService) UpdateClass(ctx context.Context, req dto.ClassUpdateRequest) (int64, error) {
	modified, err := s.classRepo.UpdateStatusFeedback(ctx, req.ID, req.Status, req.Feedback)
	if err != nil {
		return 0, fmt.Errorf("error updating class: %w", err)
	}
	return modified, nil
}
