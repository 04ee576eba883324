package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/rashed/campschool/internal/app/models"
	"github.com/rashed/campschool/internal/app/models/dto"
	"github.com/rashed/campschool/internal/app/repositories"
)

// TopInstructorsLimit caps the instructor ranking.
const TopInstructorsLimit = 6

// ReportService computes the read-only reporting aggregates. Both reports
// materialize their inputs fully and aggregate in-process; the data set is
// a camp season's worth of classes, not a warehouse.
type ReportService interface {
	TopInstructors(ctx context.Context) ([]dto.InstructorRanking, error)
}

type reportService struct {
	userRepo  repositories.IUserRepository
	classRepo repositories.IClassRepository
}

// NewReportService creates a new report service instance
func NewReportService(userRepo repositories.IUserRepository, classRepo repositories.IClassRepository) ReportService {
	return &reportService{
		userRepo:  userRepo,
		classRepo: classRepo,
	}
}

// TopInstructors ranks instructors by total enrollment summed across their
// classes, descending, at most six entries. Ties keep the instructors'
// store order.
func (s *reportService) TopInstructors(ctx context.Context) ([]dto.InstructorRanking, error) {
	instructors, err := s.userRepo.GetByRole(ctx, models.RoleInstructor)
	if err != nil {
		return nil, fmt.Errorf("error retrieving instructors: %w", err)
	}

	classes, err := s.classRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving classes: %w", err)
	}

	byEmail := make(map[string][]*models.Class)
	for _, class := range classes {
		byEmail[class.InstructorEmail] = append(byEmail[class.InstructorEmail], class)
	}

	rankings := make([]dto.InstructorRanking, 0, len(instructors))
	for _, instructor := range instructors {
		ranking := dto.InstructorRanking{
			Name:       instructor.Name,
			Email:      instructor.Email,
			PhotoURL:   instructor.PhotoURL,
			ClassNames: []string{},
		}
		for _, class := range byEmail[instructor.Email] {
			ranking.ClassCount++
			ranking.TotalStudents += class.TotalEnrolled
			ranking.ClassNames = append(ranking.ClassNames, class.Name)
		}
		rankings = append(rankings, ranking)
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].TotalStudents > rankings[j].TotalStudents
	})

	if len(rankings) > TopInstructorsLimit {
		rankings = rankings[:TopInstructorsLimit]
	}

	return rankings, nil
}
