package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rashed/campschool/internal/app/models"
	"github.com/rashed/campschool/internal/pkg/apperrors"
)

const classColumns = "id, name, image, instructor_name, instructor_email, price, quantity, total_enrolled, status, feedback, created_at"

// IClassRepository defines the interface for class-related database operations
type IClassRepository interface {
	Create(ctx context.Context, class *models.Class) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Class, error)
	GetAll(ctx context.Context) ([]*models.Class, error)
	GetByStatus(ctx context.Context, status models.ClassStatus) ([]*models.Class, error)
	GetTopByEnrollment(ctx context.Context, status models.ClassStatus, limit int) ([]*models.Class, error)
	UpdateStatusFeedback(ctx context.Context, id int64, status string, feedback *string) (int64, error)
}

// ClassRepository handles class database operations
type ClassRepository struct {
	db *pgxpool.Pool
}

// NewClassRepository creates a new ClassRepository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{db: db}
}

// Create inserts a new class listing
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) (int64, error) {
	query := squirrel.Insert("classes").
		Columns("name", "image", "instructor_name", "instructor_email", "price", "quantity", "total_enrolled", "status", "feedback", "created_at").
		Values(class.Name, class.Image, class.InstructorName, class.InstructorEmail, class.Price, class.Quantity, class.TotalEnrolled, class.Status, class.Feedback, class.CreatedAt).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating class: %w", err)
	}

	return id, nil
}

// GetByID retrieves a class by ID
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	query := squirrel.Select(classColumns).
		From("classes").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	class := &models.Class{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&class.ID, &class.Name, &class.Image, &class.InstructorName, &class.InstructorEmail,
		&class.Price, &class.Quantity, &class.TotalEnrolled, &class.Status, &class.Feedback, &class.CreatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, fmt.Errorf("error retrieving class: %w", err)
	}

	return class, nil
}

// GetAll retrieves every class regardless of status
func (r *ClassRepository) GetAll(ctx context.Context) ([]*models.Class, error) {
	query := squirrel.Select(classColumns).
		From("classes").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryClasses(ctx, query)
}

// GetByStatus retrieves classes with the given status, newest first
func (r *ClassRepository) GetByStatus(ctx context.Context, status models.ClassStatus) ([]*models.Class, error) {
	query := squirrel.Select(classColumns).
		From("classes").
		Where("status = ?", status).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryClasses(ctx, query)
}

// GetTopByEnrollment retrieves the most-enrolled classes with the given status
func (r *ClassRepository) GetTopByEnrollment(ctx context.Context, status models.ClassStatus, limit int) ([]*models.Class, error) {
	query := squirrel.Select(classColumns).
		From("classes").
		Where("status = ?", status).
		OrderBy("total_enrolled DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryClasses(ctx, query)
}

// UpdateStatusFeedback sets status and feedback by id and reports the affected
// row count. The status string is stored as-is; no transition validation.
func (r *ClassRepository) UpdateStatusFeedback(ctx context.Context, id int64, status string, feedback *string) (int64, error) {
	query := squirrel.Update("classes").
		Set("status", status).
		Set("feedback", feedback).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error updating class: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *ClassRepository) queryClasses(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Class, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		class := &models.Class{}
		err := rows.Scan(
			&class.ID, &class.Name, &class.Image, &class.InstructorName, &class.InstructorEmail,
			&class.Price, &class.Quantity, &class.TotalEnrolled, &class.Status, &class.Feedback, &class.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning class row: %w", err)
		}
		classes = append(classes, class)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating class rows: %w", err)
	}

	return classes, nil
}
