package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rashed/campschool/internal/app/models"
	"github.com/rashed/campschool/internal/pkg/apperrors"
)

// ISelectedClassRepository defines the interface for cart database operations
type ISelectedClassRepository interface {
	Create(ctx context.Context, entry *models.SelectedClass) (int64, error)
	Exists(ctx context.Context, classID int64, studentEmail string) (bool, error)
	GetByID(ctx context.Context, id int64) (*models.SelectedClass, error)
	GetByStudentEmail(ctx context.Context, email string) ([]*models.SelectedClass, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// SelectedClassRepository handles cart-entry database operations
type SelectedClassRepository struct {
	db *pgxpool.Pool
}

// NewSelectedClassRepository creates a new SelectedClassRepository
func NewSelectedClassRepository(db *pgxpool.Pool) *SelectedClassRepository {
	return &SelectedClassRepository{db: db}
}

// Create inserts a new cart entry
func (r *SelectedClassRepository) Create(ctx context.Context, entry *models.SelectedClass) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO selected_classes (class_id, student_email, created_at)
		VALUES ($1, $2, $3)
		RETURNING id`,
		entry.ClassID, entry.StudentEmail, entry.CreatedAt).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating selected class: %w", err)
	}

	return id, nil
}

// Exists checks whether the student already selected this class
func (r *SelectedClassRepository) Exists(ctx context.Context, classID int64, studentEmail string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM selected_classes WHERE class_id = $1 AND student_email = $2)`,
		classID, studentEmail).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking selected class: %w", err)
	}

	return exists, nil
}

// GetByID retrieves one cart entry with its class details
func (r *SelectedClassRepository) GetByID(ctx context.Context, id int64) (*models.SelectedClass, error) {
	entry := &models.SelectedClass{Class: &models.Class{}}
	err := r.db.QueryRow(ctx, `
		SELECT sc.id, sc.class_id, sc.student_email, sc.created_at,
		       c.id, c.name, c.image, c.instructor_name, c.instructor_email,
		       c.price, c.quantity, c.total_enrolled, c.status, c.feedback, c.created_at
		FROM selected_classes sc
		JOIN classes c ON c.id = sc.class_id
		WHERE sc.id = $1`,
		id).Scan(
		&entry.ID, &entry.ClassID, &entry.StudentEmail, &entry.CreatedAt,
		&entry.Class.ID, &entry.Class.Name, &entry.Class.Image, &entry.Class.InstructorName, &entry.Class.InstructorEmail,
		&entry.Class.Price, &entry.Class.Quantity, &entry.Class.TotalEnrolled, &entry.Class.Status, &entry.Class.Feedback, &entry.Class.CreatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("error retrieving selected class: %w", err)
	}

	return entry, nil
}

// GetByStudentEmail retrieves a student's cart entries, newest first, with
// class details joined in
func (r *SelectedClassRepository) GetByStudentEmail(ctx context.Context, email string) ([]*models.SelectedClass, error) {
	rows, err := r.db.Query(ctx, `
		SELECT sc.id, sc.class_id, sc.student_email, sc.created_at,
		       c.id, c.name, c.image, c.instructor_name, c.instructor_email,
		       c.price, c.quantity, c.total_enrolled, c.status, c.feedback, c.created_at
		FROM selected_classes sc
		JOIN classes c ON c.id = sc.class_id
		WHERE sc.student_email = $1
		ORDER BY sc.created_at DESC`,
		email)
	if err != nil {
		return nil, fmt.Errorf("error listing selected classes: %w", err)
	}
	defer rows.Close()

	var entries []*models.SelectedClass
	for rows.Next() {
		entry := &models.SelectedClass{Class: &models.Class{}}
		err := rows.Scan(
			&entry.ID, &entry.ClassID, &entry.StudentEmail, &entry.CreatedAt,
			&entry.Class.ID, &entry.Class.Name, &entry.Class.Image, &entry.Class.InstructorName, &entry.Class.InstructorEmail,
			&entry.Class.Price, &entry.Class.Quantity, &entry.Class.TotalEnrolled, &entry.Class.Status, &entry.Class.Feedback, &entry.Class.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning selected class row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating selected class rows: %w", err)
	}

	return entries, nil
}

// Delete removes a cart entry by id and reports the affected row count
func (r *SelectedClassRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM selected_classes
		WHERE id = $1`,
		id)
	if err != nil {
		return 0, fmt.Errorf("error deleting selected class: %w", err)
	}

	return tag.RowsAffected(), nil
}
