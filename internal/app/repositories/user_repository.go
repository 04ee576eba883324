package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rashed/campschool/internal/app/models"
	"github.com/rashed/campschool/internal/pkg/apperrors"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	GetByRole(ctx context.Context, role models.RoleType) ([]*models.User, error)
	SetRole(ctx context.Context, id int64, role models.RoleType) (int64, error)
}

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. Duplicate prevention happens at the service
// layer as an opportunistic pre-check; there is no uniqueness constraint,
// so a race can insert the same email twice.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (name, email, photo_url, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		user.Name, user.Email, user.PhotoURL, user.Role, user.CreatedAt).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, photo_url, role, created_at
		FROM users
		WHERE id = $1`,
		id).Scan(&user.ID, &user.Name, &user.Email, &user.PhotoURL, &user.Role, &user.CreatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, photo_url, role, created_at
		FROM users
		WHERE email = $1`,
		email).Scan(&user.ID, &user.Name, &user.Email, &user.PhotoURL, &user.Role, &user.CreatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// GetAll retrieves every user
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, photo_url, role, created_at
		FROM users`)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// GetByRole retrieves users with the given role, newest first
func (r *UserRepository) GetByRole(ctx context.Context, role models.RoleType) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, photo_url, role, created_at
		FROM users
		WHERE role = $1
		ORDER BY created_at DESC`,
		role)
	if err != nil {
		return nil, fmt.Errorf("error listing users by role: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// SetRole updates a user's role by id and reports the affected row count
func (r *UserRepository) SetRole(ctx context.Context, id int64, role models.RoleType) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET role = $1
		WHERE id = $2`,
		role, id)
	if err != nil {
		return 0, fmt.Errorf("error updating user role: %w", err)
	}

	return tag.RowsAffected(), nil
}

func scanUsers(rows pgx.Rows) ([]*models.User, error) {
	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.PhotoURL, &user.Role, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}
