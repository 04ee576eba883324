package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rashed/campschool/internal/app/models"
	"github.com/rashed/campschool/internal/db"
	"github.com/rashed/campschool/internal/pkg/apperrors"
)

// EnrollmentResult reports the outcome of each store operation in the
// enrollment sequence: the inserted payment id, the number of cart entries
// removed, and the number of class rows updated.
type EnrollmentResult struct {
	PaymentID    int64
	CartDeleted  int64
	ClassUpdated int64
}

// IPaymentRepository defines the interface for payment database operations
type IPaymentRepository interface {
	RecordEnrollment(ctx context.Context, payment *models.Payment) (*EnrollmentResult, error)
	GetByEmail(ctx context.Context, email string, newestFirst bool) ([]*models.Payment, error)
}

// PaymentRepository handles payment database operations. Unlike the other
// repositories it owns a PostgresDB handle rather than a bare pool because
// the enrollment sequence runs inside a transaction.
type PaymentRepository struct {
	db *db.PostgresDB
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(database *db.PostgresDB) *PaymentRepository {
	return &PaymentRepository{db: database}
}

// RecordEnrollment performs the enrollment bookkeeping in a single
// transaction: read the class, insert the payment row, delete the cart entry,
// and write the class back with one more enrollment and one fewer seat.
// Either every step lands or none does.
func (r *PaymentRepository) RecordEnrollment(ctx context.Context, payment *models.Payment) (*EnrollmentResult, error) {
	result := &EnrollmentResult{}

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var totalEnrolled, quantity int
		err := tx.QueryRow(ctx, `
			SELECT total_enrolled, quantity
			FROM classes
			WHERE id = $1`,
			payment.ClassItemID).Scan(&totalEnrolled, &quantity)
		if err != nil {
			if err == pgx.ErrNoRows {
				return apperrors.ErrClassNotFound
			}
			return fmt.Errorf("error reading class: %w", err)
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO payments (email, class_item_id, cart_item, class_name, amount, transaction_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
			payment.Email, payment.ClassItemID, payment.CartItem, payment.ClassName,
			payment.Amount, payment.TransactionID, payment.CreatedAt).Scan(&result.PaymentID)
		if err != nil {
			return fmt.Errorf("error inserting payment: %w", err)
		}

		deleteTag, err := tx.Exec(ctx, `
			DELETE FROM selected_classes
			WHERE id = $1`,
			payment.CartItem)
		if err != nil {
			return fmt.Errorf("error deleting cart entry: %w", err)
		}
		result.CartDeleted = deleteTag.RowsAffected()

		// Seat counters move together; quantity may go negative, matching
		// the original's lack of a floor.
		updateTag, err := tx.Exec(ctx, `
			UPDATE classes
			SET total_enrolled = $1, quantity = $2
			WHERE id = $3`,
			totalEnrolled+1, quantity-1, payment.ClassItemID)
		if err != nil {
			return fmt.Errorf("error updating class counts: %w", err)
		}
		result.ClassUpdated = updateTag.RowsAffected()

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetByEmail retrieves payments for an email, optionally newest first
func (r *PaymentRepository) GetByEmail(ctx context.Context, email string, newestFirst bool) ([]*models.Payment, error) {
	query := `
		SELECT id, email, class_item_id, cart_item, class_name, amount, transaction_id, created_at
		FROM payments
		WHERE email = $1`
	if newestFirst {
		query += `
		ORDER BY created_at DESC`
	}

	rows, err := r.db.Pool.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("error listing payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment := &models.Payment{}
		err := rows.Scan(
			&payment.ID, &payment.Email, &payment.ClassItemID, &payment.CartItem,
			&payment.ClassName, &payment.Amount, &payment.TransactionID, &payment.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning payment row: %w", err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	return payments, nil
}
