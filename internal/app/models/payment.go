package models

import (
	"time"
)

// Payment defines the payment record based on the 'payments' table.
// Rows are append-only; they are never updated or deleted.
type Payment struct {
	ID            int64     `json:"id" db:"id"`
	Email         string    `json:"email" db:"email"`
	ClassItemID   int64     `json:"classItemId" db:"class_item_id"` // The purchased class
	CartItem      int64     `json:"cartItem" db:"cart_item"`        // The selected-class entry consumed by this payment
	ClassName     string    `json:"className" db:"class_name"`
	Amount        float64   `json:"amount" db:"amount"`
	TransactionID string    `json:"transactionId" db:"transaction_id"` // Gateway payment-intent id
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
