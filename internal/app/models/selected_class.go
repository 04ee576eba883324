package models

import (
	"time"
)

// SelectedClass defines a cart entry based on the 'selected_classes' table.
// An entry exists from the moment a student picks a class until it is either
// removed from the cart or consumed by a successful payment.
type SelectedClass struct {
	ID           int64     `json:"id" db:"id"`
	ClassID      int64     `json:"classId" db:"class_id"`
	StudentEmail string    `json:"studentEmail" db:"student_email"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	Class        *Class    `json:"class,omitempty"` // Relation, no db tag
}
