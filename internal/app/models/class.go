package models

import (
	"time"
)

// Class defines the class model based on the 'classes' table.
// Quantity holds the remaining seats; TotalEnrolled counts completed
// enrollments. The two are mutated only together as part of a payment.
type Class struct {
	ID              int64       `json:"id" db:"id"`
	Name            string      `json:"name" db:"name" example:"Beginner Guitar"`
	Image           *string     `json:"image,omitempty" db:"image"`
	InstructorName  string      `json:"instructorName" db:"instructor_name"`
	InstructorEmail string      `json:"instructorEmail" db:"instructor_email"`
	Price           float64     `json:"price" db:"price" example:"49.99"`
	Quantity        int         `json:"quantity" db:"quantity" example:"20"`
	TotalEnrolled   int         `json:"totalEnrolled" db:"total_enrolled" example:"0"`
	Status          ClassStatus `json:"status" db:"status" example:"pending"`
	Feedback        *string     `json:"feedback,omitempty" db:"feedback"` // Free-text admin feedback, set together with status
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
}
