package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin      RoleType = "admin"
	RoleInstructor RoleType = "instructor"
	RoleStudent    RoleType = "student"
)

// ClassStatus defines the approval state of a class listing
type ClassStatus string

const (
	ClassPending  ClassStatus = "pending"
	ClassApproved ClassStatus = "approved"
	ClassDenied   ClassStatus = "denied"
)
