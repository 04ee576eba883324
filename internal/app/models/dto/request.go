package dto

// TokenRequest carries the identity claims to sign into a bearer token.
// The original accepted an arbitrary payload; in practice the frontend always
// sends the authenticated email (plus an optional display name).
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// AddUserRequest registers a user. Role is not accepted from the caller;
// self-registration always lands as a student. No field is mandatory:
// clients send email-only registrations and the body is stored as given.
type AddUserRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	PhotoURL *string `json:"photoUrl"`
}

// RoleSetRequest assigns a role to a user by id.
type RoleSetRequest struct {
	ID   int64  `json:"id" binding:"required"`
	Role string `json:"role" binding:"required"`
}

// AddClassRequest submits a new class listing. Status is not accepted from
// the caller; new listings always start out pending. Price and quantity may
// legitimately be zero (free classes, unlimited or closed listings).
type AddClassRequest struct {
	Name            string  `json:"name" binding:"required"`
	Image           *string `json:"image"`
	InstructorName  string  `json:"instructorName" binding:"required"`
	InstructorEmail string  `json:"instructorEmail" binding:"required,email"`
	Price           float64 `json:"price"`
	Quantity        int     `json:"quantity"`
}

// ClassUpdateRequest sets a class's status together with free-text feedback.
// The status string is passed through unvalidated, matching the original.
type ClassUpdateRequest struct {
	ID       int64   `json:"id" binding:"required"`
	Status   string  `json:"status" binding:"required"`
	Feedback *string `json:"feedback"`
}

// AddSelectClassRequest puts a class into a student's cart.
type AddSelectClassRequest struct {
	ClassID      int64  `json:"classId" binding:"required"`
	StudentEmail string `json:"studentEmail" binding:"required,email"`
}

// CreatePaymentIntentRequest asks the gateway for a payment intent. Zero is
// passed through to the gateway, which enforces its own minimum.
type CreatePaymentIntentRequest struct {
	Price float64 `json:"price"`
}

// RecordPaymentRequest confirms a client-completed payment and triggers the
// enrollment bookkeeping. Amount may be zero for fully discounted charges.
type RecordPaymentRequest struct {
	Email         string  `json:"email" binding:"required,email"`
	ClassItemID   int64   `json:"classItemId" binding:"required"`
	CartItem      int64   `json:"cartItem" binding:"required"`
	ClassName     string  `json:"className"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transactionId"`
}
