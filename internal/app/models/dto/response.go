package dto

// The response envelopes below reproduce the wire contract of the original
// campSchool API. Several of them deliberately report outcomes through the
// payload shape rather than the HTTP status code; callers branch on the
// presence of a "message" field.

// TokenResponse carries a freshly signed bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// AuthErrorResponse is the envelope for 401/403 rejections.
type AuthErrorResponse struct {
	Error   bool   `json:"error" example:"true"`
	Message string `json:"message" example:"unauthorized access"`
}

// MessageResponse signals a soft business conflict with HTTP 200.
type MessageResponse struct {
	Message string `json:"message" example:"user already exists"`
}

// InsertFailureResponse is returned with HTTP 404 when an insert fails.
type InsertFailureResponse struct {
	Message string `json:"message" example:"can not insert try again leter"`
	Status  bool   `json:"status" example:"false"`
}

// InsertResult mirrors the document-store insert acknowledgement.
type InsertResult struct {
	Acknowledged bool  `json:"acknowledged" example:"true"`
	InsertedID   int64 `json:"insertedId" example:"42"`
}

// UpdateResult mirrors the document-store update acknowledgement.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged" example:"true"`
	MatchedCount  int64 `json:"matchedCount" example:"1"`
	ModifiedCount int64 `json:"modifiedCount" example:"1"`
}

// DeleteResult mirrors the document-store delete acknowledgement.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged" example:"true"`
	DeletedCount int64 `json:"deletedCount" example:"1"`
}

// AdminCheckResponse answers the admin role probe.
type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}

// InstructorCheckResponse answers the instructor role probe.
type InstructorCheckResponse struct {
	Instructor bool `json:"instructor"`
}

// StudentCheckResponse answers the student role probe.
type StudentCheckResponse struct {
	Student bool `json:"student"`
}

// ClientSecretResponse carries the gateway client secret for a payment intent.
type ClientSecretResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentOutcome bundles the three store results of a completed enrollment,
// in the order the original performed them.
type PaymentOutcome struct {
	Result       InsertResult `json:"result"`
	DeleteResult DeleteResult `json:"deleteResult"`
	UpdateResult UpdateResult `json:"updateResult"`
}

// NewAuthError builds the 401/403 envelope.
func NewAuthError(message string) AuthErrorResponse {
	return AuthErrorResponse{Error: true, Message: message}
}

// NewInsertResult builds an acknowledged insert result.
func NewInsertResult(id int64) InsertResult {
	return InsertResult{Acknowledged: true, InsertedID: id}
}

// NewUpdateResult builds an acknowledged update result; matched and modified
// counts are reported identically, as single-row updates either hit or miss.
func NewUpdateResult(modified int64) UpdateResult {
	return UpdateResult{Acknowledged: true, MatchedCount: modified, ModifiedCount: modified}
}

// NewDeleteResult builds an acknowledged delete result.
func NewDeleteResult(deleted int64) DeleteResult {
	return DeleteResult{Acknowledged: true, DeletedCount: deleted}
}
