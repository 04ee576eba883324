package controllers

import (
	"context"

	"github.com/rashed/campschool/internal/app/models"
	"github.com/rashed/campschool/internal/app/models/dto"
	"github.com/rashed/campschool/internal/app/repositories"
)

// Function-field service fakes. A nil field means the test does not expect
// that method to be called; the panic points straight at the test.

type fakeUserService struct {
	addUserFn        func(ctx context.Context, req dto.AddUserRequest) (int64, error)
	getAllUsersFn    func(ctx context.Context) ([]*models.User, error)
	getInstructorsFn func(ctx context.Context) ([]*models.User, error)
	setRoleFn        func(ctx context.Context, id int64, role string) (int64, error)
	hasRoleFn        func(ctx context.Context, email string, role models.RoleType) (bool, error)
}

func (f *fakeUserService) AddUser(ctx context.Context, req dto.AddUserRequest) (int64, error) {
	return f.addUserFn(ctx, req)
}

func (f *fakeUserService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return f.getAllUsersFn(ctx)
}

func (f *fakeUserService) GetInstructors(ctx context.Context) ([]*models.User, error) {
	return f.getInstructorsFn(ctx)
}

func (f *fakeUserService) SetRole(ctx context.Context, id int64, role string) (int64, error) {
	return f.setRoleFn(ctx, id, role)
}

func (f *fakeUserService) HasRole(ctx context.Context, email string, role models.RoleType) (bool, error) {
	return f.hasRoleFn(ctx, email, role)
}

type fakeClassService struct {
	addClassFn           func(ctx context.Context, req dto.AddClassRequest) (int64, error)
	getAllClassesFn      func(ctx context.Context) ([]*models.Class, error)
	getApprovedClassesFn func(ctx context.Context) ([]*models.Class, error)
	getTopClassesFn      func(ctx context.Context) ([]*models.Class, error)
	updateClassFn        func(ctx context.Context, req dto.ClassUpdateRequest) (int64, error)
}

func (f *fakeClassService) AddClass(ctx context.Context, req dto.AddClassRequest) (int64, error) {
	return f.addClassFn(ctx, req)
}

func (f *fakeClassService) GetAllClasses(ctx context.Context) ([]*models.Class, error) {
	return f.getAllClassesFn(ctx)
}

func (f *fakeClassService) GetApprovedClasses(ctx context.Context) ([]*models.Class, error) {
	return f.getApprovedClassesFn(ctx)
}

func (f *fakeClassService) GetTopClasses(ctx context.Context) ([]*models.Class, error) {
	return f.getTopClassesFn(ctx)
}

func (f *fakeClassService) UpdateClass(ctx context.Context, req dto.ClassUpdateRequest) (int64, error) {
	return f.updateClassFn(ctx, req)
}

type fakeCartService struct {
	addSelectionFn           func(ctx context.Context, req dto.AddSelectClassRequest) (int64, error)
	getSelectionsByStudentFn func(ctx context.Context, email string) ([]*models.SelectedClass, error)
	getSelectionFn           func(ctx context.Context, id int64) (*models.SelectedClass, error)
	removeSelectionFn        func(ctx context.Context, id int64) (int64, error)
}

func (f *fakeCartService) AddSelection(ctx context.Context, req dto.AddSelectClassRequest) (int64, error) {
	return f.addSelectionFn(ctx, req)
}

func (f *fakeCartService) GetSelectionsByStudent(ctx context.Context, email string) ([]*models.SelectedClass, error) {
	return f.getSelectionsByStudentFn(ctx, email)
}

func (f *fakeCartService) GetSelection(ctx context.Context, id int64) (*models.SelectedClass, error) {
	return f.getSelectionFn(ctx, id)
}

func (f *fakeCartService) RemoveSelection(ctx context.Context, id int64) (int64, error) {
	return f.removeSelectionFn(ctx, id)
}

type fakePaymentService struct {
	createIntentFn       func(ctx context.Context, price float64) (string, error)
	completeEnrollmentFn func(ctx context.Context, req dto.RecordPaymentRequest) (*repositories.EnrollmentResult, error)
	getEnrollmentsFn     func(ctx context.Context, email string) ([]*models.Payment, error)
	getPaymentHistoryFn  func(ctx context.Context, email string) ([]*models.Payment, error)
}

func (f *fakePaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	return f.createIntentFn(ctx, price)
}

func (f *fakePaymentService) CompleteEnrollment(ctx context.Context, req dto.RecordPaymentRequest) (*repositories.EnrollmentResult, error) {
	return f.completeEnrollmentFn(ctx, req)
}

func (f *fakePaymentService) GetEnrollments(ctx context.Context, email string) ([]*models.Payment, error) {
	return f.getEnrollmentsFn(ctx, email)
}

func (f *fakePaymentService) GetPaymentHistory(ctx context.Context, email string) ([]*models.Payment, error) {
	return f.getPaymentHistoryFn(ctx, email)
}

type fakeReportService struct {
	topInstructorsFn func(ctx context.Context) ([]dto.InstructorRanking, error)
}

func (f *fakeReportService) TopInstructors(ctx context.Context) ([]dto.InstructorRanking, error) {
	return f.topInstructorsFn(ctx)
}
