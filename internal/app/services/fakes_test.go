package services

import (
	"context"
	"sort"

	"github.com/rashed/campschool/internal/app/models"
	"github.com/rashed/campschool/internal/app/repositories"
	"github.com/rashed/campschool/internal/pkg/apperrors"
)

// Hand-rolled repository stubs backed by in-memory slices. Each stub
// returns err from every method when set, which keeps failure-path tests
// one assignment away.

type stubUserRepo struct {
	users     []*models.User
	createdID int64
	created   []*models.User
	modified  int64
	err       error
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.created = append(s.created, user)
	return s.createdID, nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *stubUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for _, u := range s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubUserRepo) GetAll(ctx context.Context) ([]*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users, nil
}

func (s *stubUserRepo) GetByRole(ctx context.Context, role models.RoleType) ([]*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*models.User
	for _, u := range s.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *stubUserRepo) SetRole(ctx context.Context, id int64, role models.RoleType) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.modified, nil
}

type stubClassRepo struct {
	classes     []*models.Class
	createdID   int64
	created     []*models.Class
	modified    int64
	gotStatus   string
	gotFeedback *string
	err         error
}

func (s *stubClassRepo) Create(ctx context.Context, class *models.Class) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.created = append(s.created, class)
	return s.createdID, nil
}

func (s *stubClassRepo) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, c := range s.classes {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, apperrors.ErrClassNotFound
}

func (s *stubClassRepo) GetAll(ctx context.Context) ([]*models.Class, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.classes, nil
}

func (s *stubClassRepo) GetByStatus(ctx context.Context, status models.ClassStatus) ([]*models.Class, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*models.Class
	for _, c := range s.classes {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubClassRepo) GetTopByEnrollment(ctx context.Context, status models.ClassStatus, limit int) ([]*models.Class, error) {
	matching, err := s.GetByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].TotalEnrolled > matching[j].TotalEnrolled
	})
	if len(matching) > limit {
		matching = matching[:limit]
	}
	return matching, nil
}

func (s *stubClassRepo) UpdateStatusFeedback(ctx context.Context, id int64, status string, feedback *string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.gotStatus = status
	s.gotFeedback = feedback
	return s.modified, nil
}

type stubCartRepo struct {
	entries   []*models.SelectedClass
	createdID int64
	created   []*models.SelectedClass
	deleted   int64
	err       error
}

func (s *stubCartRepo) Create(ctx context.Context, entry *models.SelectedClass) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.created = append(s.created, entry)
	return s.createdID, nil
}

func (s *stubCartRepo) Exists(ctx context.Context, classID int64, studentEmail string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for _, e := range s.entries {
		if e.ClassID == classID && e.StudentEmail == studentEmail {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubCartRepo) GetByID(ctx context.Context, id int64) (*models.SelectedClass, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, e := range s.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, apperrors.ErrCartItemNotFound
}

func (s *stubCartRepo) GetByStudentEmail(ctx context.Context, email string) ([]*models.SelectedClass, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*models.SelectedClass
	for _, e := range s.entries {
		if e.StudentEmail == email {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubCartRepo) Delete(ctx context.Context, id int64) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.deleted, nil
}

type stubPaymentRepo struct {
	payments    []*models.Payment
	recorded    *models.Payment
	result      *repositories.EnrollmentResult
	newestFirst bool
	err         error
}

func (s *stubPaymentRepo) RecordEnrollment(ctx context.Context, payment *models.Payment) (*repositories.EnrollmentResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.recorded = payment
	return s.result, nil
}

func (s *stubPaymentRepo) GetByEmail(ctx context.Context, email string, newestFirst bool) ([]*models.Payment, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.newestFirst = newestFirst
	var out []*models.Payment
	for _, p := range s.payments {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubGateway struct {
	secret string
	amount int64
	err    error
}

func (s *stubGateway) CreateIntent(ctx context.Context, amount int64) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.amount = amount
	return s.secret, nil
}
