package repositories

import (
	"github.com/rashed/campschool/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository          *UserRepository
	ClassRepository         *ClassRepository
	SelectedClassRepository *SelectedClassRepository
	PaymentRepository       *PaymentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(database.Pool),
		ClassRepository:         NewClassRepository(database.Pool),
		SelectedClassRepository: NewSelectedClassRepository(database.Pool),
		PaymentRepository:       NewPaymentRepository(database),
	}
}
