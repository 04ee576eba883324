package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/rashed/campschool/internal/app/models"
	appRepos "github.com/rashed/campschool/internal/app/repositories"
)

const defaultAdminEmail = "admin@campschool.app"

// CreateDefaultData ensures a default admin account exists so role
// management endpoints are usable on a fresh database.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	exists, err := userRepo.EmailExists(ctx, defaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		lgr.Info().Msg("Creating default admin user...")

		admin := &appModels.User{
			Name:      "System Administrator",
			Email:     defaultAdminEmail,
			Role:      appModels.RoleAdmin,
			CreatedAt: time.Now(),
		}

		adminID, err := userRepo.Create(ctx, admin)
		if err != nil {
			lgr.Error().Err(err).Msg("Error creating admin user")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Int64("adminID", adminID).Msg("Default admin user created successfully")
		}
	} else {
		lgr.Info().Msg("Admin user already exists, skipping creation")
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
