package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	appModels "github.com/akshat/marksheet/internal/app/models"
	appRepos "github.com/akshat/marksheet/internal/app/repositories"
	"github.com/akshat/marksheet/internal/pkg/apperrors"
	pkgAuth "github.com/akshat/marksheet/internal/pkg/auth"
)

// defaultAdminPassword is only ever written for a missing admin account;
// operators are expected to change it after first login.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// CreateAdminUser creates the default admin account if it does not exist
// yet. Safe to run repeatedly.
func CreateAdminUser(ctx context.Context, database *mongo.Database, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(database)

	_, err := userRepo.FindByUsername(ctx, defaultAdminUsername)
	if err == nil {
		lgr.Info().Msg("Admin user already exists")
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	hashed, err := pkgAuth.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	admin := &appModels.User{
		Username:       defaultAdminUsername,
		Email:          "admin@example.com",
		FullName:       "Admin User",
		Role:           appModels.RoleAdmin,
		Disabled:       false,
		HashedPassword: hashed,
	}

	if err := userRepo.Insert(ctx, admin); err != nil {
		return err
	}

	lgr.Info().Str("id", admin.ID.Hex()).Msg("Admin user created")
	return nil
}
