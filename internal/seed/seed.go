package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/Amber-bisht/notesfind-sub000/internal/app/models"
	appRepos "github.com/Amber-bisht/notesfind-sub000/internal/app/repositories"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/apperrors"
)

// CreateDefaultData promotes the configured admin accounts and plants a
// starter catalog on an empty database.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, adminEmails []string, lgr zerolog.Logger) error {
	categoryRepo := appRepos.NewCategoryRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	var finalErr error

	// Accounts listed in config become admins even if they signed up
	// before the config entry existed. Missing accounts are skipped; the
	// promotion applies on their first sign-in instead.
	for _, email := range adminEmails {
		if err := userRepo.PromoteByEmail(ctx, email, appModels.RoleAdmin); err != nil {
			lgr.Error().Err(err).Str("email", email).Msg("Error promoting admin account")
			finalErr = errors.Join(finalErr, err)
		}
	}

	existing, err := categoryRepo.GetAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking existing categories")
		return errors.Join(finalErr, err)
	}
	if len(existing) > 0 {
		return finalErr
	}

	lgr.Info().Msg("Empty catalog, creating starter categories...")

	starters := []appModels.Category{
		{Name: "Programming", Slug: "programming", Rank: 1},
		{Name: "Mathematics", Slug: "mathematics", Rank: 2},
		{Name: "Science", Slug: "science", Rank: 3},
	}
	for i := range starters {
		if _, err := categoryRepo.Create(ctx, &starters[i]); err != nil && !errors.Is(err, apperrors.ErrConflict) {
			lgr.Error().Err(err).Str("category", starters[i].Name).Msg("Error creating starter category")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
