package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/models"
)

// profileRepository stores accounts in the "profiles" table.
type profileRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProfile inserts the profile and returns the stored row.
// A taken email yields [ErrEmailAlreadyExists].
func (r *profileRepository) CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProfileQuery(r.db.builder(), profile)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.CreateProfile").Msg("failed to build query")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanProfile(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		class := r.db.classify(err)
		log.Err(err).
			Str("func", "*profileRepository.CreateProfile").
			Stringer("class", class).
			Msg("failed to insert profile")

		if class == UniqueViolation {
			return models.Profile{}, ErrEmailAlreadyExists
		}
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// FindProfileByEmail returns [ErrProfileNotFound] when nobody uses email.
func (r *profileRepository) FindProfileByEmail(ctx context.Context, email string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindProfileByEmailQuery(r.db.builder(), email)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.FindProfileByEmail").Msg("failed to build query")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := scanProfile(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.FindProfileByEmail").Msg("failed to find profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}
