package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/voice-notes/internal/config"
	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/internal/store"
	"github.com/MKhiriev/voice-notes/internal/utils"
	"github.com/MKhiriev/voice-notes/models"
)

// authService handles registration, credential checks and the JWT token
// lifecycle. Passwords are stored as bcrypt hashes.
type authService struct {
	profileRepository store.ProfileRepository
	ids               *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	bcryptCost int
	now        func() time.Time

	logger *logger.Logger
}

func NewAuthService(profileRepository store.ProfileRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		profileRepository: profileRepository,
		ids:               utils.NewUUIDGenerator(),
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		bcryptCost:        bcrypt.DefaultCost,
		now:               time.Now,
		logger:            logger,
	}
}

// Register creates a profile for credentials. The email is trimmed and
// lower-cased before it is stored.
//
// Returns store.ErrEmailAlreadyExists (wrapped) when the email is taken.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.Profile, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(credentials.Email)
	if email == "" || credentials.Password == "" {
		log.Error().Str("email", email).Msg("invalid credentials provided")
		return models.Profile{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Str("email", email).Msg("password hashing failed")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	profile, err := a.profileRepository.CreateProfile(ctx, models.Profile{
		ID:           a.ids.Generate(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    a.now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("profile creation ended with error")
		return models.Profile{}, fmt.Errorf("profile creation ended with error: %w", err)
	}

	return profile, nil
}

// Login returns the profile matching credentials. An unknown email and a
// wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Profile, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(credentials.Email)
	if email == "" || credentials.Password == "" {
		log.Error().Str("email", email).Msg("invalid credentials provided")
		return models.Profile{}, ErrInvalidDataProvided
	}

	profile, err := a.profileRepository.FindProfileByEmail(ctx, email)
	if errors.Is(err, store.ErrProfileNotFound) {
		log.Debug().Str("email", email).Msg("no profile for email")
		return models.Profile{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("profile search by email failed")
		return models.Profile{}, fmt.Errorf("profile search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Debug().Str("user_id", profile.ID).Msg("wrong password")
		return models.Profile{}, ErrInvalidCredentials
	}

	return profile, nil
}

// CreateToken issues a signed JWT whose subject is the profile id.
func (a *authService) CreateToken(ctx context.Context, profile models.Profile) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, profile.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken normalises every validation failure (expired, wrong issuer,
// malformed) to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
