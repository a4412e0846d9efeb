// Package service implements the business logic of the application:
// credential issuance and verification, and profile mutation semantics.
package service

import (
	"context"

	"github.com/devconnector/devconnector/models"
)

// AuthService handles account registration, credential verification, and the
// session-token lifecycle.
type AuthService interface {
	// RegisterUser creates a new account from a validated registration
	// request. Returns store.ErrEmailAlreadyExists when the email is taken.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates an existing account. Returns
	// store.ErrNoUserWasFound for an unknown email and ErrWrongPassword
	// when the password comparison fails. The two cases carry distinct
	// client-facing messages.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// CurrentUser returns the account record for an authenticated user id.
	CurrentUser(ctx context.Context, userID int64) (models.User, error)

	// CreateToken issues a signed session token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates and parses a raw session token string. Failures
	// are classified as ErrTokenExpired, ErrTokenInvalidSignature or
	// ErrTokenMalformed.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService implements the profile mutation and read operations.
type ProfileService interface {
	// UpsertProfile creates the owner's profile on first submission and
	// applies a sparse merge on subsequent ones.
	UpsertProfile(ctx context.Context, userID int64, req models.ProfileRequest) (models.Profile, error)

	// GetProfileByUser returns the owner's profile or store.ErrProfileNotFound.
	GetProfileByUser(ctx context.Context, userID int64) (models.Profile, error)

	// ListProfiles returns every profile with the owner's public fields
	// joined in. Unfiltered and unpaginated.
	ListProfiles(ctx context.Context) ([]models.Profile, error)

	// AddExperience prepends a new experience entry to the owner's profile.
	AddExperience(ctx context.Context, userID int64, req models.ExperienceRequest) (models.Profile, error)

	// RemoveExperience removes the entry with the given id. A missing id is
	// a no-op that still succeeds and returns the unmodified profile.
	RemoveExperience(ctx context.Context, userID int64, entryID string) (models.Profile, error)

	// AddEducation prepends a new education entry to the owner's profile.
	AddEducation(ctx context.Context, userID int64, req models.EducationRequest) (models.Profile, error)

	// RemoveEducation removes the entry with the given id. Same no-op
	// semantics as RemoveExperience.
	RemoveEducation(ctx context.Context, userID int64, entryID string) (models.Profile, error)

	// DeleteAccount removes the owner's profile (if any) and then the
	// account itself.
	DeleteAccount(ctx context.Context, userID int64) error
}
