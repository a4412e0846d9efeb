// Package store implements the PostgreSQL persistence layer.
//
// Repositories speak database/sql over the pgx stdlib driver. Profile
// sub-documents (skills, social links, experience, education) are stored as
// JSONB columns, which keeps the ordered-sequence semantics of the profile
// document intact without a join table per sub-collection.
package store

import (
	"context"

	"github.com/devconnector/devconnector/models"
)

// UserRepository persists account records.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields (UserID, CreatedAt) populated. Returns ErrEmailAlreadyExists
	// when the email is already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its login key.
	// Returns ErrNoUserWasFound when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks an account up by its identifier.
	// Returns ErrNoUserWasFound when no account matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// DeleteUser removes the account row. Deleting a missing user is not
	// an error.
	DeleteUser(ctx context.Context, userID int64) error
}

// ProfileRepository persists profile documents keyed by their owner.
type ProfileRepository interface {
	// CreateProfile inserts a new profile document for its owner and
	// returns the stored document with the owner projection joined in.
	CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)

	// UpdateProfile applies a sparse change-set to the owner's profile and
	// returns the resulting document. Returns ErrProfileNotFound when the
	// owner has no profile.
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.Profile, error)

	// FindProfileByUserID returns the owner's profile with the owner
	// projection joined in, or ErrProfileNotFound.
	FindProfileByUserID(ctx context.Context, userID int64) (models.Profile, error)

	// GetAllProfiles returns every profile with owner projections joined in.
	GetAllProfiles(ctx context.Context) ([]models.Profile, error)

	// ReplaceExperience overwrites the owner's experience sequence and
	// returns the resulting profile. Returns ErrProfileNotFound when the
	// owner has no profile.
	ReplaceExperience(ctx context.Context, userID int64, experience []models.Experience) (models.Profile, error)

	// ReplaceEducation overwrites the owner's education sequence and
	// returns the resulting profile. Returns ErrProfileNotFound when the
	// owner has no profile.
	ReplaceEducation(ctx context.Context, userID int64, education []models.Education) (models.Profile, error)

	// DeleteProfileByUserID removes the owner's profile. Deleting a missing
	// profile is not an error.
	DeleteProfileByUserID(ctx context.Context, userID int64) error
}
