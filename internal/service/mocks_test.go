package service

import (
	"context"
	"errors"

	"github.com/devconnector/devconnector/models"
)

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn    func(ctx context.Context, userID int64) (models.User, error)
	deleteUserFn      func(ctx context.Context, userID int64) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(ctx, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ProfileRepository
// ─────────────────────────────────────────────

type mockProfileRepository struct {
	createProfileFn         func(ctx context.Context, profile models.Profile) (models.Profile, error)
	updateProfileFn         func(ctx context.Context, userID int64, update models.ProfileUpdate) (models.Profile, error)
	findProfileByUserIDFn   func(ctx context.Context, userID int64) (models.Profile, error)
	getAllProfilesFn        func(ctx context.Context) ([]models.Profile, error)
	replaceExperienceFn     func(ctx context.Context, userID int64, experience []models.Experience) (models.Profile, error)
	replaceEducationFn      func(ctx context.Context, userID int64, education []models.Education) (models.Profile, error)
	deleteProfileByUserIDFn func(ctx context.Context, userID int64) error
}

func (m *mockProfileRepository) CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	if m.createProfileFn != nil {
		return m.createProfileFn(ctx, profile)
	}
	return profile, nil
}

func (m *mockProfileRepository) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.Profile, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, userID, update)
	}
	return models.Profile{}, nil
}

func (m *mockProfileRepository) FindProfileByUserID(ctx context.Context, userID int64) (models.Profile, error) {
	if m.findProfileByUserIDFn != nil {
		return m.findProfileByUserIDFn(ctx, userID)
	}
	return models.Profile{}, nil
}

func (m *mockProfileRepository) GetAllProfiles(ctx context.Context) ([]models.Profile, error) {
	if m.getAllProfilesFn != nil {
		return m.getAllProfilesFn(ctx)
	}
	return nil, nil
}

func (m *mockProfileRepository) ReplaceExperience(ctx context.Context, userID int64, experience []models.Experience) (models.Profile, error) {
	if m.replaceExperienceFn != nil {
		return m.replaceExperienceFn(ctx, userID, experience)
	}
	return models.Profile{}, nil
}

func (m *mockProfileRepository) ReplaceEducation(ctx context.Context, userID int64, education []models.Education) (models.Profile, error) {
	if m.replaceEducationFn != nil {
		return m.replaceEducationFn(ctx, userID, education)
	}
	return models.Profile{}, nil
}

func (m *mockProfileRepository) DeleteProfileByUserID(ctx context.Context, userID int64) error {
	if m.deleteProfileByUserIDFn != nil {
		return m.deleteProfileByUserIDFn(ctx, userID)
	}
	return nil
}
