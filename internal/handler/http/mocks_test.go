package http

import (
	"context"
	"errors"

	"github.com/devconnector/devconnector/models"
)

var errBoom = errors.New("boom")

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	currentUserFn  func(ctx context.Context, userID int64) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockAuthService) CurrentUser(ctx context.Context, userID int64) (models.User, error) {
	if m.currentUserFn != nil {
		return m.currentUserFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed-token", UserID: user.UserID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: 42}, nil
}

// ─────────────────────────────────────────────
// Mock: service.ProfileService
// ─────────────────────────────────────────────

type mockProfileService struct {
	upsertProfileFn    func(ctx context.Context, userID int64, req models.ProfileRequest) (models.Profile, error)
	getProfileByUserFn func(ctx context.Context, userID int64) (models.Profile, error)
	listProfilesFn     func(ctx context.Context) ([]models.Profile, error)
	addExperienceFn    func(ctx context.Context, userID int64, req models.ExperienceRequest) (models.Profile, error)
	removeExperienceFn func(ctx context.Context, userID int64, entryID string) (models.Profile, error)
	addEducationFn     func(ctx context.Context, userID int64, req models.EducationRequest) (models.Profile, error)
	removeEducationFn  func(ctx context.Context, userID int64, entryID string) (models.Profile, error)
	deleteAccountFn    func(ctx context.Context, userID int64) error
}

func (m *mockProfileService) UpsertProfile(ctx context.Context, userID int64, req models.ProfileRequest) (models.Profile, error) {
	if m.upsertProfileFn != nil {
		return m.upsertProfileFn(ctx, userID, req)
	}
	return models.Profile{}, nil
}

func (m *mockProfileService) GetProfileByUser(ctx context.Context, userID int64) (models.Profile, error) {
	if m.getProfileByUserFn != nil {
		return m.getProfileByUserFn(ctx, userID)
	}
	return models.Profile{}, nil
}

func (m *mockProfileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	if m.listProfilesFn != nil {
		return m.listProfilesFn(ctx)
	}
	return nil, nil
}

func (m *mockProfileService) AddExperience(ctx context.Context, userID int64, req models.ExperienceRequest) (models.Profile, error) {
	if m.addExperienceFn != nil {
		return m.addExperienceFn(ctx, userID, req)
	}
	return models.Profile{}, nil
}

func (m *mockProfileService) RemoveExperience(ctx context.Context, userID int64, entryID string) (models.Profile, error) {
	if m.removeExperienceFn != nil {
		return m.removeExperienceFn(ctx, userID, entryID)
	}
	return models.Profile{}, nil
}

func (m *mockProfileService) AddEducation(ctx context.Context, userID int64, req models.EducationRequest) (models.Profile, error) {
	if m.addEducationFn != nil {
		return m.addEducationFn(ctx, userID, req)
	}
	return models.Profile{}, nil
}

func (m *mockProfileService) RemoveEducation(ctx context.Context, userID int64, entryID string) (models.Profile, error) {
	if m.removeEducationFn != nil {
		return m.removeEducationFn(ctx, userID, entryID)
	}
	return models.Profile{}, nil
}

func (m *mockProfileService) DeleteAccount(ctx context.Context, userID int64) error {
	if m.deleteAccountFn != nil {
		return m.deleteAccountFn(ctx, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: adapter.GithubAdapter
// ─────────────────────────────────────────────

type mockGithubAdapter struct {
	listReposFn func(ctx context.Context, username string) ([]models.Repo, error)
}

func (m *mockGithubAdapter) ListRepos(ctx context.Context, username string) ([]models.Repo, error) {
	if m.listReposFn != nil {
		return m.listReposFn(ctx, username)
	}
	return nil, nil
}
