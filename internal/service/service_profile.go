package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/devconnector/devconnector/internal/logger"
	"github.com/devconnector/devconnector/internal/store"
	"github.com/devconnector/devconnector/internal/utils"
	"github.com/devconnector/devconnector/models"
)

// profileService is the concrete implementation of ProfileService.
//
// It owns the upsert-or-update decision, the sparse-merge semantics of
// profile fields, and the ordering rules of the experience and education
// sequences. The read-then-write sequences here carry no isolation guarantee
// against concurrent writers for the same owner; that race is accepted.
type profileService struct {
	profileRepository store.ProfileRepository
	userRepository    store.UserRepository

	// ids generates identifiers for newly inserted sub-document entries.
	ids *utils.UUIDGenerator

	logger *logger.Logger
}

// NewProfileService constructs a new ProfileService wired to the given
// repositories.
func NewProfileService(profileRepository store.ProfileRepository, userRepository store.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		userRepository:    userRepository,
		ids:               utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// UpsertProfile creates or sparsely updates the owner's profile.
//
// Only fields present and non-empty in the request overwrite stored values;
// absent fields keep their prior values on update and are simply omitted on
// create. The skills string is split on commas with each element trimmed.
// The social sub-object is rebuilt from the supplied link fields on every
// call. Returns the resulting full profile document in both cases.
func (p *profileService) UpsertProfile(ctx context.Context, userID int64, req models.ProfileRequest) (models.Profile, error) {
	log := logger.FromContext(ctx)

	social := req.SocialLinks()
	update := models.ProfileUpdate{
		Company:        presentNonEmpty(req.Company),
		Location:       presentNonEmpty(req.Location),
		Website:        presentNonEmpty(req.Website),
		Bio:            presentNonEmpty(req.Bio),
		Status:         presentNonEmpty(req.Status),
		GithubUsername: presentNonEmpty(req.GithubUsername),
		Skills:         req.SkillList(),
		Social:         &social,
	}

	_, err := p.profileRepository.FindProfileByUserID(ctx, userID)
	switch {
	case err == nil:
		updated, err := p.profileRepository.UpdateProfile(ctx, userID, update)
		if err != nil {
			log.Err(err).Int64("user_id", userID).Msg("profile update failed")
			return models.Profile{}, fmt.Errorf("profile update failed: %w", err)
		}
		return updated, nil

	case errors.Is(err, store.ErrProfileNotFound):
		profile := models.Profile{
			UserID: userID,
			Skills: update.Skills,
			Social: social,
		}
		if update.Company != nil {
			profile.Company = *update.Company
		}
		if update.Location != nil {
			profile.Location = *update.Location
		}
		if update.Website != nil {
			profile.Website = *update.Website
		}
		if update.Bio != nil {
			profile.Bio = *update.Bio
		}
		if update.Status != nil {
			profile.Status = *update.Status
		}
		if update.GithubUsername != nil {
			profile.GithubUsername = *update.GithubUsername
		}

		created, err := p.profileRepository.CreateProfile(ctx, profile)
		if err != nil {
			log.Err(err).Int64("user_id", userID).Msg("profile creation failed")
			return models.Profile{}, fmt.Errorf("profile creation failed: %w", err)
		}
		return created, nil

	default:
		log.Err(err).Int64("user_id", userID).Msg("profile lookup failed")
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}
}

// GetProfileByUser returns the owner's profile or store.ErrProfileNotFound.
func (p *profileService) GetProfileByUser(ctx context.Context, userID int64) (models.Profile, error) {
	profile, err := p.profileRepository.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return models.Profile{}, err
		}
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return profile, nil
}

// ListProfiles returns every profile with owner projections joined in.
func (p *profileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	profiles, err := p.profileRepository.GetAllProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("profile listing failed: %w", err)
	}

	return profiles, nil
}

// AddExperience assigns a fresh identifier to the entry and prepends it to
// the owner's experience sequence (most-recent-first ordering).
func (p *profileService) AddExperience(ctx context.Context, userID int64, req models.ExperienceRequest) (models.Profile, error) {
	log := logger.FromContext(ctx)

	profile, err := p.profileRepository.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return models.Profile{}, err
		}
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	entry := req.Entry()
	entry.ID = p.ids.Generate()

	experience := append([]models.Experience{entry}, profile.Experience...)

	updated, err := p.profileRepository.ReplaceExperience(ctx, userID, experience)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("adding experience failed")
		return models.Profile{}, fmt.Errorf("adding experience failed: %w", err)
	}

	return updated, nil
}

// RemoveExperience removes the entry with the given id from the owner's
// sequence. A missing id leaves the sequence untouched and the operation
// still succeeds, returning the unmodified profile.
func (p *profileService) RemoveExperience(ctx context.Context, userID int64, entryID string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	profile, err := p.profileRepository.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return models.Profile{}, err
		}
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	experience := make([]models.Experience, 0, len(profile.Experience))
	for _, entry := range profile.Experience {
		if entry.ID == entryID {
			continue
		}
		experience = append(experience, entry)
	}

	updated, err := p.profileRepository.ReplaceExperience(ctx, userID, experience)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("entry_id", entryID).Msg("removing experience failed")
		return models.Profile{}, fmt.Errorf("removing experience failed: %w", err)
	}

	return updated, nil
}

// AddEducation assigns a fresh identifier to the entry and prepends it to
// the owner's education sequence.
func (p *profileService) AddEducation(ctx context.Context, userID int64, req models.EducationRequest) (models.Profile, error) {
	log := logger.FromContext(ctx)

	profile, err := p.profileRepository.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return models.Profile{}, err
		}
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	entry := req.Entry()
	entry.ID = p.ids.Generate()

	education := append([]models.Education{entry}, profile.Education...)

	updated, err := p.profileRepository.ReplaceEducation(ctx, userID, education)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("adding education failed")
		return models.Profile{}, fmt.Errorf("adding education failed: %w", err)
	}

	return updated, nil
}

// RemoveEducation removes the entry with the given id. Same no-op-success
// semantics as RemoveExperience.
func (p *profileService) RemoveEducation(ctx context.Context, userID int64, entryID string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	profile, err := p.profileRepository.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return models.Profile{}, err
		}
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	education := make([]models.Education, 0, len(profile.Education))
	for _, entry := range profile.Education {
		if entry.ID == entryID {
			continue
		}
		education = append(education, entry)
	}

	updated, err := p.profileRepository.ReplaceEducation(ctx, userID, education)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("entry_id", entryID).Msg("removing education failed")
		return models.Profile{}, fmt.Errorf("removing education failed: %w", err)
	}

	return updated, nil
}

// DeleteAccount removes the owner's profile (if any) and then the account
// itself. No other owned resources exist in this system, so no further
// cascade is modeled.
func (p *profileService) DeleteAccount(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := p.profileRepository.DeleteProfileByUserID(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile deletion failed")
		return fmt.Errorf("profile deletion failed: %w", err)
	}

	if err := p.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}

// presentNonEmpty collapses "absent" and "present but empty" into nil so
// that only supplied non-empty values participate in the sparse merge.
func presentNonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
