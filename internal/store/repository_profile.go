package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/devconnector/devconnector/internal/logger"
	"github.com/devconnector/devconnector/models"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository].
//
// Profile scalar fields live in plain columns; skills, social, experience
// and education are JSONB documents. Reads always join the owner's public
// fields (name, avatar) so callers receive a fully rendered profile.
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProfile inserts a new profile document and returns the stored
// representation with the owner projection joined in.
func (r *profileRepository) CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	skills, err := marshalJSONB(emptyIfNilSkills(profile.Skills))
	if err != nil {
		return models.Profile{}, err
	}
	social, err := marshalJSONB(profile.Social)
	if err != nil {
		return models.Profile{}, err
	}
	experience, err := marshalJSONB(emptyIfNilExperience(profile.Experience))
	if err != nil {
		return models.Profile{}, err
	}
	education, err := marshalJSONB(emptyIfNilEducation(profile.Education))
	if err != nil {
		return models.Profile{}, err
	}

	_, err = r.db.ExecContext(ctx, createProfile,
		profile.UserID,
		nullableText(profile.Company),
		nullableText(profile.Location),
		nullableText(profile.Website),
		nullableText(profile.Bio),
		profile.Status,
		nullableText(profile.GithubUsername),
		skills,
		social,
		experience,
		education,
	)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.CreateProfile").Int64("user_id", profile.UserID).Msg("error inserting profile")
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return r.FindProfileByUserID(ctx, profile.UserID)
}

// UpdateProfile applies a sparse change-set to the owner's profile.
//
// The UPDATE statement is built dynamically with squirrel: only fields
// present in the change-set produce SET clauses, so absent fields keep
// their stored values. Returns [ErrProfileNotFound] when the owner has no
// profile row.
func (r *profileRepository) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return r.FindProfileByUserID(ctx, userID)
	}

	builder := sq.Update("profiles").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID})

	if update.Company != nil {
		builder = builder.Set("company", *update.Company)
	}
	if update.Location != nil {
		builder = builder.Set("location", *update.Location)
	}
	if update.Website != nil {
		builder = builder.Set("website", *update.Website)
	}
	if update.Bio != nil {
		builder = builder.Set("bio", *update.Bio)
	}
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}
	if update.GithubUsername != nil {
		builder = builder.Set("github_username", *update.GithubUsername)
	}
	if update.Skills != nil {
		skills, err := marshalJSONB(update.Skills)
		if err != nil {
			return models.Profile{}, err
		}
		builder = builder.Set("skills", skills)
	}
	if update.Social != nil {
		social, err := marshalJSONB(*update.Social)
		if err != nil {
			return models.Profile{}, err
		}
		builder = builder.Set("social", social)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.UpdateProfile").Msg("error building update query")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.UpdateProfile").Int64("user_id", userID).Msg("error updating profile")
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return models.Profile{}, ErrProfileNotFound
	}

	return r.FindProfileByUserID(ctx, userID)
}

// FindProfileByUserID returns the owner's profile document or
// [ErrProfileNotFound].
func (r *profileRepository) FindProfileByUserID(ctx context.Context, userID int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findProfileByUserID, userID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*profileRepository.FindProfileByUserID").Msg("error: row is nil")
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}
		log.Err(err).Str("func", "*profileRepository.FindProfileByUserID").Msg("error: scanning error")
		return models.Profile{}, err
	}

	return profile, nil
}

// GetAllProfiles returns every stored profile with owner projections.
func (r *profileRepository) GetAllProfiles(ctx context.Context) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllProfiles)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.GetAllProfiles").Msg("error querying profiles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	profiles := make([]models.Profile, 0)
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			log.Err(err).Str("func", "*profileRepository.GetAllProfiles").Msg("error scanning profile row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return profiles, nil
}

// ReplaceExperience overwrites the owner's experience sequence.
func (r *profileRepository) ReplaceExperience(ctx context.Context, userID int64, experience []models.Experience) (models.Profile, error) {
	document, err := marshalJSONB(emptyIfNilExperience(experience))
	if err != nil {
		return models.Profile{}, err
	}

	return r.replaceDocument(ctx, replaceExperience, userID, document)
}

// ReplaceEducation overwrites the owner's education sequence.
func (r *profileRepository) ReplaceEducation(ctx context.Context, userID int64, education []models.Education) (models.Profile, error) {
	document, err := marshalJSONB(emptyIfNilEducation(education))
	if err != nil {
		return models.Profile{}, err
	}

	return r.replaceDocument(ctx, replaceEducation, userID, document)
}

func (r *profileRepository) replaceDocument(ctx context.Context, query string, userID int64, document []byte) (models.Profile, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, userID, document)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.replaceDocument").Int64("user_id", userID).Msg("error replacing profile document")
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return models.Profile{}, ErrProfileNotFound
	}

	return r.FindProfileByUserID(ctx, userID)
}

// DeleteProfileByUserID removes the owner's profile row. A missing row is
// not an error: the operation is idempotent.
func (r *profileRepository) DeleteProfileByUserID(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteProfile, userID); err != nil {
		log.Err(err).Str("func", "*profileRepository.DeleteProfileByUserID").Int64("user_id", userID).Msg("error deleting profile")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning logic.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanProfile reads one joined profile row (profile columns + owner name
// and avatar) into a models.Profile.
func scanProfile(row rowScanner) (models.Profile, error) {
	var (
		profile                                 models.Profile
		company, location, website, bio, github sql.NullString
		skills, social, experience, education   []byte
	)

	err := row.Scan(
		&profile.ProfileID,
		&profile.UserID,
		&company,
		&location,
		&website,
		&bio,
		&profile.Status,
		&github,
		&skills,
		&social,
		&experience,
		&education,
		&profile.CreatedAt,
		&profile.UpdatedAt,
		&profile.User.Name,
		&profile.User.Avatar,
	)
	if err != nil {
		return models.Profile{}, err
	}

	profile.User.ID = profile.UserID
	profile.Company = company.String
	profile.Location = location.String
	profile.Website = website.String
	profile.Bio = bio.String
	profile.GithubUsername = github.String

	if err := unmarshalJSONB(skills, &profile.Skills); err != nil {
		return models.Profile{}, err
	}
	if err := unmarshalJSONB(social, &profile.Social); err != nil {
		return models.Profile{}, err
	}
	if err := unmarshalJSONB(experience, &profile.Experience); err != nil {
		return models.Profile{}, err
	}
	if err := unmarshalJSONB(education, &profile.Education); err != nil {
		return models.Profile{}, err
	}

	profile.Skills = emptyIfNilSkills(profile.Skills)
	profile.Experience = emptyIfNilExperience(profile.Experience)
	profile.Education = emptyIfNilEducation(profile.Education)

	return profile, nil
}

func marshalJSONB(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error marshaling jsonb document: %w", err)
	}

	return data, nil
}

func unmarshalJSONB(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("error unmarshaling jsonb document: %w", err)
	}

	return nil
}

func nullableText(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Slice normalizers: profile sequences render as [] rather than null.

func emptyIfNilSkills(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func emptyIfNilExperience(s []models.Experience) []models.Experience {
	if s == nil {
		return []models.Experience{}
	}
	return s
}

func emptyIfNilEducation(s []models.Education) []models.Education {
	if s == nil {
		return []models.Education{}
	}
	return s
}
