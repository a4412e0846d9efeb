package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/devconnector/devconnector/models"
)

// Field name constants reported in validation error entries.
const (
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldStatus       = "status"
	FieldSkills       = "skills"
	FieldTitle        = "title"
	FieldCompany      = "company"
	FieldFrom         = "from"
	FieldSchool       = "school"
	FieldDegree       = "degree"
	FieldFieldOfStudy = "fieldofstudy"
)

// minPasswordLength is the minimum accepted password length at registration.
const minPasswordLength = 6

// RequestValidator implements [Validator] for all inbound request models:
// RegisterRequest, LoginRequest, ProfileRequest, ExperienceRequest and
// EducationRequest. Both value and pointer forms are accepted.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator
// and returns it as the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Returns ErrUnsupportedType if obj does not match any known model and a
// *ValidationError listing every violated rule otherwise.
func (v *RequestValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(ctx, value)
	case *models.RegisterRequest:
		return v.validateRegister(ctx, *value)

	case models.LoginRequest:
		return v.validateLogin(ctx, value)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value)

	case models.ProfileRequest:
		return v.validateProfile(ctx, value)
	case *models.ProfileRequest:
		return v.validateProfile(ctx, *value)

	case models.ExperienceRequest:
		return v.validateExperience(ctx, value)
	case *models.ExperienceRequest:
		return v.validateExperience(ctx, *value)

	case models.EducationRequest:
		return v.validateEducation(ctx, value)
	case *models.EducationRequest:
		return v.validateEducation(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegister(_ context.Context, req models.RegisterRequest) error {
	var fields []models.FieldError

	if strings.TrimSpace(req.Name) == "" {
		fields = append(fields, models.FieldError{Field: FieldName, Msg: "Name is required"})
	}
	if !isEmail(req.Email) {
		fields = append(fields, models.FieldError{Field: FieldEmail, Msg: "Please include a valid email"})
	}
	if len(req.Password) < minPasswordLength {
		fields = append(fields, models.FieldError{Field: FieldPassword, Msg: "Please enter a password > 6 characters"})
	}

	return validationResult(fields)
}

func (v *RequestValidator) validateLogin(_ context.Context, req models.LoginRequest) error {
	var fields []models.FieldError

	if !isEmail(req.Email) {
		fields = append(fields, models.FieldError{Field: FieldEmail, Msg: "Please include a valid email"})
	}
	if req.Password == "" {
		fields = append(fields, models.FieldError{Field: FieldPassword, Msg: "Password is required"})
	}

	return validationResult(fields)
}

func (v *RequestValidator) validateProfile(_ context.Context, req models.ProfileRequest) error {
	var fields []models.FieldError

	if req.Status == nil || strings.TrimSpace(*req.Status) == "" {
		fields = append(fields, models.FieldError{Field: FieldStatus, Msg: "Status is required"})
	}
	if req.Skills == nil || strings.TrimSpace(*req.Skills) == "" {
		fields = append(fields, models.FieldError{Field: FieldSkills, Msg: "Skills is required"})
	}

	return validationResult(fields)
}

func (v *RequestValidator) validateExperience(_ context.Context, req models.ExperienceRequest) error {
	var fields []models.FieldError

	if strings.TrimSpace(req.Title) == "" {
		fields = append(fields, models.FieldError{Field: FieldTitle, Msg: "Title is required"})
	}
	if strings.TrimSpace(req.Company) == "" {
		fields = append(fields, models.FieldError{Field: FieldCompany, Msg: "Company is required"})
	}
	if strings.TrimSpace(req.From) == "" {
		fields = append(fields, models.FieldError{Field: FieldFrom, Msg: "From date is required"})
	}

	return validationResult(fields)
}

func (v *RequestValidator) validateEducation(_ context.Context, req models.EducationRequest) error {
	var fields []models.FieldError

	if strings.TrimSpace(req.School) == "" {
		fields = append(fields, models.FieldError{Field: FieldSchool, Msg: "School is required"})
	}
	if strings.TrimSpace(req.Degree) == "" {
		fields = append(fields, models.FieldError{Field: FieldDegree, Msg: "Degree is required"})
	}
	if strings.TrimSpace(req.FieldOfStudy) == "" {
		fields = append(fields, models.FieldError{Field: FieldFieldOfStudy, Msg: "Field of study is required"})
	}
	if strings.TrimSpace(req.From) == "" {
		fields = append(fields, models.FieldError{Field: FieldFrom, Msg: "From date is required"})
	}

	return validationResult(fields)
}

func validationResult(fields []models.FieldError) error {
	if len(fields) == 0 {
		return nil
	}

	return &ValidationError{Fields: fields}
}

// isEmail reports whether the input parses as a bare RFC 5322 address.
// Addresses with a display name part (e.g. `Bob <bob@x.io>`) are rejected
// because the login key is the plain address only.
func isEmail(input string) bool {
	addr, err := mail.ParseAddress(input)
	if err != nil {
		return false
	}

	return addr.Address == input
}
