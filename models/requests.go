package models

import "strings"

// RegisterRequest is the body of POST /api/users.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileRequest is the sparse body of POST /api/profile.
//
// Every field is a pointer so that "absent" and "present but empty" can be
// told apart after JSON decoding. During an update only supplied non-empty
// fields overwrite stored values; absent fields keep their prior values.
type ProfileRequest struct {
	Company        *string `json:"company,omitempty"`
	Location       *string `json:"location,omitempty"`
	Website        *string `json:"website,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	Status         *string `json:"status,omitempty"`
	GithubUsername *string `json:"githubusername,omitempty"`

	// Skills is a single comma-separated string on the wire
	// (e.g. "HTML, CSS ,JavaScript").
	Skills *string `json:"skills,omitempty"`

	Youtube   *string `json:"youtube,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
	Facebook  *string `json:"facebook,omitempty"`
	Linkedin  *string `json:"linkedin,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
}

// SkillList splits the raw skills string on commas and trims surrounding
// whitespace from each element. Returns nil when the field is absent.
func (r ProfileRequest) SkillList() []string {
	if r.Skills == nil {
		return nil
	}

	parts := strings.Split(*r.Skills, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		skills = append(skills, strings.TrimSpace(part))
	}

	return skills
}

// SocialLinks builds the social sub-object from the supplied link fields.
// Only non-empty values are populated.
func (r ProfileRequest) SocialLinks() Social {
	var social Social
	if r.Youtube != nil {
		social.Youtube = *r.Youtube
	}
	if r.Twitter != nil {
		social.Twitter = *r.Twitter
	}
	if r.Facebook != nil {
		social.Facebook = *r.Facebook
	}
	if r.Linkedin != nil {
		social.Linkedin = *r.Linkedin
	}
	if r.Instagram != nil {
		social.Instagram = *r.Instagram
	}

	return social
}

// ExperienceRequest is the body of PUT /api/profile/experience.
type ExperienceRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Entry converts the request into an Experience entry without an ID;
// the identifier is assigned by the service at insertion time.
func (r ExperienceRequest) Entry() Experience {
	return Experience{
		Title:       r.Title,
		Company:     r.Company,
		Location:    r.Location,
		From:        r.From,
		To:          r.To,
		Current:     r.Current,
		Description: r.Description,
	}
}

// EducationRequest is the body of PUT /api/profile/education.
type EducationRequest struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// Entry converts the request into an Education entry without an ID.
func (r EducationRequest) Entry() Education {
	return Education{
		School:       r.School,
		Degree:       r.Degree,
		FieldOfStudy: r.FieldOfStudy,
		From:         r.From,
		To:           r.To,
		Current:      r.Current,
		Description:  r.Description,
	}
}
