package models

import "time"

// Profile is the professional profile document owned 1:1 by a User.
//
// Optional scalar fields are sparse: a value that was never supplied is
// stored as NULL and omitted from the JSON rendering rather than serialized
// as an empty string. Experience and Education are ordered sequences with
// the newest entry first.
type Profile struct {
	// ProfileID is the internal unique identifier of the profile row.
	ProfileID int64 `json:"-"`

	// UserID is the owning user's identifier (unique per profile).
	UserID int64 `json:"-"`

	// User is the owner's public projection (id, name, avatar) joined in
	// whenever a profile is read.
	User Owner `json:"user"`

	Company        string `json:"company,omitempty"`
	Location       string `json:"location,omitempty"`
	Website        string `json:"website,omitempty"`
	Bio            string `json:"bio,omitempty"`
	Status         string `json:"status"`
	GithubUsername string `json:"githubusername,omitempty"`

	// Skills is the list of skill tags, parsed from a comma-separated
	// input with surrounding whitespace trimmed from each element.
	Skills []string `json:"skills"`

	// Social holds the optional social media links sub-object.
	Social Social `json:"social"`

	// Experience is ordered newest-first; new entries are prepended.
	Experience []Experience `json:"experience"`

	// Education is ordered newest-first; new entries are prepended.
	Education []Education `json:"education"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}

// Social is the fixed sub-object of optional social media links.
// Only supplied links are populated; the object is rebuilt wholesale on
// every profile upsert.
type Social struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Experience is a single work history entry of a profile.
//
// ID is server-generated at insertion time and is the handle used for
// later removal. From and To carry the client-supplied date strings
// unchanged; no parsing is performed on them.
type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	From        string `json:"from"`
	To          string `json:"to,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// Education is a single education history entry of a profile.
// Same identifier and ordering rules as Experience.
type Education struct {
	ID           string `json:"id"`
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to,omitempty"`
	Current      bool   `json:"current"`
	Description  string `json:"description,omitempty"`
}
