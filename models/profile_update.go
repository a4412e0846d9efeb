package models

// ProfileUpdate is the sparse change-set applied to an existing profile.
//
// Nil pointer fields are left untouched in storage; non-nil fields overwrite
// the stored value. Skills and Social follow the upsert contract: Skills is
// replaced when non-nil, Social is rebuilt wholesale on every upsert.
type ProfileUpdate struct {
	Company        *string
	Location       *string
	Website        *string
	Bio            *string
	Status         *string
	GithubUsername *string

	// Skills replaces the stored skill list when non-nil.
	Skills []string

	// Social replaces the stored social sub-object when non-nil.
	Social *Social
}

// IsEmpty reports whether the update would change nothing.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Company == nil && u.Location == nil && u.Website == nil &&
		u.Bio == nil && u.Status == nil && u.GithubUsername == nil &&
		u.Skills == nil && u.Social == nil
}
