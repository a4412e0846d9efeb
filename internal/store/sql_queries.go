package store

const (
	createUser = `INSERT INTO users (name, email, password, avatar)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, name, email, password, avatar, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password, avatar, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password, avatar, created_at
    FROM users
    WHERE user_id = $1;`

	deleteUser = `DELETE FROM users WHERE user_id = $1;`

	createProfile = `INSERT INTO profiles (
			user_id,
			company,
			location,
			website,
			bio,
			status,
			github_username,
			skills,
			social,
			experience,
			education
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

	profileColumns = `
		p.profile_id,
		p.user_id,
		p.company,
		p.location,
		p.website,
		p.bio,
		p.status,
		p.github_username,
		p.skills,
		p.social,
		p.experience,
		p.education,
		p.created_at,
		p.updated_at,
		u.name,
		u.avatar`

	findProfileByUserID = `SELECT` + profileColumns + `
		FROM profiles p
		JOIN users u ON u.user_id = p.user_id
		WHERE p.user_id = $1;`

	getAllProfiles = `SELECT` + profileColumns + `
		FROM profiles p
		JOIN users u ON u.user_id = p.user_id
		ORDER BY p.profile_id;`

	replaceExperience = `UPDATE profiles
		SET experience = $2, updated_at = now()
		WHERE user_id = $1;`

	replaceEducation = `UPDATE profiles
		SET education = $2, updated_at = now()
		WHERE user_id = $1;`

	deleteProfile = `DELETE FROM profiles WHERE user_id = $1;`
)
