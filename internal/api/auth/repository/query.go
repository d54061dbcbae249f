package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			username,
			email,
			full_name,
			password,
			default_currency,
			role,
			created_at,
			updated_at
		) VALUES (
			:id,
			:username,
			:email,
			:full_name,
			:password,
			:default_currency,
			:role,
			:created_at,
			:updated_at
		)
	`

	queryGetUserByID = `
		SELECT
			id,
			username,
			email,
			full_name,
			password,
			default_currency,
			role,
			created_at,
			updated_at
		FROM users
		WHERE id = :id
	`

	queryGetUserByUsername = `
		SELECT
			id,
			username,
			email,
			full_name,
			password,
			default_currency,
			role,
			created_at,
			updated_at
		FROM users
		WHERE username = :username
	`

	queryGetUserByEmail = `
		SELECT
			id,
			username,
			email,
			full_name,
			password,
			default_currency,
			role,
			created_at,
			updated_at
		FROM users
		WHERE email = :email
	`

	queryUpdateUser = `
		UPDATE users
		SET
			email = :email,
			full_name = :full_name,
			default_currency = :default_currency,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryUpdateUserPassword = `
		UPDATE users
		SET
			password = :password,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteUser = `
		DELETE FROM users
		WHERE id = :id
	`
)
