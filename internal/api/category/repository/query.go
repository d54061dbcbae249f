package categoryRepository

const (
	queryCreateCategory = `
		INSERT INTO categories (
			id,
			user_id,
			name,
			type,
			icon,
			color,
			is_default,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:name,
			:type,
			:icon,
			:color,
			:is_default,
			:created_at,
			:updated_at
		)
	`

	queryGetCategoryByID = `
		SELECT
			id,
			user_id,
			name,
			type,
			icon,
			color,
			is_default,
			created_at,
			updated_at
		FROM categories
		WHERE id = :id AND user_id = :user_id
	`

	queryGetCategoriesByUserID = `
		SELECT
			id,
			user_id,
			name,
			type,
			icon,
			color,
			is_default,
			created_at,
			updated_at
		FROM categories
		WHERE user_id = :user_id
		ORDER BY type ASC, name ASC
	`

	queryGetCategoryByNameAndType = `
		SELECT
			id,
			user_id,
			name,
			type,
			icon,
			color,
			is_default,
			created_at,
			updated_at
		FROM categories
		WHERE user_id = :user_id AND name = :name AND type = :type
	`

	queryUpdateCategory = `
		UPDATE categories
		SET
			name = :name,
			icon = :icon,
			color = :color,
			updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
	`

	queryDeleteCategory = `
		DELETE FROM categories
		WHERE id = :id AND user_id = :user_id
	`
)
