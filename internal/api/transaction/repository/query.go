package transactionRepository

const (
	queryCreateTransaction = `
		INSERT INTO transactions (
			id,
			user_id,
			type,
			amount,
			currency,
			category_id,
			description,
			date,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:type,
			:amount,
			:currency,
			:category_id,
			:description,
			:date,
			:created_at,
			:updated_at
		)
	`

	queryGetTransactionByID = `
		SELECT
			id,
			user_id,
			type,
			amount,
			currency,
			category_id,
			description,
			date,
			created_at,
			updated_at
		FROM transactions
		WHERE id = :id AND user_id = :user_id
	`

	querySelectTransactions = `
		SELECT
			id,
			user_id,
			type,
			amount,
			currency,
			category_id,
			description,
			date,
			created_at,
			updated_at
		FROM transactions
	`

	queryCountTransactions = `
		SELECT COUNT(*) AS count
		FROM transactions
	`

	queryUpdateTransaction = `
		UPDATE transactions
		SET
			type = :type,
			amount = :amount,
			currency = :currency,
			category_id = :category_id,
			description = :description,
			date = :date,
			updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
	`

	queryDeleteTransaction = `
		DELETE FROM transactions
		WHERE id = :id AND user_id = :user_id
	`
)
