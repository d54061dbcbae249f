package reportRepository

// Aggregates are pushed down to Postgres; the service layer only combines
// bucket rows. The category queries join categories on purpose: transactions
// whose category row no longer exists are dropped from breakdowns.
//
// An empty :currency argument disables the currency filter. Both period
// boundaries are inclusive; symbolic periods end at the moment of the
// request, so the closed upper bound admits nothing a half-open one would
// not. Day buckets are always taken in UTC, never in the session time zone,
// so a row near midnight lands in the same day the period resolver assigned
// it to.

const (
	queryCurrencyTotals = `
		SELECT
			currency,
			SUM(amount) AS total,
			COUNT(*) AS count
		FROM transactions
		WHERE
			user_id = :user_id
			AND type = :type
			AND date >= :start_date
			AND date <= :end_date
			AND (:currency = '' OR currency = :currency)
		GROUP BY currency
	`

	queryCategoryBreakdown = `
		SELECT
			t.category_id,
			c.name,
			c.icon,
			c.color,
			t.currency,
			SUM(t.amount) AS total,
			COUNT(*) AS count
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE
			t.user_id = :user_id
			AND t.type = :type
			AND t.date >= :start_date
			AND t.date <= :end_date
			AND (:currency = '' OR t.currency = :currency)
		GROUP BY t.category_id, c.name, c.icon, c.color, t.currency
		ORDER BY total DESC
	`

	queryTopCategories = `
		SELECT
			t.category_id,
			c.name,
			c.icon,
			c.color,
			t.currency,
			SUM(t.amount) AS total,
			COUNT(*) AS count
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE
			t.user_id = :user_id
			AND t.type = :type
			AND t.currency = :currency
			AND t.date >= :start_date
			AND t.date <= :end_date
		GROUP BY t.category_id, c.name, c.icon, c.color, t.currency
		ORDER BY total DESC, t.category_id ASC
		LIMIT :limit
	`

	queryDailyTotals = `
		SELECT
			EXTRACT(DAY FROM date AT TIME ZONE 'UTC')::int AS day,
			SUM(amount) AS total,
			COUNT(*) AS count
		FROM transactions
		WHERE
			user_id = :user_id
			AND type = :type
			AND currency = :currency
			AND date >= :start_date
			AND date <= :end_date
		GROUP BY EXTRACT(DAY FROM date AT TIME ZONE 'UTC')
		ORDER BY day ASC
	`

	queryCategoryCurrencyTotals = `
		SELECT
			currency,
			SUM(amount) AS total,
			COUNT(*) AS count
		FROM transactions
		WHERE
			user_id = :user_id
			AND category_id = :category_id
			AND date >= :start_date
			AND date <= :end_date
		GROUP BY currency
		ORDER BY total DESC
	`

	queryRecentTransactions = `
		SELECT
			t.id,
			t.type,
			t.amount,
			t.currency,
			t.description,
			t.date,
			c.name AS category_name,
			c.icon AS category_icon,
			c.color AS category_color
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE
			t.user_id = :user_id
			AND (:category_id = '' OR t.category_id = :category_id)
			AND t.date >= :start_date
			AND t.date <= :end_date
		ORDER BY t.date DESC
		LIMIT :limit
	`
)
