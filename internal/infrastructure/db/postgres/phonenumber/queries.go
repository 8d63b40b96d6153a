package phonenumber

const (
	SelectNumberByID = `
		SELECT id, user_id, number, active, created_at, updated_at
		FROM phone_numbers
		WHERE id = $1 AND active
	`
	SelectNumbersByUser = `
		SELECT id, user_id, number, active, created_at, updated_at
		FROM phone_numbers
		WHERE user_id = $1 AND active
		ORDER BY id
		LIMIT $2 OFFSET ( ($3 - 1) * $2 )
	`
	CountNumbersByUser = `
		SELECT count(*) FROM phone_numbers WHERE user_id = $1 AND active
	`
	InsertNumber = `
		INSERT INTO phone_numbers (user_id, number)
		VALUES ($1, $2)
		RETURNING
		  id, user_id, number, active, created_at, updated_at
	`
	UpdateNumberByID = `
		UPDATE phone_numbers
		SET number = $1,
		    updated_at = now()
		WHERE id = $2 AND user_id = $3 AND active
		RETURNING
		  id, user_id, number, active, created_at, updated_at
	`
	DeactivateNumberByID = `
		UPDATE phone_numbers
		SET active = false,
		    updated_at = now()
		WHERE id = $1 AND user_id = $2 AND active
		RETURNING
		  id, user_id, number, active, created_at, updated_at
	`
	SelectNumberDetails = `
		SELECT pn.id, pn.user_id, pn.number, u.name, u.email, count(cl.id)
		FROM phone_numbers pn
		JOIN users u ON u.id = pn.user_id
		LEFT JOIN call_logs cl ON cl.phone_number_id = pn.id
		WHERE pn.active
		GROUP BY pn.id, pn.user_id, pn.number, u.name, u.email
		ORDER BY pn.id
		LIMIT $1 OFFSET ( ($2 - 1) * $1 )
	`
	CountActiveNumbers = `
		SELECT count(*) FROM phone_numbers WHERE active
	`
)
