package user

const (
	SelectUsers = `
		SELECT id, email, password_hash, role, name, created_at, updated_at, deleted_at
		FROM users
		WHERE deleted_at IS NULL
		ORDER BY id
		LIMIT $1 OFFSET ( ($2 - 1) * $1 )
	`
	CountUsers = `
		SELECT count(*) FROM users WHERE deleted_at IS NULL
	`
	SelectUserByID = `
		SELECT id, email, password_hash, role, name, created_at, updated_at, deleted_at
		FROM users
		WHERE id = $1 AND deleted_at IS NULL
	`
	SelectUserByEmail = `
		SELECT id, email, password_hash, role, name, created_at, updated_at, deleted_at
		FROM users
		WHERE email = $1 AND deleted_at IS NULL
	`
	InsertUser = `
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		RETURNING
		  id, email, password_hash, role, name, created_at, updated_at, deleted_at
	`
	UpdateUserByID = `
		UPDATE users
		SET email = $1,
		    name = $2,
		    updated_at = now()
		WHERE id = $3 AND deleted_at IS NULL
		RETURNING
		  id, email, password_hash, role, name, created_at, updated_at, deleted_at
	`
	// SoftDeleteUserByID flips deleted_at and deactivates every active
	// number of that user in one statement, so a failure leaves neither
	// half applied.
	SoftDeleteUserByID = `
		WITH deleted AS (
			UPDATE users
			SET deleted_at = now()
			WHERE id = $1 AND deleted_at IS NULL
			RETURNING
			  id, email, password_hash, role, name, created_at, updated_at, deleted_at
		), deactivated AS (
			UPDATE phone_numbers
			SET active = false,
			    updated_at = now()
			WHERE user_id IN ( SELECT id FROM deleted ) AND active
		)
		SELECT id, email, password_hash, role, name, created_at, updated_at, deleted_at
		FROM deleted
	`
)
