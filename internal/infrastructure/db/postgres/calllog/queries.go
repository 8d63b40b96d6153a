package calllog

const (
	SelectLogsByNumber = `
		SELECT id, phone_number_id, direction, duration_seconds, callee_number, call_time
		FROM call_logs
		WHERE phone_number_id = $1
		ORDER BY call_time DESC, id DESC
		LIMIT $2 OFFSET ( ($3 - 1) * $2 )
	`
	CountLogsByNumber = `
		SELECT count(*) FROM call_logs WHERE phone_number_id = $1
	`
	InsertLog = `
		INSERT INTO call_logs (phone_number_id, direction, duration_seconds, callee_number, call_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING
		  id, phone_number_id, direction, duration_seconds, callee_number, call_time
	`
)
