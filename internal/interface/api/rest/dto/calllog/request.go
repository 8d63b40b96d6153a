package calllog

type (
	// Request appends a call log directly (admin/import path).
	Request struct {
		Direction       string `json:"direction"`
		DurationSeconds int    `json:"duration_seconds"`
		CalleeNumber    string `json:"callee_number,omitempty"`
	}
	// MakeCallRequest simulates placing an outgoing call from a number.
	MakeCallRequest struct {
		CalleeNumber string `json:"callee_number"`
	}
)
