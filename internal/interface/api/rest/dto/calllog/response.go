package calllog

import (
	"time"

	"cloud-telephony-api/internal/interface/api/rest/dto/pagination"
)

type (
	CallLog struct {
		ID              uint64    `json:"id"`
		PhoneNumberID   uint64    `json:"phone_number_id"`
		Direction       string    `json:"direction"`
		DurationSeconds int       `json:"duration_seconds"`
		CalleeNumber    *string   `json:"callee_number,omitempty"`
		CallTime        time.Time `json:"call_time"`
	}
	CallLogs     []CallLog
	ResponseData struct {
		Data CallLogs        `json:"data"`
		Meta pagination.Meta `json:"meta"`
	}
)
