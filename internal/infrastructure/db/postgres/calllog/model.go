package calllog

import (
	"time"
)

type (
	CallLog struct {
		ID              uint64
		PhoneNumberID   uint64
		Direction       string
		DurationSeconds int
		CalleeNumber    *string

		CallTime time.Time
	}
	CallLogs []*CallLog
)
