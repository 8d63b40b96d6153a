package calllog

import (
	"time"

	"cloud-telephony-api/internal/domain/phonenumber"
)

type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
)

func (d Direction) Valid() bool {
	return d == DirectionIncoming || d == DirectionOutgoing
}

type (
	ID      uint64
	CallLog struct {
		ID              ID
		PhoneNumberID   phonenumber.ID
		Direction       Direction
		DurationSeconds int
		CalleeNumber    *string

		CallTime time.Time
	}
	CallLogs []*CallLog
)
