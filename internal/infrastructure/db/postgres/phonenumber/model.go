package phonenumber

import (
	"time"
)

type (
	PhoneNumber struct {
		ID     uint64
		UserID uint64
		Number string
		Active bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	PhoneNumbers []*PhoneNumber

	Detail struct {
		ID        uint64
		UserID    uint64
		Number    string
		UserName  string
		UserEmail string
		CallCount uint64
	}
	Details []*Detail
)
