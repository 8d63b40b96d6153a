package phonenumber

import (
	"time"

	"cloud-telephony-api/internal/domain/user"
)

type (
	ID          uint64
	PhoneNumber struct {
		ID     ID
		UserID user.ID
		Number string
		Active bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	PhoneNumbers []*PhoneNumber

	// Detail is the admin-listing projection: a number joined with its
	// owner and the size of its call history.
	Detail struct {
		ID        ID
		UserID    user.ID
		Number    string
		UserName  string
		UserEmail string
		CallCount uint64
	}
	Details []*Detail
)
