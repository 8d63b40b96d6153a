package user

import (
	"time"
)

type (
	ID   uint64
	User struct {
		ID           ID
		Email        string
		PasswordHash *string
		Role         string
		Name         string

		CreatedAt time.Time
		UpdatedAt time.Time

		DeletedAt *time.Time
	}
	Users []*User
)
