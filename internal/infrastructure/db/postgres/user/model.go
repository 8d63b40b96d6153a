package user

import (
	"time"
)

type (
	User struct {
		ID           uint64
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
