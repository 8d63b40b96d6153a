package user

import (
	"time"

	"cloud-telephony-api/internal/interface/api/rest/dto/pagination"
)

type (
	User struct {
		ID        uint64    `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		CreatedAt time.Time `json:"created_at"`
	}
	Users        []User
	ResponseData struct {
		Data Users           `json:"data"`
		Meta pagination.Meta `json:"meta"`
	}
)
