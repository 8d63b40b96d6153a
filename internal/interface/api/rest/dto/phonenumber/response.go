package phonenumber

import (
	"time"

	"cloud-telephony-api/internal/interface/api/rest/dto/pagination"
)

type (
	PhoneNumber struct {
		ID        uint64    `json:"id"`
		Number    string    `json:"number"`
		UserID    uint64    `json:"user_id"`
		Active    bool      `json:"active"`
		CreatedAt time.Time `json:"created_at"`
	}
	PhoneNumbers []PhoneNumber
	ResponseData struct {
		Data PhoneNumbers    `json:"data"`
		Meta pagination.Meta `json:"meta"`
	}

	Detail struct {
		ID        uint64 `json:"id"`
		Number    string `json:"number"`
		UserID    uint64 `json:"user_id"`
		UserName  string `json:"user_name"`
		UserEmail string `json:"user_email"`
		CallCount uint64 `json:"call_count"`
	}
	Details            []Detail
	DetailResponseData struct {
		Data Details         `json:"data"`
		Meta pagination.Meta `json:"meta"`
	}
)
