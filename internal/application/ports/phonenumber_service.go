package ports

import (
	"context"

	"cloud-telephony-api/internal/domain/phonenumber"
	"cloud-telephony-api/internal/domain/user"
)

type PhoneNumberService interface {
	CreateNumber(ctx context.Context, userID user.ID, number string) (*phonenumber.PhoneNumber, error)
	FindUserNumbers(ctx context.Context, userID user.ID, page, pageSize int) (phonenumber.PhoneNumbers, uint64, error)
	UpdateNumber(ctx context.Context, userID user.ID, numberID phonenumber.ID, number string) (*phonenumber.PhoneNumber, error)
	DeactivateNumber(ctx context.Context, userID user.ID, numberID phonenumber.ID) (*phonenumber.PhoneNumber, error)
	FindNumberDetails(ctx context.Context, page, pageSize int) (phonenumber.Details, uint64, error)
}
