package phonenumber

import (
	"context"

	"cloud-telephony-api/internal/domain/user"
)

type Repository interface {
	FetchNumberByID(ctx context.Context, id ID) (*PhoneNumber, error)
	FetchNumbersByUser(ctx context.Context, userID user.ID, page, pageSize int) (PhoneNumbers, error)
	CountNumbersByUser(ctx context.Context, userID user.ID) (uint64, error)
	CreateNumber(ctx context.Context, userID user.ID, number string) (*PhoneNumber, error)
	UpdateNumber(ctx context.Context, userID user.ID, id ID, number string) (*PhoneNumber, error)
	DeactivateNumber(ctx context.Context, userID user.ID, id ID) (*PhoneNumber, error)
	FetchNumberDetails(ctx context.Context, page, pageSize int) (Details, error)
	CountActiveNumbers(ctx context.Context) (uint64, error)
}
