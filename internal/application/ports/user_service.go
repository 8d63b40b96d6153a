package ports

import (
	"context"

	"cloud-telephony-api/internal/domain/user"
)

type UserService interface {
	FindUserByID(ctx context.Context, id user.ID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindUsers(ctx context.Context, page, pageSize int) (user.Users, uint64, error)
	CreateUser(ctx context.Context, u user.User, password string) (*user.User, error)
	UpdateUser(ctx context.Context, u user.User) (*user.User, error)
	DeleteUser(ctx context.Context, id user.ID) (*user.User, error)
}
