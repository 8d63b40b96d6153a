package user

import (
	"context"
)

type Repository interface {
	FetchUserByID(ctx context.Context, id ID) (*User, error)
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	FetchUsers(ctx context.Context, page, pageSize int) (Users, error)
	CountUsers(ctx context.Context) (uint64, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdateUser(ctx context.Context, req User) (*User, error)
	DeleteUser(ctx context.Context, id ID) (*User, error)
}
