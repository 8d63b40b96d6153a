package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domain "cloud-telephony-api/internal/domain/user"
	"cloud-telephony-api/internal/infrastructure/mq"
)

type fakeUserRepo struct {
	FetchUserByIDFunc    func(ctx context.Context, id domain.ID) (*domain.User, error)
	FetchUserByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	FetchUsersFunc       func(ctx context.Context, page, pageSize int) (domain.Users, error)
	CountUsersFunc       func(ctx context.Context) (uint64, error)
	CreateUserFunc       func(ctx context.Context, req domain.User) (*domain.User, error)
	UpdateUserFunc       func(ctx context.Context, req domain.User) (*domain.User, error)
	DeleteUserFunc       func(ctx context.Context, id domain.ID) (*domain.User, error)
}

func (f *fakeUserRepo) FetchUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	if f.FetchUserByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUserByIDFunc(ctx, id)
}
func (f *fakeUserRepo) FetchUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.FetchUserByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUserByEmailFunc(ctx, email)
}
func (f *fakeUserRepo) FetchUsers(ctx context.Context, page, pageSize int) (domain.Users, error) {
	if f.FetchUsersFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUsersFunc(ctx, page, pageSize)
}
func (f *fakeUserRepo) CountUsers(ctx context.Context) (uint64, error) {
	if f.CountUsersFunc == nil {
		return 0, errors.New("not used")
	}
	return f.CountUsersFunc(ctx)
}
func (f *fakeUserRepo) CreateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateUserFunc(ctx, req)
}
func (f *fakeUserRepo) UpdateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	if f.UpdateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateUserFunc(ctx, req)
}
func (f *fakeUserRepo) DeleteUser(ctx context.Context, id domain.ID) (*domain.User, error) {
	if f.DeleteUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.DeleteUserFunc(ctx, id)
}

func TestUserService_CreateUser_HashesPassword(t *testing.T) {
	var captured domain.User
	repo := &fakeUserRepo{
		CreateUserFunc: func(ctx context.Context, req domain.User) (*domain.User, error) {
			captured = req
			out := req
			out.ID = 1
			return &out, nil
		},
	}
	us := NewUserService(repo, newFakeRabbitMQ(), testCounter())

	u, err := us.CreateUser(context.Background(), domain.User{Name: "Alice Smith", Email: "alice@example.com"}, "correct-horse")
	require.NoError(t, err)
	require.NotNil(t, u)

	require.NotNil(t, captured.PasswordHash)
	assert.NotEqual(t, "correct-horse", *captured.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*captured.PasswordHash), []byte("correct-horse")))
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("success publishes user.deleted", func(t *testing.T) {
		var deleteCalls int
		repo := &fakeUserRepo{
			DeleteUserFunc: func(ctx context.Context, id domain.ID) (*domain.User, error) {
				deleteCalls++
				return &domain.User{ID: id, Email: "alice@example.com", Name: "Alice Smith"}, nil
			},
		}
		rmq := newFakeRabbitMQ()
		us := NewUserService(repo, rmq, testCounter())

		u, err := us.DeleteUser(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, 1, deleteCalls)

		select {
		case e := <-rmq.GetInputChan():
			assert.Equal(t, mq.EventUserDeleted, e.Type)
		default:
			t.Fatal("expected a published event")
		}
	})

	t.Run("not found returns nil and publishes nothing", func(t *testing.T) {
		repo := &fakeUserRepo{
			DeleteUserFunc: func(ctx context.Context, id domain.ID) (*domain.User, error) {
				return nil, nil
			},
		}
		rmq := newFakeRabbitMQ()
		us := NewUserService(repo, rmq, testCounter())

		u, err := us.DeleteUser(context.Background(), 99)
		require.NoError(t, err)
		assert.Nil(t, u)
		assert.Len(t, rmq.GetInputChan(), 0)
	})

	t.Run("repository error propagates without side effects", func(t *testing.T) {
		repo := &fakeUserRepo{
			DeleteUserFunc: func(ctx context.Context, id domain.ID) (*domain.User, error) {
				return nil, errors.New("db error")
			},
		}
		rmq := newFakeRabbitMQ()
		us := NewUserService(repo, rmq, testCounter())

		u, err := us.DeleteUser(context.Background(), 1)
		require.Error(t, err)
		assert.Nil(t, u)
		assert.Len(t, rmq.GetInputChan(), 0)
	})
}
