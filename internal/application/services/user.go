package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"cloud-telephony-api/internal/application/ports"
	domain "cloud-telephony-api/internal/domain/user"
	"cloud-telephony-api/internal/infrastructure/mq"
	"cloud-telephony-api/internal/interface/api/rest/dto/user"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	userRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindUsers(ctx context.Context, page, pageSize int) (domain.Users, uint64, error) {
	users, err := us.userRepository.FetchUsers(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	total, err := us.userRepository.CountUsers(ctx)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// CreateUser persists u; a non-empty password is bcrypt-hashed, the plain
// text never reaches the repository.
func (us *UserService) CreateUser(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		u.PasswordHash = &h
	}

	uRet, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Type:    mq.EventUserCreated,
			Payload: user.ToResponseUser(*uRet),
		}
	}

	us.mCounter.WithLabelValues("user_created_total").Inc()

	return uRet, nil
}

func (us *UserService) UpdateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	uRet, err := us.userRepository.UpdateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Type:    mq.EventUserUpdated,
			Payload: user.ToResponseUser(*uRet),
		}
	}

	us.mCounter.WithLabelValues("user_updated_total").Inc()

	return uRet, nil
}

// DeleteUser soft-deletes the user and deactivates every number they own.
// Both happen inside one repository statement, so a failure leaves the user
// and their numbers untouched. Returns nil when no non-deleted user matched.
func (us *UserService) DeleteUser(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := us.userRepository.DeleteUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if u != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Type:    mq.EventUserDeleted,
			Payload: user.ToResponseUser(*u),
		}

		us.mCounter.WithLabelValues("user_deleted_total").Inc()
	}

	return u, nil
}
