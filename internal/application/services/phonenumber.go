package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"cloud-telephony-api/internal/application/ports"
	domain "cloud-telephony-api/internal/domain/phonenumber"
	"cloud-telephony-api/internal/domain/user"
	"cloud-telephony-api/internal/infrastructure/mq"
	"cloud-telephony-api/internal/interface/api/rest/dto/phonenumber"
)

type PhoneNumberService struct {
	numberRepository domain.Repository
	userRepository   user.Repository
	mq               ports.RabbitMQ
	mCounter         *prometheus.CounterVec
}

func NewPhoneNumberService(
	numberRepository domain.Repository,
	userRepository user.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.PhoneNumberService {
	return &PhoneNumberService{
		numberRepository: numberRepository,
		userRepository:   userRepository,
		mq:               mq,
		mCounter:         mCounter,
	}
}

// CreateNumber registers a number for an existing, non-deleted user.
// Number uniqueness is global among active numbers and enforced by the
// database; a race between two identical creates loses on the unique
// index and surfaces as ErrNumberAlreadyExists.
func (ps *PhoneNumberService) CreateNumber(ctx context.Context, userID user.ID, number string) (*domain.PhoneNumber, error) {
	u, err := ps.userRepository.FetchUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	pn, err := ps.numberRepository.CreateNumber(ctx, userID, number)
	if err != nil {
		return nil, err
	}

	if pn != nil {
		ps.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Type:    mq.EventNumberCreated,
			Payload: phonenumber.ToResponseNumber(*pn),
		}
	}

	ps.mCounter.WithLabelValues("number_created_total").Inc()

	return pn, nil
}

// FindUserNumbers returns the user's active numbers. An existing user with
// no numbers gets an empty page, not an error.
func (ps *PhoneNumberService) FindUserNumbers(ctx context.Context, userID user.ID, page, pageSize int) (domain.PhoneNumbers, uint64, error) {
	u, err := ps.userRepository.FetchUserByID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if u == nil {
		return nil, 0, ErrUserNotFound
	}

	pns, err := ps.numberRepository.FetchNumbersByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	total, err := ps.numberRepository.CountNumbersByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	return pns, total, nil
}

func (ps *PhoneNumberService) UpdateNumber(ctx context.Context, userID user.ID, numberID domain.ID, number string) (*domain.PhoneNumber, error) {
	pn, err := ps.numberRepository.UpdateNumber(ctx, userID, numberID, number)
	if err != nil {
		return nil, err
	}

	if pn != nil {
		ps.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Type:    mq.EventNumberUpdated,
			Payload: phonenumber.ToResponseNumber(*pn),
		}

		ps.mCounter.WithLabelValues("number_updated_total").Inc()
	}

	return pn, nil
}

func (ps *PhoneNumberService) DeactivateNumber(ctx context.Context, userID user.ID, numberID domain.ID) (*domain.PhoneNumber, error) {
	pn, err := ps.numberRepository.DeactivateNumber(ctx, userID, numberID)
	if err != nil {
		return nil, err
	}

	if pn != nil {
		ps.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Type:    mq.EventNumberDeleted,
			Payload: phonenumber.ToResponseNumber(*pn),
		}

		ps.mCounter.WithLabelValues("number_deleted_total").Inc()
	}

	return pn, nil
}

func (ps *PhoneNumberService) FindNumberDetails(ctx context.Context, page, pageSize int) (domain.Details, uint64, error) {
	ds, err := ps.numberRepository.FetchNumberDetails(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	total, err := ps.numberRepository.CountActiveNumbers(ctx)
	if err != nil {
		return nil, 0, err
	}

	return ds, total, nil
}
