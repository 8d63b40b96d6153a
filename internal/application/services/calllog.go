package services

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"cloud-telephony-api/internal/application/ports"
	domain "cloud-telephony-api/internal/domain/calllog"
	"cloud-telephony-api/internal/domain/phonenumber"
	"cloud-telephony-api/internal/infrastructure/mq"
	"cloud-telephony-api/internal/interface/api/rest/dto/calllog"
)

var ErrPhoneNumberNotFound = errors.New("phone number not found")

// No carrier behind this service: simulated calls get a synthetic duration
// in [1, maxSimulatedCallSeconds].
const maxSimulatedCallSeconds = 60

type CallLogService struct {
	callLogRepository domain.Repository
	numberRepository  phonenumber.Repository
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
}

func NewCallLogService(
	callLogRepository domain.Repository,
	numberRepository phonenumber.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.CallLogService {
	return &CallLogService{
		callLogRepository: callLogRepository,
		numberRepository:  numberRepository,
		mq:                mq,
		mCounter:          mCounter,
	}
}

// MakeCall simulates an outgoing call from an active number and appends
// the resulting log.
func (cs *CallLogService) MakeCall(ctx context.Context, numberID phonenumber.ID, calleeNumber string) (*domain.CallLog, error) {
	pn, err := cs.numberRepository.FetchNumberByID(ctx, numberID)
	if err != nil {
		return nil, err
	}
	if pn == nil {
		return nil, ErrPhoneNumberNotFound
	}

	req := domain.CallLog{
		PhoneNumberID:   pn.ID,
		Direction:       domain.DirectionOutgoing,
		DurationSeconds: rand.IntN(maxSimulatedCallSeconds) + 1,
		CalleeNumber:    &calleeNumber,
		CallTime:        time.Now(),
	}

	return cs.appendLog(ctx, req)
}

// AppendLog records a pre-built call log against an active number.
func (cs *CallLogService) AppendLog(ctx context.Context, numberID phonenumber.ID, req domain.CallLog) (*domain.CallLog, error) {
	pn, err := cs.numberRepository.FetchNumberByID(ctx, numberID)
	if err != nil {
		return nil, err
	}
	if pn == nil {
		return nil, ErrPhoneNumberNotFound
	}

	req.PhoneNumberID = pn.ID
	if req.CallTime.IsZero() {
		req.CallTime = time.Now()
	}

	return cs.appendLog(ctx, req)
}

func (cs *CallLogService) appendLog(ctx context.Context, req domain.CallLog) (*domain.CallLog, error) {
	cl, err := cs.callLogRepository.CreateLog(ctx, req)
	if err != nil {
		return nil, err
	}

	if cl != nil {
		cs.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Type:    mq.EventCallLogged,
			Payload: calllog.ToResponseLog(*cl),
		}
	}

	cs.mCounter.WithLabelValues("call_logged_total").Inc()

	return cl, nil
}

func (cs *CallLogService) FindLogs(ctx context.Context, numberID phonenumber.ID, page, pageSize int) (domain.CallLogs, uint64, error) {
	pn, err := cs.numberRepository.FetchNumberByID(ctx, numberID)
	if err != nil {
		return nil, 0, err
	}
	if pn == nil {
		return nil, 0, ErrPhoneNumberNotFound
	}

	cls, err := cs.callLogRepository.FetchLogsByNumber(ctx, numberID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	total, err := cs.callLogRepository.CountLogsByNumber(ctx, numberID)
	if err != nil {
		return nil, 0, err
	}

	return cls, total, nil
}
