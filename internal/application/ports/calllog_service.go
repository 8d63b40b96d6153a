package ports

import (
	"context"

	"cloud-telephony-api/internal/domain/calllog"
	"cloud-telephony-api/internal/domain/phonenumber"
)

type CallLogService interface {
	MakeCall(ctx context.Context, numberID phonenumber.ID, calleeNumber string) (*calllog.CallLog, error)
	AppendLog(ctx context.Context, numberID phonenumber.ID, req calllog.CallLog) (*calllog.CallLog, error)
	FindLogs(ctx context.Context, numberID phonenumber.ID, page, pageSize int) (calllog.CallLogs, uint64, error)
}
