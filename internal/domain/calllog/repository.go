package calllog

import (
	"context"

	"cloud-telephony-api/internal/domain/phonenumber"
)

// Call logs are append-only: the repository exposes no update or delete.
type Repository interface {
	FetchLogsByNumber(ctx context.Context, numberID phonenumber.ID, page, pageSize int) (CallLogs, error)
	CountLogsByNumber(ctx context.Context, numberID phonenumber.ID) (uint64, error)
	CreateLog(ctx context.Context, req CallLog) (*CallLog, error)
}
