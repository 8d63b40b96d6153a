package calllog

import (
	"context"

	"cloud-telephony-api/internal/domain/calllog"
	"cloud-telephony-api/internal/domain/phonenumber"
	"cloud-telephony-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DBTX
}

func NewRepository(db postgres.DBTX) calllog.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchLogsByNumber(ctx context.Context, numberID phonenumber.ID, page, pageSize int) (calllog.CallLogs, error) {
	rows, err := r.db.Query(ctx, SelectLogsByNumber, numberID, pageSize, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cls CallLogs
	for rows.Next() {
		cl := new(CallLog)

		if err = rows.Scan(
			&cl.ID,
			&cl.PhoneNumberID,
			&cl.Direction,
			&cl.DurationSeconds,
			&cl.CalleeNumber,

			&cl.CallTime,
		); err != nil {
			return nil, err
		}

		cls = append(cls, cl)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&cls), nil
}

func (r *Repository) CountLogsByNumber(ctx context.Context, numberID phonenumber.ID) (uint64, error) {
	var total uint64
	if err := r.db.QueryRow(ctx, CountLogsByNumber, numberID).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *Repository) CreateLog(ctx context.Context, req calllog.CallLog) (*calllog.CallLog, error) {
	cl := new(CallLog)

	err := r.db.QueryRow(
		ctx,
		InsertLog,
		req.PhoneNumberID, string(req.Direction), req.DurationSeconds, req.CalleeNumber, req.CallTime,
	).Scan(
		&cl.ID,
		&cl.PhoneNumberID,
		&cl.Direction,
		&cl.DurationSeconds,
		&cl.CalleeNumber,

		&cl.CallTime,
	)
	if err != nil {
		if postgres.IsPgForeignKeyViolation(err) {
			return nil, ErrPhoneNumberGone
		}
		return nil, err
	}

	return fromDBModel(cl), nil
}
