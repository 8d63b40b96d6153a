package calllog

import (
	"cloud-telephony-api/internal/domain/calllog"
)

func ToResponseLog(clDomain calllog.CallLog) CallLog {
	var cl = CallLog{
		ID:              uint64(clDomain.ID),
		PhoneNumberID:   uint64(clDomain.PhoneNumberID),
		Direction:       string(clDomain.Direction),
		DurationSeconds: clDomain.DurationSeconds,
		CalleeNumber:    clDomain.CalleeNumber,
		CallTime:        clDomain.CallTime,
	}

	return cl
}

func ToResponseLogs(clsDomain calllog.CallLogs) CallLogs {
	cls := make(CallLogs, len(clsDomain))
	for idx, cl := range clsDomain {
		cls[idx] = ToResponseLog(*cl)
	}

	return cls
}
