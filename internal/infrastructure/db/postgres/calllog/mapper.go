package calllog

import (
	domain "cloud-telephony-api/internal/domain/calllog"
	"cloud-telephony-api/internal/domain/phonenumber"
)

func fromDBModel(model *CallLog) *domain.CallLog {
	var cl = &domain.CallLog{
		ID:              domain.ID(model.ID),
		PhoneNumberID:   phonenumber.ID(model.PhoneNumberID),
		Direction:       domain.Direction(model.Direction),
		DurationSeconds: model.DurationSeconds,
		CalleeNumber:    model.CalleeNumber,

		CallTime: model.CallTime,
	}

	return cl
}

func fromDBModels(models *CallLogs) domain.CallLogs {
	cls := make(domain.CallLogs, len(*models))
	for idx, cl := range *models {
		cls[idx] = fromDBModel(cl)
	}

	return cls
}
