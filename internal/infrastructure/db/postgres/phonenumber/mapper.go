package phonenumber

import (
	domain "cloud-telephony-api/internal/domain/phonenumber"
	"cloud-telephony-api/internal/domain/user"
)

func fromDBModel(model *PhoneNumber) *domain.PhoneNumber {
	var pn = &domain.PhoneNumber{
		ID:     domain.ID(model.ID),
		UserID: user.ID(model.UserID),
		Number: model.Number,
		Active: model.Active,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return pn
}

func fromDBModels(models *PhoneNumbers) domain.PhoneNumbers {
	pns := make(domain.PhoneNumbers, len(*models))
	for idx, pn := range *models {
		pns[idx] = fromDBModel(pn)
	}

	return pns
}

func fromDBDetail(model *Detail) *domain.Detail {
	return &domain.Detail{
		ID:        domain.ID(model.ID),
		UserID:    user.ID(model.UserID),
		Number:    model.Number,
		UserName:  model.UserName,
		UserEmail: model.UserEmail,
		CallCount: model.CallCount,
	}
}

func fromDBDetails(models *Details) domain.Details {
	ds := make(domain.Details, len(*models))
	for idx, d := range *models {
		ds[idx] = fromDBDetail(d)
	}

	return ds
}
