package phonenumber

import (
	"cloud-telephony-api/internal/domain/phonenumber"
)

func ToResponseNumber(pnDomain phonenumber.PhoneNumber) PhoneNumber {
	var pn = PhoneNumber{
		ID:        uint64(pnDomain.ID),
		Number:    pnDomain.Number,
		UserID:    uint64(pnDomain.UserID),
		Active:    pnDomain.Active,
		CreatedAt: pnDomain.CreatedAt,
	}

	return pn
}

func ToResponseNumbers(pnsDomain phonenumber.PhoneNumbers) PhoneNumbers {
	pns := make(PhoneNumbers, len(pnsDomain))
	for idx, pn := range pnsDomain {
		pns[idx] = ToResponseNumber(*pn)
	}

	return pns
}

func ToResponseDetail(dDomain phonenumber.Detail) Detail {
	return Detail{
		ID:        uint64(dDomain.ID),
		Number:    dDomain.Number,
		UserID:    uint64(dDomain.UserID),
		UserName:  dDomain.UserName,
		UserEmail: dDomain.UserEmail,
		CallCount: dDomain.CallCount,
	}
}

func ToResponseDetails(dsDomain phonenumber.Details) Details {
	ds := make(Details, len(dsDomain))
	for idx, d := range dsDomain {
		ds[idx] = ToResponseDetail(*d)
	}

	return ds
}
