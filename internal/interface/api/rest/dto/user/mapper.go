package user

import (
	"cloud-telephony-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:        uint64(uDomain.ID),
		Name:      uDomain.Name,
		Email:     uDomain.Email,
		CreatedAt: uDomain.CreatedAt,
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

func ToDomainUser(uRequest Request) user.User {
	var u = user.User{
		Email: uRequest.Email,
		Name:  uRequest.Name,
	}

	return u
}
