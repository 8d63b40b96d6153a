package phonenumber

import "errors"

var ErrNumberAlreadyExists = errors.New("phone number already exists")
