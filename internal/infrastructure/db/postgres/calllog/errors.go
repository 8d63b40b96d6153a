package calllog

import "errors"

// Raised when an insert races a number deactivation/removal and trips the
// foreign key.
var ErrPhoneNumberGone = errors.New("phone number no longer exists")
