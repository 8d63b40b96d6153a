package validator

import (
	"errors"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"cloud-telephony-api/internal/domain/calllog"
	"cloud-telephony-api/internal/interface/api/rest/dto/auth"
	calllogDTO "cloud-telephony-api/internal/interface/api/rest/dto/calllog"
	phonenumberDTO "cloud-telephony-api/internal/interface/api/rest/dto/phonenumber"
	"cloud-telephony-api/internal/interface/api/rest/dto/user"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe

	defaultPageSize = 20
	maxPageSize     = 100

	maxCallSeconds = 86400 // a call row longer than a day is garbage input
)

// Optional leading '+', first digit 1-9, 9-15 digits total.
var phoneRe = regexp.MustCompile(`^\+?[1-9]\d{8,14}$`)

func ValidatePagination(page, pageSize string) (int, int, error) {
	p := 1
	if page != "" {
		v, err := strconv.Atoi(page)
		if err != nil || v < 1 {
			return 0, 0, errors.New("invalid page")
		}
		p = v
	}

	s := defaultPageSize
	if pageSize != "" {
		v, err := strconv.Atoi(pageSize)
		if err != nil || v < 1 || v > maxPageSize {
			return 0, 0, errors.New("invalid page_size")
		}
		s = v
	}

	return p, s, nil
}

// ParseID parses a positive decimal path identifier.
func ParseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("must be a positive integer")
	}
	return id, nil
}

func IsPhoneNumber(s string) bool {
	return phoneRe.MatchString(s)
}

// ValidateUser normalizes r in place (email lowercased and trimmed, name
// NFC-normalized and trimmed) so the canonical form is what reaches the
// service and the unique indexes.
func ValidateUser(r *user.Request) map[string]string {
	errs := make(map[string]string)

	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Name = norm.NFC.String(strings.TrimSpace(r.Name))

	// email (required + format)
	if r.Email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		errs["email"] = "invalid email format"
	}

	// name (required + length + allowed chars)
	if r.Name == "" {
		errs["name"] = "name is required"
	} else if l := utf8.RuneCountInString(r.Name); l < 2 || l > 64 {
		errs["name"] = "name length must be 2-64 characters"
	} else if !isHumanName(r.Name) {
		errs["name"] = "allowed characters: letters, space, '-', '''"
	}

	// password (optional on this form; validated when present)
	if r.Password != "" {
		if l := utf8.RuneCountInString(r.Password); l < minPasswordLen || l > maxPasswordLen {
			errs["password"] = "password length must be 8-72 characters"
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateRegister(r *auth.RegisterRequest) map[string]string {
	u := user.Request{Name: r.Name, Email: r.Email}
	errs := ValidateUser(&u)
	r.Name, r.Email = u.Name, u.Email
	if errs == nil {
		errs = make(map[string]string)
	}

	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(r.Password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8-72 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateLogin(r *auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	if r.Email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		errs["email"] = "invalid email format"
	}

	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(r.Password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8-72 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateNumber(r *phonenumberDTO.Request) map[string]string {
	errs := make(map[string]string)

	r.Number = strings.TrimSpace(r.Number)

	if r.Number == "" {
		errs["number"] = "number is required"
	} else if !IsPhoneNumber(r.Number) {
		errs["number"] = "must be 9-15 digits with an optional leading '+'"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateCallLog(r *calllogDTO.Request) map[string]string {
	errs := make(map[string]string)

	r.CalleeNumber = strings.TrimSpace(r.CalleeNumber)

	if !calllog.Direction(r.Direction).Valid() {
		errs["direction"] = "must be 'incoming' or 'outgoing'"
	}
	if r.DurationSeconds < 0 || r.DurationSeconds > maxCallSeconds {
		errs["duration_seconds"] = "must be between 0 and 86400"
	}
	if r.CalleeNumber != "" && !IsPhoneNumber(r.CalleeNumber) {
		errs["callee_number"] = "must be 9-15 digits with an optional leading '+'"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateMakeCall(r *calllogDTO.MakeCallRequest) map[string]string {
	errs := make(map[string]string)

	r.CalleeNumber = strings.TrimSpace(r.CalleeNumber)

	if r.CalleeNumber == "" {
		errs["callee_number"] = "callee_number is required"
	} else if !IsPhoneNumber(r.CalleeNumber) {
		errs["callee_number"] = "must be 9-15 digits with an optional leading '+'"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func isHumanName(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return false
	}
	return true
}
