package user

import (
	"errors"
	"regexp"
	"strings"

	"hisitter/internal/pkg/errs"
)

var (
	ErrInvalidEmail       = errs.Mark(errors.New("invalid email format"), errs.ErrDomainValidation)
	ErrInvalidUsername    = errs.Mark(errors.New("username must be 4-20 characters"), errs.ErrDomainValidation)
	ErrInvalidPhoneNumber = errs.Mark(errors.New("phone number must be 10-12 digits"), errs.ErrDomainValidation)
	ErrInvalidRole        = errs.Mark(errors.New("invalid role"), errs.ErrDomainValidation)
	ErrPasswordTooWeak    = errs.Mark(errors.New("password must be at least 8 characters long"), errs.ErrDomainValidation)
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?1?\d{10,12}$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || len(s) > 20 {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: s}, nil
}

func (u Username) Value() string {
	return u.value
}

type PhoneNumber struct {
	value string
}

func NewPhoneNumber(s string) (PhoneNumber, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return PhoneNumber{}, ErrInvalidPhoneNumber
	}
	return PhoneNumber{value: s}, nil
}

func (p PhoneNumber) Value() string {
	return p.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
