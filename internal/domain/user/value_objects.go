package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidPhone = errors.New("invalid phone number format")
	ErrInvalidOTP   = errors.New("otp must be a 4 digit code")
	ErrInvalidRole  = errors.New("invalid role")
)

var (
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{10,13}$`)
	otpRegex   = regexp.MustCompile(`^[0-9]{4}$`)
)

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	if !phoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string {
	return p.value
}

type OTPCode struct {
	value string
}

func NewOTPCode(s string) (OTPCode, error) {
	s = strings.TrimSpace(s)
	if !otpRegex.MatchString(s) {
		return OTPCode{}, ErrInvalidOTP
	}
	return OTPCode{value: s}, nil
}

func (o OTPCode) Value() string {
	return o.value
}
