package request

import (
	"coasters/internal/domain/user"
)

type RequestOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
}

func (r RequestOTPRequest) ToDomain() (user.Phone, error) {
	return user.NewPhone(r.Phone)
}

type VerifyOTPRequest struct {
	Phone string  `json:"phone" binding:"required"`
	Code  string  `json:"code" binding:"required"`
	Name  *string `json:"name,omitempty"`
}

func (r VerifyOTPRequest) ToDomain() (user.Phone, user.OTPCode, error) {
	phone, err := user.NewPhone(r.Phone)
	if err != nil {
		return user.Phone{}, user.OTPCode{}, err
	}

	code, err := user.NewOTPCode(r.Code)
	if err != nil {
		return user.Phone{}, user.OTPCode{}, err
	}

	return phone, code, nil
}

func (r VerifyOTPRequest) DisplayName() string {
	if r.Name == nil {
		return ""
	}
	return *r.Name
}
