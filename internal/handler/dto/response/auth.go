package response

import (
	"github.com/google/uuid"
)

type OTPRequestedResponse struct {
	Phone            string `json:"phone"`
	ExpiresInSeconds int    `json:"expiresInSeconds"`
}

type VerifyOTPResponse struct {
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	IsNewUser bool      `json:"isNewUser"`
}

type MeResponse struct {
	UserID uuid.UUID `json:"userId"`
	Name   string    `json:"name"`
	Phone  string    `json:"phone"`
	Role   string    `json:"role"`
}
