package otp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrGenerationFailed = errors.New("otp generation failed")
	ErrHashingFailed    = errors.New("otp hashing failed")
	ErrCodeMismatch     = errors.New("otp code mismatch")
	ErrInvalidCode      = errors.New("invalid otp code")
)

const codeSpace = 10000

// GenerateCode returns a 4 digit numeric code. Leading zeros are kept.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpace))
	if err != nil {
		return "", ErrGenerationFailed
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}

func HashCode(code string) (string, error) {
	if code == "" {
		return "", ErrInvalidCode
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashed), nil
}

func CompareCode(hashedCode, code string) error {
	if hashedCode == "" || code == "" {
		return ErrInvalidCode
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedCode), []byte(code))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrCodeMismatch
		}
		return err
	}

	return nil
}
